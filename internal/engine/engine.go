// Package engine is the facade that wires the intern table, the hierarchy
// oracle, the library-spec service and the calculator together and exposes
// the §6.4 query surface, grounded on the teacher's TypeSystem facade (a
// single struct aggregating every registry the interpreter needed, handed
// out as one dependency rather than many).
package engine

import (
	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/calculator"
	"github.com/javacg/tgengine/internal/config"
	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
	"github.com/javacg/tgengine/internal/typeintern"
)

// Engine aggregates every core component behind the single query surface
// §6.4 describes. It owns no AST; it only consumes adapters supplied by a
// driver.
type Engine struct {
	Intern *typeintern.Table
	Oracle hierarchy.Oracle
	Calc   *calculator.Calculator
	Cfg    config.EngineConfig
}

// New wires an Engine from its three external adapters and a config,
// installing the oracle into typeinfo's package-level hooks via
// hierarchy.Wire so Parameterized/Symbolic/Wildcard resolution can reach
// the oracle without an import cycle. Both hierarchy.Wire's hooks and
// typeinfo.WidenCharToNumeric are process-global state, so only one
// Engine's oracle/config is ever active at a time — fine under the
// single-analysis-per-process model this engine targets, but a second
// concurrent Engine with a different oracle or cfg would clobber the first.
func New(ast adapter.ASTAdapter, oracle hierarchy.Oracle, specs adapter.LibrarySpecService, cfg config.EngineConfig) *Engine {
	hierarchy.Wire(oracle)
	typeinfo.WidenCharToNumeric = cfg.WidenCharToNumeric
	intern := typeintern.New()
	return &Engine{
		Intern: intern,
		Oracle: oracle,
		Calc:   calculator.New(ast, oracle, specs, intern, cfg),
		Cfg:    cfg,
	}
}

// TypeOf is §6.4's type_of(ast_node, soft).
func (e *Engine) TypeOf(node adapter.ASTNode, soft bool) (typeinfo.TypeInfo, bool) {
	return e.Calc.TypeOf(node, soft)
}

// TypeOfBinding is §6.4's type_of(type_binding, file_path, token_range?,
// class_hash?, soft). The file path, token range and class hash parameters
// only matter to adapters that need them for their own bookkeeping
// (caching, source-range recovery); the core computation only needs the
// binding and the mode.
func (e *Engine) TypeOfBinding(tb adapter.TypeBinding, soft bool) typeinfo.TypeInfo {
	return e.Calc.TypeOfType(tb, soft)
}

// TypeOfASTType is §6.4's type_of(ast_type_node, file_path, soft).
func (e *Engine) TypeOfASTType(node adapter.ASTNode, filePath string, soft bool) (typeinfo.TypeInfo, bool) {
	return e.Calc.TypeOfASTType(node, filePath, soft)
}

// CallingContextType is §6.4's calling_context_type.
func (e *Engine) CallingContextType(node adapter.ASTNode, textualForm string, soft bool) (typeinfo.TypeInfo, bool) {
	return e.Calc.CallingContextType(node, textualForm, soft)
}

// QualifiedNameOf is §6.4's qualified_name_of: resolve a library method
// invocation's declaring type and method, given the candidate imports from
// the file it appears in.
func (e *Engine) QualifiedNameOf(class, method string, arity int, fileImports []string) (string, bool) {
	_, qualified, ok := e.Calc.ResolveLibraryMethod(class, method, arity, fileImports)
	return qualified, ok
}

// ClassHashIndexOf is §6.4's class_hash_index_of(TypeInfo) — the intern
// table index of an already-interned descriptor.
func (e *Engine) ClassHashIndexOf(t typeinfo.TypeInfo) (typeintern.TypeIndex, bool) {
	return e.Intern.IndexOf(t)
}

// ReplacementForSymbolic is §6.4's replacement_for_symbolic.
func (e *Engine) ReplacementForSymbolic(symbolicBearing, actual typeinfo.TypeInfo, declaredHash typeinfo.ClassHash, declared typeinfo.TypeInfo) typeinfo.TypeInfo {
	return e.Calc.ReplacementForSymbolic(symbolicBearing, actual, declaredHash, declared)
}

// Reset implements the §3.4 lifecycle operation: release every interned
// descriptor so the engine can run a fresh analysis in the same process.
// The hierarchy oracle and library-spec service are untouched — they are
// driver-owned, not core state.
func (e *Engine) Reset() {
	e.Intern.Reset()
}

// Stats reports the intern table's cumulative usage counters.
func (e *Engine) Stats() typeintern.Stats {
	return e.Intern.Stats()
}
