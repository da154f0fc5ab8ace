// Package calculator implements the type calculator (spec §4.8, component
// G): turning an AST node or a front-end TypeBinding into a TypeInfo, in
// either soft mode (a bare handle) or proper mode (fields populated,
// parameterized field substitution applied).
package calculator

import (
	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/capture"
	"github.com/javacg/tgengine/internal/config"
	"github.com/javacg/tgengine/internal/diag"
	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
	"github.com/javacg/tgengine/internal/typeintern"
)

// Ancestor node kinds the dispatch rules in §4.8 and §4.5 walk outward to.
const (
	KindReturnStatement     adapter.NodeKind = "ReturnStatement"
	KindMethodDeclaration   adapter.NodeKind = "MethodDeclaration"
	KindVariableDeclaration adapter.NodeKind = "VariableDeclaration"
	KindAssignment          adapter.NodeKind = "Assignment"
	KindAnonymousClass      adapter.NodeKind = "AnonymousClassDeclaration"
	KindClassDeclaration    adapter.NodeKind = "ClassDeclaration"

	// KindStatementBoundary tags any statement node that is not itself one
	// of the diamond-inference target kinds (an if/for/while/expression
	// statement, a block, ...). InferDiamond's outward walk stops here: a
	// declaration or assignment further out than the nearest statement
	// boundary does not govern the diamond expression's inferred type.
	KindStatementBoundary adapter.NodeKind = "StatementBoundary"
)

// Calculator computes TypeInfo values from a front end's AST/binding
// surface. One instance is owned by a single caller (goroutine); its LRU
// cache is never shared (§5).
type Calculator struct {
	AST    adapter.ASTAdapter
	Oracle hierarchy.Oracle
	Specs  adapter.LibrarySpecService
	Intern *typeintern.Table
	Cfg    config.EngineConfig

	cache *lru
}

// New builds a Calculator wired to the given adapters, with a per-instance
// LRU sized from cfg.
func New(ast adapter.ASTAdapter, oracle hierarchy.Oracle, specs adapter.LibrarySpecService, intern *typeintern.Table, cfg config.EngineConfig) *Calculator {
	return &Calculator{
		AST:    ast,
		Oracle: oracle,
		Specs:  specs,
		Intern: intern,
		Cfg:    cfg,
		cache:  newLRU(cfg.CalculatorCacheSize),
	}
}

// TypeOf is the §6.4 main entry point: type_of(ast_node, soft). If the
// first attempt yields nothing and node sits inside a return statement, it
// retries using the enclosing method's declared return type.
func (c *Calculator) TypeOf(node adapter.ASTNode, soft bool) (typeinfo.TypeInfo, bool) {
	if t, ok := c.typeOfNode(node, soft); ok {
		return t, true
	}

	ret, ok := c.AST.FindNearestAncestor(node, KindReturnStatement)
	if !ok {
		return nil, false
	}
	method, ok := c.AST.FindNearestAncestor(ret, KindMethodDeclaration)
	if !ok {
		return nil, false
	}
	return c.typeOfNode(method, soft)
}

func (c *Calculator) typeOfNode(node adapter.ASTNode, soft bool) (typeinfo.TypeInfo, bool) {
	tb, ok := c.AST.BindingOfNode(node)
	if !ok {
		return nil, false
	}
	return c.intern(c.buildFromBinding(tb, soft)), true
}

// TypeOfASTType is §6.4's type_of(ast_type_node, file_path, soft): a
// syntactic type reference (a field's declared type, a cast target, a
// method's parameter type) rather than an expression. Unlike TypeOf it
// never retries against an enclosing method's return type — a type node
// has no "no binding yet" case the way a half-resolved expression does.
// filePath is accepted for parity with the adapter's file-scoped lookups
// even though BindingOfNode alone resolves the binding here.
func (c *Calculator) TypeOfASTType(node adapter.ASTNode, filePath string, soft bool) (typeinfo.TypeInfo, bool) {
	return c.typeOfNode(node, soft)
}

// TypeOfType is §6.4's type_of(type_binding, file_path, token_range?,
// class_hash?, soft). filePath and tokenRange only matter for the array
// style-declaration special case (consulting the binding rather than the
// text for `int a[]`) and for cache keys elsewhere; this core receives
// arrays already reflected in tb (the adapter resolves `int a[]` to an
// array-shaped TypeBinding before handing it to the calculator, per §4.8).
func (c *Calculator) TypeOfType(tb adapter.TypeBinding, soft bool) typeinfo.TypeInfo {
	if tb == nil {
		return nil
	}
	return c.intern(c.buildFromBinding(tb, soft))
}

func (c *Calculator) intern(t typeinfo.TypeInfo) typeinfo.TypeInfo {
	if t == nil {
		return nil
	}
	canonical, _ := c.Intern.PutOrGet(t)
	return canonical
}

// buildFromBinding recursively converts a front-end TypeBinding into a
// TypeInfo. Field population (proper mode) only happens for the
// outermost container; nested references inside a field's own type remain
// at whatever depth the recursion naturally produces (matching §4.5:
// "field computation occurs only for container-mode calculations").
func (c *Calculator) buildFromBinding(tb adapter.TypeBinding, soft bool) typeinfo.TypeInfo {
	switch {
	case tb.IsPrimitive():
		return &typeinfo.Scalar{PrimName: tb.PrimitiveName()}

	case tb.IsArray():
		elem := tb.ElementType()
		var elemInfo typeinfo.TypeInfo
		if elem != nil {
			elemInfo = c.buildFromBinding(elem, soft)
		} else {
			elemInfo = &typeinfo.Class{Hash: typeinfo.ClassHash(c.universalObjectName())}
		}
		arr := &typeinfo.Array{Dimension: maxInt(tb.Dimensions(), 1), Element: elemInfo}
		c.checkArrayInvariant(arr)
		return arr

	case tb.IsWildcardType():
		var bound typeinfo.TypeInfo
		if b := tb.Bound(); b != nil {
			bound = c.buildFromBinding(b, soft)
		}
		w := &typeinfo.Wildcard{IsUpper: tb.IsUpperBound()}
		if bound != nil {
			w.Bound = bound
		}
		return w

	case tb.IsTypeVariable():
		var bounds []typeinfo.TypeInfo
		for _, b := range tb.TypeBounds() {
			bounds = append(bounds, c.buildFromBinding(b, soft))
		}
		return &typeinfo.Symbolic{VarName: tb.Name(), Bounds: bounds}

	case tb.IsCapture():
		if e := tb.Erasure(); e != nil {
			return c.buildFromBinding(e, soft)
		}
		return &typeinfo.Class{Hash: typeinfo.ClassHash(c.universalObjectName())}

	case tb.IsParameterizedType() || (tb.IsGenericType() && !tb.IsRawType()):
		return c.buildParameterized(tb, soft)

	case tb.IsEnum():
		hash := c.hashFor(tb)
		e := &typeinfo.Enum{Hash: hash}
		if !soft {
			e.FieldMap = c.buildFields(tb, nil, nil)
		}
		return e

	default:
		hash := c.hashFor(tb)
		cl := &typeinfo.Class{Hash: hash, IsInterface: tb.IsInterface(), IsInner: tb.IsNested()}
		if !soft {
			cl.FieldMap = c.buildFields(tb, nil, nil)
		}
		return cl
	}
}

// buildParameterized implements §4.5's raw/diamond/explicit dispatch for a
// TypeBinding that is already known to be a parameterized or generic
// reference (diamond inference itself is driven separately by
// InferDiamond, since it needs AST context buildFromBinding does not have).
func (c *Calculator) buildParameterized(tb adapter.TypeBinding, soft bool) typeinfo.TypeInfo {
	hash := c.hashFor(tb)
	typeArgs := tb.TypeArguments()
	params := tb.TypeParameters()
	arity := len(params)
	if arity == 0 {
		arity = len(typeArgs)
	}

	args := make([]typeinfo.TypeInfo, 0, len(typeArgs))
	for _, a := range typeArgs {
		args = append(args, c.buildFromBinding(a, soft))
	}

	p := &typeinfo.Parameterized{
		RawClassHash: hash,
		Arity:        arity,
		Arguments:    args,
		FromSource:   tb.IsFromSource(),
		IsInner:      tb.IsNested(),
	}
	if !soft {
		fieldNames := make(map[int]string)
		p.FieldMap = c.buildFields(tb, args, fieldNames)
		p.TypeArgToFieldName = fieldNames
	}
	return p
}

// buildFields implements §4.5/§4.8's proper-mode field population: for a
// library parameterized type, one DUMMY pseudo-field per argument; for a
// source container, its declared fields, substituting any declared type
// parameter occurrence by the matching concrete argument.
func (c *Calculator) buildFields(tb adapter.TypeBinding, typeArgs []typeinfo.TypeInfo, argToField map[int]string) *typeinfo.FieldList {
	shortName := tb.Name()
	if !tb.IsFromSource() && len(typeArgs) > 0 {
		entries := make([]typeinfo.Field, 0, len(typeArgs))
		for i, arg := range typeArgs {
			entries = append(entries, typeinfo.Field{
				QualifiedName: typeinfo.DummyFieldName(shortName, i+1),
				Type:          arg,
			})
		}
		return typeinfo.NewFieldList(entries)
	}

	declared := tb.DeclaredFields()
	if len(declared) == 0 {
		return typeinfo.NewFieldList(nil)
	}
	params := tb.TypeParameters()
	entries := make([]typeinfo.Field, 0, len(declared))
	for _, f := range declared {
		fieldType := c.buildFromBinding(f.Type, false)
		if idx, ok := typeParamIndex(params, f.Type); ok && idx < len(typeArgs) {
			fieldType = typeArgs[idx]
			if argToField != nil {
				argToField[idx] = f.Name
			}
		}
		entries = append(entries, typeinfo.Field{
			QualifiedName: typeinfo.QualifiedFieldName(shortName, f.Name),
			Type:          fieldType,
		})
	}
	return typeinfo.NewFieldList(entries)
}

func typeParamIndex(params []adapter.TypeBinding, fieldType adapter.TypeBinding) (int, bool) {
	if fieldType == nil || !fieldType.IsTypeVariable() {
		return 0, false
	}
	for i, p := range params {
		if p.Name() == fieldType.Name() {
			return i, true
		}
	}
	return 0, false
}

func (c *Calculator) hashFor(tb adapter.TypeBinding) typeinfo.ClassHash {
	if tb.IsFromSource() {
		return typeinfo.ClassHash(tb.QualifiedName())
	}
	return typeinfo.LibraryHash(tb.QualifiedName())
}

func (c *Calculator) universalObjectName() string {
	if c.Cfg.UniversalObjectName != "" {
		return c.Cfg.UniversalObjectName
	}
	return typeinfo.UniversalObjectName
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// InferDiamond implements §4.5's diamond-form argument inference: walk
// outward from node a single time looking for whichever of an enclosing
// variable declaration, assignment left-hand side, or method declared
// return type is actually nearest, stopping at the first statement
// boundary crossed (a farther-out declaration or assignment past that
// boundary does not govern this diamond expression). rawArity/rawHash come
// from the diamond expression's own raw binding. If the inferred argument
// count does not match rawArity, every argument falls back to the
// universal object type.
func (c *Calculator) InferDiamond(node adapter.ASTNode, rawHash typeinfo.ClassHash, rawArity int) typeinfo.TypeInfo {
	var declared typeinfo.TypeInfo
	anc, kind, ok := c.AST.NearestAncestorAmong(node, []adapter.NodeKind{
		KindVariableDeclaration, KindAssignment, KindMethodDeclaration, KindStatementBoundary,
	})
	if ok && kind != KindStatementBoundary {
		if tb, ok := c.AST.BindingOfNode(anc); ok {
			declared = c.buildFromBinding(tb, true)
		}
	}

	var args []typeinfo.TypeInfo
	if p, ok := declared.(*typeinfo.Parameterized); ok {
		args = p.Arguments
	}

	if len(args) != rawArity {
		args = make([]typeinfo.TypeInfo, rawArity)
		universal := c.intern(&typeinfo.Class{Hash: typeinfo.ClassHash(c.universalObjectName())})
		for i := range args {
			args[i] = universal
		}
	}
	return c.intern(&typeinfo.Parameterized{RawClassHash: rawHash, Arity: rawArity, Arguments: args})
}

// InfixType implements §4.8's infix-expression dispatch: relational
// operators yield boolean; concatenation where either operand is the
// string scalar yields string; otherwise the left operand's type,
// falling back to the right's.
func (c *Calculator) InfixType(op string, left, right typeinfo.TypeInfo) typeinfo.TypeInfo {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return c.intern(&typeinfo.Scalar{PrimName: "boolean"})
	case "+":
		if isStringScalar(left) || isStringScalar(right) {
			return c.intern(&typeinfo.Scalar{PrimName: "String", IsClassType: true})
		}
	}
	if left != nil {
		return left
	}
	return right
}

func isStringScalar(t typeinfo.TypeInfo) bool {
	s, ok := t.(*typeinfo.Scalar)
	return ok && s.PrimName == "String"
}

// ConditionalType implements §4.8's conditional-expression dispatch: the
// then-branch type, unless it is unresolved (ok is false) or the null
// type, in which case the else-branch.
func (c *Calculator) ConditionalType(thenType typeinfo.TypeInfo, thenOK bool, elseType typeinfo.TypeInfo) typeinfo.TypeInfo {
	if thenOK && thenType != nil && !isNullType(thenType) {
		return thenType
	}
	return elseType
}

func isNullType(t typeinfo.TypeInfo) bool {
	s, ok := t.(*typeinfo.Scalar)
	return ok && s.PrimName == typeinfo.NullTypeName
}

// ArrayCreationType implements §4.8's array-creation-with-initializer
// dispatch: always the declared array type from the enclosing creation or
// assignment, never inferred from the initializer's element types.
func (c *Calculator) ArrayCreationType(declared typeinfo.TypeInfo) typeinfo.TypeInfo {
	return declared
}

// ThisType implements §4.8's `this`-inside-anonymous-class-initializer
// dispatch: resolve via the qualifier if present, else the lexically
// enclosing class declaration.
func (c *Calculator) ThisType(node adapter.ASTNode, qualifier adapter.TypeBinding) (typeinfo.TypeInfo, bool) {
	if qualifier != nil {
		return c.intern(c.buildFromBinding(qualifier, true)), true
	}
	enclosing, ok := c.AST.FindNearestAncestor(node, KindClassDeclaration)
	if !ok {
		return nil, false
	}
	tb, ok := c.AST.BindingOfNode(enclosing)
	if !ok {
		return nil, false
	}
	return c.intern(c.buildFromBinding(tb, true)), true
}

// CallingContextType implements §6.4's calling_context_type: cache by the
// expression's textual form, but only serve a hit when the cached scope is
// absent, or the querying expression's own token range lies inside it.
func (c *Calculator) CallingContextType(node adapter.ASTNode, textualForm string, soft bool) (typeinfo.TypeInfo, bool) {
	queryRange := c.AST.TokenRangeOfNode(node)

	if entry, ok := c.cache.get(textualForm); ok {
		if !entry.scopeKnown || rangeWithin(queryRange, entry.scope) {
			return entry.value, true
		}
	}

	value, ok := c.TypeOf(node, soft)
	if !ok {
		return nil, false
	}

	entry := cacheEntry{value: value}
	if scope, hasScope := c.AST.LocalVariableScope(node); hasScope {
		entry.scope = scope
		entry.scopeKnown = true
	}
	c.cache.put(textualForm, entry)
	return value, true
}

func rangeWithin(inner, outer adapter.TokenRange) bool {
	return inner.Start >= outer.Start && inner.End <= outer.End
}

// ResolveLibraryMethod implements §4.8's library-method-invocation
// dispatch: when the front end cannot bind the callee, consult the
// library-spec service for the return type. Package candidates are tried
// in order: the configured default packages, then the file's own imports,
// then every package the spec service itself associates with the short
// class name.
func (c *Calculator) ResolveLibraryMethod(class, method string, arity int, fileImports []string) (typeinfo.TypeInfo, string, bool) {
	candidates := make([]string, 0, len(c.Cfg.DefaultPackages)+len(fileImports))
	candidates = append(candidates, c.Cfg.DefaultPackages...)
	candidates = append(candidates, fileImports...)
	candidates = append(candidates, c.Specs.PackagesFor(class)...)

	seen := make(map[string]bool, len(candidates))
	for _, pkg := range candidates {
		if seen[pkg] {
			continue
		}
		seen[pkg] = true
		rec, ok := c.Specs.SpecFor(pkg, class, method, arity)
		if !ok {
			continue
		}
		qualified := pkg + "." + rec.DeclaringType + "." + method
		return c.intern(&typeinfo.Class{Hash: rec.ReturnType}), qualified, true
	}
	return nil, "", false
}

// ReplacementForSymbolic is §6.4's replacement_for_symbolic, delegating to
// package capture's hierarchy-climbing helper.
func (c *Calculator) ReplacementForSymbolic(symbolicBearing, actual typeinfo.TypeInfo, declaredHash typeinfo.ClassHash, declared typeinfo.TypeInfo) typeinfo.TypeInfo {
	return capture.ReplacementForSymbolic(c.Oracle, symbolicBearing, actual, declaredHash, declared)
}

// checkArrayInvariant panics via diag if a malformed Array descriptor
// (dimension < 1) would otherwise be interned, per §7's fatal invariant
// class.
func (c *Calculator) checkArrayInvariant(a *typeinfo.Array) {
	if a.Dimension < 1 {
		diag.Raise("Array.Dimension", "array dimension must be >= 1", -1, nil)
	}
}
