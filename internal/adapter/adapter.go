// Package adapter declares the three external interfaces the core consumes
// (spec §6.1–§6.3): the AST adapter, the hierarchy oracle, and the
// library-spec service. The core package (internal/engine) only ever holds
// values of these interface types — it never imports a concrete AST front
// end, matching §1's scope boundary ("consumes an already-built AST/type
// binding surface; does not parse or construct one").
package adapter

import (
	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
)

// TokenRange is an opaque, adapter-defined source span. The core never
// inspects its contents — only passes it through for caching keys and
// diagnostics.
type TokenRange struct {
	Start, End int
}

// ASTNode is an opaque handle to a node in the (external) AST. The core
// never type-switches on it; every capability it needs is obtained through
// the ASTAdapter operations below or through a TypeBinding.
type ASTNode any

// CompilationUnit is an opaque handle to a parsed source file.
type CompilationUnit any

// NodeKind identifies the kind of ancestor FindNearestAncestor should stop
// at (e.g. "MethodDeclaration", "ClassDeclaration", "ReturnStatement").
type NodeKind string

// TypeBinding is the opaque front-end type-binding surface of §6.1: every
// capability the calculator needs without the core ever depending on the
// concrete binding representation of a particular compiler.
type TypeBinding interface {
	IsPrimitive() bool
	PrimitiveName() string

	IsArray() bool
	ElementType() TypeBinding
	Dimensions() int

	IsParameterizedType() bool
	IsGenericType() bool
	IsRawType() bool
	TypeArguments() []TypeBinding
	TypeParameters() []TypeBinding

	IsWildcardType() bool
	Bound() TypeBinding
	IsUpperBound() bool

	IsTypeVariable() bool
	TypeBounds() []TypeBinding

	IsCapture() bool
	Erasure() TypeBinding

	IsEnum() bool
	IsInterface() bool
	IsNested() bool
	IsFromSource() bool
	IsRecovered() bool

	Name() string
	QualifiedName() string

	Interfaces() []TypeBinding
	Superclass() TypeBinding
	DeclaringClass() TypeBinding

	// DeclaredFields lists this binding's own declared fields, consulted
	// by the calculator's "proper" mode (§4.8) to populate a Class,
	// Enum or source Parameterized's field list. Soft-mode callers never
	// call this.
	DeclaredFields() []FieldBinding

	// JavaElement returns whatever source-range-recoverable handle the
	// front end associates with this binding, or nil.
	JavaElement() any
}

// FieldBinding is one declared field as reported by the front end: its name
// and its own type binding.
type FieldBinding struct {
	Name string
	Type TypeBinding
}

// ASTAdapter is the consumed §6.1 surface.
type ASTAdapter interface {
	FindNearestAncestor(node ASTNode, kind NodeKind) (ASTNode, bool)

	// NearestAncestorAmong walks outward from node a single time, stopping
	// at the first ancestor whose Kind appears in kinds and reporting which
	// one matched. Callers that need the nearest of several competing
	// ancestor kinds (§4.5's diamond-inference walk) must use this instead
	// of calling FindNearestAncestor once per kind, which would find the
	// nearest ancestor of each kind independently and lose their relative
	// distance.
	NearestAncestorAmong(node ASTNode, kinds []NodeKind) (ASTNode, NodeKind, bool)

	FilePathOfCompilationUnit(cu CompilationUnit) string
	LocalVariableScope(expr ASTNode) (TokenRange, bool)
	TokenRangeOfNode(node ASTNode) TokenRange
	BindingOfNode(node ASTNode) (TypeBinding, bool)
}

// HierarchyOracle is the consumed §6.2 surface; hierarchy.Oracle is its one
// concrete implementation in this module; an alias here keeps the adapter
// surface self-contained without duplicating the contract.
type HierarchyOracle = hierarchy.Oracle

// LibrarySpecRecord is the spec_for(...) result shape of §6.3.
type LibrarySpecRecord struct {
	Package       string
	DeclaringType string
	MethodName    string
	ReturnType    typeinfo.ClassHash
	ReturnArity   int
}

// LibrarySpecService is the consumed §6.3 surface.
type LibrarySpecService interface {
	PackagesFor(shortClassName string) []string
	SpecFor(pkg, class, method string, arity int) (LibrarySpecRecord, bool)
}
