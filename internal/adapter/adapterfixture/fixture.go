// Package adapterfixture is a small, in-memory stand-in for a real AST
// front end (spec §1 explicitly keeps AST construction and parsing out of
// scope). It implements adapter.ASTAdapter, adapter.TypeBinding and
// adapter.LibrarySpecService directly from struct literals, so tests across
// the module can exercise internal/calculator and internal/engine without
// a lexer or parser.
package adapterfixture

import (
	"github.com/javacg/tgengine/internal/adapter"
)

// Node is a fixture AST node: a parent pointer plus whatever a test wants
// attached to it (a kind tag, a binding, a declared local-variable scope).
type Node struct {
	ID      string
	Kind    adapter.NodeKind
	Parent  *Node
	Binding adapter.TypeBinding
	Scope   *adapter.TokenRange
	Range   adapter.TokenRange
}

// Binding is a struct-literal adapter.TypeBinding. Every field defaults to
// its zero value ("not primitive", "not an array", ...); tests set only the
// fields relevant to the case under test.
type Binding struct {
	Primitive      bool
	PrimitiveN     string
	Array          bool
	Element        *Binding
	Dims           int
	Parameterized  bool
	Generic        bool
	Raw            bool
	TypeArgs       []*Binding
	TypeParams     []*Binding
	Wildcard       bool
	WildcardBound  *Binding
	Upper          bool
	TypeVariable   bool
	Bounds         []*Binding
	Capture        bool
	ErasureBinding *Binding
	Enum           bool
	Interface      bool
	Nested         bool
	FromSource     bool
	Recovered      bool
	ShortName      string
	Qualified      string
	IfaceList      []*Binding
	Super          *Binding
	Declaring      *Binding
	Fields         []adapter.FieldBinding
	Element_       any
}

func toSlice(bs []*Binding) []adapter.TypeBinding {
	out := make([]adapter.TypeBinding, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}

func (b *Binding) IsPrimitive() bool                      { return b.Primitive }
func (b *Binding) PrimitiveName() string                  { return b.PrimitiveN }
func (b *Binding) IsArray() bool                          { return b.Array }
func (b *Binding) ElementType() adapter.TypeBinding        { return wrapOrNil(b.Element) }
func (b *Binding) Dimensions() int                        { return b.Dims }
func (b *Binding) IsParameterizedType() bool              { return b.Parameterized }
func (b *Binding) IsGenericType() bool                    { return b.Generic }
func (b *Binding) IsRawType() bool                        { return b.Raw }
func (b *Binding) TypeArguments() []adapter.TypeBinding    { return toSlice(b.TypeArgs) }
func (b *Binding) TypeParameters() []adapter.TypeBinding   { return toSlice(b.TypeParams) }
func (b *Binding) IsWildcardType() bool                    { return b.Wildcard }
func (b *Binding) Bound() adapter.TypeBinding              { return wrapOrNil(b.WildcardBound) }
func (b *Binding) IsUpperBound() bool                      { return b.Upper }
func (b *Binding) IsTypeVariable() bool                    { return b.TypeVariable }
func (b *Binding) TypeBounds() []adapter.TypeBinding       { return toSlice(b.Bounds) }
func (b *Binding) IsCapture() bool                         { return b.Capture }
func (b *Binding) Erasure() adapter.TypeBinding             { return wrapOrNil(b.ErasureBinding) }
func (b *Binding) IsEnum() bool                            { return b.Enum }
func (b *Binding) IsInterface() bool                       { return b.Interface }
func (b *Binding) IsNested() bool                          { return b.Nested }
func (b *Binding) IsFromSource() bool                      { return b.FromSource }
func (b *Binding) IsRecovered() bool                       { return b.Recovered }
func (b *Binding) Name() string                            { return b.ShortName }
func (b *Binding) QualifiedName() string                   { return b.Qualified }
func (b *Binding) Interfaces() []adapter.TypeBinding        { return toSlice(b.IfaceList) }
func (b *Binding) Superclass() adapter.TypeBinding          { return wrapOrNil(b.Super) }
func (b *Binding) DeclaringClass() adapter.TypeBinding      { return wrapOrNil(b.Declaring) }
func (b *Binding) DeclaredFields() []adapter.FieldBinding   { return b.Fields }
func (b *Binding) JavaElement() any                        { return b.Element_ }

// wrapOrNil returns a nil adapter.TypeBinding interface (not a non-nil
// interface wrapping a nil *Binding) when b is nil, so callers can safely
// write `if x.Superclass() == nil`.
func wrapOrNil(b *Binding) adapter.TypeBinding {
	if b == nil {
		return nil
	}
	return b
}

// Adapter is the fixture's ASTAdapter implementation.
type Adapter struct {
	Nodes map[string]*Node
	Files map[string]string // compilation-unit id -> file path
}

// New returns an empty fixture adapter.
func New() *Adapter {
	return &Adapter{Nodes: make(map[string]*Node), Files: make(map[string]string)}
}

// AddNode registers a node under its ID. Its parent chain is whatever
// n.Parent already links to; AddNode does not build or check it.
func (a *Adapter) AddNode(n *Node) *Node {
	a.Nodes[n.ID] = n
	return n
}

func (a *Adapter) FindNearestAncestor(node adapter.ASTNode, kind adapter.NodeKind) (adapter.ASTNode, bool) {
	n, ok := node.(*Node)
	if !ok {
		return nil, false
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Kind == kind {
			return cur, true
		}
	}
	return nil, false
}

func (a *Adapter) NearestAncestorAmong(node adapter.ASTNode, kinds []adapter.NodeKind) (adapter.ASTNode, adapter.NodeKind, bool) {
	n, ok := node.(*Node)
	if !ok {
		return nil, "", false
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		for _, k := range kinds {
			if cur.Kind == k {
				return cur, cur.Kind, true
			}
		}
	}
	return nil, "", false
}

func (a *Adapter) FilePathOfCompilationUnit(cu adapter.CompilationUnit) string {
	id, _ := cu.(string)
	return a.Files[id]
}

func (a *Adapter) LocalVariableScope(expr adapter.ASTNode) (adapter.TokenRange, bool) {
	n, ok := expr.(*Node)
	if !ok || n.Scope == nil {
		return adapter.TokenRange{}, false
	}
	return *n.Scope, true
}

func (a *Adapter) TokenRangeOfNode(node adapter.ASTNode) adapter.TokenRange {
	n, ok := node.(*Node)
	if !ok {
		return adapter.TokenRange{}
	}
	return n.Range
}

func (a *Adapter) BindingOfNode(node adapter.ASTNode) (adapter.TypeBinding, bool) {
	n, ok := node.(*Node)
	if !ok || n.Binding == nil {
		return nil, false
	}
	return n.Binding, true
}

// LibrarySpec is the fixture's in-memory LibrarySpecService.
type LibrarySpec struct {
	byShortName map[string][]string
	records     map[string]adapter.LibrarySpecRecord
}

// NewLibrarySpec returns an empty fixture library-spec service.
func NewLibrarySpec() *LibrarySpec {
	return &LibrarySpec{
		byShortName: make(map[string][]string),
		records:     make(map[string]adapter.LibrarySpecRecord),
	}
}

func specKey(pkg, class, method string, arity int) string {
	return pkg + "#" + class + "#" + method + "#" + itoa(arity)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Register adds a package candidate and a method spec record.
func (l *LibrarySpec) Register(shortName string, pkg string, rec adapter.LibrarySpecRecord) {
	l.byShortName[shortName] = appendUniqueStr(l.byShortName[shortName], pkg)
	l.records[specKey(rec.Package, rec.DeclaringType, rec.MethodName, rec.ReturnArity)] = rec
}

func appendUniqueStr(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func (l *LibrarySpec) PackagesFor(shortClassName string) []string {
	return l.byShortName[shortClassName]
}

func (l *LibrarySpec) SpecFor(pkg, class, method string, arity int) (adapter.LibrarySpecRecord, bool) {
	rec, ok := l.records[specKey(pkg, class, method, arity)]
	return rec, ok
}
