// Package typeinfo implements the algebraic model of language types used
// throughout the analyzer: the seven TypeInfo variants (Scalar, Class, Enum,
// Array, Parameterized, Symbolic, Wildcard), their uniform contract, and the
// matches/covers compatibility relation between them.
//
// Descriptors are immutable value types. Nothing in this package mutates a
// descriptor after construction; every "mutating" operation (ReplaceSymbol,
// BoundWildcardOrSymbolic) returns a new value for the caller to intern.
package typeinfo

import "fmt"

// Kind tags the seven TypeInfo variants.
type Kind int

const (
	KindScalar Kind = iota
	KindClass
	KindEnum
	KindArray
	KindParameterized
	KindSymbolic
	KindWildcard
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindClass:
		return "Class"
	case KindEnum:
		return "Enum"
	case KindArray:
		return "Array"
	case KindParameterized:
		return "Parameterized"
	case KindSymbolic:
		return "Symbolic"
	case KindWildcard:
		return "Wildcard"
	default:
		return "Unknown"
	}
}

// ClassHash is a deterministic fingerprint of a class/enum/interface
// declaration (source), or one of the two special spellings defined by
// spec §3.1: a library hash "LIB::<fqname>", or the wildcard hash "?". A
// symbolic hash is the bare type-variable name.
type ClassHash string

// LibPrefix is the fixed delimiter used to spell library class hashes,
// per §6.5: "LIB<DELIM><fully-qualified-name>", DELIM == "::".
const LibPrefix = "LIB::"

// FieldSeparator separates a declaring short name from a field name in a
// qualified field name: "<declaring-short-name>:<field-name>".
const FieldSeparator = ":"

// UniversalObjectName is the erasure used for the top of the class
// hierarchy. Class(UniversalObjectName) covers every TypeInfo (§4.4).
const UniversalObjectName = "Object"

// EnumBaseName is the erasure of the universal enum supertype. A Class
// descriptor with this erasure covers every Enum, including library enums
// represented as Class (§4.4, §9).
const EnumBaseName = "Enum"

// IsLibraryHash reports whether hash was built from a library type name.
func IsLibraryHash(hash ClassHash) bool {
	return len(hash) >= len(LibPrefix) && string(hash[:len(LibPrefix)]) == LibPrefix
}

// LibraryHash builds the ClassHash for a fully-qualified library type name.
func LibraryHash(fqName string) ClassHash {
	return ClassHash(LibPrefix + fqName)
}

// LibraryName strips the LIB:: prefix, or returns hash unchanged if it does
// not carry one.
func LibraryName(hash ClassHash) string {
	if IsLibraryHash(hash) {
		return string(hash[len(LibPrefix):])
	}
	return string(hash)
}

// WildcardHash is the literal ClassHash spelling for a wildcard (never
// constructed directly; wildcards carry their own variant instead).
const WildcardHash ClassHash = "?"

// QualifiedFieldName builds "<declaringShortName>:<fieldName>" per §6.5.
func QualifiedFieldName(declaringShortName, fieldName string) string {
	return declaringShortName + FieldSeparator + fieldName
}

// DummyFieldName builds the stable pseudo-field label synthesized for the
// i-th type argument of a library parameterized type (§4.5, §9), i starting
// at 1.
func DummyFieldName(rawShortName string, i int) string {
	return fmt.Sprintf("%s%sDUMMY%d", rawShortName, FieldSeparator, i)
}

// SupertypeOracle is the narrow slice of the hierarchy oracle (spec §6.2)
// that the matches/covers relation needs: "is declHash a transitive
// supertype of invHash, by erasure". Defined here (rather than imported
// from package hierarchy) so typeinfo stays a leaf package; package
// hierarchy's concrete Oracle satisfies this interface structurally.
type SupertypeOracle interface {
	IsSupertypeOf(declHash, invHash ClassHash) bool
}

// Field describes one entry of a Class/Enum/Parameterized's ordered field
// mapping (§3.2.2-3.2.5): qualified name, optional source range handle
// (opaque to this package — callers supply whatever token-range type they
// use), declaring class's bit index, and the field's own type.
type Field struct {
	QualifiedName      string
	SourceRange        any // opaque TokenRange from the AST adapter, nil if absent
	DeclaringBitIndex  int
	Type               TypeInfo
}

// FieldList is the ordered, immutable field mapping carried by Class, Enum,
// and Parameterized descriptors. Order matters for determinism (pretty
// printing, interning keys) even though lookup is by name.
type FieldList struct {
	entries []Field
	index   map[string]int
}

// NewFieldList builds an immutable FieldList from an ordered slice of
// fields. The caller must not reuse or mutate fields afterwards.
func NewFieldList(fields []Field) *FieldList {
	if len(fields) == 0 {
		return emptyFieldList
	}
	fl := &FieldList{
		entries: fields,
		index:   make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		fl.index[f.QualifiedName] = i
	}
	return fl
}

var emptyFieldList = &FieldList{}

// Len reports the number of fields.
func (fl *FieldList) Len() int {
	if fl == nil {
		return 0
	}
	return len(fl.entries)
}

// Entries returns the ordered fields. The returned slice must not be
// mutated by the caller.
func (fl *FieldList) Entries() []Field {
	if fl == nil {
		return nil
	}
	return fl.entries
}

// Lookup finds a field by its qualified name.
func (fl *FieldList) Lookup(qualifiedName string) (Field, bool) {
	if fl == nil {
		return Field{}, false
	}
	i, ok := fl.index[qualifiedName]
	if !ok {
		return Field{}, false
	}
	return fl.entries[i], true
}

// key returns a canonical string encoding used for structural-equality
// hash-consing (package typeintern keys the intern table off TypeInfo.Key()).
func (fl *FieldList) key() string {
	if fl.Len() == 0 {
		return ""
	}
	s := ""
	for _, f := range fl.entries {
		s += f.QualifiedName + "=" + f.Type.Key() + ";"
	}
	return s
}

// TypeInfo is the uniform contract every variant implements (spec §4.2).
// All methods are pure functions of the receiver (plus, where noted, a
// SupertypeOracle) — no method mutates shared state.
type TypeInfo interface {
	// Kind identifies which of the seven variants this is.
	Kind() Kind

	// Name is the short identifier: ClassHash for Class/Enum/Parameterized,
	// the primitive name for Scalar, the variable name for Symbolic, "?"
	// for Wildcard, and the element's name for Array.
	Name() string

	// TypeErasure is defined per §4.3.
	TypeErasure() string

	// Fields is the declared field mapping, empty for variants that
	// cannot carry fields.
	Fields() *FieldList

	// NeedsReplacement is true iff this descriptor transitively contains
	// any Symbolic or Wildcard.
	NeedsReplacement() bool

	// Matches is invocation (self) -> declaration (decl) compatibility.
	Matches(oracle SupertypeOracle, decl TypeInfo) bool

	// Covers is declaration (self) -> invocation (inv) compatibility —
	// the inverse direction of Matches.
	Covers(oracle SupertypeOracle, inv TypeInfo) bool

	// ParseAndMapSymbols walks self (the declared shape) against target
	// (the concrete shape), populating state's capture maps.
	ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb)

	// ReplaceSymbol produces a concrete version of self using state's
	// capture maps, reporting whether anything changed.
	ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo)

	// BoundWildcardOrSymbolic resolves one layer of Symbolic/Wildcard to
	// its upper bound, recursing through containers (§4.6).
	BoundWildcardOrSymbolic() TypeInfo

	// Key is the canonical structural-equality string used by the intern
	// table (package typeintern) for hash-consing. Two descriptors with
	// equal Key() are the same interned value.
	Key() string

	// String is a human-readable rendering for diagnostics, snapshots and
	// the CLI, not used for equality.
	String() string
}

// genericCovers implements the erasure-based fallback that most variant
// pairs reduce to: declHash covers invHash iff the erasures are equal or
// declHash is a transitive supertype of invHash.
func genericCovers(oracle SupertypeOracle, declHash, invHash string) bool {
	if declHash == invHash {
		return true
	}
	if oracle == nil {
		return false
	}
	return oracle.IsSupertypeOf(ClassHash(declHash), ClassHash(invHash))
}

func isUniversalObject(erasure string) bool {
	return erasure == UniversalObjectName
}

func isEnumBase(erasure string) bool {
	return erasure == EnumBaseName
}
