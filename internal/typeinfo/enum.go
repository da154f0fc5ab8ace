package typeinfo

// Enum represents an enum type (§3.2.3). Enums cannot be supertyped: the
// matches/covers relation between two Enum values is exact erasure
// equality, never subtype-aware.
type Enum struct {
	Hash      ClassHash
	FieldMap  *FieldList
	Constants []string
}

func (e *Enum) Kind() Kind          { return KindEnum }
func (e *Enum) Name() string        { return string(e.Hash) }
func (e *Enum) TypeErasure() string { return string(e.Hash) }

func (e *Enum) Fields() *FieldList {
	if e.FieldMap == nil {
		return emptyFieldList
	}
	return e.FieldMap
}

func (e *Enum) NeedsReplacement() bool { return false }

func (e *Enum) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Enum:
		return e.TypeErasure() == d.TypeErasure()
	case *Class:
		// Enum -> Class (library-enum ClassTypeInfo form): A==B OR A ⊑ B.
		return e.TypeErasure() == d.TypeErasure() || genericCovers(oracle, d.TypeErasure(), e.TypeErasure())
	case *Wildcard, *Symbolic:
		return decl.Covers(oracle, e)
	default:
		return false
	}
}

func (e *Enum) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	return inv.TypeErasure() == e.TypeErasure()
}

func (e *Enum) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {}

func (e *Enum) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	return false, e
}

func (e *Enum) BoundWildcardOrSymbolic() TypeInfo { return e }

func (e *Enum) Key() string {
	k := "Enum:" + string(e.Hash) + ":"
	if e.FieldMap != nil {
		k += e.FieldMap.key()
	}
	k += ":"
	for _, c := range e.Constants {
		k += c + ","
	}
	return k
}

func (e *Enum) String() string { return string(e.Hash) }
