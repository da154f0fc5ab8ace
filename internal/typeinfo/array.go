package typeinfo

import "strconv"

// Array represents a language-level array type (§3.2.4). Multi-dimensional
// arrays use a single Array with Dimension >= 1 and a non-array Element —
// a representation convention, not a modeling restriction.
type Array struct {
	Dimension int
	Element   TypeInfo
	IsVarArgs bool
}

func (a *Array) Kind() Kind   { return KindArray }
func (a *Array) Name() string { return a.Element.Name() }

func (a *Array) TypeErasure() string { return a.Element.TypeErasure() }

func (a *Array) Fields() *FieldList { return emptyFieldList }

func (a *Array) NeedsReplacement() bool { return a.Element.NeedsReplacement() }

func (a *Array) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Array:
		if a.Dimension != d.Dimension {
			return false
		}
		return genericCovers(oracle, d.Element.TypeErasure(), a.Element.TypeErasure())
	case *Class:
		return isUniversalObject(d.TypeErasure())
	case *Wildcard, *Symbolic:
		return decl.Covers(oracle, a)
	default:
		return false
	}
}

func (a *Array) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	other, ok := inv.(*Array)
	if !ok {
		return false
	}
	if a.Dimension != other.Dimension {
		return false
	}
	return genericCovers(oracle, a.Element.TypeErasure(), other.Element.TypeErasure())
}

func (a *Array) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {
	ta, ok := target.(*Array)
	if !ok {
		return
	}
	a.Element.ParseAndMapSymbols(state, ta.Element, path)
}

func (a *Array) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	if !a.NeedsReplacement() {
		return false, a
	}
	changed, newElem := a.Element.ReplaceSymbol(state, path)
	if !changed {
		return false, a
	}
	return true, &Array{Dimension: a.Dimension, Element: newElem, IsVarArgs: a.IsVarArgs}
}

func (a *Array) BoundWildcardOrSymbolic() TypeInfo {
	bound := a.Element.BoundWildcardOrSymbolic()
	if bound == a.Element {
		return a
	}
	return &Array{Dimension: a.Dimension, Element: bound, IsVarArgs: a.IsVarArgs}
}

func (a *Array) Key() string {
	return "Array:" + strconv.Itoa(a.Dimension) + ":" + boolKey(a.IsVarArgs) + ":" + a.Element.Key()
}

func (a *Array) String() string {
	s := a.Element.String()
	for i := 0; i < a.Dimension; i++ {
		s += "[]"
	}
	return s
}
