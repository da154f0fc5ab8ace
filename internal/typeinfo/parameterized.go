package typeinfo

import "strconv"

// Parameterized represents a generic type application (§3.2.5): raw
// generic class/interface plus its type arguments (or none, for the raw
// form). TypeArgToFieldName maps an argument index to the declared field
// name it substitutes into, populated only for source types computed in
// container (proper) mode.
type Parameterized struct {
	RawClassHash       ClassHash
	Arity              int
	Arguments          []TypeInfo
	FromSource         bool
	FieldMap           *FieldList
	TypeArgToFieldName map[int]string
	IsInner            bool
}

func (p *Parameterized) Kind() Kind          { return KindParameterized }
func (p *Parameterized) Name() string        { return string(p.RawClassHash) }
func (p *Parameterized) TypeErasure() string { return string(p.RawClassHash) }

func (p *Parameterized) Fields() *FieldList {
	if p.FieldMap == nil {
		return emptyFieldList
	}
	return p.FieldMap
}

func (p *Parameterized) NeedsReplacement() bool {
	for _, a := range p.Arguments {
		if a.NeedsReplacement() {
			return true
		}
	}
	return false
}

func (p *Parameterized) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Parameterized:
		// Arguments are ignored; only erasure compatibility matters.
		return p.TypeErasure() == d.TypeErasure() || genericCovers(oracle, d.TypeErasure(), p.TypeErasure())
	case *Class, *Wildcard, *Symbolic:
		return decl.Covers(oracle, p)
	default:
		return false
	}
}

func (p *Parameterized) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	switch inv.Kind() {
	case KindScalar, KindArray:
		return false
	default:
		return genericCovers(oracle, p.TypeErasure(), inv.TypeErasure())
	}
}

func (p *Parameterized) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {
	tp, ok := target.(*Parameterized)
	if !ok {
		return
	}
	if len(p.Arguments) != len(tp.Arguments) {
		return
	}
	if p.RawClassHash != tp.RawClassHash && !canonicalNamesOverlap(p, tp) {
		return
	}
	for i, arg := range p.Arguments {
		arg.ParseAndMapSymbols(state, tp.Arguments[i], path.Enter(p.Key(), i))
	}
}

// canonicalNamesOverlap is the §4.6 Parameterized fallback: when raw
// hashes differ, recurse anyway if the canonicalized short-name sets
// (stripped of package/library prefix, extended with known supertype short
// names) intersect. Wired through a pluggable hook so this leaf package
// does not depend on the hierarchy oracle; hierarchy.Wire installs the
// real implementation via SetCanonicalOverlap.
var canonicalOverlapHook = func(a, b ClassHash) bool { return false }

// SetCanonicalOverlap installs the canonicalization-based name-overlap
// check used by Parameterized.ParseAndMapSymbols (§4.7). Called by
// hierarchy.Wire with a hook backed by the live hierarchy oracle.
func SetCanonicalOverlap(fn func(a, b ClassHash) bool) {
	canonicalOverlapHook = fn
}

func canonicalNamesOverlap(a, b *Parameterized) bool {
	return canonicalOverlapHook(a.RawClassHash, b.RawClassHash)
}

func (p *Parameterized) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	if !p.NeedsReplacement() {
		return false, p
	}
	changedAny := false
	newArgs := make([]TypeInfo, len(p.Arguments))
	copy(newArgs, p.Arguments)
	for i, arg := range p.Arguments {
		changed, newArg := arg.ReplaceSymbol(state, path.Enter(p.Key(), i))
		if changed {
			changedAny = true
			newArgs[i] = newArg
		}
	}
	if !changedAny {
		return false, p
	}
	return true, &Parameterized{
		RawClassHash:       p.RawClassHash,
		Arity:              p.Arity,
		Arguments:          newArgs,
		FromSource:         p.FromSource,
		FieldMap:           p.FieldMap,
		TypeArgToFieldName: p.TypeArgToFieldName,
		IsInner:            p.IsInner,
	}
}

func (p *Parameterized) BoundWildcardOrSymbolic() TypeInfo {
	changedAny := false
	newArgs := make([]TypeInfo, len(p.Arguments))
	for i, a := range p.Arguments {
		b := a.BoundWildcardOrSymbolic()
		newArgs[i] = b
		if b != a {
			changedAny = true
		}
	}
	if !changedAny {
		return p
	}
	return &Parameterized{
		RawClassHash:       p.RawClassHash,
		Arity:              p.Arity,
		Arguments:          newArgs,
		FromSource:         p.FromSource,
		FieldMap:           p.FieldMap,
		TypeArgToFieldName: p.TypeArgToFieldName,
		IsInner:            p.IsInner,
	}
}

func (p *Parameterized) Key() string {
	k := "Parameterized:" + string(p.RawClassHash) + ":" + strconv.Itoa(p.Arity) + ":" + boolKey(p.FromSource) + ":" + boolKey(p.IsInner) + ":"
	for _, a := range p.Arguments {
		k += a.Key() + ","
	}
	k += ":"
	if p.FieldMap != nil {
		k += p.FieldMap.key()
	}
	return k
}

func (p *Parameterized) String() string {
	s := string(p.RawClassHash)
	if len(p.Arguments) == 0 {
		return s
	}
	s += "<"
	for i, a := range p.Arguments {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ">"
}
