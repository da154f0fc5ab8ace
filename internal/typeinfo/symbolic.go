package typeinfo

// Symbolic is a type variable (§3.2.6). Bounds are upper bounds only; the
// first bound determines erasure (intersection bounds beyond the first are
// ignored for erasure/bounding, per the documented "first upper bound only"
// simplification in §9), but Covers conjoins ALL bounds.
type Symbolic struct {
	VarName string
	Bounds  []TypeInfo // nil or non-empty, never an empty non-nil slice
}

func (s *Symbolic) Kind() Kind   { return KindSymbolic }
func (s *Symbolic) Name() string { return s.VarName }

func (s *Symbolic) TypeErasure() string {
	if len(s.Bounds) == 0 {
		return UniversalObjectName
	}
	return s.Bounds[0].TypeErasure()
}

func (s *Symbolic) Fields() *FieldList   { return emptyFieldList }
func (s *Symbolic) NeedsReplacement() bool { return true }

func (s *Symbolic) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Symbolic:
		return s.TypeErasure() == d.TypeErasure() || genericCovers(oracle, d.TypeErasure(), s.TypeErasure())
	case *Class, *Wildcard, *Parameterized:
		return decl.Covers(oracle, s)
	default:
		return false
	}
}

// Covers implements the asymmetric rule of §4.4: no bounds, or a single
// bound erasing to Object, covers everything; otherwise every bound must
// cover the invocation (logical AND).
func (s *Symbolic) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	if len(s.Bounds) == 0 {
		return true
	}
	if len(s.Bounds) == 1 && isUniversalObject(s.Bounds[0].TypeErasure()) {
		return true
	}
	for _, b := range s.Bounds {
		if !b.Covers(oracle, inv) {
			return false
		}
	}
	return true
}

func (s *Symbolic) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {
	if state.wasSeen(path) {
		return
	}
	if _, already := state.Syms[s.VarName]; !already {
		state.Syms[s.VarName] = target
	}
	state.markSeen(path)
}

func (s *Symbolic) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	if state.wasReplaced(path) {
		return false, s
	}
	state.markReplaced(path)

	captured, ok := state.Syms[s.VarName]
	if !ok {
		return false, s
	}
	resolved := captured.BoundWildcardOrSymbolic()
	if richer := resolveRicherHook(resolved); richer != nil {
		resolved = richer
	}
	if arr, ok := captured.(*Array); ok {
		resolved = &Array{Dimension: arr.Dimension, Element: resolved, IsVarArgs: arr.IsVarArgs}
	}
	return true, resolved
}

// resolveRicherHook implements the "resolve through proper_type_from_class_hash"
// step of §4.6: when the captured value is a soft Class/Enum/Parameterized
// handle, try to recover a richer (proper, field-populated) representation
// for the same class hash. Installed by hierarchy.Wire; a no-op returning
// nil until then, so this leaf package has no oracle dependency.
var resolveRicherHook = func(captured TypeInfo) TypeInfo { return nil }

// SetRicherResolver installs the richer-type lookup used by
// Symbolic/Wildcard.ReplaceSymbol.
func SetRicherResolver(fn func(captured TypeInfo) TypeInfo) {
	resolveRicherHook = fn
}

func (s *Symbolic) BoundWildcardOrSymbolic() TypeInfo {
	if len(s.Bounds) == 0 {
		return s
	}
	return s.Bounds[0]
}

func (s *Symbolic) Key() string {
	k := "Symbolic:" + s.VarName + ":"
	for _, b := range s.Bounds {
		k += b.Key() + ","
	}
	return k
}

func (s *Symbolic) String() string { return s.VarName }
