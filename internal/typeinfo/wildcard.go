package typeinfo

// Wildcard is an anonymous generic slot (§3.2.7). An absent Bound means
// unbounded, equivalent to "? extends Object". Wildcards never occur
// outside a Parameterized's Arguments, or as the bound of another
// Wildcard/Symbolic.
type Wildcard struct {
	Bound   TypeInfo // nil if unbounded
	IsUpper bool
}

func (w *Wildcard) Kind() Kind   { return KindWildcard }
func (w *Wildcard) Name() string { return "?" }

func (w *Wildcard) TypeErasure() string {
	if w.Bound == nil || !w.IsUpper {
		return UniversalObjectName
	}
	return w.Bound.TypeErasure()
}

func (w *Wildcard) Fields() *FieldList { return emptyFieldList }

func (w *Wildcard) NeedsReplacement() bool { return true }

func (w *Wildcard) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Wildcard:
		return w.TypeErasure() == d.TypeErasure() || genericCovers(oracle, d.TypeErasure(), w.TypeErasure())
	case *Class, *Symbolic, *Parameterized:
		return decl.Covers(oracle, w)
	default:
		return false
	}
}

// Covers implements §4.4's asymmetric rule: unbounded covers everything;
// upper-bounded delegates to the bound; lower-bounded inverts direction
// (the invocation must cover the bound, not the other way round).
func (w *Wildcard) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	if w.Bound == nil {
		return true
	}
	if w.IsUpper {
		return w.Bound.Covers(oracle, inv)
	}
	return inv.Covers(oracle, w.Bound)
}

func (w *Wildcard) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {
	if state.wasSeen(path) {
		return
	}
	state.bindWildcard(path, target)
	state.markSeen(path)
}

func (w *Wildcard) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	if state.wasReplaced(path) {
		return false, w
	}
	state.markReplaced(path)

	if captured, ok := state.lookupWildcard(path); ok {
		resolved := captured.BoundWildcardOrSymbolic()
		if richer := resolveRicherHook(resolved); richer != nil {
			resolved = richer
		}
		if arr, ok := captured.(*Array); ok {
			resolved = &Array{Dimension: arr.Dimension, Element: resolved, IsVarArgs: arr.IsVarArgs}
		}
		return true, resolved
	}

	if w.Bound != nil {
		if sym, ok := asSymbolicWithCapture(w.Bound, state); ok {
			if w.IsUpper {
				return true, sym
			}
			return true, &Class{Hash: ClassHash(UniversalObjectName)}
		}
		if w.IsUpper {
			switch w.Bound.Kind() {
			case KindClass:
				return true, w.Bound
			case KindParameterized:
				if !w.Bound.NeedsReplacement() {
					return true, w.Bound
				}
			}
		}
	}
	return false, w
}

// asSymbolicWithCapture reports whether bound is a Symbolic that has a
// captured binding in state, returning that binding.
func asSymbolicWithCapture(bound TypeInfo, state *CaptureState) (TypeInfo, bool) {
	sym, ok := bound.(*Symbolic)
	if !ok {
		return nil, false
	}
	t, ok := state.Syms[sym.VarName]
	return t, ok
}

func (w *Wildcard) BoundWildcardOrSymbolic() TypeInfo {
	if w.Bound == nil {
		return w
	}
	return w.Bound
}

func (w *Wildcard) Key() string {
	k := "Wildcard:" + boolKey(w.IsUpper) + ":"
	if w.Bound != nil {
		k += w.Bound.Key()
	}
	return k
}

func (w *Wildcard) String() string {
	if w.Bound == nil {
		return "?"
	}
	if w.IsUpper {
		return "? extends " + w.Bound.String()
	}
	return "? super " + w.Bound.String()
}
