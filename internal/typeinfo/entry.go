package typeinfo

// Capture runs ParseAndMapSymbols of decl against target from a fresh
// breadcrumb, returning the populated CaptureState.
func Capture(decl, target TypeInfo) *CaptureState {
	state := NewCaptureState()
	decl.ParseAndMapSymbols(state, target, nil)
	return state
}

// Substitute runs ReplaceSymbol of t against state from a fresh breadcrumb.
func Substitute(t TypeInfo, state *CaptureState) (bool, TypeInfo) {
	return t.ReplaceSymbol(state, nil)
}
