package typeinfo

import "strconv"

// BreadcrumbEntry is one (container-descriptor, positional-code) pair on
// the traversal path used by ParseAndMapSymbols/ReplaceSymbol (§4.6). The
// positional code is the base-10 path of argument indices descended since
// entering containerKey, truncated whenever a new container is entered.
type BreadcrumbEntry struct {
	ContainerKey string
	Position     string
}

func (e BreadcrumbEntry) signature() string {
	return e.ContainerKey + "#" + e.Position
}

// Breadcrumb is the traversal path from the root of a ParseAndMapSymbols or
// ReplaceSymbol call down to the current descriptor. It is threaded
// immutably: "extending" it returns a new slice, never mutates the caller's.
type Breadcrumb []BreadcrumbEntry

// Enter returns a new breadcrumb with (container, index) appended, starting
// a fresh position path for the new container.
func (b Breadcrumb) Enter(containerKey string, index int) Breadcrumb {
	next := make(Breadcrumb, len(b), len(b)+1)
	copy(next, b)
	return append(next, BreadcrumbEntry{ContainerKey: containerKey, Position: strconv.Itoa(index)})
}

// Last returns the innermost entry, or the zero entry if empty.
func (b Breadcrumb) Last() BreadcrumbEntry {
	if len(b) == 0 {
		return BreadcrumbEntry{}
	}
	return b[len(b)-1]
}

// CaptureState accumulates the result of ParseAndMapSymbols and drives
// ReplaceSymbol. A single CaptureState is built by one top-level capture
// call and consumed by one top-level substitute call; it is not safe for
// concurrent use (it belongs to a single capture/substitute operation, not
// to the process-wide intern table).
type CaptureState struct {
	// Syms maps a captured Symbolic's name to the concrete type bound at
	// the first breadcrumb that reached it.
	Syms map[string]TypeInfo

	// Wilds maps a breadcrumb-entry signature to the concrete type bound
	// for the wildcard encountered at that container position. Wildcards
	// are identified by container path, not by descriptor identity,
	// because distinct wildcards can occupy different positions of the
	// same containing descriptor.
	Wilds map[string]TypeInfo

	seen     map[string]bool
	replaced map[string]bool
}

// NewCaptureState returns an empty state ready for ParseAndMapSymbols.
func NewCaptureState() *CaptureState {
	return &CaptureState{
		Syms:     make(map[string]TypeInfo),
		Wilds:    make(map[string]TypeInfo),
		seen:     make(map[string]bool),
		replaced: make(map[string]bool),
	}
}

func (s *CaptureState) markSeen(path Breadcrumb) {
	for _, e := range path {
		s.seen[e.signature()] = true
	}
}

func (s *CaptureState) wasSeen(path Breadcrumb) bool {
	return s.seen[path.Last().signature()]
}

func (s *CaptureState) markReplaced(path Breadcrumb) {
	for _, e := range path {
		s.replaced[e.signature()] = true
	}
}

func (s *CaptureState) wasReplaced(path Breadcrumb) bool {
	return s.replaced[path.Last().signature()]
}

func (s *CaptureState) bindWildcard(path Breadcrumb, target TypeInfo) {
	for _, e := range path {
		sig := e.signature()
		if _, exists := s.Wilds[sig]; !exists {
			s.Wilds[sig] = target
		}
	}
}

func (s *CaptureState) lookupWildcard(path Breadcrumb) (TypeInfo, bool) {
	for i := len(path) - 1; i >= 0; i-- {
		if t, ok := s.Wilds[path[i].signature()]; ok {
			return t, true
		}
	}
	return nil, false
}
