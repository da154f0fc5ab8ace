// Package diag formats the one fatal error class the engine can raise
// (spec §7: a descriptor invariant violation) in the teacher's
// CompilerError style — a position header plus the offending message —
// minus the source-line/caret rendering, since the core never holds the
// original source text, only whatever TokenRange an external adapter
// handed it.
package diag

import (
	"fmt"

	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/typeintern"
)

// InvariantViolation reports a broken descriptor invariant: a structural
// guarantee §3.3 promises (e.g. "an Array's Dimension is always >= 1", "a
// Parameterized's Arguments length always equals its Arity") that a caller
// or a misbehaving adapter has violated.
type InvariantViolation struct {
	// Index identifies the offending descriptor, if it was already
	// interned when the violation was detected; -1 if not yet interned.
	Index typeintern.TypeIndex
	// Field names the broken invariant (e.g. "Parameterized.Arguments").
	Field string
	// Range is the adapter-supplied source span associated with the
	// construction that triggered the violation, if any.
	Range adapter.TokenRange
	// HasRange reports whether Range is meaningful.
	HasRange bool
	// Message is a human-readable description of what broke.
	Message string
}

// Error implements the error interface.
func (v *InvariantViolation) Error() string { return v.Format() }

// Format renders the violation in the teacher's position-header style.
func (v *InvariantViolation) Format() string {
	var header string
	if v.HasRange {
		header = fmt.Sprintf("invariant violation at [%d,%d)", v.Range.Start, v.Range.End)
	} else {
		header = "invariant violation"
	}
	if v.Index >= 0 {
		header = fmt.Sprintf("%s (type index %d)", header, v.Index)
	}
	return fmt.Sprintf("%s: %s: %s", header, v.Field, v.Message)
}

// Raise panics with an *InvariantViolation, matching §7's "abort the
// computation immediately and surface to the driver" rule for the fatal
// class — the query surface never recovers this panic itself.
func Raise(field, message string, idx typeintern.TypeIndex, rng *adapter.TokenRange) {
	v := &InvariantViolation{
		Index:   idx,
		Field:   field,
		Message: message,
	}
	if rng != nil {
		v.Range = *rng
		v.HasRange = true
	}
	panic(v)
}

// Warning is a non-fatal diagnostic: one of §7's five error kinds resolved
// inline rather than propagated (e.g. "missing library spec, falling back
// to Object"). The driver may collect these for reporting; the core itself
// never blocks on them.
type Warning struct {
	Kind    string
	Message string
}

// Format renders a warning for display.
func (w Warning) Format() string {
	return fmt.Sprintf("warning[%s]: %s", w.Kind, w.Message)
}

// Sink collects non-fatal warnings raised during one engine call, mirroring
// the teacher's StackTrace accumulation pattern (append-only, oldest
// first) but for diagnostics rather than call frames.
type Sink struct {
	warnings []Warning
}

// Add appends a warning to the sink.
func (s *Sink) Add(kind, message string) {
	s.warnings = append(s.warnings, Warning{Kind: kind, Message: message})
}

// Warnings returns every warning recorded so far, oldest first.
func (s *Sink) Warnings() []Warning {
	return s.warnings
}

// Reset clears the sink for reuse across calls.
func (s *Sink) Reset() {
	s.warnings = s.warnings[:0]
}
