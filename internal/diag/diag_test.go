package diag_test

import (
	"strings"
	"testing"

	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/diag"
	"github.com/javacg/tgengine/internal/typeintern"
)

func TestInvariantViolationFormat(t *testing.T) {
	v := &diag.InvariantViolation{
		Index:    typeintern.TypeIndex(3),
		Field:    "Array.Dimension",
		Message:  "must be >= 1",
		Range:    adapter.TokenRange{Start: 5, End: 9},
		HasRange: true,
	}
	msg := v.Error()
	for _, want := range []string{"Array.Dimension", "must be >= 1", "[5,9)", "type index 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected formatted message to contain %q, got %q", want, msg)
		}
	}
}

func TestRaisePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Raise to panic")
		}
		if _, ok := r.(*diag.InvariantViolation); !ok {
			t.Errorf("expected panic value to be *InvariantViolation, got %T", r)
		}
	}()
	diag.Raise("Parameterized.Arguments", "arity mismatch", -1, nil)
}

func TestSinkAccumulatesWarnings(t *testing.T) {
	var sink diag.Sink
	sink.Add("missing-spec", "no library spec for Foo.bar")
	sink.Add("missing-hierarchy", "oracle has no entry for Baz")
	if len(sink.Warnings()) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(sink.Warnings()))
	}
	sink.Reset()
	if len(sink.Warnings()) != 0 {
		t.Error("Reset must clear accumulated warnings")
	}
}
