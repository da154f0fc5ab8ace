package typeinfo_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/javacg/tgengine/internal/typeinfo"
	"github.com/kr/pretty"
)

// TestDescriptorKeySnapshots pins the canonical Key() form of each variant
// so a change to the key grammar is caught as a diff instead of silently
// reshuffling intern-table identity.
func TestDescriptorKeySnapshots(t *testing.T) {
	descriptors := map[string]typeinfo.TypeInfo{
		"scalar":        &typeinfo.Scalar{PrimName: "int"},
		"class":         &typeinfo.Class{Hash: "demo.Dog"},
		"array":         &typeinfo.Array{Dimension: 2, Element: &typeinfo.Scalar{PrimName: "int"}},
		"enum":          &typeinfo.Enum{Hash: "demo.Suit"},
		"wildcard":      &typeinfo.Wildcard{Bound: &typeinfo.Class{Hash: "demo.Animal"}, IsUpper: true},
		"parameterized": &typeinfo.Parameterized{
			RawClassHash: "java.util.Map",
			Arity:        2,
			Arguments:    []typeinfo.TypeInfo{&typeinfo.Class{Hash: "demo.K"}, &typeinfo.Class{Hash: "demo.V"}},
		},
	}

	for name, d := range descriptors {
		snaps.MatchSnapshot(t, name+"_key", d.Key())
	}
}

// TestParameterizedStructuralDiff exercises pretty-printed struct diffing
// for two Parameterized descriptors that must be distinguishable by Key()
// even though their String() forms look similar.
func TestParameterizedStructuralDiff(t *testing.T) {
	a := &typeinfo.Parameterized{RawClassHash: "java.util.List", Arity: 1, Arguments: []typeinfo.TypeInfo{&typeinfo.Class{Hash: "demo.Dog"}}}
	b := &typeinfo.Parameterized{RawClassHash: "java.util.List", Arity: 1, Arguments: []typeinfo.TypeInfo{&typeinfo.Class{Hash: "demo.Cat"}}}

	diff := pretty.Diff(a, b)
	if len(diff) == 0 {
		t.Fatal("expected pretty.Diff to report at least one differing field")
	}
	if a.Key() == b.Key() {
		t.Fatalf("expected distinct keys for distinct type arguments, diff was: %v", diff)
	}
}
