package names_test

import (
	"testing"

	"github.com/javacg/tgengine/internal/names"
	"github.com/javacg/tgengine/internal/typeinfo"
)

type fakeNamer map[typeinfo.ClassHash][]string

func (f fakeNamer) SupertypeShortNames(hash typeinfo.ClassHash) []string { return f[hash] }

func TestCanonicalizeStripsLibraryAndPackagePrefixes(t *testing.T) {
	hash := typeinfo.LibraryHash("java.util.List")
	set := names.Canonicalize(nil, hash)
	if _, ok := set["list"]; !ok {
		t.Errorf("expected canonicalized set to contain folded short name 'list', got %v", set)
	}
}

func TestCanonicalizeIncludesSupertypeNames(t *testing.T) {
	namer := fakeNamer{"demo.Dog": {"demo.Animal", string(typeinfo.LibraryHash("java.io.Serializable"))}}
	set := names.Canonicalize(namer, "demo.Dog")
	for _, want := range []string{"dog", "animal", "serializable"} {
		if _, ok := set[want]; !ok {
			t.Errorf("expected %q in canonicalized set, got %v", want, set)
		}
	}
}

func TestMatchQualifiedVsSimple(t *testing.T) {
	if !names.Match("java.util.List", "List") {
		t.Error("a qualified name should match its own simple name")
	}
	if names.Match("java.util.List", "ArrayList") {
		t.Error("unrelated names must not match")
	}
}

func TestSetsOverlap(t *testing.T) {
	a := map[string]struct{}{"dog": {}, "animal": {}}
	b := map[string]struct{}{"cat": {}, "animal": {}}
	if !names.SetsOverlap(a, b) {
		t.Error("sets sharing 'animal' should overlap")
	}
	c := map[string]struct{}{"fish": {}}
	if names.SetsOverlap(a, c) {
		t.Error("disjoint sets must not overlap")
	}
}
