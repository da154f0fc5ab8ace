package typeinfo_test

import (
	"testing"

	"github.com/javacg/tgengine/internal/typeinfo"
)

// fakeOracle is the narrowest possible typeinfo.SupertypeOracle for tests
// that don't need a real hierarchy.
type fakeOracle map[typeinfo.ClassHash]typeinfo.ClassHash // inv -> decl it's a subtype of

func (f fakeOracle) IsSupertypeOf(decl, inv typeinfo.ClassHash) bool {
	return f[inv] == decl
}

func TestScalarWidening(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{"byte", "short", true},
		{"byte", "double", true},
		{"short", "int", true},
		{"int", "long", true},
		{"float", "double", true},
		{"double", "float", false},
		{"boolean", "int", false},
		{"char", "int", false}, // char widening disabled by default
	}
	for _, c := range cases {
		from := &typeinfo.Scalar{PrimName: c.from}
		to := &typeinfo.Scalar{PrimName: c.to}
		got := from.Matches(nil, to)
		if got != c.want {
			t.Errorf("Scalar(%s).Matches(Scalar(%s)) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestScalarReflexiveMatch(t *testing.T) {
	s := &typeinfo.Scalar{PrimName: "int"}
	if !s.Matches(nil, s) {
		t.Error("a scalar must match itself")
	}
}

func TestClassObjectUniversality(t *testing.T) {
	object := &typeinfo.Class{Hash: typeinfo.ClassHash(typeinfo.UniversalObjectName)}
	dog := &typeinfo.Class{Hash: "Dog"}
	if !object.Covers(nil, dog) {
		t.Error("Object must cover every Class")
	}
	arr := &typeinfo.Array{Dimension: 1, Element: dog}
	if !arr.Matches(nil, object) {
		t.Error("Object must cover an Array invocation")
	}
}

func TestArrayDimensionStrictness(t *testing.T) {
	dog := &typeinfo.Class{Hash: "Dog"}
	a1 := &typeinfo.Array{Dimension: 1, Element: dog}
	a2 := &typeinfo.Array{Dimension: 2, Element: dog}
	if a1.Covers(nil, a2) {
		t.Error("arrays of different dimension must not cover each other")
	}
}

func TestEnumNeverSupertyped(t *testing.T) {
	oracle := fakeOracle{"Weekday": "Enum"}
	base := &typeinfo.Enum{Hash: "Enum"}
	weekday := &typeinfo.Enum{Hash: "Weekday"}
	if base.Covers(oracle, weekday) {
		t.Error("Enum.Covers must be exact erasure equality even when oracle claims a supertype relation")
	}
}

func TestParameterizedIgnoresArguments(t *testing.T) {
	oracle := fakeOracle{}
	listOfDog := &typeinfo.Parameterized{RawClassHash: "List", Arity: 1, Arguments: []typeinfo.TypeInfo{&typeinfo.Class{Hash: "Dog"}}}
	listOfCat := &typeinfo.Parameterized{RawClassHash: "List", Arity: 1, Arguments: []typeinfo.TypeInfo{&typeinfo.Class{Hash: "Cat"}}}
	if !listOfDog.Matches(oracle, listOfCat) {
		t.Error("Parameterized.Matches must ignore type arguments and compare erasure only")
	}
}

func TestWildcardLowerBoundCoversDirectionIsInverted(t *testing.T) {
	animal := &typeinfo.Class{Hash: "Animal"}
	dog := &typeinfo.Class{Hash: "Dog"}
	oracle := fakeOracle{"Dog": "Animal"}

	lower := &typeinfo.Wildcard{Bound: animal, IsUpper: false}
	// ? super Animal covers Dog only if Dog.Covers(Animal) (inverted).
	if lower.Covers(oracle, dog) {
		t.Error("a lower-bounded wildcard ? super Animal must not cover Dog under a mock oracle with no reverse edge")
	}

	upper := &typeinfo.Wildcard{Bound: animal, IsUpper: true}
	if !upper.Covers(oracle, dog) {
		t.Error("? extends Animal must cover Dog when oracle reports Animal as Dog's supertype")
	}
}

func TestCaptureAndSubstitute(t *testing.T) {
	// Map<K,V> declared, Map<String,Integer> target -> Map<V,List<K>> becomes Map<Integer,List<String>>.
	k := &typeinfo.Symbolic{VarName: "K"}
	v := &typeinfo.Symbolic{VarName: "V"}
	declared := &typeinfo.Parameterized{RawClassHash: "Map", Arity: 2, Arguments: []typeinfo.TypeInfo{k, v}}

	str := &typeinfo.Class{Hash: "String"}
	integer := &typeinfo.Class{Hash: "Integer"}
	target := &typeinfo.Parameterized{RawClassHash: "Map", Arity: 2, Arguments: []typeinfo.TypeInfo{str, integer}}

	state := typeinfo.Capture(declared, target)

	listOfK := &typeinfo.Parameterized{RawClassHash: "List", Arity: 1, Arguments: []typeinfo.TypeInfo{k}}
	resultType := &typeinfo.Parameterized{RawClassHash: "Map", Arity: 2, Arguments: []typeinfo.TypeInfo{v, listOfK}}

	changed, resolved := typeinfo.Substitute(resultType, state)
	if !changed {
		t.Fatal("expected substitution to change the result type")
	}
	resolvedP, ok := resolved.(*typeinfo.Parameterized)
	if !ok {
		t.Fatalf("expected *Parameterized, got %T", resolved)
	}
	if resolvedP.Arguments[0].(*typeinfo.Class).Hash != "Integer" {
		t.Errorf("Map<V,...> should resolve V to Integer, got %v", resolvedP.Arguments[0])
	}
	inner, ok := resolvedP.Arguments[1].(*typeinfo.Parameterized)
	if !ok || inner.Arguments[0].(*typeinfo.Class).Hash != "String" {
		t.Errorf("List<K> should resolve K to String, got %v", resolvedP.Arguments[1])
	}
}

func TestNeedsReplacementInvariance(t *testing.T) {
	sym := &typeinfo.Symbolic{VarName: "T"}
	if !sym.NeedsReplacement() {
		t.Error("a Symbolic always needs replacement")
	}
	cl := &typeinfo.Class{Hash: "Dog"}
	if cl.NeedsReplacement() {
		t.Error("a concrete Class never needs replacement")
	}
	arrOfSym := &typeinfo.Array{Dimension: 1, Element: sym}
	if !arrOfSym.NeedsReplacement() {
		t.Error("an array of a symbolic element needs replacement")
	}
}

func TestKeyDeterminesIdentity(t *testing.T) {
	a := &typeinfo.Class{Hash: "Dog"}
	b := &typeinfo.Class{Hash: "Dog"}
	if a.Key() != b.Key() {
		t.Error("two structurally-equal descriptors must produce the same Key()")
	}
	c := &typeinfo.Class{Hash: "Cat"}
	if a.Key() == c.Key() {
		t.Error("structurally different descriptors must produce different keys")
	}
}
