package capture_test

import (
	"testing"

	"github.com/javacg/tgengine/internal/capture"
	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
)

// Iterable<T> { T first(); }  AbstractCollection<E> implements Iterable<E> {}
// ArrayList<X> extends AbstractCollection<X> {}
//
// actual container: ArrayList<String>. The symbolic-bearing type (a method's
// declared return type) is T, declared against Iterable<T>. With no declared
// container there is no direct capture; climbing to AbstractCollection<E>
// captures only E, which leaves T unresolved, so the climb must go on to
// Iterable<T> and succeed there.
func TestReplacementForSymbolicClimbsHierarchy(t *testing.T) {
	oracle := hierarchy.NewInMemory()

	tVar := &typeinfo.Symbolic{VarName: "T"}
	iterableOfT := &typeinfo.Parameterized{RawClassHash: "Iterable", Arity: 1, Arguments: []typeinfo.TypeInfo{tVar}}
	oracle.Register(&hierarchy.Entry{Hash: "Iterable", ShortName: "Iterable", Proper: iterableOfT})

	eVar := &typeinfo.Symbolic{VarName: "E"}
	abstractCollOfE := &typeinfo.Parameterized{RawClassHash: "AbstractCollection", Arity: 1, Arguments: []typeinfo.TypeInfo{eVar}}
	oracle.Register(&hierarchy.Entry{
		Hash: "AbstractCollection", ShortName: "AbstractCollection",
		Interfaces: []typeinfo.ClassHash{"Iterable"},
		Proper:     abstractCollOfE,
	})

	oracle.Register(&hierarchy.Entry{
		Hash: "ArrayList", ShortName: "ArrayList",
		Superclass: "AbstractCollection",
	})
	hierarchy.Wire(oracle)

	str := &typeinfo.Class{Hash: "String"}
	actualArrayListOfString := &typeinfo.Parameterized{RawClassHash: "ArrayList", Arity: 1, Arguments: []typeinfo.TypeInfo{str}}

	// No declared container supplied: the helper must climb ArrayList's
	// hierarchy (superclass AbstractCollection, then its interface
	// Iterable) to find the shape T was declared against.
	resolved := capture.ReplacementForSymbolic(oracle, tVar, actualArrayListOfString, "", nil)
	if resolved == nil {
		t.Fatal("expected a resolved type, got nil")
	}
	cl, ok := resolved.(*typeinfo.Class)
	if !ok || cl.Hash != "String" {
		t.Errorf("expected T to resolve to String, got %#v", resolved)
	}
}

func TestReplacementForSymbolicNoCaptureReturnsNil(t *testing.T) {
	oracle := hierarchy.NewInMemory()
	oracle.Register(&hierarchy.Entry{Hash: "Dog", ShortName: "Dog"})

	tVar := &typeinfo.Symbolic{VarName: "T"}
	actual := &typeinfo.Class{Hash: "Dog"}

	resolved := capture.ReplacementForSymbolic(oracle, tVar, actual, "", nil)
	if resolved != nil {
		t.Errorf("expected nil when no declared container and no ancestor captures anything, got %#v", resolved)
	}
}
