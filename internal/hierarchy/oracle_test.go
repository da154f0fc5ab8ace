package hierarchy_test

import (
	"testing"

	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
)

func buildDiamond() *hierarchy.InMemory {
	o := hierarchy.NewInMemory()
	o.Register(&hierarchy.Entry{Hash: "Object", ShortName: "Object"})
	o.Register(&hierarchy.Entry{Hash: "Comparable", ShortName: "Comparable", Superclass: "Object"})
	o.Register(&hierarchy.Entry{Hash: "Serializable", ShortName: "Serializable", Superclass: "Object"})
	o.Register(&hierarchy.Entry{
		Hash: "Dog", ShortName: "Dog", Superclass: "Object",
		Interfaces: []typeinfo.ClassHash{"Comparable", "Serializable"},
	})
	return o
}

func TestAllSupertypesDiamond(t *testing.T) {
	o := buildDiamond()
	supers := o.AllSupertypes("Dog")
	for _, want := range []typeinfo.ClassHash{"Object", "Comparable", "Serializable"} {
		if _, ok := supers[want]; !ok {
			t.Errorf("expected %q in AllSupertypes(Dog), got %v", want, supers)
		}
	}
}

func TestIsSupertypeOf(t *testing.T) {
	o := buildDiamond()
	if !o.IsSupertypeOf("Object", "Dog") {
		t.Error("Object should be a supertype of Dog")
	}
	if o.IsSupertypeOf("Dog", "Object") {
		t.Error("Dog should not be a supertype of Object")
	}
}

func TestAllSubtypes(t *testing.T) {
	o := buildDiamond()
	subs := o.AllSubtypes("Comparable")
	if _, ok := subs["Dog"]; !ok {
		t.Errorf("Dog should be a subtype of Comparable, got %v", subs)
	}
}

func TestBitIndexAssignedOnce(t *testing.T) {
	o := hierarchy.NewInMemory()
	o.Register(&hierarchy.Entry{Hash: "Dog", ShortName: "Dog"})
	first := o.BitIndexOf("Dog")
	o.Register(&hierarchy.Entry{Hash: "Dog", ShortName: "Dog", Superclass: "Animal"})
	if o.BitIndexOf("Dog") != first {
		t.Error("re-registering a known class hash must keep its bit index stable")
	}
}

func TestBindingHashRoundTrip(t *testing.T) {
	o := hierarchy.NewInMemory()
	h, ok := o.BindingHash("binding-key-1", "10:20")
	if !ok {
		t.Fatal("BindingHash should succeed for a non-empty key")
	}
	o.RegisterBindingHash(h, "Dog")
	got, ok := o.ClassHashFromBindingHash(h)
	if !ok || got != "Dog" {
		t.Errorf("expected ClassHashFromBindingHash to round-trip to Dog, got %v, %v", got, ok)
	}
}
