package libspec_test

import (
	"testing"

	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/libspec"
	"github.com/javacg/tgengine/internal/typeinfo"
)

func TestLoadAndQuery(t *testing.T) {
	doc := []byte(`{
		"packages": {"list": ["java.util"]},
		"specs": [
			{"package":"java.util","class":"List","method":"get","arity":1,"returnType":"LIB::java.lang.Object"}
		]
	}`)
	store := libspec.New()
	store.Load(doc)

	pkgs := store.PackagesFor("List")
	if len(pkgs) != 1 || pkgs[0] != "java.util" {
		t.Errorf("expected [java.util], got %v", pkgs)
	}

	rec, ok := store.SpecFor("java.util", "List", "get", 1)
	if !ok {
		t.Fatal("expected a spec match")
	}
	if rec.ReturnType != typeinfo.LibraryHash("java.lang.Object") {
		t.Errorf("unexpected return type %v", rec.ReturnType)
	}

	if _, ok := store.SpecFor("java.util", "List", "get", 2); ok {
		t.Error("arity mismatch must not match")
	}
}

func TestLoadInvalidJSONResetsToEmpty(t *testing.T) {
	store := libspec.New()
	store.Load([]byte("not json"))
	if pkgs := store.PackagesFor("List"); pkgs != nil {
		t.Errorf("expected no packages after an invalid load, got %v", pkgs)
	}
}

func TestRegisterIncrementally(t *testing.T) {
	store := libspec.New()
	err := store.Register("Map", "java.util", adapter.LibrarySpecRecord{
		Package: "java.util", DeclaringType: "Map", MethodName: "get", ReturnType: typeinfo.LibraryHash("java.lang.Object"), ReturnArity: 1,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	pkgs := store.PackagesFor("Map")
	if len(pkgs) != 1 || pkgs[0] != "java.util" {
		t.Errorf("expected [java.util], got %v", pkgs)
	}
	if _, ok := store.SpecFor("java.util", "Map", "get", 1); !ok {
		t.Error("expected the newly registered spec to be queryable")
	}

	if err := store.Register("Map", "java.util", adapter.LibrarySpecRecord{
		Package: "java.util", DeclaringType: "Map", MethodName: "put", ReturnType: typeinfo.LibraryHash("void"), ReturnArity: 2,
	}); err != nil {
		t.Fatalf("second Register failed: %v", err)
	}
	pkgs = store.PackagesFor("Map")
	if len(pkgs) != 1 {
		t.Errorf("registering the same package twice must not duplicate it, got %v", pkgs)
	}
}
