package typeintern_test

import (
	"testing"

	"github.com/javacg/tgengine/internal/typeinfo"
	"github.com/javacg/tgengine/internal/typeintern"
)

func TestPutOrGetIdempotent(t *testing.T) {
	table := typeintern.New()
	a := &typeinfo.Class{Hash: "Dog"}
	b := &typeinfo.Class{Hash: "Dog"}

	canonicalA, idxA := table.PutOrGet(a)
	canonicalB, idxB := table.PutOrGet(b)

	if idxA != idxB {
		t.Fatalf("equal descriptors should intern to the same index, got %d and %d", idxA, idxB)
	}
	if canonicalA != canonicalB {
		t.Fatal("equal descriptors should return the same canonical pointer")
	}
}

func TestPutOrGetDistinctDescriptorsGetDistinctIndices(t *testing.T) {
	table := typeintern.New()
	_, idxDog := table.PutOrGet(&typeinfo.Class{Hash: "Dog"})
	_, idxCat := table.PutOrGet(&typeinfo.Class{Hash: "Cat"})
	if idxDog == idxCat {
		t.Fatal("distinct descriptors must not share an index")
	}
}

func TestGetRoundTrips(t *testing.T) {
	table := typeintern.New()
	canonical, idx := table.PutOrGet(&typeinfo.Class{Hash: "Dog"})
	got, ok := table.Get(idx)
	if !ok || got != canonical {
		t.Fatal("Get(idx) must return the same canonical descriptor PutOrGet returned")
	}
	if _, ok := table.Get(idx + 100); ok {
		t.Fatal("Get on an unassigned index must report not-found")
	}
}

func TestResetClearsTable(t *testing.T) {
	table := typeintern.New()
	_, idx := table.PutOrGet(&typeinfo.Class{Hash: "Dog"})
	table.Reset()
	if _, ok := table.Get(idx); ok {
		t.Fatal("Reset must release every interned descriptor")
	}
	if _, ok := table.IndexOf(&typeinfo.Class{Hash: "Dog"}); ok {
		t.Fatal("Reset must forget previously interned keys")
	}
}

func TestStatsCounters(t *testing.T) {
	table := typeintern.New()
	table.PutOrGet(&typeinfo.Class{Hash: "Dog"})
	table.PutOrGet(&typeinfo.Class{Hash: "Dog"})
	table.PutOrGet(&typeinfo.Class{Hash: "Cat"})

	stats := table.Stats()
	if stats.Puts != 3 {
		t.Errorf("expected 3 puts, got %d", stats.Puts)
	}
	if stats.NewEntries != 2 {
		t.Errorf("expected 2 new entries, got %d", stats.NewEntries)
	}
	if stats.Size != 2 {
		t.Errorf("expected table size 2, got %d", stats.Size)
	}
}
