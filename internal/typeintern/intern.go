// Package typeintern implements the process-wide intern table (spec §4.1,
// component A): hash-consing of TypeInfo descriptors, assigning each
// unique descriptor a stable TypeIndex.
//
// The table is the only piece of shared mutable state the core owns
// besides the hierarchy oracle's binding-hash map (§5); a single
// sync.RWMutex guards the index<->descriptor mapping, mirroring the
// reader/writer discipline the teacher's runtime value pools use for their
// own shared counters.
package typeintern

import (
	"sync"
	"sync/atomic"

	"github.com/javacg/tgengine/internal/typeinfo"
)

// TypeIndex is the dense integer the table assigns to each unique
// TypeInfo value (§3.1).
type TypeIndex int

// Table is a process-wide, thread-safe hash-consing store.
type Table struct {
	mu      sync.RWMutex
	byKey   map[string]TypeIndex
	byIndex []typeinfo.TypeInfo

	stats stats
}

type stats struct {
	puts atomic.Uint64 // total PutOrGet calls
	news atomic.Uint64 // calls that interned a new descriptor
	gets atomic.Uint64 // total Get calls
}

// Stats reports cumulative usage counters for monitoring/debugging, in the
// same spirit as the teacher's pool.PoolStats.
type Stats struct {
	Puts       uint64
	NewEntries uint64
	Gets       uint64
	Size       int
}

// New returns an empty intern table.
func New() *Table {
	return &Table{
		byKey: make(map[string]TypeIndex),
	}
}

// PutOrGet returns the canonical instance for desc, interning it with a
// fresh TypeIndex if this is the first time an equal descriptor (by Key())
// has been seen. Idempotent under repeated calls (invariant 1, §8).
//
// Descriptors must be constructed before calling PutOrGet — the table's
// lock is never held while a caller builds a child descriptor (§5's
// locking discipline: "construct first, then intern").
func (t *Table) PutOrGet(desc typeinfo.TypeInfo) (typeinfo.TypeInfo, TypeIndex) {
	t.stats.puts.Add(1)
	key := desc.Key()

	t.mu.RLock()
	if idx, ok := t.byKey[key]; ok {
		canonical := t.byIndex[idx]
		t.mu.RUnlock()
		return canonical, idx
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if idx, ok := t.byKey[key]; ok {
		return t.byIndex[idx], idx
	}
	idx := TypeIndex(len(t.byIndex))
	t.byIndex = append(t.byIndex, desc)
	t.byKey[key] = idx
	t.stats.news.Add(1)
	return desc, idx
}

// Get performs a constant-time lookup from index to descriptor.
func (t *Table) Get(idx TypeIndex) (typeinfo.TypeInfo, bool) {
	t.stats.gets.Add(1)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if idx < 0 || int(idx) >= len(t.byIndex) {
		return nil, false
	}
	return t.byIndex[idx], true
}

// IndexOf returns the TypeIndex of desc if it has already been interned,
// without interning a new entry.
func (t *Table) IndexOf(desc typeinfo.TypeInfo) (TypeIndex, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx, ok := t.byKey[desc.Key()]
	return idx, ok
}

// Reset releases all interned descriptors, per the §3.4 lifecycle
// operation that allows repeat analyses in one process without restarting
// it. It does not touch cumulative Stats counters; call ResetStats
// separately if a clean benchmark baseline is needed.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byKey = make(map[string]TypeIndex)
	t.byIndex = nil
}

// Stats reports the table's cumulative usage counters.
func (t *Table) Stats() Stats {
	t.mu.RLock()
	size := len(t.byIndex)
	t.mu.RUnlock()
	return Stats{
		Puts:       t.stats.puts.Load(),
		NewEntries: t.stats.news.Load(),
		Gets:       t.stats.gets.Load(),
		Size:       size,
	}
}

// ResetStats zeroes the cumulative usage counters without releasing any
// interned descriptor.
func (t *Table) ResetStats() {
	t.stats.puts.Store(0)
	t.stats.news.Store(0)
	t.stats.gets.Store(0)
}
