// Package hierarchy supplies the sub/super-type oracle (spec §4.1 table
// component D, §6.2): "is T1 a (transitive) supertype of T2", consulted by
// the matches/covers relation and by name canonicalization.
//
// The in-memory Oracle here is the core's own reference implementation,
// grounded on the teacher's ClassRegistry (case-insensitive lookup, parent
// chain walks, descendant queries) but generalized from class *names* to
// opaque ClassHash values and extended with interface lists (a class may
// have several immediate supertypes, not just one parent).
package hierarchy

import (
	"strings"
	"sync"

	"github.com/javacg/tgengine/internal/typeinfo"
)

// Signature is an opaque, oracle-defined string for a class hash,
// mirroring class_signature_from_hash (§6.2); this engine never
// interprets its contents.
type Signature string

// Entry is one class/interface/enum registered with the oracle: its
// direct superclass (if any) and every directly implemented interface.
// Declared here rather than constructed lazily because, unlike the
// teacher's ClassRegistry (one Parent per class), the source language
// supports interface lists and intersection bounds.
type Entry struct {
	Hash         typeinfo.ClassHash
	ShortName    string
	Superclass   typeinfo.ClassHash // "" if none
	Interfaces   []typeinfo.ClassHash
	Signature    Signature
	BitIndex     int
	Soft, Proper typeinfo.TypeInfo // pre-built handles, may be nil
}

// Oracle is the full §6.2 contract plus the IsSupertypeOf convenience
// query that typeinfo.SupertypeOracle and names.SupertypeNamer need.
// InMemory (below) is one implementation; a driver backed by a real
// compiler front end would supply another satisfying the same interface.
type Oracle interface {
	AllSupertypes(hash typeinfo.ClassHash) map[typeinfo.ClassHash]struct{}
	AllSubtypes(hash typeinfo.ClassHash) map[typeinfo.ClassHash]struct{}
	SuperclassOf(hash typeinfo.ClassHash) (typeinfo.ClassHash, bool)
	BitIndexOf(hash typeinfo.ClassHash) int
	ClassHashFromBitIndex(i int) (typeinfo.ClassHash, bool)
	ClassSignatureFromHash(hash typeinfo.ClassHash) (Signature, bool)
	SoftTypeFromClassID(hash typeinfo.ClassHash) (typeinfo.TypeInfo, bool)
	ProperTypeFromClassID(hash typeinfo.ClassHash) (typeinfo.TypeInfo, bool)
	BindingHash(bindingKey string, tokenRange string) (string, bool)
	ClassHashFromBindingHash(hash string) (typeinfo.ClassHash, bool)

	// IsSupertypeOf reports whether declHash is a transitive supertype of
	// invHash (error-handling rule 4, §7: missing data reduces to
	// erasure equality, i.e. false here since equality is checked by the
	// caller before ever calling this).
	IsSupertypeOf(declHash, invHash typeinfo.ClassHash) bool

	// SupertypeShortNames returns every known supertype/interface short
	// name for hash, feeding names.Canonicalize (§4.7).
	SupertypeShortNames(hash typeinfo.ClassHash) []string
}

// InMemory is a concurrency-safe, in-process Oracle backed by a registered
// class table. Registration (Register) is expected to happen once, up
// front, before concurrent readers start querying it; queries themselves
// are safe to call concurrently from many analyzer worker goroutines
// (§5: "moderate contention... a single reader-writer lock... is
// acceptable").
type InMemory struct {
	mu          sync.RWMutex
	classes     map[typeinfo.ClassHash]*Entry
	bindingHash map[string]typeinfo.ClassHash
	nextBit     int
}

// NewInMemory returns an empty oracle.
func NewInMemory() *InMemory {
	return &InMemory{
		classes:     make(map[typeinfo.ClassHash]*Entry),
		bindingHash: make(map[string]typeinfo.ClassHash),
	}
}

// Register adds or replaces a class entry. A fresh bit index is assigned
// the first time hash is seen.
func (o *InMemory) Register(e *Entry) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if existing, ok := o.classes[e.Hash]; ok {
		e.BitIndex = existing.BitIndex
	} else {
		e.BitIndex = o.nextBit
		o.nextBit++
	}
	o.classes[e.Hash] = e
}

// RegisterBindingHash associates an external binding-hash key (produced by
// the AST adapter per §6.2's binding_hash) with a class hash, so
// proper_type_from_class_hash-style lookups can round-trip through it.
func (o *InMemory) RegisterBindingHash(bindingHash string, classHash typeinfo.ClassHash) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.bindingHash[bindingHash] = classHash
}

func (o *InMemory) lookup(hash typeinfo.ClassHash) (*Entry, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	e, ok := o.classes[hash]
	return e, ok
}

// AllSupertypes walks the superclass chain and every implemented
// interface's own supertypes, breadth-first, matching the teacher's
// LookupHierarchy walk generalized beyond a single parent.
func (o *InMemory) AllSupertypes(hash typeinfo.ClassHash) map[typeinfo.ClassHash]struct{} {
	result := make(map[typeinfo.ClassHash]struct{})
	queue := []typeinfo.ClassHash{hash}
	visited := map[typeinfo.ClassHash]bool{hash: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		e, ok := o.lookup(cur)
		if !ok {
			continue
		}
		next := make([]typeinfo.ClassHash, 0, 1+len(e.Interfaces))
		if e.Superclass != "" {
			next = append(next, e.Superclass)
		}
		next = append(next, e.Interfaces...)
		for _, n := range next {
			if visited[n] {
				continue
			}
			visited[n] = true
			result[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return result
}

// AllSubtypes scans the registered classes for any whose supertype set
// contains hash. This is O(n) in the registry size, acceptable for the
// core's reference oracle; a production driver backed by a real front end
// would maintain a reverse index instead.
func (o *InMemory) AllSubtypes(hash typeinfo.ClassHash) map[typeinfo.ClassHash]struct{} {
	o.mu.RLock()
	all := make([]typeinfo.ClassHash, 0, len(o.classes))
	for h := range o.classes {
		all = append(all, h)
	}
	o.mu.RUnlock()

	result := make(map[typeinfo.ClassHash]struct{})
	for _, candidate := range all {
		if candidate == hash {
			continue
		}
		supers := o.AllSupertypes(candidate)
		if _, ok := supers[hash]; ok {
			result[candidate] = struct{}{}
		}
	}
	return result
}

func (o *InMemory) SuperclassOf(hash typeinfo.ClassHash) (typeinfo.ClassHash, bool) {
	e, ok := o.lookup(hash)
	if !ok || e.Superclass == "" {
		return "", false
	}
	return e.Superclass, true
}

func (o *InMemory) BitIndexOf(hash typeinfo.ClassHash) int {
	e, ok := o.lookup(hash)
	if !ok {
		return -1
	}
	return e.BitIndex
}

func (o *InMemory) ClassHashFromBitIndex(i int) (typeinfo.ClassHash, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for h, e := range o.classes {
		if e.BitIndex == i {
			return h, true
		}
	}
	return "", false
}

func (o *InMemory) ClassSignatureFromHash(hash typeinfo.ClassHash) (Signature, bool) {
	e, ok := o.lookup(hash)
	if !ok {
		return "", false
	}
	return e.Signature, true
}

func (o *InMemory) SoftTypeFromClassID(hash typeinfo.ClassHash) (typeinfo.TypeInfo, bool) {
	e, ok := o.lookup(hash)
	if !ok || e.Soft == nil {
		return nil, false
	}
	return e.Soft, true
}

func (o *InMemory) ProperTypeFromClassID(hash typeinfo.ClassHash) (typeinfo.TypeInfo, bool) {
	e, ok := o.lookup(hash)
	if !ok || e.Proper == nil {
		return nil, false
	}
	return e.Proper, true
}

func (o *InMemory) BindingHash(bindingKey string, tokenRange string) (string, bool) {
	if bindingKey == "" {
		return "", false
	}
	return bindingKey + "@" + tokenRange, true
}

func (o *InMemory) ClassHashFromBindingHash(hash string) (typeinfo.ClassHash, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	h, ok := o.bindingHash[hash]
	return h, ok
}

func (o *InMemory) IsSupertypeOf(declHash, invHash typeinfo.ClassHash) bool {
	if declHash == invHash {
		return true
	}
	supers := o.AllSupertypes(invHash)
	_, ok := supers[declHash]
	return ok
}

func (o *InMemory) SupertypeShortNames(hash typeinfo.ClassHash) []string {
	supers := o.AllSupertypes(hash)
	names := make([]string, 0, len(supers))
	for h := range supers {
		names = append(names, shortNameOf(h))
	}
	return names
}

func shortNameOf(hash typeinfo.ClassHash) string {
	name := typeinfo.LibraryName(hash)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
