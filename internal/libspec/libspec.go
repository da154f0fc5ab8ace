// Package libspec is the production backing store for §6.3's
// LibrarySpecService: a JSON document mapping short class names to
// candidate packages, and (package, class, method, arity) tuples to return
// types, queried with github.com/tidwall/gjson and mutated incrementally
// with github.com/tidwall/sjson when a driver registers additional specs at
// runtime (e.g. after lazily loading another library's descriptor file).
//
// The overload/arity-keyed shape mirrors the teacher's FunctionRegistry
// (case-insensitive name -> overload list), generalized from an in-process
// AST-node registry to an external spec document the engine only reads and
// incrementally appends to.
package libspec

import (
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/names"
	"github.com/javacg/tgengine/internal/typeinfo"
)

// emptyDoc is the minimal valid document: an empty packages map and an
// empty specs array.
const emptyDoc = `{"packages":{},"specs":[]}`

// Store is a concurrency-safe, JSON-backed LibrarySpecService.
type Store struct {
	mu  sync.RWMutex
	doc string
}

// New returns a Store seeded with an empty document.
func New() *Store {
	return &Store{doc: emptyDoc}
}

// Load replaces the store's contents with the given JSON document (e.g.
// read from a library descriptor file shipped alongside EngineConfig).
// An empty or malformed document is treated as the empty store, per §7's
// "absent specification data resolves to no match" rule rather than a
// fatal error — library descriptors are driver-supplied data, not a core
// invariant.
func (s *Store) Load(jsonDoc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !gjson.ValidBytes(jsonDoc) {
		s.doc = emptyDoc
		return
	}
	s.doc = string(jsonDoc)
}

// PackagesFor implements LibrarySpecService.PackagesFor: every package that
// declares a class with this short (case-folded) name.
func (s *Store) PackagesFor(shortClassName string) []string {
	key := names.Fold(shortClassName)
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := gjson.Get(s.doc, "packages."+gjsonEscape(key))
	if !result.IsArray() {
		return nil
	}
	out := make([]string, 0, len(result.Array()))
	for _, v := range result.Array() {
		out = append(out, v.String())
	}
	return out
}

// SpecFor implements LibrarySpecService.SpecFor: the (package, class,
// method, arity)-keyed return-type record, scanning the specs array for the
// first exact match.
func (s *Store) SpecFor(pkg, class, method string, arity int) (adapter.LibrarySpecRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found adapter.LibrarySpecRecord
	var ok bool
	gjson.Get(s.doc, "specs").ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("package").String() != pkg {
			return true
		}
		if entry.Get("class").String() != class {
			return true
		}
		if entry.Get("method").String() != method {
			return true
		}
		if int(entry.Get("arity").Int()) != arity {
			return true
		}
		found = adapter.LibrarySpecRecord{
			Package:       pkg,
			DeclaringType: entry.Get("class").String(),
			MethodName:    method,
			ReturnType:    typeinfo.ClassHash(entry.Get("returnType").String()),
			ReturnArity:   arity,
		}
		ok = true
		return false // stop iterating
	})
	return found, ok
}

// Register incrementally adds one method spec and its package candidacy to
// the live document, using sjson so the whole document need not be
// re-marshaled from a Go struct on every update.
func (s *Store) Register(shortName, pkg string, rec adapter.LibrarySpecRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc
	key := names.Fold(shortName)

	packagesPath := "packages." + key
	existing := gjson.Get(doc, packagesPath)
	if !existing.Exists() {
		var err error
		doc, err = sjson.Set(doc, packagesPath, []string{pkg})
		if err != nil {
			return err
		}
	} else if !containsString(existing, pkg) {
		var err error
		doc, err = sjson.Set(doc, packagesPath+".-1", pkg)
		if err != nil {
			return err
		}
	}

	entry := map[string]any{
		"package":    rec.Package,
		"class":      rec.DeclaringType,
		"method":     rec.MethodName,
		"arity":      rec.ReturnArity,
		"returnType": string(rec.ReturnType),
	}
	doc, err := sjson.Set(doc, "specs.-1", entry)
	if err != nil {
		return err
	}

	s.doc = doc
	return nil
}

func containsString(result gjson.Result, s string) bool {
	for _, v := range result.Array() {
		if v.String() == s {
			return true
		}
	}
	return false
}

// gjsonEscape escapes path-meaningful characters (".", "*", "?") in a key
// used as a gjson path segment.
func gjsonEscape(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '.' || c == '*' || c == '?' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
