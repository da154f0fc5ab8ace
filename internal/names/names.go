// Package names implements canonical short-name handling (spec §4.7):
// stripping the library prefix and package qualification, and reconciling
// qualified vs. simple names across source and library types.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/javacg/tgengine/internal/typeinfo"
)

// foldCaser does Unicode-aware case folding for identifier comparison,
// generalizing the teacher's strings.ToLower-keyed registries (e.g.
// ClassRegistry) to non-ASCII class/package names.
var foldCaser = cases.Fold()

// Fold lowercases s using Unicode case folding rather than byte-wise
// strings.ToLower, so identifiers with non-ASCII letters compare correctly
// across locales.
func Fold(s string) string {
	return foldCaser.String(s)
}

// SupertypeNamer supplies every known supertype/implemented-interface
// short name for a class hash — the hierarchy-oracle dependency that
// canonicalization needs (§4.7 step 1). Declared here, at the point of
// use, so this package stays independent of package hierarchy; hierarchy's
// Oracle satisfies this interface structurally.
type SupertypeNamer interface {
	SupertypeShortNames(hash typeinfo.ClassHash) []string
}

// Simple drops the leading package (text up to the final '.') from a
// possibly-qualified name.
func Simple(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// StripLibraryPrefix removes the "LIB::" delimiter from a library class
// hash spelling, if present.
func StripLibraryPrefix(s string) string {
	return typeinfo.LibraryName(typeinfo.ClassHash(s))
}

// Canonicalize produces the set of short names usable for matching across
// source/library and qualified/unqualified forms (§4.7): the declared name
// and every known supertype short name, each stripped of its library
// prefix and package qualification.
func Canonicalize(namer SupertypeNamer, hash typeinfo.ClassHash) map[string]struct{} {
	out := make(map[string]struct{})
	add := func(n string) {
		n = StripLibraryPrefix(n)
		n = Simple(n)
		out[Fold(n)] = struct{}{}
	}
	add(string(hash))
	if namer != nil {
		for _, s := range namer.SupertypeShortNames(hash) {
			add(s)
		}
	}
	return out
}

// Match reports whether two names refer to the same identifier under the
// §4.7 rule: either both unqualified and string-equal, or one is qualified
// and its last dotted segment equals the other. Comparisons are made after
// Unicode case folding.
func Match(a, b string) bool {
	fa, fb := Fold(a), Fold(b)
	if fa == fb {
		return true
	}
	if strings.Contains(a, ".") && strings.Contains(b, ".") {
		return false
	}
	return Fold(Simple(a)) == Fold(Simple(b))
}

// SetsOverlap reports whether two canonicalized name sets intersect.
func SetsOverlap(a, b map[string]struct{}) bool {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if _, ok := big[k]; ok {
			return true
		}
	}
	return false
}
