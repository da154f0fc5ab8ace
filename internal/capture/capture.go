// Package capture implements the call-site generic resolution workflow of
// spec §4.6: given a declared type mentioning type variables/wildcards and
// a concrete invocation-site type, compute the concrete substitution. The
// per-descriptor ParseAndMapSymbols/ReplaceSymbol primitives live on
// typeinfo.TypeInfo itself (§4.2's uniform contract); this package adds
// the higher-level "symbolic replacement helper" described at the end of
// §4.6, which climbs the invocation's class hierarchy when a direct
// capture fails.
package capture

import (
	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
)

// Capture runs decl.ParseAndMapSymbols against target and returns the
// populated state — a thin re-export of typeinfo.Capture kept here so
// callers only need to import package capture for the whole workflow.
func Capture(decl, target typeinfo.TypeInfo) *typeinfo.CaptureState {
	return typeinfo.Capture(decl, target)
}

// Substitute runs t.ReplaceSymbol against state.
func Substitute(t typeinfo.TypeInfo, state *typeinfo.CaptureState) (bool, typeinfo.TypeInfo) {
	return typeinfo.Substitute(t, state)
}

// ReplacementForSymbolic is the §4.6 "symbolic-replacement helper": resolve
// symbolicBearingType (a field or return type mentioning a type variable)
// given the actual (invocation-site) type of its container and, optionally,
// the declared type the symbolic was originally declared against.
//
// It first tries to capture directly: parse declaredContainer against
// actualContainer, or, when only declaredHash is given, the proper shape the
// oracle holds for declaredHash. With neither supplied there is no direct
// attempt. If nothing was resolved, it climbs actualContainer's class hierarchy
// (superclass, then every implemented interface, breadth-first, duplicates
// filtered by class hash) via the oracle, retrying the capture against each
// ancestor's declared shape. The first successful non-nil substitution
// wins; nil means no capture ever succeeded.
func ReplacementForSymbolic(oracle hierarchy.Oracle, symbolicBearingType, actualContainer typeinfo.TypeInfo, declaredHash typeinfo.ClassHash, declaredContainer typeinfo.TypeInfo) typeinfo.TypeInfo {
	if declaredContainer != nil {
		if resolved := tryCapture(symbolicBearingType, declaredContainer, actualContainer); resolved != nil {
			return resolved
		}
	} else if declaredHash != "" {
		if declShape, ok := oracle.ProperTypeFromClassID(declaredHash); ok {
			if resolved := tryCapture(symbolicBearingType, declShape, actualContainer); resolved != nil {
				return resolved
			}
		}
	}

	actualHash := containerHash(actualContainer)
	if actualHash == "" {
		return nil
	}

	visited := map[typeinfo.ClassHash]bool{actualHash: true}
	queue := immediateSupertypes(oracle, actualHash)
	for len(queue) > 0 {
		candidateHash := queue[0]
		queue = queue[1:]
		if visited[candidateHash] {
			continue
		}
		visited[candidateHash] = true

		candidateShape, ok := oracle.ProperTypeFromClassID(candidateHash)
		if ok {
			if resolved := tryCapture(symbolicBearingType, candidateShape, actualContainer); resolved != nil {
				return resolved
			}
		}
		queue = append(queue, immediateSupertypes(oracle, candidateHash)...)
	}
	return nil
}

func tryCapture(symbolicBearingType, declaredShape, actualContainer typeinfo.TypeInfo) typeinfo.TypeInfo {
	state := typeinfo.Capture(declaredShape, actualContainer)
	if len(state.Syms) == 0 && len(state.Wilds) == 0 {
		return nil
	}
	changed, resolved := typeinfo.Substitute(symbolicBearingType, state)
	if !changed {
		return nil
	}
	return resolved
}

func containerHash(t typeinfo.TypeInfo) typeinfo.ClassHash {
	switch c := t.(type) {
	case *typeinfo.Class:
		return c.Hash
	case *typeinfo.Enum:
		return c.Hash
	case *typeinfo.Parameterized:
		return c.RawClassHash
	default:
		return ""
	}
}

func immediateSupertypes(oracle hierarchy.Oracle, hash typeinfo.ClassHash) []typeinfo.ClassHash {
	var out []typeinfo.ClassHash
	if sc, ok := oracle.SuperclassOf(hash); ok {
		out = append(out, sc)
	}
	// The Oracle interface only exposes the transitive closure
	// (AllSupertypes); immediate interfaces are derived by filtering to
	// those not reachable through any other direct supertype.
	supers := oracle.AllSupertypes(hash)
	for h := range supers {
		if h == hash {
			continue
		}
		isDirect := true
		for other := range supers {
			if other == h {
				continue
			}
			if _, ok := oracle.AllSupertypes(other)[h]; ok {
				isDirect = false
				break
			}
		}
		if isDirect {
			out = appendUnique(out, h)
		}
	}
	return out
}

func appendUnique(list []typeinfo.ClassHash, h typeinfo.ClassHash) []typeinfo.ClassHash {
	for _, existing := range list {
		if existing == h {
			return list
		}
	}
	return append(list, h)
}
