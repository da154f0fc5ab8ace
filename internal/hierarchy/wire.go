package hierarchy

import (
	"github.com/javacg/tgengine/internal/names"
	"github.com/javacg/tgengine/internal/typeinfo"
)

// Wire installs this oracle as the backing for the package-level hooks
// typeinfo.Parameterized and typeinfo.Symbolic/Wildcard need (name
// canonicalization for §4.6's Parameterized fallback, and the "resolve
// through proper_type_from_class_hash" step of §4.6's ReplaceSymbol). Call
// once per oracle instance, typically from the engine facade's
// constructor.
func Wire(o Oracle) {
	typeinfo.SetCanonicalOverlap(func(a, b typeinfo.ClassHash) bool {
		setA := names.Canonicalize(o, a)
		setB := names.Canonicalize(o, b)
		return names.SetsOverlap(setA, setB)
	})
	typeinfo.SetRicherResolver(func(captured typeinfo.TypeInfo) typeinfo.TypeInfo {
		var hash typeinfo.ClassHash
		switch c := captured.(type) {
		case *typeinfo.Class:
			hash = c.Hash
		case *typeinfo.Enum:
			hash = c.Hash
		case *typeinfo.Parameterized:
			hash = c.RawClassHash
		default:
			return nil
		}
		richer, ok := o.ProperTypeFromClassID(hash)
		if !ok || richer == captured {
			return nil
		}
		return richer
	})
}
