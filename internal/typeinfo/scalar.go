package typeinfo

// Scalar is a primitive or boxed-primitive type (§3.2.1).
type Scalar struct {
	PrimName    string
	IsClassType bool
	IsBoxType   bool
}

// NullTypeName is the Scalar.PrimName spelling for the null literal's type,
// consulted by the conditional-expression dispatch rule (§4.8, §9 open
// question) and nowhere else — it never widens and never matches anything
// but itself.
const NullTypeName = "null"

// widensTo is the fixed auto-widening table of §4.9: widensTo[from][to] is
// true when a value of type "from" may widen to "to" without an explicit
// cast. Reflexive widening (X to X) is handled separately by Matches, not
// here.
var widensTo = map[string]map[string]bool{
	"byte":  {"short": true, "int": true, "long": true, "float": true, "double": true},
	"short": {"int": true, "long": true, "float": true, "double": true},
	"int":   {"long": true, "float": true, "double": true},
	"long":  {"float": true, "double": true},
	"float": {"double": true},
}

// charWidensTo is consulted only when the engine config enables the
// documented (but disabled-by-default) char-to-numeric extension (§9).
var charWidensTo = map[string]bool{"int": true, "long": true, "float": true, "double": true}

// WidenCharToNumeric globally toggles the char-widens-to-numeric behavior
// left unmodeled by the original widening table (§4.9, §9). The engine's
// Reset operation does not touch this flag; it is set once from
// EngineConfig at startup.
var WidenCharToNumeric = false

func autoWidens(from, to string) bool {
	if from == "char" && WidenCharToNumeric {
		return charWidensTo[to]
	}
	if row, ok := widensTo[from]; ok {
		return row[to]
	}
	return false
}

func (s *Scalar) Kind() Kind           { return KindScalar }
func (s *Scalar) Name() string         { return s.PrimName }
func (s *Scalar) TypeErasure() string  { return s.PrimName }
func (s *Scalar) Fields() *FieldList   { return emptyFieldList }
func (s *Scalar) NeedsReplacement() bool { return false }

func (s *Scalar) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Scalar:
		return s.PrimName == d.PrimName || autoWidens(s.PrimName, d.PrimName)
	case *Class:
		return isUniversalObject(d.TypeErasure())
	case *Symbolic, *Wildcard:
		return decl.Covers(oracle, s)
	default:
		return false
	}
}

func (s *Scalar) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	other, ok := inv.(*Scalar)
	if !ok {
		return false
	}
	return s.PrimName == other.PrimName || autoWidens(other.PrimName, s.PrimName)
}

func (s *Scalar) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {}

func (s *Scalar) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	return false, s
}

func (s *Scalar) BoundWildcardOrSymbolic() TypeInfo { return s }

func (s *Scalar) Key() string {
	return "Scalar:" + s.PrimName + ":" + boolKey(s.IsClassType) + ":" + boolKey(s.IsBoxType)
}

func (s *Scalar) String() string { return s.PrimName }

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
