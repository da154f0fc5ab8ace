package typeinfo

// Class represents a class or interface type (§3.2.2). For soft-mode uses
// Fields is empty; proper-mode calculations populate it.
type Class struct {
	Hash        ClassHash
	FieldMap    *FieldList
	IsInterface bool
	IsInner     bool
}

func (c *Class) Kind() Kind          { return KindClass }
func (c *Class) Name() string        { return string(c.Hash) }
func (c *Class) TypeErasure() string { return string(c.Hash) }

func (c *Class) Fields() *FieldList {
	if c.FieldMap == nil {
		return emptyFieldList
	}
	return c.FieldMap
}

func (c *Class) NeedsReplacement() bool { return false }

func (c *Class) Matches(oracle SupertypeOracle, decl TypeInfo) bool {
	switch d := decl.(type) {
	case *Class:
		if c.Hash == d.Hash {
			return true
		}
		if isUniversalObject(d.TypeErasure()) {
			return true
		}
		return genericCovers(oracle, d.TypeErasure(), c.TypeErasure())
	case *Enum:
		// Class A -> Enum B (library enum): A==B by erasure.
		return c.TypeErasure() == d.TypeErasure()
	case *Wildcard, *Symbolic, *Parameterized:
		return decl.Covers(oracle, c)
	default:
		return false
	}
}

func (c *Class) Covers(oracle SupertypeOracle, inv TypeInfo) bool {
	erasure := c.TypeErasure()
	if isUniversalObject(erasure) {
		return true
	}
	if isEnumBase(erasure) && inv.Kind() == KindEnum {
		return true
	}
	// A library enum expressed as a Class is covered by Enum when the
	// oracle reports Enum as its supertype (or the erasures are equal).
	return genericCovers(oracle, erasure, inv.TypeErasure())
}

func (c *Class) ParseAndMapSymbols(state *CaptureState, target TypeInfo, path Breadcrumb) {}

func (c *Class) ReplaceSymbol(state *CaptureState, path Breadcrumb) (bool, TypeInfo) {
	return false, c
}

func (c *Class) BoundWildcardOrSymbolic() TypeInfo { return c }

func (c *Class) Key() string {
	k := "Class:" + string(c.Hash) + ":" + boolKey(c.IsInterface) + ":" + boolKey(c.IsInner) + ":"
	if c.FieldMap != nil {
		k += c.FieldMap.key()
	}
	return k
}

func (c *Class) String() string { return string(c.Hash) }
