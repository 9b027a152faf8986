package iceberg

// Visitor is a generic pre/post-order fold over a Schema's type tree.
// Traversal is depth-first, in declared field order.
type Visitor[T any] interface {
	Schema(s *Schema, structResult T) T
	Struct(t Type, fieldResults []T) T
	Field(f NestedField, typeResult T) T
	List(t Type, elementResult T) T
	Map(t Type, keyResult, valueResult T) T
	Primitive(t Type) T
}

// Visit folds v over s, visiting the root struct and wrapping the result
// with Schema.
func Visit[T any](s *Schema, v Visitor[T]) T {
	return v.Schema(s, visitType(s.AsStruct(), v))
}

// VisitType runs the fold starting at an arbitrary Type, for callers that
// operate below the schema root.
func VisitType[T any](t Type, v Visitor[T]) T {
	return visitType(t, v)
}

func visitType[T any](t Type, v Visitor[T]) T {
	switch t.Kind {
	case KindStruct:
		results := make([]T, len(t.Fields))
		for i, f := range t.Fields {
			results[i] = v.Field(f, visitType(f.Type, v))
		}
		return v.Struct(t, results)
	case KindList:
		return v.List(t, visitType(*t.Element, v))
	case KindMap:
		return v.Map(t, visitType(*t.Key, v), visitType(*t.Value, v))
	default:
		return v.Primitive(t)
	}
}

// PartnerAccessor locates, for a given struct-level field name, the partner
// field on the other side of a paired visit (or ok=false if absent).
type PartnerAccessor interface {
	FieldNames(partner Type) []string
	FieldByName(partner Type, name string) (NestedField, bool)
}

// caseSensitivePartner matches struct field names exactly.
type caseSensitivePartner struct{}

func (caseSensitivePartner) FieldNames(t Type) []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

func (caseSensitivePartner) FieldByName(t Type, name string) (NestedField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return NestedField{}, false
}

// caseInsensitivePartner matches struct field names case-insensitively.
type caseInsensitivePartner struct{}

func (caseInsensitivePartner) FieldNames(t Type) []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

func (caseInsensitivePartner) FieldByName(t Type, name string) (NestedField, bool) {
	for _, f := range t.Fields {
		if lower(f.Name) == lower(name) {
			return f, true
		}
	}
	return NestedField{}, false
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// PartnerVisitor walks two types matched by name at each struct level; when
// one side lacks a partner the partner argument is nil.
type PartnerVisitor[T any] interface {
	Struct(current, partner *Type, fieldResults []T) T
	Field(current, partner *NestedField, typeResult T) T
	List(current, partner *Type, elementResult T) T
	Map(current, partner *Type, keyResult, valueResult T) T
	Primitive(current, partner *Type) T
}

// VisitWithPartner walks current and new in lockstep, matched by name,
// using accessor to resolve partners at each struct level.
func VisitWithPartner[T any](current, partner *Type, v PartnerVisitor[T], accessor PartnerAccessor) T {
	switch {
	case current != nil && current.IsStruct():
		var partnerType *Type
		if partner != nil && partner.IsStruct() {
			partnerType = partner
		}
		results := make([]T, len(current.Fields))
		for i, f := range current.Fields {
			var partnerField *NestedField
			if partnerType != nil {
				if pf, ok := accessor.FieldByName(*partnerType, f.Name); ok {
					partnerField = &pf
				}
			}
			var partnerFieldType *Type
			if partnerField != nil {
				partnerFieldType = &partnerField.Type
			}
			fieldResult := VisitWithPartner(&f.Type, partnerFieldType, v, accessor)
			results[i] = v.Field(&f, partnerField, fieldResult)
		}
		return v.Struct(current, partnerType, results)
	case current != nil && current.IsList():
		var partnerType *Type
		if partner != nil && partner.IsList() {
			partnerType = partner
		}
		var partnerElem *Type
		if partnerType != nil {
			partnerElem = partnerType.Element
		}
		elemResult := VisitWithPartner(current.Element, partnerElem, v, accessor)
		return v.List(current, partnerType, elemResult)
	case current != nil && current.IsMap():
		var partnerType *Type
		if partner != nil && partner.IsMap() {
			partnerType = partner
		}
		var partnerKey, partnerValue *Type
		if partnerType != nil {
			partnerKey, partnerValue = partnerType.Key, partnerType.Value
		}
		keyResult := VisitWithPartner(current.Key, partnerKey, v, accessor)
		valueResult := VisitWithPartner(current.Value, partnerValue, v, accessor)
		return v.Map(current, partnerType, keyResult, valueResult)
	default:
		return v.Primitive(current, partner)
	}
}
