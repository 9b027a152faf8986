/*
Package iceberg – type model.

Mirrors the shape of the teacher's FieldType enum, generalized from a flat
string tag into a recursive tagged tree: primitive, list, map, struct.
*/
package iceberg

import "fmt"

// TypeKind tags the shape of a Type.
type TypeKind string

const (
	KindBoolean      TypeKind = "boolean"
	KindInt          TypeKind = "int"
	KindLong         TypeKind = "long"
	KindFloat        TypeKind = "float"
	KindDouble       TypeKind = "double"
	KindDecimal      TypeKind = "decimal"
	KindDate         TypeKind = "date"
	KindTime         TypeKind = "time"
	KindTimestamp    TypeKind = "timestamp"
	KindTimestamptz  TypeKind = "timestamptz"
	KindString       TypeKind = "string"
	KindUUID         TypeKind = "uuid"
	KindBinary       TypeKind = "binary"
	KindFixed        TypeKind = "fixed"
	KindList         TypeKind = "list"
	KindMap          TypeKind = "map"
	KindStruct       TypeKind = "struct"
)

// Type is the tagged representation of an Iceberg column type: a primitive,
// or a recursive list/map/struct built from other Types.
type Type struct {
	Kind TypeKind

	// Decimal
	Precision int
	Scale     int

	// Fixed
	Length int

	// List
	ElementID       int
	Element         *Type
	ElementRequired bool

	// Map
	KeyID        int
	Key          *Type
	ValueID      int
	Value        *Type
	ValueRequired bool

	// Struct
	Fields []NestedField
}

// IsPrimitive reports whether t is a leaf (non-nested) type.
func (t Type) IsPrimitive() bool {
	switch t.Kind {
	case KindList, KindMap, KindStruct:
		return false
	default:
		return true
	}
}

// IsStruct, IsList, IsMap report the container kind.
func (t Type) IsStruct() bool { return t.Kind == KindStruct }
func (t Type) IsList() bool   { return t.Kind == KindList }
func (t Type) IsMap() bool    { return t.Kind == KindMap }

// Equals is structural equality, including ids and requiredness on
// containers.
func (t Type) Equals(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindDecimal:
		return t.Precision == o.Precision && t.Scale == o.Scale
	case KindFixed:
		return t.Length == o.Length
	case KindList:
		return t.ElementID == o.ElementID &&
			t.ElementRequired == o.ElementRequired &&
			t.Element.Equals(*o.Element)
	case KindMap:
		return t.KeyID == o.KeyID && t.ValueID == o.ValueID &&
			t.ValueRequired == o.ValueRequired &&
			t.Key.Equals(*o.Key) && t.Value.Equals(*o.Value)
	case KindStruct:
		if len(t.Fields) != len(o.Fields) {
			return false
		}
		for i := range t.Fields {
			if !t.Fields[i].Equals(o.Fields[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the canonical display form used in error messages and
// Schema's table {...} output (e.g. "decimal(20, 2)", "fixed[16]",
// "list<string>", "map<string, int>").
func (t Type) String() string {
	switch t.Kind {
	case KindDecimal:
		return fmt.Sprintf("decimal(%d, %d)", t.Precision, t.Scale)
	case KindFixed:
		return fmt.Sprintf("fixed[%d]", t.Length)
	case KindList:
		return fmt.Sprintf("list<%s>", t.Element.String())
	case KindMap:
		return fmt.Sprintf("map<%s, %s>", t.Key.String(), t.Value.String())
	case KindStruct:
		return "struct"
	default:
		return string(t.Kind)
	}
}

// Constructors.

func BooleanType() Type     { return Type{Kind: KindBoolean} }
func IntType() Type         { return Type{Kind: KindInt} }
func LongType() Type        { return Type{Kind: KindLong} }
func FloatType() Type       { return Type{Kind: KindFloat} }
func DoubleType() Type      { return Type{Kind: KindDouble} }
func DateType() Type        { return Type{Kind: KindDate} }
func TimeType() Type        { return Type{Kind: KindTime} }
func TimestampType() Type   { return Type{Kind: KindTimestamp} }
func TimestamptzType() Type { return Type{Kind: KindTimestamptz} }
func StringType() Type      { return Type{Kind: KindString} }
func UUIDType() Type        { return Type{Kind: KindUUID} }
func BinaryType() Type      { return Type{Kind: KindBinary} }

// DecimalType constructs decimal(P,S); caller is responsible for 1<=P<=38,
// 0<=S<=P. Neither this constructor nor NewSchema checks those bounds.
func DecimalType(precision, scale int) Type {
	return Type{Kind: KindDecimal, Precision: precision, Scale: scale}
}

// FixedType constructs fixed(L); caller is responsible for L>0, which is
// likewise not checked here or by NewSchema.
func FixedType(length int) Type {
	return Type{Kind: KindFixed, Length: length}
}

// ListType constructs a list type with the given synthetic element id.
func ListType(elementID int, element Type, elementRequired bool) Type {
	return Type{Kind: KindList, ElementID: elementID, Element: &element, ElementRequired: elementRequired}
}

// MapType constructs a map type with synthetic key/value ids. Keys are
// always required per the data model.
func MapType(keyID int, key Type, valueID int, value Type, valueRequired bool) Type {
	return Type{Kind: KindMap, KeyID: keyID, Key: &key, ValueID: valueID, Value: &value, ValueRequired: valueRequired}
}

// StructType constructs a struct type from an ordered field list.
func StructType(fields ...NestedField) Type {
	return Type{Kind: KindStruct, Fields: fields}
}
