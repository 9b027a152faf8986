package iceberg

import "testing"

func TestIdentifierFieldValid(t *testing.T) {
	fields := []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(2, "name", StringType(), false),
	}
	s, err := NewSchema(fields, WithIdentifierFieldIDs(1))
	assertNoErr(t, err)
	if len(s.IdentifierFieldIDs) != 1 || s.IdentifierFieldIDs[0] != 1 {
		t.Errorf("unexpected IdentifierFieldIDs: %v", s.IdentifierFieldIDs)
	}
}

func TestIdentifierFieldMissing(t *testing.T) {
	fields := []NestedField{mustField(1, "id", LongType(), true)}
	_, err := NewSchema(fields, WithIdentifierFieldIDs(999))
	assertErrContains(t, err, "Could not find field with id: 999")
}

func TestIdentifierFieldNotPrimitive(t *testing.T) {
	fields := []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(2, "person", StructType(mustField(3, "name", StringType(), true)), true),
	}
	_, err := NewSchema(fields, WithIdentifierFieldIDs(2))
	assertErrContains(t, err, "Identifier field 2 invalid: not a primitive type field")
}

func TestIdentifierFieldNotRequired(t *testing.T) {
	fields := []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(2, "name", StringType(), false),
	}
	_, err := NewSchema(fields, WithIdentifierFieldIDs(2))
	assertErrContains(t, err, "Identifier field 2 invalid: not a required field")
}

func TestIdentifierFieldFloatOrDouble(t *testing.T) {
	fields := []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(2, "score", FloatType(), true),
	}
	_, err := NewSchema(fields, WithIdentifierFieldIDs(2))
	assertErrContains(t, err, "Identifier field 2 invalid: must not be float or double field")
}

func TestIdentifierFieldNestedInListNonFloat(t *testing.T) {
	fields := []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(11, "location", ListType(12, StructType(
			mustField(13, "latitude", StringType(), true),
		), true), true),
	}
	_, err := NewSchema(fields, WithIdentifierFieldIDs(13))
	assertErrContains(t, err, "Cannot add field latitude as an identifier field: must not be nested in")
	assertErrContains(t, err, "location")
}

func TestIdentifierFieldNestedInOptionalStruct(t *testing.T) {
	fields := []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(15, "person", StructType(
			mustField(17, "age", LongType(), true),
		), false),
	}
	_, err := NewSchema(fields, WithIdentifierFieldIDs(17))
	assertErrContains(t, err, "must not be nested in an optional field")
	assertErrContains(t, err, "person")
}
