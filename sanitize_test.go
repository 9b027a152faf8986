package iceberg

import "testing"

func TestSanitizeColumnNamesEscapesUnsafeBytes(t *testing.T) {
	s := mustSchema(t, []NestedField{
		mustField(1, "valid_name", StringType(), false),
		mustField(2, "name with space", StringType(), false),
		mustField(3, "col-dash", StringType(), false),
	})

	sanitized, err := SanitizeColumnNames(s)
	assertNoErr(t, err)

	if sanitized.Fields[0].Name != "valid_name" {
		t.Errorf("valid_name was rewritten to %q, want unchanged", sanitized.Fields[0].Name)
	}
	if sanitized.Fields[1].Name != "name_x20with_x20space" {
		t.Errorf("name with space -> %q, want name_x20with_x20space", sanitized.Fields[1].Name)
	}
	if sanitized.Fields[2].Name != "col_x2Ddash" {
		t.Errorf("col-dash -> %q, want col_x2Ddash", sanitized.Fields[2].Name)
	}
}

func TestSanitizeColumnNamesIdempotent(t *testing.T) {
	s := mustSchema(t, []NestedField{
		mustField(1, "name with space", StringType(), false),
	})
	once, err := SanitizeColumnNames(s)
	assertNoErr(t, err)
	twice, err := SanitizeColumnNames(once)
	assertNoErr(t, err)
	if !once.Equals(twice) {
		t.Errorf("sanitizing twice changed the schema: once=%s twice=%s", once, twice)
	}
}

func TestSanitizeColumnNamesRecursesIntoNestedTypes(t *testing.T) {
	s := mustSchema(t, []NestedField{
		mustField(1, "top", StructType(
			mustField(2, "bad name", StringType(), false),
		), false),
		mustField(3, "a list", ListType(4, StringType(), true), true),
	})

	sanitized, err := SanitizeColumnNames(s)
	assertNoErr(t, err)

	inner := sanitized.Fields[0].Type.Fields[0]
	if inner.Name != "bad_x20name" {
		t.Errorf("nested struct field name = %q, want bad_x20name", inner.Name)
	}
	if sanitized.Fields[1].Name != "a_x20list" {
		t.Errorf("list field name = %q, want a_x20list", sanitized.Fields[1].Name)
	}
}
