package iceberg

import "testing"

func TestUnionByNameAppendsNewFieldsWithFreshIDs(t *testing.T) {
	current := mustSchema(t, []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(2, "name", StringType(), false),
	})
	newSchema := mustSchema(t, []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(2, "name", StringType(), false),
		mustField(99, "email", StringType(), false),
	})

	merged, err := UnionByName(current, newSchema)
	assertNoErr(t, err)
	if len(merged.Fields) != 3 {
		t.Fatalf("merged.Fields = %+v, want 3 fields", merged.Fields)
	}
	email, err := merged.FindField("email", true)
	assertNoErr(t, err)
	if email.ID != 3 {
		t.Errorf("new field email id = %d, want 3 (current.HighestFieldID()+1)", email.ID)
	}
}

func TestUnionByNameAllocatesNestedIDsInPreorder(t *testing.T) {
	current := mustSchema(t, []NestedField{
		mustField(1, "id", LongType(), true),
	})
	newSchema := mustSchema(t, []NestedField{
		mustField(1, "id", LongType(), true),
		mustField(100, "loc", StructType(
			mustField(101, "lat", DoubleType(), false),
			mustField(102, "lon", DoubleType(), false),
		), false),
	})

	merged, err := UnionByName(current, newSchema)
	assertNoErr(t, err)

	loc, err := merged.FindField("loc", true)
	assertNoErr(t, err)
	if loc.ID != 2 {
		t.Errorf("loc id = %d, want 2", loc.ID)
	}
	if len(loc.Type.Fields) != 2 || loc.Type.Fields[0].ID != 3 || loc.Type.Fields[1].ID != 4 {
		t.Errorf("loc.Type.Fields = %+v, want ids 3 and 4 in preorder", loc.Type.Fields)
	}
}

func TestUnionByNameWidensType(t *testing.T) {
	current := mustSchema(t, []NestedField{mustField(1, "count", IntType(), true)})
	newSchema := mustSchema(t, []NestedField{mustField(1, "count", LongType(), true)})

	merged, err := UnionByName(current, newSchema)
	assertNoErr(t, err)
	f, err := merged.FindField("count", true)
	assertNoErr(t, err)
	if !f.Type.Equals(LongType()) {
		t.Errorf("count type = %v, want long (widened)", f.Type)
	}
}

func TestUnionByNameSuppressesDowngrade(t *testing.T) {
	current := mustSchema(t, []NestedField{mustField(1, "count", LongType(), true)})
	newSchema := mustSchema(t, []NestedField{mustField(1, "count", IntType(), true)})

	merged, err := UnionByName(current, newSchema)
	assertNoErr(t, err)
	f, err := merged.FindField("count", true)
	assertNoErr(t, err)
	if !f.Type.Equals(LongType()) {
		t.Errorf("count type = %v, want long (current kept, never narrowed)", f.Type)
	}
}

func TestUnionByNameKeepsCurrentRequirednessOnOverlap(t *testing.T) {
	// current required, new optional: must stay required (never narrow an
	// existing required field to optional).
	current := mustSchema(t, []NestedField{mustField(1, "name", StringType(), true)})
	newSchema := mustSchema(t, []NestedField{mustField(1, "name", StringType(), false)})

	merged, err := UnionByName(current, newSchema)
	assertNoErr(t, err)
	f, err := merged.FindField("name", true)
	assertNoErr(t, err)
	if !f.Required {
		t.Errorf("name.Required = false, want true (current's requiredness is kept on overlap)")
	}

	// current optional, new required: must stay optional (never tighten an
	// existing optional field to required).
	current2 := mustSchema(t, []NestedField{mustField(1, "name", StringType(), false)})
	newSchema2 := mustSchema(t, []NestedField{mustField(1, "name", StringType(), true)})

	merged2, err := UnionByName(current2, newSchema2)
	assertNoErr(t, err)
	f2, err := merged2.FindField("name", true)
	assertNoErr(t, err)
	if f2.Required {
		t.Errorf("name.Required = true, want false (current's requiredness is kept on overlap)")
	}
}

func TestUnionByNameIncompatibleChangeRejected(t *testing.T) {
	current := mustSchema(t, []NestedField{
		mustField(1, "aList", ListType(2, StringType(), true), true),
	})
	newSchema := mustSchema(t, []NestedField{
		mustField(1, "aList", ListType(2, DoubleType(), true), true),
	})

	_, err := UnionByName(current, newSchema)
	assertErrCode(t, err, ErrValidation)
	assertErrContains(t, err, "Cannot change column type: aList.element: string -> double")
}

func TestUnionByNameRecursesIntoMatchingStructs(t *testing.T) {
	current := mustSchema(t, []NestedField{
		mustField(1, "person", StructType(
			mustField(2, "name", StringType(), false),
		), false),
	})
	newSchema := mustSchema(t, []NestedField{
		mustField(1, "person", StructType(
			mustField(2, "name", StringType(), false),
			mustField(50, "age", IntType(), false),
		), false),
	})

	merged, err := UnionByName(current, newSchema)
	assertNoErr(t, err)
	person, err := merged.FindField("person", true)
	assertNoErr(t, err)
	if len(person.Type.Fields) != 2 {
		t.Fatalf("person.Type.Fields = %+v, want 2 fields", person.Type.Fields)
	}
	if person.Type.Fields[1].Name != "age" || person.Type.Fields[1].ID != 3 {
		t.Errorf("age field = %+v, want name=age id=3", person.Type.Fields[1])
	}
}
