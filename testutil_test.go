package iceberg

import (
	"strings"
	"testing"
)

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error %q does not contain %q", err.Error(), substr)
	}
}

func assertErrCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	switch e := err.(type) {
	case *ArgError:
		if e.Code != code {
			t.Errorf("expected code %q, got %q: %v", code, e.Code, err)
		}
	case *SchemaError:
		if e.Code != code {
			t.Errorf("expected code %q, got %q: %v", code, e.Code, err)
		}
	default:
		t.Errorf("expected *ArgError or *SchemaError, got %T: %v", err, err)
	}
}

func mustField(id int, name string, t Type, required bool) NestedField {
	return NestedField{ID: id, Name: name, Type: t, Required: required}
}

func mustSchema(t *testing.T, fields []NestedField, opts ...SchemaOption) *Schema {
	t.Helper()
	s, err := NewSchema(fields, opts...)
	assertNoErr(t, err)
	return s
}
