package iceberg

import "fmt"

// SanitizeColumnNames rewrites every field name so it contains only
// [A-Za-z0-9_], replacing any other byte with a "_xHH" hex escape.
// Idempotent: an already-sanitized name is returned unchanged.
func SanitizeColumnNames(s *Schema) (*Schema, error) {
	fields := sanitizeFields(s.Fields)
	return NewSchema(fields, WithSchemaID(s.SchemaID), WithIdentifierFieldIDs(s.IdentifierFieldIDs...))
}

func sanitizeFields(fields []NestedField) []NestedField {
	out := make([]NestedField, len(fields))
	for i, f := range fields {
		nf := f
		nf.Name = sanitizeName(f.Name)
		nf.Type = sanitizeType(f.Type)
		out[i] = nf
	}
	return out
}

func sanitizeType(t Type) Type {
	switch t.Kind {
	case KindStruct:
		return StructType(sanitizeFields(t.Fields)...)
	case KindList:
		element := sanitizeType(*t.Element)
		return ListType(t.ElementID, element, t.ElementRequired)
	case KindMap:
		key := sanitizeType(*t.Key)
		value := sanitizeType(*t.Value)
		return MapType(t.KeyID, key, t.ValueID, value, t.ValueRequired)
	default:
		return t
	}
}

func sanitizeName(name string) string {
	isSafe := func(b byte) bool {
		return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
	}
	needsEscape := false
	for i := 0; i < len(name); i++ {
		if !isSafe(name[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return name
	}

	var out []byte
	for i := 0; i < len(name); i++ {
		b := name[i]
		if isSafe(b) {
			out = append(out, b)
			continue
		}
		out = append(out, []byte(fmt.Sprintf("_x%02X", b))...)
	}
	return string(out)
}
