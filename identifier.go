package iceberg

import "fmt"

// validateIdentifierField enforces the seven identifier-field invariants
// simultaneously: existence, primitiveness, requiredness, no-float,
// no-nesting-in-list/map, no-nesting-in-optional-struct.
func validateIdentifierField(s *Schema, id int) error {
	field, path, ok := findFieldWithPath(s.AsStruct(), id, nil)
	if !ok {
		return NewArgError(fmt.Sprintf("Could not find field with id: %d", id), ErrValue)
	}

	if !field.Type.IsPrimitive() {
		return NewArgError(fmt.Sprintf("Identifier field %d invalid: not a primitive type field", id), ErrValue)
	}
	if !field.Required {
		return NewArgError(fmt.Sprintf("Identifier field %d invalid: not a required field", id), ErrValue)
	}
	if field.Type.Kind == KindFloat || field.Type.Kind == KindDouble {
		return NewArgError(fmt.Sprintf("Identifier field %d invalid: must not be float or double field", id), ErrValue)
	}

	for _, a := range path {
		if a.kind == ancestorList || a.kind == ancestorMap {
			return NewArgError(
				fmt.Sprintf("Cannot add field %s as an identifier field: must not be nested in %s", field.Name, a.field.String()),
				ErrValue,
			)
		}
	}
	for _, a := range path {
		if a.kind == ancestorStruct && !a.field.Required {
			return NewArgError(
				fmt.Sprintf("Cannot add field %s as an identifier field: must not be nested in an optional field %s", field.Name, a.field.String()),
				ErrValue,
			)
		}
	}
	return nil
}

type ancestorKind int

const (
	ancestorStruct ancestorKind = iota
	ancestorList
	ancestorMap
)

type ancestor struct {
	kind  ancestorKind
	field NestedField
}

// findFieldWithPath returns the field with the given id and the chain of
// ancestor fields/container-kinds leading to it (root to parent, excluding
// the field itself). The ancestor recorded for a list/map-typed field is the
// field itself (e.g. "location"), matching the error messages which name the
// containing field, not its synthetic element/key/value.
func findFieldWithPath(t Type, id int, path []ancestor) (NestedField, []ancestor, bool) {
	switch t.Kind {
	case KindStruct:
		for _, f := range t.Fields {
			if f.ID == id {
				return f, path, true
			}
			var childAncestor ancestor
			switch {
			case f.Type.IsList():
				childAncestor = ancestor{kind: ancestorList, field: f}
			case f.Type.IsMap():
				childAncestor = ancestor{kind: ancestorMap, field: f}
			default:
				childAncestor = ancestor{kind: ancestorStruct, field: f}
			}
			childPath := append(append([]ancestor(nil), path...), childAncestor)
			if found, p, ok := findFieldWithPath(f.Type, id, childPath); ok {
				return found, p, true
			}
		}
	case KindList:
		if t.ElementID == id {
			return NestedField{ID: t.ElementID, Name: "element", Type: *t.Element, Required: t.ElementRequired}, path, true
		}
		return findFieldWithPath(*t.Element, id, path)
	case KindMap:
		if t.KeyID == id {
			return NestedField{ID: t.KeyID, Name: "key", Type: *t.Key, Required: true}, path, true
		}
		if t.ValueID == id {
			return NestedField{ID: t.ValueID, Name: "value", Type: *t.Value, Required: t.ValueRequired}, path, true
		}
		if found, p, ok := findFieldWithPath(*t.Key, id, path); ok {
			return found, p, true
		}
		return findFieldWithPath(*t.Value, id, path)
	}
	return NestedField{}, nil, false
}
