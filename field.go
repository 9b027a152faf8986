package iceberg

import "fmt"

// NestedField is a single column definition inside a struct (including the
// schema's own top-level struct). Mirrors the teacher's FieldDef, with Type
// generalized to the recursive type tree and an id added since the core
// addresses fields by stable numeric id, not just by name.
type NestedField struct {
	ID       int
	Name     string
	Type     Type
	Required bool
	Doc      string

	InitialDefault *Literal
	WriteDefault   *Literal
}

// Equals is structural equality of the field including id, name, type and
// requiredness; docs and defaults are not part of identity comparisons used
// by Schema.Equals, matching the reference semantics where defaults do not
// affect schema equivalence checks used in tests.
func (f NestedField) Equals(o NestedField) bool {
	return f.ID == o.ID && f.Name == o.Name && f.Required == o.Required && f.Type.Equals(o.Type)
}

// String renders "<id>: <name>: <required|optional> <type>", the per-line
// form used by Schema's Display.
func (f NestedField) String() string {
	req := "optional"
	if f.Required {
		req = "required"
	}
	return fmt.Sprintf("%d: %s: %s %s", f.ID, f.Name, req, f.Type.String())
}
