package iceberg

import "fmt"

// FindField resolves idOrName (an int field id, or a string dotted name)
// to its NestedField. caseSensitive only affects string lookups.
func (s *Schema) FindField(idOrName any, caseSensitive bool) (NestedField, error) {
	s.ensureIndexes()
	switch v := idOrName.(type) {
	case int:
		f, ok := s.byID[v]
		if !ok {
			return NestedField{}, resolveErrorf("Could not find field with id: %d", v)
		}
		return f, nil
	case string:
		id, ok := s.resolveName(v, caseSensitive)
		if !ok {
			return NestedField{}, resolveErrorf("Could not find field with name: %s", v)
		}
		return s.byID[id], nil
	default:
		return NestedField{}, resolveErrorf("Could not find field: %v", idOrName)
	}
}

func (s *Schema) resolveName(name string, caseSensitive bool) (int, bool) {
	if caseSensitive {
		id, ok := s.byName[name]
		return id, ok
	}
	id, ok := s.byNameLower[lower(name)]
	return id, ok
}

// FindColumnName returns the full dotted path for id, preferring the long
// (canonical) form, or ok=false when the id is not present.
func (s *Schema) FindColumnName(id int) (string, bool) {
	s.ensureIndexes()
	name, ok := s.idToColumnName[id]
	return name, ok
}

// FindType returns the type of the resolved field.
func (s *Schema) FindType(idOrName any, caseSensitive bool) (Type, error) {
	f, err := s.FindField(idOrName, caseSensitive)
	if err != nil {
		return Type{}, err
	}
	return f.Type, nil
}

// Select returns a new Schema containing only fields reachable from the
// named roots, preserving declaration order, with IdentifierFieldIDs
// intersected with the surviving ids.
func (s *Schema) Select(caseSensitive bool, names ...string) (*Schema, error) {
	s.ensureIndexes()
	wanted := map[string]bool{}
	for _, n := range names {
		key := n
		if !caseSensitive {
			key = lower(n)
		}
		wanted[key] = true
	}

	var kept []NestedField
	for _, f := range s.Fields {
		key := f.Name
		if !caseSensitive {
			key = lower(f.Name)
		}
		if wanted[key] {
			kept = append(kept, f)
			delete(wanted, key)
		}
	}
	if len(wanted) > 0 {
		for n := range wanted {
			return nil, NewArgError(fmt.Sprintf("Could not find column: '%s'", firstOriginalCase(names, n, caseSensitive)), ErrValue)
		}
	}

	survivors := map[int]bool{}
	collectIDs(StructType(kept...), survivors)
	var ids []int
	for _, id := range s.IdentifierFieldIDs {
		if survivors[id] {
			ids = append(ids, id)
		}
	}

	return NewSchema(kept, WithSchemaID(s.SchemaID), WithIdentifierFieldIDs(ids...))
}

func firstOriginalCase(names []string, lowered string, caseSensitive bool) string {
	if caseSensitive {
		return lowered
	}
	for _, n := range names {
		if lower(n) == lowered {
			return n
		}
	}
	return lowered
}
