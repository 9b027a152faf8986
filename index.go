package iceberg

// indexByID builds id -> NestedField for the whole tree, including
// synthetic fields for list elements ("element") and map keys/values
// ("key"/"value").
func indexByID(s *Schema) map[int]NestedField {
	out := map[int]NestedField{}
	var walk func(Type)
	walk = func(t Type) {
		switch t.Kind {
		case KindStruct:
			for _, f := range t.Fields {
				out[f.ID] = f
				walk(f.Type)
			}
		case KindList:
			out[t.ElementID] = NestedField{ID: t.ElementID, Name: "element", Type: *t.Element, Required: t.ElementRequired}
			walk(*t.Element)
		case KindMap:
			out[t.KeyID] = NestedField{ID: t.KeyID, Name: "key", Type: *t.Key, Required: true}
			out[t.ValueID] = NestedField{ID: t.ValueID, Name: "value", Type: *t.Value, Required: t.ValueRequired}
			walk(*t.Key)
			walk(*t.Value)
		}
	}
	walk(s.AsStruct())
	return out
}

// indexByName builds dotted-path -> id. List elements contribute a
// ".element" segment; map key/value contribute ".key"/".value". When a
// struct sits directly under a list's element, a short path omitting
// ".element" is additionally emitted for its whole subtree. Short paths are
// never emitted under ".key"/".value".
func indexByName(s *Schema) map[string]int {
	out := map[string]int{}
	buildNamePaths(s.AsStruct(), "", out, map[int]string{})
	return out
}

// buildNamePaths populates out (name -> id, every alias) and, when idPath is
// non-nil, records the first (canonical, long-form) path seen for each id —
// struct field names and a list's own ".element"/map's ".key"/".value" are
// always visited before any short-form duplicate, so a write-once guard is
// enough to prefer the long form.
func buildNamePaths(t Type, prefix string, out map[string]int, idPath map[int]string) {
	record := func(id int, path string) {
		out[path] = id
		if idPath != nil {
			if _, ok := idPath[id]; !ok {
				idPath[id] = path
			}
		}
	}
	switch t.Kind {
	case KindStruct:
		for _, f := range t.Fields {
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			record(f.ID, path)
			buildNamePaths(f.Type, path, out, idPath)
		}
	case KindList:
		elementPath := prefix + ".element"
		record(t.ElementID, elementPath)
		buildNamePaths(*t.Element, elementPath, out, idPath)
		if t.Element.IsStruct() {
			// short form: mirror the element struct's subtree directly
			// under prefix, skipping this list's own ".element" segment.
			// Pass a nil idPath so the short alias never wins the canonical
			// long-form path already recorded above.
			buildNamePaths(*t.Element, prefix, out, nil)
		}
	case KindMap:
		keyPath := prefix + ".key"
		record(t.KeyID, keyPath)
		buildNamePaths(*t.Key, keyPath, out, idPath)
		valuePath := prefix + ".value"
		record(t.ValueID, valuePath)
		buildNamePaths(*t.Value, valuePath, out, idPath)
	}
}

// buildPositionAccessors builds id -> Accessor for every field reachable
// through structs only; a list or map interrupts the chain, so fields
// nested inside one receive no accessor.
func buildPositionAccessors(s *Schema) map[int]*Accessor {
	out := map[int]*Accessor{}
	walkPositions(s.AsStruct(), nil, out)
	return out
}

func walkPositions(t Type, prefix []int, out map[int]*Accessor) {
	for j, f := range t.Fields {
		path := append(append([]int(nil), prefix...), j)
		out[f.ID] = makeAccessor(path)
		if f.Type.IsStruct() {
			walkPositions(f.Type, path, out)
		}
	}
}

func makeAccessor(positions []int) *Accessor {
	if len(positions) == 1 {
		return &Accessor{Position: positions[0]}
	}
	return &Accessor{Position: positions[0], Inner: makeAccessor(positions[1:])}
}

// IndexByID exposes index_by_id over either a *Schema or a Type, matching
// the reference implementation's dynamically-typed entry point. Any other
// input is rejected with NotImplementedError, since Go's static typing
// otherwise makes "visiting a non-type" unrepresentable.
func IndexByID(input any) (map[int]NestedField, error) {
	switch v := input.(type) {
	case *Schema:
		v.ensureIndexes()
		return v.byID, nil
	case Schema:
		return indexByID(&v), nil
	case Type:
		return indexByID(&Schema{Fields: []NestedField{{Type: v}}}), nil
	default:
		return nil, notImplementedErrorf("Cannot visit non-type: %v", input)
	}
}

// IndexByName is the name-indexed counterpart of IndexByID.
func IndexByName(input any) (map[string]int, error) {
	switch v := input.(type) {
	case *Schema:
		v.ensureIndexes()
		return v.byName, nil
	case Schema:
		return indexByName(&v), nil
	default:
		return nil, notImplementedErrorf("Cannot visit non-type: %v", input)
	}
}

// BuildPositionAccessors is the public entry point for build_position_accessors.
func BuildPositionAccessors(s *Schema) map[int]*Accessor {
	s.ensureIndexes()
	return s.accessors
}
