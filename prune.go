package iceberg

import "fmt"

// PruneColumns returns a minimal sub-schema such that every id in
// selectedIDs is reachable, adding ancestor structs automatically with only
// the needed children. List/map projection follows rules distinct from
// struct rules (see pruneList/pruneMap below).
func PruneColumns(schema *Schema, selectedIDs map[int]bool, selectFullTypes bool) (*Schema, error) {
	kept, _, err := pruneStructChildren(schema.Fields, selectedIDs, selectFullTypes)
	if err != nil {
		return nil, err
	}

	survivors := map[int]bool{}
	collectIDs(StructType(kept...), survivors)

	var ids []int
	for _, id := range schema.IdentifierFieldIDs {
		if survivors[id] {
			ids = append(ids, id)
		}
	}

	return NewSchema(kept, WithSchemaID(schema.SchemaID), WithIdentifierFieldIDs(ids...))
}

func collectIDs(t Type, out map[int]bool) {
	switch t.Kind {
	case KindStruct:
		for _, f := range t.Fields {
			out[f.ID] = true
			collectIDs(f.Type, out)
		}
	case KindList:
		out[t.ElementID] = true
		collectIDs(*t.Element, out)
	case KindMap:
		out[t.KeyID] = true
		out[t.ValueID] = true
		collectIDs(*t.Key, out)
		collectIDs(*t.Value, out)
	}
}

// pruneStructChildren prunes an ordered field list, returning the surviving
// fields in declaration order and whether anything survived.
func pruneStructChildren(fields []NestedField, selected map[int]bool, selectFull bool) ([]NestedField, bool, error) {
	var kept []NestedField
	matched := false

	for _, f := range fields {
		if selected[f.ID] {
			switch {
			case f.Type.IsList() || f.Type.IsMap():
				return nil, false, explicitProjectionError(f)
			case f.Type.IsStruct():
				nf := f
				if !selectFull {
					prunedFields, _, err := pruneStructChildren(f.Type.Fields, selected, selectFull)
					if err != nil {
						return nil, false, err
					}
					nf.Type = StructType(prunedFields...)
				}
				kept = append(kept, nf)
				matched = true
			default:
				kept = append(kept, f)
				matched = true
			}
			continue
		}

		switch f.Type.Kind {
		case KindStruct:
			prunedFields, childMatched, err := pruneStructChildren(f.Type.Fields, selected, selectFull)
			if err != nil {
				return nil, false, err
			}
			if childMatched {
				nf := f
				nf.Type = StructType(prunedFields...)
				kept = append(kept, nf)
				matched = true
			}
		case KindList:
			prunedType, childMatched, err := pruneList(f.Type, selected, selectFull)
			if err != nil {
				return nil, false, err
			}
			if childMatched {
				nf := f
				nf.Type = *prunedType
				kept = append(kept, nf)
				matched = true
			}
		case KindMap:
			prunedType, childMatched, err := pruneMap(f.Type, selected, selectFull)
			if err != nil {
				return nil, false, err
			}
			if childMatched {
				nf := f
				nf.Type = *prunedType
				kept = append(kept, nf)
				matched = true
			}
		}
	}

	return kept, matched, nil
}

func explicitProjectionError(f NestedField) error {
	return NewArgError(
		fmt.Sprintf("Cannot explicitly project List or Map types, %d:%s of type %s was selected", f.ID, f.Name, f.Type.String()),
		ErrValue,
	)
}

// pruneList handles a list selected by its element id (whole element kept,
// full or recursively pruned) or by a descendant id within the element.
func pruneList(t Type, selected map[int]bool, selectFull bool) (*Type, bool, error) {
	if selected[t.ElementID] {
		if selectFull || t.Element.IsPrimitive() {
			full := t
			return &full, true, nil
		}
		newElem, _, err := pruneContainerOrStruct(*t.Element, selected, selectFull)
		if err != nil {
			return nil, false, err
		}
		newType := ListType(t.ElementID, *newElem, t.ElementRequired)
		return &newType, true, nil
	}

	switch t.Element.Kind {
	case KindStruct:
		prunedFields, matched, err := pruneStructChildren(t.Element.Fields, selected, selectFull)
		if err != nil || !matched {
			return nil, matched, err
		}
		newType := ListType(t.ElementID, StructType(prunedFields...), t.ElementRequired)
		return &newType, true, nil
	case KindList:
		prunedInner, matched, err := pruneList(*t.Element, selected, selectFull)
		if err != nil || !matched {
			return nil, matched, err
		}
		newType := ListType(t.ElementID, *prunedInner, t.ElementRequired)
		return &newType, true, nil
	case KindMap:
		prunedInner, matched, err := pruneMap(*t.Element, selected, selectFull)
		if err != nil || !matched {
			return nil, matched, err
		}
		newType := ListType(t.ElementID, *prunedInner, t.ElementRequired)
		return &newType, true, nil
	default:
		return nil, false, nil
	}
}

// pruneContainerOrStruct recurses into a struct/list/map using the normal
// rules for each, used when a container's own id was directly selected and
// select_full_types is false.
func pruneContainerOrStruct(t Type, selected map[int]bool, selectFull bool) (*Type, bool, error) {
	switch t.Kind {
	case KindStruct:
		prunedFields, _, err := pruneStructChildren(t.Fields, selected, selectFull)
		if err != nil {
			return nil, false, err
		}
		newType := StructType(prunedFields...)
		return &newType, true, nil
	case KindList:
		return pruneList(t, selected, selectFull)
	case KindMap:
		return pruneMap(t, selected, selectFull)
	default:
		return &t, true, nil
	}
}

// pruneMap handles a map selected by its own key or value id (entire
// structure retained, both subtrees, regardless of select_full_types) or by
// a descendant reached within the key or value subtree, in which case the
// OTHER arm is still retained intact.
func pruneMap(t Type, selected map[int]bool, selectFull bool) (*Type, bool, error) {
	if selected[t.KeyID] || selected[t.ValueID] {
		full := t
		return &full, true, nil
	}

	var finalKey, finalValue Type
	keyMatched, valueMatched := false, false
	var err error

	switch t.Key.Kind {
	case KindStruct, KindList, KindMap:
		var pt *Type
		pt, keyMatched, err = pruneNestedContainer(*t.Key, selected, selectFull)
		if err != nil {
			return nil, false, err
		}
		if keyMatched {
			finalKey = *pt
		}
	}
	switch t.Value.Kind {
	case KindStruct, KindList, KindMap:
		var pt *Type
		pt, valueMatched, err = pruneNestedContainer(*t.Value, selected, selectFull)
		if err != nil {
			return nil, false, err
		}
		if valueMatched {
			finalValue = *pt
		}
	}

	if !keyMatched && !valueMatched {
		return nil, false, nil
	}
	if !keyMatched {
		finalKey = *t.Key
	}
	if !valueMatched {
		finalValue = *t.Value
	}

	newType := MapType(t.KeyID, finalKey, t.ValueID, finalValue, t.ValueRequired)
	return &newType, true, nil
}

func pruneNestedContainer(t Type, selected map[int]bool, selectFull bool) (*Type, bool, error) {
	switch t.Kind {
	case KindStruct:
		prunedFields, matched, err := pruneStructChildren(t.Fields, selected, selectFull)
		if err != nil || !matched {
			return nil, matched, err
		}
		newType := StructType(prunedFields...)
		return &newType, true, nil
	case KindList:
		return pruneList(t, selected, selectFull)
	case KindMap:
		return pruneMap(t, selected, selectFull)
	default:
		return nil, false, nil
	}
}
