package iceberg

// idAllocator hands out fresh field ids starting at current.highest_field_id
// + 1, in the traversal order fields are visited during a merge.
type idAllocator struct {
	next int
}

func (a *idAllocator) take() int {
	id := a.next
	a.next++
	return id
}

// UnionByName merges new into current, matching fields by name at each
// struct level. Fields present only in current are kept unchanged. Fields
// present only in new are appended with freshly allocated ids. Fields
// present in both are reconciled: types are promoted toward the wider of
// the two (never downgraded), and requiredness is inherited from current
// unconditionally — union never narrows an existing required field to
// optional, and never tightens an existing optional field to required.
func UnionByName(current, new *Schema) (*Schema, error) {
	alloc := &idAllocator{next: current.HighestFieldID() + 1}
	mergedFields, err := mergeStructFields(current.Fields, new.Fields, "", alloc)
	if err != nil {
		return nil, err
	}
	return NewSchema(mergedFields, WithSchemaID(current.SchemaID), WithIdentifierFieldIDs(current.IdentifierFieldIDs...))
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// mergeStructFields merges two ordered field lists by name, preserving
// current's field order and appending new-only fields at the end in new's
// declaration order.
func mergeStructFields(curFields, newFields []NestedField, prefix string, alloc *idAllocator) ([]NestedField, error) {
	newByName := map[string]NestedField{}
	for _, nf := range newFields {
		newByName[nf.Name] = nf
	}

	matched := map[string]bool{}
	var merged []NestedField
	for _, cf := range curFields {
		fieldPath := joinPath(prefix, cf.Name)
		nf, ok := newByName[cf.Name]
		if !ok {
			merged = append(merged, cf)
			continue
		}
		matched[cf.Name] = true

		mergedType, err := mergeType(cf.Type, nf.Type, fieldPath, alloc)
		if err != nil {
			return nil, err
		}
		result := cf
		result.Required = cf.Required
		result.Type = mergedType
		merged = append(merged, result)
	}

	for _, nf := range newFields {
		if matched[nf.Name] {
			continue
		}
		merged = append(merged, allocateNewField(nf, alloc))
	}

	return merged, nil
}

// mergeType reconciles a current/new type pair reached at the same path.
// Struct/list/map pairs of matching kind recurse structurally; anything
// else (primitives, or a kind mismatch) is reconciled by reconcileType.
func mergeType(cur, newT Type, path string, alloc *idAllocator) (Type, error) {
	switch {
	case cur.IsStruct() && newT.IsStruct():
		mergedFields, err := mergeStructFields(cur.Fields, newT.Fields, path, alloc)
		if err != nil {
			return Type{}, err
		}
		return StructType(mergedFields...), nil
	case cur.IsList() && newT.IsList():
		elemType, err := mergeType(*cur.Element, *newT.Element, path+".element", alloc)
		if err != nil {
			return Type{}, err
		}
		required := cur.ElementRequired && newT.ElementRequired
		return ListType(cur.ElementID, elemType, required), nil
	case cur.IsMap() && newT.IsMap():
		keyType, err := mergeType(*cur.Key, *newT.Key, path+".key", alloc)
		if err != nil {
			return Type{}, err
		}
		valType, err := mergeType(*cur.Value, *newT.Value, path+".value", alloc)
		if err != nil {
			return Type{}, err
		}
		required := cur.ValueRequired && newT.ValueRequired
		return MapType(cur.KeyID, keyType, cur.ValueID, valType, required), nil
	default:
		return reconcileType(cur, newT, path)
	}
}

// reconcileType resolves a same-path type disagreement: identical types are
// kept, a valid promotion (either direction) resolves to the wider type
// without ever narrowing, and anything else is a ValidationError.
func reconcileType(cur, newT Type, path string) (Type, error) {
	if cur.Equals(newT) {
		return cur, nil
	}
	if promoted, err := Promote(cur, newT); err == nil {
		return promoted, nil
	}
	if _, err := Promote(newT, cur); err == nil {
		return cur, nil
	}
	return Type{}, validationErrorf("Cannot change column type: %s: %s -> %s", path, cur.String(), newT.String())
}

// allocateNewField assigns fresh ids, in preorder, to a field (and its
// entire subtree) that exists only on the new side.
func allocateNewField(nf NestedField, alloc *idAllocator) NestedField {
	result := nf
	result.ID = alloc.take()
	result.Type = allocateNewType(nf.Type, alloc)
	return result
}

func allocateNewType(t Type, alloc *idAllocator) Type {
	switch t.Kind {
	case KindStruct:
		var fields []NestedField
		for _, f := range t.Fields {
			fields = append(fields, allocateNewField(f, alloc))
		}
		return StructType(fields...)
	case KindList:
		elementID := alloc.take()
		element := allocateNewType(*t.Element, alloc)
		return ListType(elementID, element, t.ElementRequired)
	case KindMap:
		keyID := alloc.take()
		key := allocateNewType(*t.Key, alloc)
		valueID := alloc.take()
		value := allocateNewType(*t.Value, alloc)
		return MapType(keyID, key, valueID, value, t.ValueRequired)
	default:
		return t
	}
}
