package iceberg

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

type jsonField struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Type           json.RawMessage `json:"type"`
	Required       bool            `json:"required"`
	Doc            string          `json:"doc,omitempty"`
	InitialDefault json.RawMessage `json:"initial-default,omitempty"`
	WriteDefault   json.RawMessage `json:"write-default,omitempty"`
}

type jsonStructType struct {
	Type   string      `json:"type"`
	Fields []jsonField `json:"fields"`
}

type jsonListType struct {
	Type            string          `json:"type"`
	ElementID       int             `json:"element-id"`
	Element         json.RawMessage `json:"element"`
	ElementRequired bool            `json:"element-required"`
}

type jsonMapType struct {
	Type          string          `json:"type"`
	KeyID         int             `json:"key-id"`
	Key           json.RawMessage `json:"key"`
	ValueID       int             `json:"value-id"`
	Value         json.RawMessage `json:"value"`
	ValueRequired bool            `json:"value-required"`
}

type jsonSchema struct {
	Type               string      `json:"type"`
	Fields             []jsonField `json:"fields"`
	SchemaID           int         `json:"schema-id"`
	IdentifierFieldIDs []int       `json:"identifier-field-ids,omitempty"`
}

// ToJSON renders the canonical JSON representation of s.
func ToJSON(s *Schema) ([]byte, error) {
	fields, err := fieldsToJSON(s.Fields)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonSchema{
		Type:               "struct",
		Fields:             fields,
		SchemaID:           s.SchemaID,
		IdentifierFieldIDs: s.IdentifierFieldIDs,
	})
}

func fieldsToJSON(fields []NestedField) ([]jsonField, error) {
	out := make([]jsonField, len(fields))
	for i, f := range fields {
		jf, err := fieldToJSON(f)
		if err != nil {
			return nil, err
		}
		out[i] = jf
	}
	return out, nil
}

func fieldToJSON(f NestedField) (jsonField, error) {
	typeJSON, err := typeToJSON(f.Type)
	if err != nil {
		return jsonField{}, err
	}
	jf := jsonField{ID: f.ID, Name: f.Name, Type: typeJSON, Required: f.Required, Doc: f.Doc}
	if f.InitialDefault != nil {
		b, err := json.Marshal(f.InitialDefault.JSONValue())
		if err != nil {
			return jsonField{}, err
		}
		jf.InitialDefault = b
	}
	if f.WriteDefault != nil {
		b, err := json.Marshal(f.WriteDefault.JSONValue())
		if err != nil {
			return jsonField{}, err
		}
		jf.WriteDefault = b
	}
	return jf, nil
}

func typeToJSON(t Type) (json.RawMessage, error) {
	switch t.Kind {
	case KindStruct:
		fields, err := fieldsToJSON(t.Fields)
		if err != nil {
			return nil, err
		}
		return json.Marshal(jsonStructType{Type: "struct", Fields: fields})
	case KindList:
		elem, err := typeToJSON(*t.Element)
		if err != nil {
			return nil, err
		}
		return json.Marshal(jsonListType{Type: "list", ElementID: t.ElementID, Element: elem, ElementRequired: t.ElementRequired})
	case KindMap:
		key, err := typeToJSON(*t.Key)
		if err != nil {
			return nil, err
		}
		value, err := typeToJSON(*t.Value)
		if err != nil {
			return nil, err
		}
		return json.Marshal(jsonMapType{Type: "map", KeyID: t.KeyID, Key: key, ValueID: t.ValueID, Value: value, ValueRequired: t.ValueRequired})
	default:
		return json.Marshal(t.String())
	}
}

// ParseJSON reconstructs a Schema from its canonical JSON form.
func ParseJSON(data []byte) (*Schema, error) {
	var js jsonSchema
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, NewArgError(fmt.Sprintf("Cannot parse schema JSON: %s", err), ErrValue)
	}
	fields, err := fieldsFromJSON(js.Fields)
	if err != nil {
		return nil, err
	}
	return NewSchema(fields, WithSchemaID(js.SchemaID), WithIdentifierFieldIDs(js.IdentifierFieldIDs...))
}

func fieldsFromJSON(in []jsonField) ([]NestedField, error) {
	out := make([]NestedField, len(in))
	for i, jf := range in {
		f, err := fieldFromJSON(jf)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func fieldFromJSON(jf jsonField) (NestedField, error) {
	t, err := typeFromJSON(jf.Type)
	if err != nil {
		return NestedField{}, err
	}
	f := NestedField{ID: jf.ID, Name: jf.Name, Type: t, Required: jf.Required, Doc: jf.Doc}
	if len(jf.InitialDefault) > 0 {
		var v any
		if err := json.Unmarshal(jf.InitialDefault, &v); err != nil {
			return NestedField{}, err
		}
		lit := Literal{RawJSON: v}
		f.InitialDefault = &lit
	}
	if len(jf.WriteDefault) > 0 {
		var v any
		if err := json.Unmarshal(jf.WriteDefault, &v); err != nil {
			return NestedField{}, err
		}
		lit := Literal{RawJSON: v}
		f.WriteDefault = &lit
	}
	return f, nil
}

func typeFromJSON(raw json.RawMessage) (Type, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return parsePrimitiveTypeName(asString)
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Type{}, NewArgError(fmt.Sprintf("Cannot parse type JSON: %s", err), ErrValue)
	}

	switch probe.Type {
	case "struct":
		var st jsonStructType
		if err := json.Unmarshal(raw, &st); err != nil {
			return Type{}, err
		}
		fields, err := fieldsFromJSON(st.Fields)
		if err != nil {
			return Type{}, err
		}
		return StructType(fields...), nil
	case "list":
		var lt jsonListType
		if err := json.Unmarshal(raw, &lt); err != nil {
			return Type{}, err
		}
		element, err := typeFromJSON(lt.Element)
		if err != nil {
			return Type{}, err
		}
		return ListType(lt.ElementID, element, lt.ElementRequired), nil
	case "map":
		var mt jsonMapType
		if err := json.Unmarshal(raw, &mt); err != nil {
			return Type{}, err
		}
		key, err := typeFromJSON(mt.Key)
		if err != nil {
			return Type{}, err
		}
		value, err := typeFromJSON(mt.Value)
		if err != nil {
			return Type{}, err
		}
		return MapType(mt.KeyID, key, mt.ValueID, value, mt.ValueRequired), nil
	default:
		return Type{}, NewArgError(fmt.Sprintf("Cannot parse type JSON: unknown type %q", probe.Type), ErrValue)
	}
}

var (
	decimalPattern = regexp.MustCompile(`^decimal\((\d+),\s*(\d+)\)$`)
	fixedPattern   = regexp.MustCompile(`^fixed\[(\d+)\]$`)
)

func parsePrimitiveTypeName(name string) (Type, error) {
	switch name {
	case "boolean":
		return BooleanType(), nil
	case "int":
		return IntType(), nil
	case "long":
		return LongType(), nil
	case "float":
		return FloatType(), nil
	case "double":
		return DoubleType(), nil
	case "date":
		return DateType(), nil
	case "time":
		return TimeType(), nil
	case "timestamp":
		return TimestampType(), nil
	case "timestamptz":
		return TimestamptzType(), nil
	case "string":
		return StringType(), nil
	case "uuid":
		return UUIDType(), nil
	case "binary":
		return BinaryType(), nil
	}
	if m := decimalPattern.FindStringSubmatch(name); m != nil {
		p, _ := strconv.Atoi(m[1])
		s, _ := strconv.Atoi(m[2])
		return DecimalType(p, s), nil
	}
	if m := fixedPattern.FindStringSubmatch(name); m != nil {
		l, _ := strconv.Atoi(m[1])
		return FixedType(l), nil
	}
	return Type{}, NewArgError(fmt.Sprintf("Cannot parse type JSON: unknown primitive type %q", name), ErrValue)
}
