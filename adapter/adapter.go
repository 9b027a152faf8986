/*
Package adapter lowers foreign, non-native schema-like inputs into the core
iceberg type model, so they can participate in iceberg.UnionByName alongside
a schema built directly from iceberg.NestedField values.
*/
package adapter

import schema "github.com/icebergcore/schema"

// ForeignField is one column/attribute of a foreign schema-like source,
// already resolved to a core type and requiredness.
type ForeignField struct {
	Name     string
	Type     schema.Type
	Required bool
}

// ForeignSchema is anything that can be lowered into an ordered list of
// ForeignFields. A concrete adapter (e.g. DynamoDBSchema) implements this by
// walking its own native representation.
type ForeignSchema interface {
	Fields() ([]ForeignField, error)
}

// ToSchema numbers a foreign schema's fields starting at startID (in the
// order ForeignSchema.Fields returns them) and constructs a core Schema, so
// the result can be fed into iceberg.UnionByName as the "new" side.
func ToSchema(f ForeignSchema, startID int, opts ...schema.SchemaOption) (*schema.Schema, error) {
	foreignFields, err := f.Fields()
	if err != nil {
		return nil, err
	}

	id := startID
	fields := make([]schema.NestedField, len(foreignFields))
	for i, ff := range foreignFields {
		fields[i] = schema.NestedField{
			ID:       id,
			Name:     ff.Name,
			Type:     ff.Type,
			Required: ff.Required,
		}
		id++
	}

	return schema.NewSchema(fields, opts...)
}
