package iceberg

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Schema is a top-level, immutable struct: schema_id, ordered fields, and
// the set of identifier field ids. Mirrors the teacher's SchemaDef
// envelope, reworked from a panic-based validation pass (schema_manager.go's
// validateSchema) into a constructor returning error.
type Schema struct {
	SchemaID           int
	Fields             []NestedField
	IdentifierFieldIDs []int

	highestFieldID int

	once           sync.Once
	byID           map[int]NestedField
	byName         map[string]int
	byNameLower    map[string]int
	idToColumnName map[int]string
	accessors      map[int]*Accessor
}

// SchemaOption configures NewSchema.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	schemaID           int
	identifierFieldIDs []int
	logger             Logger
}

// WithSchemaID sets the schema's id (default 0).
func WithSchemaID(id int) SchemaOption {
	return func(c *schemaConfig) { c.schemaID = id }
}

// WithIdentifierFieldIDs declares the row-identity fields.
func WithIdentifierFieldIDs(ids ...int) SchemaOption {
	return func(c *schemaConfig) { c.identifierFieldIDs = ids }
}

// WithLogger attaches a Logger to the construction config. NewSchema
// itself writes nothing to it.
func WithLogger(l Logger) SchemaOption {
	return func(c *schemaConfig) { c.logger = l }
}

// NewSchema validates and constructs a Schema: unique names per struct
// level, unique ids across the whole tree, the seven identifier-field
// invariants, and highestFieldID tracking.
func NewSchema(fields []NestedField, opts ...SchemaOption) (*Schema, error) {
	cfg := schemaConfig{logger: defaultLogger{}}
	for _, o := range opts {
		o(&cfg)
	}

	if err := checkDuplicateNames(fields); err != nil {
		return nil, err
	}

	seen := map[int]string{}
	if err := checkDuplicateIDs(StructType(fields...), seen); err != nil {
		return nil, err
	}

	s := &Schema{
		SchemaID:           cfg.schemaID,
		Fields:             fields,
		IdentifierFieldIDs: append([]int(nil), cfg.identifierFieldIDs...),
		highestFieldID:     highestID(StructType(fields...)),
	}

	for _, id := range s.IdentifierFieldIDs {
		if err := validateIdentifierField(s, id); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func checkDuplicateNames(fields []NestedField) error {
	seenNames := map[string]int{}
	for _, f := range fields {
		if prevID, ok := seenNames[f.Name]; ok {
			a, b := prevID, f.ID
			if b < a {
				a, b = b, a
			}
			return NewArgError(fmt.Sprintf("Invalid schema, multiple fields for name %s: %d and %d", f.Name, a, b), ErrValue)
		}
		seenNames[f.Name] = f.ID
		if err := checkDuplicateNamesIn(f.Type); err != nil {
			return err
		}
	}
	return nil
}

// checkDuplicateNamesIn checks every struct level reachable from t, through
// any depth of list elements and map keys/values.
func checkDuplicateNamesIn(t Type) error {
	switch t.Kind {
	case KindStruct:
		return checkDuplicateNames(t.Fields)
	case KindList:
		return checkDuplicateNamesIn(*t.Element)
	case KindMap:
		if err := checkDuplicateNamesIn(*t.Key); err != nil {
			return err
		}
		return checkDuplicateNamesIn(*t.Value)
	}
	return nil
}

// checkDuplicateIDs walks the entire tree (including list/map synthetic
// ids) looking for a repeated id, per test_schema's duplicate-id fixtures.
func checkDuplicateIDs(t Type, seen map[int]string) error {
	switch t.Kind {
	case KindStruct:
		for _, f := range t.Fields {
			if prev, ok := seen[f.ID]; ok {
				return NewArgError(fmt.Sprintf("Invalid schema, multiple fields for id %d: %s and %s", f.ID, prev, f.Name), ErrValue)
			}
			seen[f.ID] = f.Name
			if err := checkDuplicateIDs(f.Type, seen); err != nil {
				return err
			}
		}
	case KindList:
		if prev, ok := seen[t.ElementID]; ok {
			return NewArgError(fmt.Sprintf("Invalid schema, multiple fields for id %d: %s and element", t.ElementID, prev), ErrValue)
		}
		seen[t.ElementID] = "element"
		return checkDuplicateIDs(*t.Element, seen)
	case KindMap:
		if prev, ok := seen[t.KeyID]; ok {
			return NewArgError(fmt.Sprintf("Invalid schema, multiple fields for id %d: %s and key", t.KeyID, prev), ErrValue)
		}
		seen[t.KeyID] = "key"
		if prev, ok := seen[t.ValueID]; ok {
			return NewArgError(fmt.Sprintf("Invalid schema, multiple fields for id %d: %s and value", t.ValueID, prev), ErrValue)
		}
		seen[t.ValueID] = "value"
		if err := checkDuplicateIDs(*t.Key, seen); err != nil {
			return err
		}
		return checkDuplicateIDs(*t.Value, seen)
	}
	return nil
}

func highestID(t Type) int {
	max := 0
	var walk func(Type)
	walk = func(t Type) {
		switch t.Kind {
		case KindStruct:
			for _, f := range t.Fields {
				if f.ID > max {
					max = f.ID
				}
				walk(f.Type)
			}
		case KindList:
			if t.ElementID > max {
				max = t.ElementID
			}
			walk(*t.Element)
		case KindMap:
			if t.KeyID > max {
				max = t.KeyID
			}
			if t.ValueID > max {
				max = t.ValueID
			}
			walk(*t.Key)
			walk(*t.Value)
		}
	}
	walk(t)
	return max
}

// HighestFieldID is the maximum id anywhere in the tree.
func (s *Schema) HighestFieldID() int {
	if s.highestFieldID == 0 {
		return highestID(s.AsStruct())
	}
	return s.highestFieldID
}

// AsStruct returns the schema viewed as its root StructType.
func (s *Schema) AsStruct() Type {
	return StructType(s.Fields...)
}

// ensureIndexes builds the memoized indexers exactly once, safe under
// concurrent first access.
func (s *Schema) ensureIndexes() {
	s.once.Do(func() {
		s.byID = indexByID(s)
		s.byName = map[string]int{}
		s.idToColumnName = map[int]string{}
		buildNamePaths(s.AsStruct(), "", s.byName, s.idToColumnName)
		s.byNameLower = make(map[string]int, len(s.byName))
		for name, id := range s.byName {
			s.byNameLower[lower(name)] = id
		}
		s.accessors = buildPositionAccessors(s)
	})
}

// Equals is deep structural equality of two schemas including field order,
// independent of IdentifierFieldIDs ordering (set semantics).
func (s *Schema) Equals(o *Schema) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.SchemaID != o.SchemaID || len(s.Fields) != len(o.Fields) {
		return false
	}
	for i := range s.Fields {
		if !s.Fields[i].Equals(o.Fields[i]) {
			return false
		}
	}
	return sameIntSet(s.IdentifierFieldIDs, o.IdentifierFieldIDs)
}

func sameIntSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// String renders the "table { ... }" display form.
func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("table {\n")
	for _, f := range s.Fields {
		b.WriteString("  ")
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
