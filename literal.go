package iceberg

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Literal is a typed default value attached to a NestedField's
// InitialDefault or WriteDefault. Only one of the fields below is set,
// matching the field's declared Type.
type Literal struct {
	Bool      *bool
	Int32     *int32
	Int64     *int64
	Float32   *float32
	Float64   *float64
	Str       *string
	Bytes     []byte
	Decimal   *decimal.Decimal
	UUID      *uuid.UUID
	RawJSON   any // date/time/timestamp values, kept as their JSON representation
}

func BoolLiteral(v bool) Literal       { return Literal{Bool: &v} }
func Int32Literal(v int32) Literal     { return Literal{Int32: &v} }
func Int64Literal(v int64) Literal     { return Literal{Int64: &v} }
func Float32Literal(v float32) Literal { return Literal{Float32: &v} }
func Float64Literal(v float64) Literal { return Literal{Float64: &v} }
func StringLiteral(v string) Literal   { return Literal{Str: &v} }
func BytesLiteral(v []byte) Literal    { return Literal{Bytes: v} }

// DecimalLiteral parses a fixed-point string into a decimal-backed literal,
// used for decimal(P,S) initial/write defaults.
func DecimalLiteral(s string) (Literal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Literal{}, NewArgError(fmt.Sprintf("invalid decimal literal %q: %s", s, err), ErrValue)
	}
	return Literal{Decimal: &d}, nil
}

// UUIDLiteral parses a canonical UUID string for a uuid-typed default.
func UUIDLiteral(s string) (Literal, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Literal{}, NewArgError(fmt.Sprintf("invalid uuid literal %q: %s", s, err), ErrValue)
	}
	return Literal{UUID: &u}, nil
}

// JSONValue returns the literal's canonical JSON-compatible representation,
// used by json.go when serializing initial-default/write-default.
func (l Literal) JSONValue() any {
	switch {
	case l.Bool != nil:
		return *l.Bool
	case l.Int32 != nil:
		return *l.Int32
	case l.Int64 != nil:
		return *l.Int64
	case l.Float32 != nil:
		return *l.Float32
	case l.Float64 != nil:
		return *l.Float64
	case l.Str != nil:
		return *l.Str
	case l.Bytes != nil:
		return string(l.Bytes)
	case l.Decimal != nil:
		return l.Decimal.String()
	case l.UUID != nil:
		return l.UUID.String()
	default:
		return l.RawJSON
	}
}
