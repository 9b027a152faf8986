package adapter

import (
	"fmt"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	schema "github.com/icebergcore/schema"
)

// DynamoDBSchema lowers a DynamoDB table's AttributeDefinitions (typed via
// the real AWS SDK v2 types, as DescribeTable returns them) into the core
// type model: S/N/B scalar attributes become string/decimal(38,10)/binary,
// and any attribute also named in KeyAttributes is marked required, since
// DynamoDB key attributes can never be absent from an item.
type DynamoDBSchema struct {
	AttributeDefinitions []ddbtypes.AttributeDefinition
	KeyAttributes        map[string]bool
}

var _ ForeignSchema = DynamoDBSchema{}

// Fields implements ForeignSchema.
func (d DynamoDBSchema) Fields() ([]ForeignField, error) {
	out := make([]ForeignField, len(d.AttributeDefinitions))
	for i, attr := range d.AttributeDefinitions {
		name := derefString(attr.AttributeName)
		t, err := scalarAttributeType(attr.AttributeType)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[i] = ForeignField{
			Name:     name,
			Type:     t,
			Required: d.KeyAttributes[name],
		}
	}
	return out, nil
}

func scalarAttributeType(t ddbtypes.ScalarAttributeType) (schema.Type, error) {
	switch t {
	case ddbtypes.ScalarAttributeTypeS:
		return schema.StringType(), nil
	case ddbtypes.ScalarAttributeTypeN:
		// DynamoDB's "N" is an arbitrary-precision decimal string on the
		// wire; decimal(38,10) is wide enough to round-trip any practical
		// numeric attribute without loss.
		return schema.DecimalType(38, 10), nil
	case ddbtypes.ScalarAttributeTypeB:
		return schema.BinaryType(), nil
	default:
		return schema.Type{}, fmt.Errorf("unsupported DynamoDB attribute type: %s", t)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// KeySchemaToKeyAttributes turns a DescribeTable KeySchema into the
// KeyAttributes set DynamoDBSchema needs to mark required fields.
func KeySchemaToKeyAttributes(keys []ddbtypes.KeySchemaElement) map[string]bool {
	out := make(map[string]bool, len(keys))
	for _, k := range keys {
		out[derefString(k.AttributeName)] = true
	}
	return out
}

// AttributeValueLiteral lowers a single DynamoDB AttributeValue into a core
// Literal for the matching scalar type, for attaching a captured item value
// as a field's initial-default/write-default during union.
func AttributeValueLiteral(v ddbtypes.AttributeValue) (schema.Literal, error) {
	switch av := v.(type) {
	case *ddbtypes.AttributeValueMemberS:
		return schema.StringLiteral(av.Value), nil
	case *ddbtypes.AttributeValueMemberN:
		return schema.DecimalLiteral(av.Value)
	case *ddbtypes.AttributeValueMemberB:
		return schema.BytesLiteral(av.Value), nil
	default:
		return schema.Literal{}, fmt.Errorf("unsupported AttributeValue kind: %T", v)
	}
}
