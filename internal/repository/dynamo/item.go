package dynamo

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is one attribute-map record as stored by DynamoDB. Field names in
// items are part of the wire contract for existing data and must stay
// stable across versions.
type Item = map[string]types.AttributeValue

func stringAttr(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func boolFlagAttr(v bool) types.AttributeValue {
	if v {
		return stringAttr("true")
	}
	return stringAttr("false")
}

func timeAttr(t time.Time) types.AttributeValue {
	return stringAttr(t.UTC().Format(time.RFC3339))
}

func getString(item Item, key string) (string, bool) {
	attr, ok := item[key]
	if !ok {
		return "", false
	}
	s, ok := attr.(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// getOptionalString distinguishes an absent attribute (nil, ok) from a
// present-but-wrong-typed one (nil, !ok).
func getOptionalString(item Item, key string) (*string, bool) {
	attr, ok := item[key]
	if !ok {
		return nil, true
	}
	s, ok := attr.(*types.AttributeValueMemberS)
	if !ok {
		return nil, false
	}
	return &s.Value, true
}

func getBoolFlag(item Item, key string) (bool, bool) {
	v, ok := getString(item, key)
	if !ok {
		return false, false
	}
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// getTime parses an RFC-3339 timestamp attribute. A missing or malformed
// timestamp falls back to the current time instead of failing the record;
// see DESIGN.md for the degradation policy.
func getTime(item Item, key string) time.Time {
	v, ok := getString(item, key)
	if !ok {
		return time.Now().UTC()
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}

func getNested(item Item, key string) (Item, bool) {
	attr, ok := item[key]
	if !ok {
		return nil, false
	}
	m, ok := attr.(*types.AttributeValueMemberM)
	if !ok {
		return nil, false
	}
	return m.Value, true
}
