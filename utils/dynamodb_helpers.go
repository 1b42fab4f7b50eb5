package utils

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractNumber safely extracts a number from a DynamoDB attribute map
func ExtractNumber(item map[string]types.AttributeValue, field string) float64 {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberN); ok {
			if f, err := strconv.ParseFloat(v.Value, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// ExtractBool safely extracts a boolean from a DynamoDB attribute map
func ExtractBool(item map[string]types.AttributeValue, field string) bool {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberBOOL); ok {
			return v.Value
		}
	}
	return false
}

// ExtractTime safely extracts an RFC3339 timestamp from a DynamoDB attribute
// map. The zero time is returned for missing or malformed values.
func ExtractTime(item map[string]types.AttributeValue, field string) time.Time {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			if t, err := time.Parse(time.RFC3339Nano, v.Value); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// TimeLayout is the layout every stored timestamp uses. Range filters compare
// these strings lexicographically, so the width must be fixed: RFC3339Nano
// drops trailing fractional zeros, and "…00Z" sorts after "…00.5Z" even
// though it is earlier. Millisecond precision, always rendered in UTC.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// TimeAttr renders a timestamp as the fixed-width string attribute the range
// filters expect.
func TimeAttr(t time.Time) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: t.UTC().Format(TimeLayout)}
}
