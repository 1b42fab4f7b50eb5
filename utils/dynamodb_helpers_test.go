package utils

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestTimeAttrIsFixedWidth(t *testing.T) {
	wholeSecond := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)
	halfSecond := time.Date(2026, 8, 30, 3, 0, 0, 500_000_000, time.UTC)
	nanos := time.Date(2026, 8, 30, 3, 0, 0, 123_456_789, time.UTC)

	a, b, c := TimeAttr(wholeSecond).Value, TimeAttr(halfSecond).Value, TimeAttr(nanos).Value
	if len(a) != len(b) || len(b) != len(c) {
		t.Fatalf("timestamps must render the same width: %q %q %q", a, b, c)
	}
}

func TestTimeAttrLexicographicOrderMatchesChronology(t *testing.T) {
	// A whole second against a fraction within it is the case a
	// trailing-zero-dropping layout inverts.
	earlier := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)
	later := time.Date(2026, 8, 30, 3, 0, 0, 500_000_000, time.UTC)

	if TimeAttr(earlier).Value >= TimeAttr(later).Value {
		t.Fatalf("string order inverted: %q should sort before %q",
			TimeAttr(earlier).Value, TimeAttr(later).Value)
	}
}

func TestTimeAttrRoundTripsThroughExtractTime(t *testing.T) {
	stamp := time.Date(2026, 8, 30, 3, 0, 0, 123_000_000, time.UTC)
	item := map[string]types.AttributeValue{"createdAt": TimeAttr(stamp)}

	if extracted := ExtractTime(item, "createdAt"); !extracted.Equal(stamp) {
		t.Errorf("round trip changed the value: %v != %v", extracted, stamp)
	}
	if got := ExtractTime(item, "missing"); !got.IsZero() {
		t.Errorf("missing field should extract the zero time, got %v", got)
	}
}
