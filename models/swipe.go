package models

import "time"

// Swipe is a single directional preference signal. Write-once; only the
// retention cleanup job ever deletes one.
type Swipe struct {
	ID           string    `dynamodbav:"id" json:"id"` // ✅ Partition Key
	UserID       string    `dynamodbav:"userId" json:"userId"`
	TargetUserID string    `dynamodbav:"targetUserId" json:"targetUserId"`
	Type         string    `dynamodbav:"type" json:"type"`
	CreatedAt    time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// Swipe types
const (
	SwipeTypeLike      = "like"
	SwipeTypePass      = "pass"
	SwipeTypeSuperlike = "superlike"
)

// ValidSwipeType reports whether t is one of the accepted swipe types.
func ValidSwipeType(t string) bool {
	switch t {
	case SwipeTypeLike, SwipeTypePass, SwipeTypeSuperlike:
		return true
	}
	return false
}

// SwipesTable is the DynamoDB table name for swipe documents
const SwipesTable = "Swipes"

// SwipeTargetIndex is the GSI keyed on (targetUserId, userId), used for the
// reciprocity probe.
const SwipeTargetIndex = "target-user-index"
