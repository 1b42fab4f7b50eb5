package models

import "time"

// User is the long-lived per-user aggregate. It is mutated from three
// independent triggers (swipes, decay passes, report handling); counter
// fields are only ever touched with atomic increments, the remaining fields
// are whole-value overwrites.
type User struct {
	ID               string     `dynamodbav:"id" json:"id"` // ✅ Partition Key
	DisplayName      string     `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	FCMToken         string     `dynamodbav:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	EloScore         float64    `dynamodbav:"eloScore,omitempty" json:"eloScore,omitempty"` // defaults to 1000 when unset
	SwipeCount       int        `dynamodbav:"swipeCount,omitempty" json:"swipeCount,omitempty"`
	IsActive         bool       `dynamodbav:"isActive" json:"isActive"`
	CreatedAt        time.Time  `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastActive       time.Time  `dynamodbav:"lastActive,omitempty" json:"lastActive,omitempty"`
	LastSwipeAt      time.Time  `dynamodbav:"lastSwipeAt,omitempty" json:"lastSwipeAt,omitempty"`
	LastDecayAt      time.Time  `dynamodbav:"lastDecayAt,omitempty" json:"lastDecayAt,omitempty"`
	ShadowBannedAt   *time.Time `dynamodbav:"shadowBannedAt,omitempty" json:"shadowBannedAt,omitempty"`
	SuspendedUntil   *time.Time `dynamodbav:"suspendedUntil,omitempty" json:"suspendedUntil,omitempty"`
	SuspensionReason string     `dynamodbav:"suspensionReason,omitempty" json:"suspensionReason,omitempty"`
	TotalAdRevenue   float64    `dynamodbav:"totalAdRevenue,omitempty" json:"totalAdRevenue,omitempty"`
}

// DefaultEloScore is assumed for users whose score was never written.
const DefaultEloScore = 1000

// Score returns the reputation score with the unset default applied.
func (u User) Score() float64 {
	if u.EloScore == 0 {
		return DefaultEloScore
	}
	return u.EloScore
}

// UsersTable is the DynamoDB table name for user documents
const UsersTable = "Users"
