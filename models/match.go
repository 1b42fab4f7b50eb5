package models

import "time"

// Match records a mutual like between two users. Exactly one document exists
// per unordered pair; the id is the canonical pair key and the document is
// only ever written with a create-if-absent condition.
type Match struct {
	ID        string    `dynamodbav:"id" json:"id"` // ✅ Partition Key, PairKey of the two users
	UserID1   string    `dynamodbav:"userId1" json:"userId1"`
	UserID2   string    `dynamodbav:"userId2" json:"userId2"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
	IsActive  bool      `dynamodbav:"isActive" json:"isActive"`
}

// PairKey returns the canonical id for an unordered user pair: the two ids
// sorted lexicographically and joined with "_". Invariant:
// PairKey(a, b) == PairKey(b, a) for all a, b. Every match write must key on
// this value; call sites must never concatenate ids themselves.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// NewMatch builds the match document for a pair, with userId1/userId2 in
// canonical order so stored fields are order-independent too.
func NewMatch(a, b string, createdAt time.Time) Match {
	if b < a {
		a, b = b, a
	}
	return Match{
		ID:        PairKey(a, b),
		UserID1:   a,
		UserID2:   b,
		CreatedAt: createdAt,
		IsActive:  true,
	}
}

// MatchesTable is the DynamoDB table name for match documents
const MatchesTable = "Matches"
