package models

import "time"

// Post is a community post subject to AI moderation after creation.
type Post struct {
	ID          string     `dynamodbav:"id" json:"id"` // ✅ Partition Key
	AuthorID    string     `dynamodbav:"authorId" json:"authorId"`
	Content     string     `dynamodbav:"content,omitempty" json:"content,omitempty"`
	ImageURL    string     `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time  `dynamodbav:"createdAt" json:"createdAt"`
	IsApproved  bool       `dynamodbav:"isApproved" json:"isApproved"`
	Violations  []string   `dynamodbav:"violations,omitempty" json:"violations,omitempty"`
	ModeratedAt *time.Time `dynamodbav:"moderatedAt,omitempty" json:"moderatedAt,omitempty"`
	Moderator   string     `dynamodbav:"moderator,omitempty" json:"moderator,omitempty"`
}

// Violation labels written by the moderation handler.
const (
	ViolationNegativeSentiment  = "negative_sentiment"
	ViolationInappropriateImage = "inappropriate_image"
)

// CommunityPostsTable is the DynamoDB table name for community posts
const CommunityPostsTable = "CommunityPosts"

// Message is a chat message between matched users. Messages are created
// elsewhere; this service only counts them for KPIs and deletes them past
// retention.
type Message struct {
	ID        string    `dynamodbav:"id" json:"id"` // ✅ Partition Key
	MatchID   string    `dynamodbav:"matchId" json:"matchId"`
	SenderID  string    `dynamodbav:"senderId" json:"senderId"`
	Content   string    `dynamodbav:"content" json:"content"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
