package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// SafeSearchResult carries the likelihood labels the image classifier
// returns per category.
type SafeSearchResult struct {
	Adult    string `json:"adult"`
	Violence string `json:"violence"`
	Racy     string `json:"racy"`
}

// Flagged reports whether any category is at or past LIKELY.
func (r SafeSearchResult) Flagged() bool {
	return likelyOrWorse(r.Adult) || likelyOrWorse(r.Violence) || likelyOrWorse(r.Racy)
}

func likelyOrWorse(label string) bool {
	return label == "LIKELY" || label == "VERY_LIKELY"
}

// ContentClassifier is the external sentiment/image-safety service. The
// models behind it are out of scope; this service only turns its outputs
// into an approval verdict.
type ContentClassifier interface {
	AnalyzeSentiment(ctx context.Context, text string) (float64, error)
	SafeSearch(ctx context.Context, imageURL string) (SafeSearchResult, error)
}

// ModerationStore is the slice of the store layer moderation needs.
type ModerationStore interface {
	IncrementFields(ctx context.Context, tableName string, key map[string]types.AttributeValue, add map[string]float64, set map[string]types.AttributeValue) error
}

// ModerationNotifier tells an author their post was rejected.
type ModerationNotifier interface {
	SendModerationNotification(ctx context.Context, userID, postID string) error
}

// ModerationService reviews newly created community posts and writes the
// verdict back onto the post document.
type ModerationService struct {
	Store         ModerationStore
	Classifier    ContentClassifier
	Notifications ModerationNotifier
	Config        config.ModerationConfig
	Clock         func() time.Time
}

func (ms *ModerationService) now() time.Time {
	if ms.Clock != nil {
		return ms.Clock()
	}
	return time.Now().UTC()
}

// OnPostCreated classifies the post's text and image and records the
// moderation result. Rejected posts trigger a notification to the author.
func (ms *ModerationService) OnPostCreated(ctx context.Context, item map[string]types.AttributeValue) error {
	var post models.Post
	if err := attributevalue.UnmarshalMap(item, &post); err != nil {
		return fmt.Errorf("failed to unmarshal post: %w", err)
	}
	if post.ID == "" || post.AuthorID == "" {
		return models.Validationf("post requires id and authorId")
	}

	approved := true
	var violations []string

	if post.Content != "" {
		score, err := ms.Classifier.AnalyzeSentiment(ctx, post.Content)
		if err != nil {
			return fmt.Errorf("failed to analyze post %s text: %w", post.ID, err)
		}
		if score < ms.Config.SentimentThreshold {
			approved = false
			violations = append(violations, models.ViolationNegativeSentiment)
		}
	}

	if post.ImageURL != "" {
		result, err := ms.Classifier.SafeSearch(ctx, post.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to analyze post %s image: %w", post.ID, err)
		}
		if result.Flagged() {
			approved = false
			violations = append(violations, models.ViolationInappropriateImage)
		}
	}

	violationAttrs := make([]types.AttributeValue, 0, len(violations))
	for _, v := range violations {
		violationAttrs = append(violationAttrs, &types.AttributeValueMemberS{Value: v})
	}

	err := ms.Store.IncrementFields(ctx, models.CommunityPostsTable,
		StringKey("id", post.ID),
		nil,
		map[string]types.AttributeValue{
			"isApproved":  &types.AttributeValueMemberBOOL{Value: approved},
			"violations":  &types.AttributeValueMemberL{Value: violationAttrs},
			"moderatedAt": utils.TimeAttr(ms.now()),
			"moderator":   &types.AttributeValueMemberS{Value: "ai"},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to record moderation result for post %s: %w", post.ID, err)
	}

	if !approved {
		log.Printf("🛑 Post %s rejected: %v", post.ID, violations)
		if err := ms.Notifications.SendModerationNotification(ctx, post.AuthorID, post.ID); err != nil {
			log.Printf("⚠️ Failed to send moderation notice to user %s: %v", post.AuthorID, err)
		}
	}
	return nil
}
