package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// MatchStore is the slice of the store layer the match engine needs.
type MatchStore interface {
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, filterExpression string, limit int32) ([]map[string]types.AttributeValue, error)
	PutItemIfAbsent(ctx context.Context, tableName string, item interface{}, keyAttr string) (bool, error)
	IncrementFields(ctx context.Context, tableName string, key map[string]types.AttributeValue, add map[string]float64, set map[string]types.AttributeValue) error
}

// MatchNotifier sends the two match pushes on first creation.
type MatchNotifier interface {
	SendMatchNotification(ctx context.Context, userID, matchedUserID string) error
}

// MatchService reacts to swipe creation: it detects reciprocal likes,
// creates the pair's match document exactly once, and keeps the acting
// user's counters fresh. Safe under duplicate delivery and under both
// directions of a mutual swipe firing concurrently.
type MatchService struct {
	Store         MatchStore
	Notifications MatchNotifier
	Clock         func() time.Time
}

func (ms *MatchService) now() time.Time {
	if ms.Clock != nil {
		return ms.Clock()
	}
	return time.Now().UTC()
}

// OnSwipeCreated handles a newly created swipe document. Counter updates
// happen for every accepted swipe type; match detection only for likes. A
// failure in match handling never blocks the counter bump.
func (ms *MatchService) OnSwipeCreated(ctx context.Context, item map[string]types.AttributeValue) error {
	var swipe models.Swipe
	if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
		return fmt.Errorf("failed to unmarshal swipe: %w", err)
	}

	if err := ValidateSwipe(swipe); err != nil {
		return err
	}

	if swipe.Type == models.SwipeTypeLike {
		if err := ms.handleLike(ctx, swipe); err != nil {
			log.Printf("❌ Match handling failed for swipe %s: %v", swipe.ID, err)
		}
	}

	now := ms.now()
	err := ms.Store.IncrementFields(ctx, models.UsersTable,
		StringKey("id", swipe.UserID),
		map[string]float64{"swipeCount": 1},
		map[string]types.AttributeValue{
			"lastActive":  utils.TimeAttr(now),
			"lastSwipeAt": utils.TimeAttr(now),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update swipe counters for user %s: %w", swipe.UserID, err)
	}
	return nil
}

// ValidateSwipe rejects malformed and self-referential swipes.
func ValidateSwipe(swipe models.Swipe) error {
	if swipe.UserID == "" || swipe.TargetUserID == "" {
		return models.Validationf("swipe requires userId and targetUserId")
	}
	if swipe.UserID == swipe.TargetUserID {
		return models.Validationf("user %s cannot swipe on themselves", swipe.UserID)
	}
	if !models.ValidSwipeType(swipe.Type) {
		return models.Validationf("unknown swipe type %q", swipe.Type)
	}
	return nil
}

func (ms *MatchService) handleLike(ctx context.Context, swipe models.Swipe) error {
	reciprocal, err := ms.hasReciprocalLike(ctx, swipe)
	if err != nil {
		return err
	}
	if !reciprocal {
		return nil
	}

	// The conditional put on the canonical pair key is what keeps this to
	// one match no matter which direction fires first, or how often.
	match := models.NewMatch(swipe.UserID, swipe.TargetUserID, ms.now())
	created, err := ms.Store.PutItemIfAbsent(ctx, models.MatchesTable, match, "id")
	if err != nil {
		return fmt.Errorf("failed to upsert match %s: %w", match.ID, err)
	}
	if !created {
		return nil
	}

	log.Printf("💘 Match created: %s", match.ID)

	if err := ms.Notifications.SendMatchNotification(ctx, swipe.UserID, swipe.TargetUserID); err != nil {
		log.Printf("⚠️ Failed to notify user %s about match %s: %v", swipe.UserID, match.ID, err)
	}
	if err := ms.Notifications.SendMatchNotification(ctx, swipe.TargetUserID, swipe.UserID); err != nil {
		log.Printf("⚠️ Failed to notify user %s about match %s: %v", swipe.TargetUserID, match.ID, err)
	}
	return nil
}

// hasReciprocalLike checks whether the target already liked the acting user.
func (ms *MatchService) hasReciprocalLike(ctx context.Context, swipe models.Swipe) (bool, error) {
	items, err := ms.Store.QueryItemsWithIndex(ctx,
		models.SwipesTable,
		models.SwipeTargetIndex,
		"targetUserId = :target AND userId = :user",
		map[string]types.AttributeValue{
			":target": &types.AttributeValueMemberS{Value: swipe.UserID},
			":user":   &types.AttributeValueMemberS{Value: swipe.TargetUserID},
			":like":   &types.AttributeValueMemberS{Value: models.SwipeTypeLike},
		},
		map[string]string{"#ty": "type"},
		"#ty = :like",
		1,
	)
	if err != nil {
		return false, fmt.Errorf("failed to query reciprocal swipe: %w", err)
	}
	return len(items) > 0, nil
}
