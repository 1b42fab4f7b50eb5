package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// shadowBanIdleCutoff is how long a user must have been idle before
// deactivation also shadow bans them.
const shadowBanIdleCutoff = 7 * 24 * time.Hour

// StatusStore is the slice of the store layer status transitions need.
type StatusStore interface {
	UpdateItem(ctx context.Context, tableName, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)
}

// StatusService reacts to user document updates: reactivation lifts the
// shadow ban, deactivation after a week of idleness applies one.
type StatusService struct {
	Store StatusStore
	Clock func() time.Time
}

func (ss *StatusService) now() time.Time {
	if ss.Clock != nil {
		return ss.Clock()
	}
	return time.Now().UTC()
}

// OnUserUpdated compares the before and after images of a user document and
// applies shadow-ban transitions.
func (ss *StatusService) OnUserUpdated(ctx context.Context, before, after map[string]types.AttributeValue) error {
	userID := utils.ExtractString(after, "id")
	if userID == "" {
		return models.Validationf("user update requires id")
	}

	wasActive := utils.ExtractBool(before, "isActive")
	isActive := utils.ExtractBool(after, "isActive")

	if !wasActive && isActive {
		_, err := ss.Store.UpdateItem(ctx, models.UsersTable,
			"REMOVE shadowBannedAt",
			StringKey("id", userID),
			nil, nil,
		)
		if err != nil {
			return fmt.Errorf("failed to lift shadow ban for user %s: %w", userID, err)
		}
		log.Printf("✅ Shadow ban lifted for user %s", userID)
		return nil
	}

	if wasActive && !isActive {
		lastActive := utils.ExtractTime(after, "lastActive")
		if lastActive.IsZero() || lastActive.After(ss.now().Add(-shadowBanIdleCutoff)) {
			return nil
		}

		_, err := ss.Store.UpdateItem(ctx, models.UsersTable,
			"SET shadowBannedAt = :at",
			StringKey("id", userID),
			map[string]types.AttributeValue{":at": utils.TimeAttr(ss.now())},
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to shadow ban user %s: %w", userID, err)
		}
		log.Printf("👻 Shadow ban applied to user %s", userID)
	}
	return nil
}
