package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
)

// AdStore is the slice of the store layer ad tracking needs.
type AdStore interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	IncrementFields(ctx context.Context, tableName string, key map[string]types.AttributeValue, add map[string]float64, set map[string]types.AttributeValue) error
}

// AdService logs ad interactions and keeps per-user ad counters. Stats land
// on flattened adStats_<type>_<action> attributes so the increments stay
// single atomic ADDs.
type AdService struct {
	Store AdStore
	Clock func() time.Time
}

func (as *AdService) now() time.Time {
	if as.Clock != nil {
		return as.Clock()
	}
	return time.Now().UTC()
}

// Ad actions accepted by Track.
const (
	AdActionImpression = "impression"
	AdActionClick      = "click"
	AdActionReward     = "reward"
)

// Track appends one ad interaction record and bumps the user's counters.
func (as *AdService) Track(ctx context.Context, userID, adType, action string, revenue float64) error {
	if userID == "" || adType == "" {
		return models.Validationf("ad metric requires userId and adType")
	}
	switch action {
	case AdActionImpression, AdActionClick, AdActionReward:
	default:
		return models.Validationf("unknown ad action %q", action)
	}

	metric := models.AdMetric{
		ID:        uuid.NewString(),
		UserID:    userID,
		AdType:    adType,
		Action:    action,
		Revenue:   revenue,
		CreatedAt: as.now(),
	}
	if err := as.Store.PutItem(ctx, models.AdMetricsTable, metric); err != nil {
		return fmt.Errorf("failed to log ad metric: %w", err)
	}

	add := map[string]float64{
		fmt.Sprintf("adStats_%s_%s", adType, action): 1,
		"totalAdRevenue": revenue,
	}
	if err := as.Store.IncrementFields(ctx, models.UsersTable, StringKey("id", userID), add, nil); err != nil {
		return fmt.Errorf("failed to update ad stats for user %s: %w", userID, err)
	}
	return nil
}
