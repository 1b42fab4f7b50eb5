package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// DecayStore is the slice of the store layer the decay pass needs.
type DecayStore interface {
	ScanWithFilter(ctx context.Context, tableName, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int) ([]map[string]types.AttributeValue, error)
	TransactUpdateFields(ctx context.Context, tableName string, updates []FieldUpdate) error
}

// DecayService applies the scheduled reputation decay to inactive users:
// newScore = max(floor, score * factor), committed as one transactional
// batch. A failed commit persists nothing; the next scheduled pass
// re-selects from unchanged state. Re-running on a still-inactive user
// compounds the decay, which is the intended long-term inactivity behavior.
type DecayService struct {
	Store  DecayStore
	Config config.DecayConfig
}

// RunDecayPass selects users whose lastActive predates now minus the
// inactivity threshold, capped at the configured batch limit, and decays
// their scores. Returns how many users were updated.
func (ds *DecayService) RunDecayPass(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-ds.Config.InactivityThreshold)

	items, err := ds.Store.ScanWithFilter(ctx,
		models.UsersTable,
		"lastActive < :cutoff",
		map[string]types.AttributeValue{":cutoff": utils.TimeAttr(cutoff)},
		nil,
		ds.Config.BatchLimit,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to select inactive users: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	updates := make([]FieldUpdate, 0, len(items))
	for _, item := range items {
		id := utils.ExtractString(item, "id")
		if id == "" {
			continue
		}

		score := utils.ExtractNumber(item, "eloScore")
		if score == 0 {
			score = models.DefaultEloScore
		}
		newScore := score * ds.Config.Factor
		if newScore < ds.Config.Floor {
			newScore = ds.Config.Floor
		}

		updates = append(updates, FieldUpdate{
			Key: StringKey("id", id),
			Set: map[string]types.AttributeValue{
				"eloScore":    &types.AttributeValueMemberN{Value: formatNumber(newScore)},
				"lastDecayAt": utils.TimeAttr(now),
			},
		})
	}

	if err := ds.Store.TransactUpdateFields(ctx, models.UsersTable, updates); err != nil {
		return 0, fmt.Errorf("failed to commit decay batch: %w", err)
	}

	log.Printf("✅ Updated %d users with Elo decay", len(updates))
	return len(updates), nil
}
