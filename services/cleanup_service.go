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

// CleanupStore is the slice of the store layer the retention job needs.
type CleanupStore interface {
	ScanWithFilter(ctx context.Context, tableName, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int) ([]map[string]types.AttributeValue, error)
	BatchDeleteItems(ctx context.Context, tableName string, keys []map[string]types.AttributeValue) error
}

// CleanupService deletes messages and swipes past the retention window. Each
// run is capped per collection to bound execution time; anything left over
// is picked up by the next scheduled run. Deletes are idempotent, so
// re-delivery of a run is harmless.
type CleanupService struct {
	Store  CleanupStore
	Config config.CleanupConfig
}

// Run purges old documents from both collections and returns how many were
// deleted in total.
func (cs *CleanupService) Run(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-cs.Config.Retention)

	deletedMessages, err := cs.purge(ctx, models.MessagesTable, cutoff)
	if err != nil {
		return deletedMessages, err
	}
	deletedSwipes, err := cs.purge(ctx, models.SwipesTable, cutoff)
	if err != nil {
		return deletedMessages + deletedSwipes, err
	}

	total := deletedMessages + deletedSwipes
	log.Printf("🧹 Cleaned %d old documents", total)
	return total, nil
}

func (cs *CleanupService) purge(ctx context.Context, tableName string, cutoff time.Time) (int, error) {
	items, err := cs.Store.ScanWithFilter(ctx, tableName,
		"createdAt < :cutoff",
		map[string]types.AttributeValue{":cutoff": utils.TimeAttr(cutoff)},
		nil,
		cs.Config.BatchLimit,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to select old documents from table '%s': %w", tableName, err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(items))
	for _, item := range items {
		if id := utils.ExtractString(item, "id"); id != "" {
			keys = append(keys, StringKey("id", id))
		}
	}

	if err := cs.Store.BatchDeleteItems(ctx, tableName, keys); err != nil {
		return 0, fmt.Errorf("failed to delete old documents from table '%s': %w", tableName, err)
	}
	return len(keys), nil
}
