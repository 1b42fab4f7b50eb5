package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// KPIStore is the slice of the store layer KPI aggregation needs.
type KPIStore interface {
	CountWithFilter(ctx context.Context, tableName, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (int, error)
	PutItem(ctx context.Context, tableName string, item interface{}) error
}

// KPIService aggregates daily platform counters and persists a dated
// snapshot. The caller is responsible for the admin check.
type KPIService struct {
	Store KPIStore
}

// Export counts users, engagement and community activity over the trailing
// 24 hours (plus all-time user total), stores the snapshot under the
// YYYY-MM-DD key, and returns it.
func (ks *KPIService) Export(ctx context.Context, now time.Time) (*models.KPISnapshot, error) {
	last24h := utils.TimeAttr(now.Add(-24 * time.Hour))

	totalUsers, err := ks.Store.CountWithFilter(ctx, models.UsersTable, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	activeUsers, err := ks.countSince(ctx, models.UsersTable, "lastActive", last24h)
	if err != nil {
		return nil, err
	}
	newUsers, err := ks.countSince(ctx, models.UsersTable, "createdAt", last24h)
	if err != nil {
		return nil, err
	}

	swipes, err := ks.countSince(ctx, models.SwipesTable, "createdAt", last24h)
	if err != nil {
		return nil, err
	}
	matches, err := ks.countSince(ctx, models.MatchesTable, "createdAt", last24h)
	if err != nil {
		return nil, err
	}
	messages, err := ks.countSince(ctx, models.MessagesTable, "createdAt", last24h)
	if err != nil {
		return nil, err
	}

	posts, err := ks.countSince(ctx, models.CommunityPostsTable, "createdAt", last24h)
	if err != nil {
		return nil, err
	}
	reports, err := ks.countSince(ctx, models.ReportsTable, "createdAt", last24h)
	if err != nil {
		return nil, err
	}

	snapshot := &models.KPISnapshot{
		Date:        now.UTC().Format("2006-01-02"),
		Users:       models.UserKPIs{Total: totalUsers, Active: activeUsers, New: newUsers},
		Engagement:  models.EngageKPIs{Swipes: swipes, Matches: matches, Messages: messages},
		Community:   models.CommunityKPIs{Posts: posts, Reports: reports},
		Period:      "daily",
		GeneratedAt: now.UTC(),
	}

	if err := ks.Store.PutItem(ctx, models.KPISnapshotsTable, snapshot); err != nil {
		return nil, fmt.Errorf("failed to store KPI snapshot: %w", err)
	}
	return snapshot, nil
}

func (ks *KPIService) countSince(ctx context.Context, tableName, field string, since types.AttributeValue) (int, error) {
	count, err := ks.Store.CountWithFilter(ctx, tableName,
		"#f > :since",
		map[string]types.AttributeValue{":since": since},
		map[string]string{"#f": field},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s on table '%s': %w", field, tableName, err)
	}
	return count, nil
}
