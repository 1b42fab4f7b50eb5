package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// BroadcastStore is the slice of the store layer broadcasts need.
type BroadcastStore interface {
	ScanWithFilter(ctx context.Context, tableName, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int) ([]map[string]types.AttributeValue, error)
}

// BroadcastService sends the weekly super-hour announcement to every user
// with a registered device token, chunked to the multicast size limit.
type BroadcastService struct {
	Store      BroadcastStore
	Dispatcher Dispatcher
	Config     config.BroadcastConfig
}

// SendSuperHour scans all users, collects their tokens, and multicasts the
// announcement. Returns how many tokens were addressed.
func (bs *BroadcastService) SendSuperHour(ctx context.Context) (int, error) {
	users, err := bs.Store.ScanWithFilter(ctx, models.UsersTable, "", nil, nil, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to scan users for broadcast: %w", err)
	}

	var tokens []string
	for _, user := range users {
		if token := utils.ExtractString(user, "fcmToken"); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return 0, nil
	}

	push := models.Push{
		Title: "Super Hour has started! ⚡",
		Body:  "Every Like counts as a Super Like right now. Enjoy an hour of surprises",
		Type:  models.NotificationTypeSuperHour,
		Data: map[string]string{
			"startTime": "20:00",
			"endTime":   "21:00",
		},
		Android: models.AndroidConfig{
			Priority:  "high",
			ChannelID: "super_hour",
			Icon:      "@mipmap/ic_launcher",
			Color:     "#FFD700",
		},
		APNS: models.APNSConfig{Sound: "default"},
	}

	chunk := bs.Config.ChunkSize
	if chunk <= 0 {
		chunk = 500
	}
	for start := 0; start < len(tokens); start += chunk {
		end := start + chunk
		if end > len(tokens) {
			end = len(tokens)
		}
		if err := bs.Dispatcher.SendMulticast(ctx, tokens[start:end], push); err != nil {
			return start, fmt.Errorf("failed to multicast super hour batch: %w", err)
		}
	}

	log.Printf("⚡ Super Hour notification sent to %d users", len(tokens))
	return len(tokens), nil
}
