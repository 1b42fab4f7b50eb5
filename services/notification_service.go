package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

// Dispatcher delivers a built push payload to registered device tokens. The
// transport behind it is an external service.
type Dispatcher interface {
	Send(ctx context.Context, token string, push models.Push) error
	SendMulticast(ctx context.Context, tokens []string, push models.Push) error
}

// NotificationStore is the slice of the store layer notifications need.
type NotificationStore interface {
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
}

// NotificationService resolves a user's device token and dispatches pushes.
type NotificationService struct {
	Store      NotificationStore
	Dispatcher Dispatcher
}

// Send looks up the user's registered token and dispatches one push. Returns
// models.ErrTokenNotFound when the user exists without a token, and
// models.ErrNotFound when the user document itself is missing.
func (ns *NotificationService) Send(ctx context.Context, userID, title, body, notificationType string, data map[string]string) error {
	user, err := ns.Store.GetItem(ctx, models.UsersTable, StringKey("id", userID))
	if err != nil {
		return err
	}

	token := utils.ExtractString(user, "fcmToken")
	if token == "" {
		return models.ErrTokenNotFound
	}

	if notificationType == "" {
		notificationType = models.NotificationTypeGeneral
	}

	push := models.Push{
		Title: title,
		Body:  body,
		Type:  notificationType,
		Data:  data,
		Android: models.AndroidConfig{
			Priority:  "high",
			ChannelID: "general",
			Icon:      "@mipmap/ic_launcher",
			Color:     "#FF6B6B",
		},
		APNS: models.APNSConfig{Sound: "default"},
	}

	if err := ns.Dispatcher.Send(ctx, token, push); err != nil {
		return fmt.Errorf("failed to dispatch notification to user %s: %w", userID, err)
	}
	return nil
}

// SendMatchNotification tells userID they matched, citing the matched user's
// display name.
func (ns *NotificationService) SendMatchNotification(ctx context.Context, userID, matchedUserID string) error {
	matched, err := ns.Store.GetItem(ctx, models.UsersTable, StringKey("id", matchedUserID))
	if err != nil {
		return fmt.Errorf("failed to load matched user %s: %w", matchedUserID, err)
	}
	name := utils.ExtractString(matched, "displayName")
	if name == "" {
		name = "someone new"
	}

	return ns.Send(ctx, userID,
		"New match! ❤️",
		fmt.Sprintf("You matched with %s", name),
		models.NotificationTypeMatch,
		map[string]string{"matchedUserId": matchedUserID},
	)
}

// SendWarningNotification warns a user about accumulated reports.
func (ns *NotificationService) SendWarningNotification(ctx context.Context, userID string, reportCount int) error {
	return ns.Send(ctx, userID,
		"Warning",
		fmt.Sprintf("You have been reported %d times. Please follow the community guidelines", reportCount),
		models.NotificationTypeWarning,
		nil,
	)
}

// SendSuspensionNotification tells a user their account was suspended.
func (ns *NotificationService) SendSuspensionNotification(ctx context.Context, userID string, hours int) error {
	return ns.Send(ctx, userID,
		"Your account has been suspended",
		fmt.Sprintf("Your account has been suspended for %d hours due to multiple reports", hours),
		models.NotificationTypeSuspension,
		nil,
	)
}

// SendModerationNotification tells an author their post was rejected.
func (ns *NotificationService) SendModerationNotification(ctx context.Context, userID, postID string) error {
	return ns.Send(ctx, userID,
		"Your post needs review",
		"Your post was flagged for violating the community guidelines",
		models.NotificationTypeModeration,
		map[string]string{"postId": postID},
	)
}
