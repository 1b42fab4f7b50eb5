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

// ReportStore is the slice of the store layer report handling needs.
type ReportStore interface {
	CountItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue) (int, error)
	IncrementFields(ctx context.Context, tableName string, key map[string]types.AttributeValue, add map[string]float64, set map[string]types.AttributeValue) error
}

// ReportNotifier sends the warning and suspension pushes.
type ReportNotifier interface {
	SendWarningNotification(ctx context.Context, userID string, reportCount int) error
	SendSuspensionNotification(ctx context.Context, userID string, hours int) error
}

// ReportService tracks cumulative reports per user and applies threshold
// actions. Counts are all-time; each report at or past the suspension
// threshold re-sets the 24h suspension window from that report's now.
type ReportService struct {
	Store         ReportStore
	Notifications ReportNotifier
	Clock         func() time.Time
}

func (rs *ReportService) now() time.Time {
	if rs.Clock != nil {
		return rs.Clock()
	}
	return time.Now().UTC()
}

// OnReportCreated handles a newly created report document. Exactly one
// action fires per report, chosen by the highest threshold met.
func (rs *ReportService) OnReportCreated(ctx context.Context, item map[string]types.AttributeValue) error {
	var report models.Report
	if err := attributevalue.UnmarshalMap(item, &report); err != nil {
		return fmt.Errorf("failed to unmarshal report: %w", err)
	}

	if err := ValidateReport(report); err != nil {
		return err
	}

	count, err := rs.Store.CountItemsWithIndex(ctx,
		models.ReportsTable,
		models.ReportedUserIndex,
		"reportedUserId = :reported",
		map[string]types.AttributeValue{
			":reported": &types.AttributeValueMemberS{Value: report.ReportedUserID},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to count reports for user %s: %w", report.ReportedUserID, err)
	}

	switch {
	case count >= models.ReportSuspensionThreshold:
		return rs.suspend(ctx, report.ReportedUserID)
	case count >= models.ReportWarningThreshold:
		if err := rs.Notifications.SendWarningNotification(ctx, report.ReportedUserID, count); err != nil {
			log.Printf("⚠️ Failed to send warning to user %s: %v", report.ReportedUserID, err)
		}
	}
	return nil
}

// ValidateReport rejects malformed and self-referential reports.
func ValidateReport(report models.Report) error {
	if report.ReportedUserID == "" || report.ReporterID == "" {
		return models.Validationf("report requires reportedUserId and reporterId")
	}
	if report.ReportedUserID == report.ReporterID {
		return models.Validationf("user %s cannot report themselves", report.ReporterID)
	}
	return nil
}

func (rs *ReportService) suspend(ctx context.Context, userID string) error {
	until := rs.now().Add(models.SuspensionDuration)

	err := rs.Store.IncrementFields(ctx, models.UsersTable,
		StringKey("id", userID),
		nil,
		map[string]types.AttributeValue{
			"suspendedUntil":   utils.TimeAttr(until),
			"suspensionReason": &types.AttributeValueMemberS{Value: "Multiple reports"},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to suspend user %s: %w", userID, err)
	}

	log.Printf("🚫 User %s suspended until %s", userID, until.Format(time.RFC3339))

	hours := int(models.SuspensionDuration / time.Hour)
	if err := rs.Notifications.SendSuspensionNotification(ctx, userID, hours); err != nil {
		log.Printf("⚠️ Failed to send suspension notice to user %s: %v", userID, err)
	}
	return nil
}
