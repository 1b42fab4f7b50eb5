package services

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

type reportStoreStub struct {
	count    int
	countErr error

	suspendedUser string
	lastSet       map[string]types.AttributeValue
	updateCalls   int
}

func (s *reportStoreStub) CountItemsWithIndex(_ context.Context, _, _, _ string, values map[string]types.AttributeValue) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.count, nil
}

func (s *reportStoreStub) IncrementFields(_ context.Context, _ string, key map[string]types.AttributeValue, _ map[string]float64, set map[string]types.AttributeValue) error {
	s.updateCalls++
	s.suspendedUser = key["id"].(*types.AttributeValueMemberS).Value
	s.lastSet = set
	return nil
}

type reportNotifierStub struct {
	warnings    []int
	suspensions []int
	warnedUser  string
}

func (n *reportNotifierStub) SendWarningNotification(_ context.Context, userID string, reportCount int) error {
	n.warnedUser = userID
	n.warnings = append(n.warnings, reportCount)
	return nil
}

func (n *reportNotifierStub) SendSuspensionNotification(_ context.Context, _ string, hours int) error {
	n.suspensions = append(n.suspensions, hours)
	return nil
}

func deliverReport(t *testing.T, svc *ReportService, report models.Report) error {
	t.Helper()
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	return svc.OnReportCreated(context.Background(), item)
}

func someReport() models.Report {
	return models.Report{
		ID:             "r1",
		ReportedUserID: "bob",
		ReporterID:     "alice",
		CreatedAt:      time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
}

func TestTwoReportsTakeNoAction(t *testing.T) {
	store := &reportStoreStub{count: 2}
	notifier := &reportNotifierStub{}
	svc := &ReportService{Store: store, Notifications: notifier}

	if err := deliverReport(t, svc, someReport()); err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(notifier.warnings) != 0 || len(notifier.suspensions) != 0 {
		t.Errorf("no action expected below the warning threshold: %+v", notifier)
	}
	if store.updateCalls != 0 {
		t.Error("no user fields should change below the warning threshold")
	}
}

func TestThirdReportWarnsWithoutSuspending(t *testing.T) {
	store := &reportStoreStub{count: 3}
	notifier := &reportNotifierStub{}
	svc := &ReportService{Store: store, Notifications: notifier}

	if err := deliverReport(t, svc, someReport()); err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(notifier.warnings) != 1 || notifier.warnings[0] != 3 {
		t.Fatalf("expected one warning citing 3 reports, got %v", notifier.warnings)
	}
	if notifier.warnedUser != "bob" {
		t.Errorf("warning went to %s, want bob", notifier.warnedUser)
	}
	if len(notifier.suspensions) != 0 {
		t.Error("warning threshold must not suspend")
	}
	if store.updateCalls != 0 {
		t.Error("warning must not change user state")
	}
}

func TestFifthReportSuspendsFor24Hours(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	store := &reportStoreStub{count: 5}
	notifier := &reportNotifierStub{}
	svc := &ReportService{Store: store, Notifications: notifier, Clock: func() time.Time { return now }}

	if err := deliverReport(t, svc, someReport()); err != nil {
		t.Fatalf("report: %v", err)
	}

	if store.suspendedUser != "bob" {
		t.Fatalf("expected bob suspended, got %q", store.suspendedUser)
	}
	until := utils.ExtractTime(map[string]types.AttributeValue{"suspendedUntil": store.lastSet["suspendedUntil"]}, "suspendedUntil")
	if !until.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("suspendedUntil = %v, want %v", until, now.Add(24*time.Hour))
	}
	reason := store.lastSet["suspensionReason"].(*types.AttributeValueMemberS).Value
	if reason != "Multiple reports" {
		t.Errorf("suspensionReason = %q", reason)
	}

	// Only the highest threshold fires.
	if len(notifier.warnings) != 0 {
		t.Errorf("suspension must not also warn, got %v", notifier.warnings)
	}
	if len(notifier.suspensions) != 1 || notifier.suspensions[0] != 24 {
		t.Errorf("expected one 24h suspension notice, got %v", notifier.suspensions)
	}
}

func TestLaterReportsResetTheSuspensionWindow(t *testing.T) {
	first := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	second := first.Add(6 * time.Hour)

	store := &reportStoreStub{count: 5}
	notifier := &reportNotifierStub{}
	now := first
	svc := &ReportService{Store: store, Notifications: notifier, Clock: func() time.Time { return now }}

	if err := deliverReport(t, svc, someReport()); err != nil {
		t.Fatalf("first suspension: %v", err)
	}

	store.count = 6
	now = second
	if err := deliverReport(t, svc, someReport()); err != nil {
		t.Fatalf("second suspension: %v", err)
	}

	until := utils.ExtractTime(map[string]types.AttributeValue{"suspendedUntil": store.lastSet["suspendedUntil"]}, "suspendedUntil")
	if !until.Equal(second.Add(24 * time.Hour)) {
		t.Errorf("suspension window must reset from the latest report: got %v, want %v", until, second.Add(24*time.Hour))
	}
}

func TestSelfReportIsRejected(t *testing.T) {
	store := &reportStoreStub{count: 10}
	svc := &ReportService{Store: store, Notifications: &reportNotifierStub{}}

	report := someReport()
	report.ReporterID = report.ReportedUserID

	if err := deliverReport(t, svc, report); !models.IsValidation(err) {
		t.Fatalf("expected validation error for self report, got %v", err)
	}
	if store.updateCalls != 0 {
		t.Error("rejected report must not touch the store")
	}
}
