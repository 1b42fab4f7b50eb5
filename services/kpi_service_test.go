package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/utils"
)

type kpiStoreStub struct {
	// counts keyed by "table/field"; the all-time total uses field "".
	counts   map[string]int
	countErr error

	sinceSeen []time.Time
	stored    *models.KPISnapshot
}

func (s *kpiStoreStub) CountWithFilter(_ context.Context, tableName, filterExpression string, values map[string]types.AttributeValue, names map[string]string) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	field := ""
	if filterExpression != "" {
		field = names["#f"]
		s.sinceSeen = append(s.sinceSeen, utils.ExtractTime(map[string]types.AttributeValue{"since": values[":since"]}, "since"))
	}
	return s.counts[tableName+"/"+field], nil
}

func (s *kpiStoreStub) PutItem(_ context.Context, _ string, item interface{}) error {
	s.stored = item.(*models.KPISnapshot)
	return nil
}

func TestExportAssemblesAndStoresDailySnapshot(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 55, 0, 0, time.UTC)
	store := &kpiStoreStub{counts: map[string]int{
		models.UsersTable + "/":                   5000,
		models.UsersTable + "/lastActive":         1200,
		models.UsersTable + "/createdAt":          80,
		models.SwipesTable + "/createdAt":         34000,
		models.MatchesTable + "/createdAt":        410,
		models.MessagesTable + "/createdAt":       9800,
		models.CommunityPostsTable + "/createdAt": 150,
		models.ReportsTable + "/createdAt":        12,
	}}

	svc := &KPIService{Store: store}
	snapshot, err := svc.Export(context.Background(), now)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if snapshot.Date != "2026-08-30" {
		t.Errorf("date = %q", snapshot.Date)
	}
	if snapshot.Users != (models.UserKPIs{Total: 5000, Active: 1200, New: 80}) {
		t.Errorf("users = %+v", snapshot.Users)
	}
	if snapshot.Engagement != (models.EngageKPIs{Swipes: 34000, Matches: 410, Messages: 9800}) {
		t.Errorf("engagement = %+v", snapshot.Engagement)
	}
	if snapshot.Community != (models.CommunityKPIs{Posts: 150, Reports: 12}) {
		t.Errorf("community = %+v", snapshot.Community)
	}
	if snapshot.Period != "daily" {
		t.Errorf("period = %q", snapshot.Period)
	}

	if store.stored != snapshot {
		t.Error("the returned snapshot must also be persisted")
	}

	wantSince := now.Add(-24 * time.Hour)
	for _, since := range store.sinceSeen {
		if !since.Equal(wantSince) {
			t.Errorf("windowed count used since = %v, want %v", since, wantSince)
		}
	}
}

func TestExportFailsWithoutStoringOnCountError(t *testing.T) {
	store := &kpiStoreStub{countErr: errors.New("throttled")}
	svc := &KPIService{Store: store}

	if _, err := svc.Export(context.Background(), time.Now()); err == nil {
		t.Fatal("expected count failure to surface")
	}
	if store.stored != nil {
		t.Error("no snapshot should be stored when counting fails")
	}
}
