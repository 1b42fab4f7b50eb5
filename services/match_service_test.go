package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
)

type matchStoreStub struct {
	likes      map[string]bool // stored like edges, "from->to"
	queryErr   error
	queryCalls int

	matches  map[string]models.Match
	putCalls int

	touched   []string
	lastAdd   map[string]float64
	lastSet   map[string]types.AttributeValue
	incrErr   error
	incrCalls int
}

func newMatchStoreStub() *matchStoreStub {
	return &matchStoreStub{
		likes:   map[string]bool{},
		matches: map[string]models.Match{},
	}
}

func (s *matchStoreStub) QueryItemsWithIndex(_ context.Context, _, _, _ string, values map[string]types.AttributeValue, _ map[string]string, _ string, _ int32) ([]map[string]types.AttributeValue, error) {
	s.queryCalls++
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	from := values[":user"].(*types.AttributeValueMemberS).Value
	to := values[":target"].(*types.AttributeValueMemberS).Value
	if s.likes[from+"->"+to] {
		return []map[string]types.AttributeValue{{}}, nil
	}
	return nil, nil
}

func (s *matchStoreStub) PutItemIfAbsent(_ context.Context, _ string, item interface{}, _ string) (bool, error) {
	s.putCalls++
	match := item.(models.Match)
	if _, exists := s.matches[match.ID]; exists {
		return false, nil
	}
	s.matches[match.ID] = match
	return true, nil
}

func (s *matchStoreStub) IncrementFields(_ context.Context, _ string, key map[string]types.AttributeValue, add map[string]float64, set map[string]types.AttributeValue) error {
	s.incrCalls++
	if s.incrErr != nil {
		return s.incrErr
	}
	s.touched = append(s.touched, key["id"].(*types.AttributeValueMemberS).Value)
	s.lastAdd = add
	s.lastSet = set
	return nil
}

type matchNotifierStub struct {
	sent [][2]string // [recipient, matched user]
	err  error
}

func (n *matchNotifierStub) SendMatchNotification(_ context.Context, userID, matchedUserID string) error {
	n.sent = append(n.sent, [2]string{userID, matchedUserID})
	return n.err
}

// deliver mimics the write path: the swipe document lands in the store, then
// the create event reaches the handler.
func deliver(t *testing.T, svc *MatchService, store *matchStoreStub, swipe models.Swipe) error {
	t.Helper()
	store.likes[swipe.UserID+"->"+swipe.TargetUserID] = swipe.Type == models.SwipeTypeLike
	item, err := attributevalue.MarshalMap(swipe)
	if err != nil {
		t.Fatalf("marshal swipe: %v", err)
	}
	return svc.OnSwipeCreated(context.Background(), item)
}

func likeSwipe(id, from, to string) models.Swipe {
	return models.Swipe{
		ID:           id,
		UserID:       from,
		TargetUserID: to,
		Type:         models.SwipeTypeLike,
		CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestMutualLikeCreatesExactlyOneMatch(t *testing.T) {
	store := newMatchStoreStub()
	notifier := &matchNotifierStub{}
	svc := &MatchService{Store: store, Notifications: notifier}

	if err := deliver(t, svc, store, likeSwipe("s1", "alice", "bob")); err != nil {
		t.Fatalf("first swipe: %v", err)
	}
	if len(store.matches) != 0 {
		t.Fatalf("no match expected before reciprocity, got %d", len(store.matches))
	}

	if err := deliver(t, svc, store, likeSwipe("s2", "bob", "alice")); err != nil {
		t.Fatalf("second swipe: %v", err)
	}

	if len(store.matches) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(store.matches))
	}
	match, ok := store.matches["alice_bob"]
	if !ok {
		t.Fatalf("match missing canonical id, stored: %v", store.matches)
	}
	if match.UserID1 != "alice" || match.UserID2 != "bob" {
		t.Errorf("match pair not canonical: %s/%s", match.UserID1, match.UserID2)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected both participants notified, got %v", notifier.sent)
	}
	if notifier.sent[0] != [2]string{"bob", "alice"} || notifier.sent[1] != [2]string{"alice", "bob"} {
		t.Errorf("unexpected notification pairs: %v", notifier.sent)
	}
}

func TestMutualLikeOppositeOrderYieldsSameMatch(t *testing.T) {
	store := newMatchStoreStub()
	svc := &MatchService{Store: store, Notifications: &matchNotifierStub{}}

	if err := deliver(t, svc, store, likeSwipe("s1", "bob", "alice")); err != nil {
		t.Fatalf("first swipe: %v", err)
	}
	if err := deliver(t, svc, store, likeSwipe("s2", "alice", "bob")); err != nil {
		t.Fatalf("second swipe: %v", err)
	}

	if len(store.matches) != 1 {
		t.Fatalf("expected one match regardless of order, got %d", len(store.matches))
	}
	if _, ok := store.matches["alice_bob"]; !ok {
		t.Errorf("match id not canonical: %v", store.matches)
	}
}

func TestDuplicateDeliveryDoesNotDuplicateMatchOrNotifications(t *testing.T) {
	store := newMatchStoreStub()
	notifier := &matchNotifierStub{}
	svc := &MatchService{Store: store, Notifications: notifier}

	if err := deliver(t, svc, store, likeSwipe("s1", "alice", "bob")); err != nil {
		t.Fatalf("first swipe: %v", err)
	}
	swipe := likeSwipe("s2", "bob", "alice")
	if err := deliver(t, svc, store, swipe); err != nil {
		t.Fatalf("second swipe: %v", err)
	}
	// Same event delivered again.
	if err := deliver(t, svc, store, swipe); err != nil {
		t.Fatalf("redelivered swipe: %v", err)
	}

	if len(store.matches) != 1 {
		t.Fatalf("redelivery created a duplicate match, got %d", len(store.matches))
	}
	if len(notifier.sent) != 2 {
		t.Errorf("redelivery re-sent notifications: %v", notifier.sent)
	}
}

func TestConcurrentDirectionsOnlyNotifyOnce(t *testing.T) {
	store := newMatchStoreStub()
	notifier := &matchNotifierStub{}
	svc := &MatchService{Store: store, Notifications: notifier}

	// Both swipes are already stored before either handler runs, as happens
	// when the two directions land near-simultaneously.
	store.likes["alice->bob"] = true
	store.likes["bob->alice"] = true

	if err := deliver(t, svc, store, likeSwipe("s1", "alice", "bob")); err != nil {
		t.Fatalf("first handler: %v", err)
	}
	if err := deliver(t, svc, store, likeSwipe("s2", "bob", "alice")); err != nil {
		t.Fatalf("second handler: %v", err)
	}

	if len(store.matches) != 1 {
		t.Fatalf("expected one match from racing handlers, got %d", len(store.matches))
	}
	if len(notifier.sent) != 2 {
		t.Errorf("only the creating handler should notify, got %v", notifier.sent)
	}
}

func TestPassStillUpdatesCounters(t *testing.T) {
	store := newMatchStoreStub()
	svc := &MatchService{Store: store, Notifications: &matchNotifierStub{}}

	swipe := likeSwipe("s1", "alice", "bob")
	swipe.Type = models.SwipeTypePass

	if err := deliver(t, svc, store, swipe); err != nil {
		t.Fatalf("pass swipe: %v", err)
	}

	if store.queryCalls != 0 {
		t.Errorf("pass must not probe for reciprocity, got %d queries", store.queryCalls)
	}
	if store.putCalls != 0 {
		t.Errorf("pass must not create matches, got %d puts", store.putCalls)
	}
	if len(store.touched) != 1 || store.touched[0] != "alice" {
		t.Fatalf("expected counter bump for alice, got %v", store.touched)
	}
	if store.lastAdd["swipeCount"] != 1 {
		t.Errorf("expected swipeCount increment of 1, got %v", store.lastAdd)
	}
	if _, ok := store.lastSet["lastActive"]; !ok {
		t.Error("expected lastActive to be refreshed")
	}
	if _, ok := store.lastSet["lastSwipeAt"]; !ok {
		t.Error("expected lastSwipeAt to be refreshed")
	}
}

func TestSelfSwipeIsRejected(t *testing.T) {
	store := newMatchStoreStub()
	svc := &MatchService{Store: store, Notifications: &matchNotifierStub{}}

	err := deliver(t, svc, store, likeSwipe("s1", "alice", "alice"))
	if !models.IsValidation(err) {
		t.Fatalf("expected validation error for self swipe, got %v", err)
	}
	if store.incrCalls != 0 || store.queryCalls != 0 {
		t.Error("rejected swipe must not touch the store")
	}
}

func TestUnknownSwipeTypeIsRejected(t *testing.T) {
	store := newMatchStoreStub()
	svc := &MatchService{Store: store, Notifications: &matchNotifierStub{}}

	swipe := likeSwipe("s1", "alice", "bob")
	swipe.Type = "wink"

	if err := deliver(t, svc, store, swipe); !models.IsValidation(err) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}

func TestCountersBumpEvenWhenMatchHandlingFails(t *testing.T) {
	store := newMatchStoreStub()
	store.queryErr = errors.New("store unavailable")
	svc := &MatchService{Store: store, Notifications: &matchNotifierStub{}}

	if err := deliver(t, svc, store, likeSwipe("s1", "alice", "bob")); err != nil {
		t.Fatalf("counter update should still succeed: %v", err)
	}
	if len(store.touched) != 1 || store.touched[0] != "alice" {
		t.Fatalf("expected counter bump despite match failure, got %v", store.touched)
	}
}
