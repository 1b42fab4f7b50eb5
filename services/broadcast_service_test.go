package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
)

type broadcastStoreStub struct {
	users []map[string]types.AttributeValue
}

func (s *broadcastStoreStub) ScanWithFilter(_ context.Context, _, _ string, _ map[string]types.AttributeValue, _ map[string]string, _ int) ([]map[string]types.AttributeValue, error) {
	return s.users, nil
}

func (s *broadcastStoreStub) addUser(id, token string) {
	user := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	if token != "" {
		user["fcmToken"] = &types.AttributeValueMemberS{Value: token}
	}
	s.users = append(s.users, user)
}

type multicastDispatcherStub struct {
	batches  [][]string
	lastPush models.Push
	failOn   int // fail the nth multicast call (1-based), 0 never
}

func (d *multicastDispatcherStub) Send(_ context.Context, _ string, _ models.Push) error {
	return errors.New("unexpected single send during broadcast")
}

func (d *multicastDispatcherStub) SendMulticast(_ context.Context, tokens []string, push models.Push) error {
	d.batches = append(d.batches, tokens)
	d.lastPush = push
	if d.failOn == len(d.batches) {
		return errors.New("multicast rejected")
	}
	return nil
}

func TestSuperHourBroadcastChunksTokens(t *testing.T) {
	store := &broadcastStoreStub{}
	for i := 0; i < 1200; i++ {
		store.addUser(fmt.Sprintf("u%d", i), fmt.Sprintf("token-%d", i))
	}

	dispatcher := &multicastDispatcherStub{}
	svc := &BroadcastService{Store: store, Dispatcher: dispatcher, Config: config.BroadcastConfig{ChunkSize: 500}}

	sent, err := svc.SendSuperHour(context.Background())
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if sent != 1200 {
		t.Errorf("sent = %d, want 1200", sent)
	}

	wantSizes := []int{500, 500, 200}
	if len(dispatcher.batches) != len(wantSizes) {
		t.Fatalf("got %d batches, want %d", len(dispatcher.batches), len(wantSizes))
	}
	for i, batch := range dispatcher.batches {
		if len(batch) != wantSizes[i] {
			t.Errorf("batch %d has %d tokens, want %d", i, len(batch), wantSizes[i])
		}
	}
	if dispatcher.lastPush.Type != models.NotificationTypeSuperHour {
		t.Errorf("push type = %q", dispatcher.lastPush.Type)
	}
}

func TestSuperHourSkipsUsersWithoutTokens(t *testing.T) {
	store := &broadcastStoreStub{}
	store.addUser("u1", "token-1")
	store.addUser("u2", "")
	store.addUser("u3", "token-3")

	dispatcher := &multicastDispatcherStub{}
	svc := &BroadcastService{Store: store, Dispatcher: dispatcher, Config: config.BroadcastConfig{ChunkSize: 500}}

	sent, err := svc.SendSuperHour(context.Background())
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if sent != 2 {
		t.Errorf("sent = %d, want 2", sent)
	}
	if len(dispatcher.batches) != 1 || len(dispatcher.batches[0]) != 2 {
		t.Errorf("batches = %v", dispatcher.batches)
	}
}

func TestSuperHourWithNoTokensSendsNothing(t *testing.T) {
	store := &broadcastStoreStub{}
	store.addUser("u1", "")

	dispatcher := &multicastDispatcherStub{}
	svc := &BroadcastService{Store: store, Dispatcher: dispatcher, Config: config.BroadcastConfig{ChunkSize: 500}}

	sent, err := svc.SendSuperHour(context.Background())
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if sent != 0 || len(dispatcher.batches) != 0 {
		t.Errorf("sent = %d, batches = %v", sent, dispatcher.batches)
	}
}

func TestSuperHourStopsOnMulticastFailure(t *testing.T) {
	store := &broadcastStoreStub{}
	for i := 0; i < 700; i++ {
		store.addUser(fmt.Sprintf("u%d", i), fmt.Sprintf("token-%d", i))
	}

	dispatcher := &multicastDispatcherStub{failOn: 2}
	svc := &BroadcastService{Store: store, Dispatcher: dispatcher, Config: config.BroadcastConfig{ChunkSize: 500}}

	if _, err := svc.SendSuperHour(context.Background()); err == nil {
		t.Fatal("expected multicast failure to surface")
	}
	if len(dispatcher.batches) != 2 {
		t.Errorf("broadcast should stop after the failing batch, got %d batches", len(dispatcher.batches))
	}
}
