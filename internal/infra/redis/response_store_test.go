package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"livequiz-service/internal/domain"
)

func TestResponseStoreRecordAndDuplicate(t *testing.T) {
	ctx := context.Background()
	store, mr := newResponseStore(t)

	first := domain.Response{SelectedOptions: []string{"o2"}, TimeTakenMillis: 700, Correct: true}
	recorded, err := store.Record(ctx, "s1", "alice", 0, first)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(recorded) != 1 || !recorded[0].Correct {
		t.Fatalf("unexpected recorded map: %+v", recorded)
	}
	if !mr.Exists("session:s1:responses:alice") {
		t.Fatalf("expected response hash in redis")
	}

	_, err = store.Record(ctx, "s1", "alice", 0, domain.Response{SelectedOptions: []string{"o1"}})
	if !errors.Is(err, domain.ErrDuplicateAnswer) {
		t.Fatalf("expected duplicate answer, got %v", err)
	}

	fetched, err := store.Fetch(ctx, "s1", "alice")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := fetched[0]; got.TimeTakenMillis != 700 {
		t.Fatalf("first response was overwritten: %+v", got)
	}
}

func TestResponseStoreFetchEmpty(t *testing.T) {
	store, _ := newResponseStore(t)
	if _, err := store.Fetch(context.Background(), "s1", "nobody"); !errors.Is(err, domain.ErrNoResponses) {
		t.Fatalf("expected no responses, got %v", err)
	}
}

func TestResponseStoreClear(t *testing.T) {
	ctx := context.Background()
	store, mr := newResponseStore(t)

	if _, err := store.Record(ctx, "s1", "alice", 0, domain.Response{SelectedOptions: []string{"o1"}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := store.Record(ctx, "s1", "bob", 0, domain.Response{SelectedOptions: []string{"o2"}}); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := store.Clear(ctx, "s1", []string{"alice", "bob"}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists("session:s1:responses:alice") || mr.Exists("session:s1:responses:bob") {
		t.Fatalf("expected response hashes removed")
	}
	if mr.Exists("session:s1:respondents") {
		t.Fatalf("expected respondent index removed")
	}
}

func newResponseStore(t *testing.T) (*ResponseStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewResponseStore(client, time.Minute), mr
}
