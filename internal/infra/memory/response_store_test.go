package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"livequiz-service/internal/domain"
)

func TestResponseStoreRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	store := NewResponseStore()

	first := domain.Response{SelectedOptions: []string{"o2"}, TimeTakenMillis: 800, Correct: true}
	recorded, err := store.Record(ctx, "s1", "alice", 0, first)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(recorded) != 1 {
		t.Fatalf("expected 1 recorded response, got %d", len(recorded))
	}

	_, err = store.Record(ctx, "s1", "alice", 0, domain.Response{SelectedOptions: []string{"o1"}})
	if !errors.Is(err, domain.ErrDuplicateAnswer) {
		t.Fatalf("expected duplicate answer, got %v", err)
	}

	fetched, err := store.Fetch(ctx, "s1", "alice")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := fetched[0]; got.TimeTakenMillis != 800 || !got.Correct {
		t.Fatalf("first response was overwritten: %+v", got)
	}
}

func TestResponseStoreConcurrentDuplicateRace(t *testing.T) {
	ctx := context.Background()
	store := NewResponseStore()

	const racers = 32
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Record(ctx, "s1", "alice", 0, domain.Response{SelectedOptions: []string{"o1"}})
		}(i)
	}
	wg.Wait()

	recorded := 0
	for _, err := range errs {
		if err == nil {
			recorded++
		} else if !errors.Is(err, domain.ErrDuplicateAnswer) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if recorded != 1 {
		t.Fatalf("expected exactly one racer to record, got %d", recorded)
	}
}

func TestResponseStoreFetchAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewResponseStore()

	if _, err := store.Fetch(ctx, "s1", "alice"); !errors.Is(err, domain.ErrNoResponses) {
		t.Fatalf("expected no responses, got %v", err)
	}

	if _, err := store.Record(ctx, "s1", "alice", 0, domain.Response{SelectedOptions: []string{"o1"}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := store.Record(ctx, "s1", "alice", 1, domain.Response{SelectedOptions: []string{"o2"}}); err != nil {
		t.Fatalf("record: %v", err)
	}

	fetched, err := store.Fetch(ctx, "s1", "alice")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(fetched) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(fetched))
	}

	if err := store.Clear(ctx, "s1", []string{"alice"}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Fetch(ctx, "s1", "alice"); !errors.Is(err, domain.ErrNoResponses) {
		t.Fatalf("expected cleared, got %v", err)
	}
}

func TestResponseStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewResponseStore()

	recorded, err := store.Record(ctx, "s1", "alice", 0, domain.Response{SelectedOptions: []string{"o1"}})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	recorded[5] = domain.Response{}

	fetched, err := store.Fetch(ctx, "s1", "alice")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(fetched) != 1 {
		t.Fatalf("caller mutation leaked into store: %d entries", len(fetched))
	}
}
