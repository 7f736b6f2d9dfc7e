package memory

import (
	"errors"
	"testing"

	"livequiz-service/internal/domain"
)

func TestProgressRegistryLifecycle(t *testing.T) {
	registry := NewProgressRegistry()

	tracker, err := registry.Start("s1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if tracker == nil {
		t.Fatalf("expected tracker")
	}
	if _, ok := registry.Get("s1"); !ok {
		t.Fatalf("expected tracker present")
	}

	if _, err := registry.Start("s1", 3); !errors.Is(err, domain.ErrSessionAlreadyStarted) {
		t.Fatalf("expected already started, got %v", err)
	}

	registry.Remove("s1")
	if _, ok := registry.Get("s1"); ok {
		t.Fatalf("expected tracker removed")
	}
}

func TestProgressRegistrySessionsIndependent(t *testing.T) {
	registry := NewProgressRegistry()

	one, _ := registry.Start("s1", 1)
	two, _ := registry.Start("s2", 2)

	one.RecordAnswer()
	if got := two.CurrentIndex(); got != 0 {
		t.Fatalf("expected s2 untouched, got index %d", got)
	}
	if got := one.CurrentIndex(); got != 1 {
		t.Fatalf("expected s1 advanced, got index %d", got)
	}
}
