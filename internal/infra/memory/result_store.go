package memory

import (
	"context"
	"sync"

	"livequiz-service/internal/domain"
)

// ResultStore is an in-memory implementation of app.ResultStore. Results are
// written once per session and never mutated afterwards.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]domain.SessionResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]domain.SessionResult),
	}
}

func (s *ResultStore) GetResult(_ context.Context, sessionID string) (domain.SessionResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[sessionID]
	return result, ok, nil
}

func (s *ResultStore) PutResult(_ context.Context, sessionID string, result domain.SessionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[sessionID] = result
	return nil
}

func (s *ResultStore) InvalidateResult(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, sessionID)
	return nil
}
