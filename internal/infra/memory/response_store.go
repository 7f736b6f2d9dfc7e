package memory

import (
	"context"
	"sync"

	"livequiz-service/internal/domain"
)

// ResponseStore keeps recorded responses in nested maps keyed by session and
// participant. The duplicate check and the insert share one critical section,
// so two racing submissions for the same question index cannot both pass.
type ResponseStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]domain.RecordedResponses
}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{
		sessions: make(map[string]map[string]domain.RecordedResponses),
	}
}

func (s *ResponseStore) Record(_ context.Context, sessionID, participantID string, questionIndex int, response domain.Response) (domain.RecordedResponses, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants, ok := s.sessions[sessionID]
	if !ok {
		participants = make(map[string]domain.RecordedResponses)
		s.sessions[sessionID] = participants
	}
	recorded, ok := participants[participantID]
	if !ok {
		recorded = make(domain.RecordedResponses)
		participants[participantID] = recorded
	}

	if _, exists := recorded[questionIndex]; exists {
		return nil, domain.ErrDuplicateAnswer
	}
	recorded[questionIndex] = response
	return cloneResponses(recorded), nil
}

func (s *ResponseStore) Fetch(_ context.Context, sessionID, participantID string) (domain.RecordedResponses, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recorded, ok := s.sessions[sessionID][participantID]
	if !ok || len(recorded) == 0 {
		return nil, domain.ErrNoResponses
	}
	return cloneResponses(recorded), nil
}

func (s *ResponseStore) Clear(_ context.Context, sessionID string, _ []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// cloneResponses copies the map so callers never alias store internals.
func cloneResponses(in domain.RecordedResponses) domain.RecordedResponses {
	out := make(domain.RecordedResponses, len(in))
	for index, response := range in {
		out[index] = response
	}
	return out
}
