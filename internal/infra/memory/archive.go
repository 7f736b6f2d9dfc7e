package memory

import (
	"context"
	"sync"

	"livequiz-service/internal/domain"
)

// Archive keeps archived responses and results in maps. It stands in for the
// Postgres archive in tests and demo runs; tests also use it to assert what
// the lifecycle service persisted.
type Archive struct {
	mu        sync.RWMutex
	responses map[string]map[string]domain.RecordedResponses
	results   map[string]domain.SessionResult
}

func NewArchive() *Archive {
	return &Archive{
		responses: make(map[string]map[string]domain.RecordedResponses),
		results:   make(map[string]domain.SessionResult),
	}
}

func (a *Archive) SaveResponses(_ context.Context, sessionID, participantID string, responses domain.RecordedResponses) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	participants, ok := a.responses[sessionID]
	if !ok {
		participants = make(map[string]domain.RecordedResponses)
		a.responses[sessionID] = participants
	}
	participants[participantID] = cloneResponses(responses)
	return nil
}

func (a *Archive) SaveResult(_ context.Context, sessionID string, result domain.SessionResult) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.results[sessionID] = result
	return nil
}

// ArchivedResponses returns the last archived response map for a participant.
func (a *Archive) ArchivedResponses(sessionID, participantID string) (domain.RecordedResponses, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	responses, ok := a.responses[sessionID][participantID]
	if !ok {
		return nil, false
	}
	return cloneResponses(responses), true
}

// ArchivedResult returns the archived result for a session.
func (a *Archive) ArchivedResult(sessionID string) (domain.SessionResult, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	result, ok := a.results[sessionID]
	return result, ok
}
