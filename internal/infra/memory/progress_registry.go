package memory

import (
	"sync"

	"livequiz-service/internal/app"
	"livequiz-service/internal/domain"
)

// ProgressRegistry is an in-memory implementation of app.ProgressRegistry.
// The registry lock guards only the map; each tracker carries its own lock,
// so unrelated sessions advance in parallel.
type ProgressRegistry struct {
	mu       sync.RWMutex
	trackers map[string]*app.Progress
}

func NewProgressRegistry() *ProgressRegistry {
	return &ProgressRegistry{
		trackers: make(map[string]*app.Progress),
	}
}

func (r *ProgressRegistry) Start(sessionID string, numParticipants int) (*app.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trackers[sessionID]; ok {
		return nil, domain.ErrSessionAlreadyStarted
	}
	tracker := app.NewProgress(numParticipants)
	r.trackers[sessionID] = tracker
	return tracker, nil
}

func (r *ProgressRegistry) Get(sessionID string) (*app.Progress, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tracker, ok := r.trackers[sessionID]
	return tracker, ok
}

func (r *ProgressRegistry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.trackers, sessionID)
}
