package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"livequiz-service/internal/app"
	"livequiz-service/internal/domain"
)

// ProgressRegistry is a Redis-aware implementation of app.ProgressRegistry.
// Notes:
//   - Trackers stay in a local map: the per-session lock and the
//     increment-and-maybe-advance sequence only make sense in-process.
//   - Redis marks session liveness so operators (and sibling instances) can
//     see which sessions are running; sticky routing keeps one session's
//     participants on one instance.
type ProgressRegistry struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	trackers map[string]*app.Progress
}

func NewProgressRegistry(client *redis.Client, ttl time.Duration) *ProgressRegistry {
	return &ProgressRegistry{
		client:   client,
		ttl:      ttl,
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
	// best-effort liveness marker
	_ = r.client.Set(context.Background(), r.key(sessionID), "1", r.ttl).Err()
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
	if _, ok := r.trackers[sessionID]; !ok {
		return
	}
	delete(r.trackers, sessionID)
	_ = r.client.Del(context.Background(), r.key(sessionID)).Err()
}

func (r *ProgressRegistry) key(sessionID string) string {
	return "session:live:" + sessionID
}
