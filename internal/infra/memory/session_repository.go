package memory

import (
	"context"
	"sync"

	"livequiz-service/internal/domain"
)

// SessionRepository is an in-memory implementation of app.SessionRepository,
// useful for tests and single-node demo runs without Postgres.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]domain.Session),
	}
}

func (r *SessionRepository) GetSession(_ context.Context, sessionID string) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (r *SessionRepository) SaveSession(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) CreateSession(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func cloneSession(s domain.Session) domain.Session {
	out := s
	out.Participants = append([]string(nil), s.Participants...)
	if s.StartedAt != nil {
		started := *s.StartedAt
		out.StartedAt = &started
	}
	if s.EndedAt != nil {
		ended := *s.EndedAt
		out.EndedAt = &ended
	}
	return out
}
