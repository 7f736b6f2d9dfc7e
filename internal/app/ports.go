package app

import (
	"context"

	"livequiz-service/internal/domain"
)

// SessionRepository is the session read/write model (in-memory, Postgres, ...).
type SessionRepository interface {
	GetSession(ctx context.Context, sessionID string) (domain.Session, error)
	SaveSession(ctx context.Context, session domain.Session) error
	CreateSession(ctx context.Context, session domain.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// ResponseStore holds each participant's recorded responses for a running
// session. Record's duplicate check and insert form a single atomic
// check-and-set per (session, participant).
type ResponseStore interface {
	// Record stores a response for the question index and returns the
	// participant's full updated response map. Fails with
	// domain.ErrDuplicateAnswer if the index was already recorded; the
	// original response is left untouched.
	Record(ctx context.Context, sessionID, participantID string, questionIndex int, response domain.Response) (domain.RecordedResponses, error)
	// Fetch returns a participant's recorded responses, or
	// domain.ErrNoResponses when nothing has been recorded.
	Fetch(ctx context.Context, sessionID, participantID string) (domain.RecordedResponses, error)
	// Clear drops all recorded responses for a session.
	Clear(ctx context.Context, sessionID string, participants []string) error
}

// Archive persists response records and computed results durably; the stores
// above remain the source of truth while the session runs.
type Archive interface {
	SaveResponses(ctx context.Context, sessionID, participantID string, responses domain.RecordedResponses) error
	SaveResult(ctx context.Context, sessionID string, result domain.SessionResult) error
}

// ResultStore caches computed session results. Results are computed once per
// session and immutable afterwards; entries are invalidated on deletion.
type ResultStore interface {
	GetResult(ctx context.Context, sessionID string) (domain.SessionResult, bool, error)
	PutResult(ctx context.Context, sessionID string, result domain.SessionResult) error
	InvalidateResult(ctx context.Context, sessionID string) error
}

// Notifier publishes session events to a topic keyed by session ID. Delivery
// is fire-and-forget: implementations log and drop on failure, the core never
// blocks on or retries it.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}
