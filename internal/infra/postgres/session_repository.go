package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"livequiz-service/internal/domain"
)

// SessionRepository stores sessions in Postgres. The participant list is kept
// as JSONB; it is written once at creation and read as a unit afterwards.
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	var (
		session      domain.Session
		participants []byte
		startedAt    *time.Time
		endedAt      *time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, host_id, quiz_id, participants, started_at, ended_at FROM sessions WHERE id=$1`,
		sessionID,
	).Scan(&session.ID, &session.HostID, &session.QuizID, &participants, &startedAt, &endedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if err := json.Unmarshal(participants, &session.Participants); err != nil {
		return domain.Session{}, fmt.Errorf("unmarshal participants: %w", err)
	}
	session.StartedAt = startedAt
	session.EndedAt = endedAt
	return session, nil
}

func (r *SessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	participants, err := json.Marshal(session.Participants)
	if err != nil {
		return fmt.Errorf("marshal participants: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO sessions (id, host_id, quiz_id, participants, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.HostID, session.QuizID, participants, session.StartedAt, session.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	participants, err := json.Marshal(session.Participants)
	if err != nil {
		return fmt.Errorf("marshal participants: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE sessions SET host_id=$2, quiz_id=$3, participants=$4, started_at=$5, ended_at=$6 WHERE id=$1`,
		session.ID, session.HostID, session.QuizID, participants, session.StartedAt, session.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
