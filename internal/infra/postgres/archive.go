package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"livequiz-service/internal/domain"
)

// Archive persists recorded responses and computed results as JSONB. Each
// participant's response map is upserted whole after every recorded answer,
// so the durable copy tracks the in-memory store.
type Archive struct {
	pool *pgxpool.Pool
}

func NewArchive(pool *pgxpool.Pool) *Archive {
	return &Archive{pool: pool}
}

func (a *Archive) SaveResponses(ctx context.Context, sessionID, participantID string, responses domain.RecordedResponses) error {
	data, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	_, err = a.pool.Exec(ctx,
		`INSERT INTO responses (session_id, participant_id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, participant_id) DO UPDATE SET data=EXCLUDED.data`,
		sessionID, participantID, data,
	)
	if err != nil {
		return fmt.Errorf("archive responses: %w", err)
	}
	return nil
}

func (a *Archive) SaveResult(ctx context.Context, sessionID string, result domain.SessionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = a.pool.Exec(ctx,
		`INSERT INTO results (session_id, data) VALUES ($1, $2)
		 ON CONFLICT (session_id) DO UPDATE SET data=EXCLUDED.data`,
		sessionID, data,
	)
	if err != nil {
		return fmt.Errorf("archive result: %w", err)
	}
	return nil
}
