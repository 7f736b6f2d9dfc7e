package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"livequiz-service/internal/domain"
)

// ResultStore caches computed session results as JSON values with TTL.
// Results are immutable once computed, so a cache hit never goes stale;
// entries are invalidated only when the session itself is deleted.
type ResultStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultStore(client *redis.Client, ttl time.Duration) *ResultStore {
	return &ResultStore{client: client, ttl: ttl}
}

func (s *ResultStore) GetResult(ctx context.Context, sessionID string) (domain.SessionResult, bool, error) {
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.SessionResult{}, false, nil
	}
	if err != nil {
		return domain.SessionResult{}, false, fmt.Errorf("get result: %w", err)
	}

	var result domain.SessionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return domain.SessionResult{}, false, fmt.Errorf("unmarshal result: %w", err)
	}
	return result, true, nil
}

func (s *ResultStore) PutResult(ctx context.Context, sessionID string, result domain.SessionResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("put result: %w", err)
	}
	return nil
}

func (s *ResultStore) InvalidateResult(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("invalidate result: %w", err)
	}
	return nil
}

func (s *ResultStore) key(sessionID string) string {
	return "session:" + sessionID + ":result"
}
