package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"livequiz-service/internal/domain"
)

// ResponseStore keeps recorded responses in Redis, one hash per
// (session, participant): HSET session:{id}:responses:{participant} {index} {json}.
// HSETNX makes the duplicate check and the insert a single server-side
// operation, so two racing submissions for the same question index cannot
// both be recorded.
type ResponseStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseStore(client *redis.Client, ttl time.Duration) *ResponseStore {
	return &ResponseStore{client: client, ttl: ttl}
}

func (s *ResponseStore) Record(ctx context.Context, sessionID, participantID string, questionIndex int, response domain.Response) (domain.RecordedResponses, error) {
	payload, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("marshal response: %w", err)
	}

	key := s.responsesKey(sessionID, participantID)
	field := strconv.Itoa(questionIndex)
	inserted, err := s.client.HSetNX(ctx, key, field, payload).Result()
	if err != nil {
		return nil, fmt.Errorf("record response: %w", err)
	}
	if !inserted {
		return nil, domain.ErrDuplicateAnswer
	}

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, s.respondentsKey(sessionID), participantID)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
		pipe.Expire(ctx, s.respondentsKey(sessionID), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("index respondent: %w", err)
	}

	return s.Fetch(ctx, sessionID, participantID)
}

func (s *ResponseStore) Fetch(ctx context.Context, sessionID, participantID string) (domain.RecordedResponses, error) {
	raw, err := s.client.HGetAll(ctx, s.responsesKey(sessionID, participantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch responses: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrNoResponses
	}

	recorded := make(domain.RecordedResponses, len(raw))
	for field, payload := range raw {
		index, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse question index %q: %w", field, err)
		}
		var response domain.Response
		if err := json.Unmarshal([]byte(payload), &response); err != nil {
			return nil, fmt.Errorf("unmarshal response: %w", err)
		}
		recorded[index] = response
	}
	return recorded, nil
}

func (s *ResponseStore) Clear(ctx context.Context, sessionID string, participants []string) error {
	respondents, err := s.client.SMembers(ctx, s.respondentsKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("list respondents: %w", err)
	}
	// The session's participant list covers respondents whose index entry
	// already expired.
	seen := make(map[string]struct{}, len(respondents)+len(participants))
	keys := []string{s.respondentsKey(sessionID)}
	for _, id := range append(respondents, participants...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, s.responsesKey(sessionID, id))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear responses: %w", err)
	}
	return nil
}

func (s *ResponseStore) responsesKey(sessionID, participantID string) string {
	return "session:" + sessionID + ":responses:" + participantID
}

func (s *ResponseStore) respondentsKey(sessionID string) string {
	return "session:" + sessionID + ":respondents"
}
