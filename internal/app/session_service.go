package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"livequiz-service/internal/domain"
)

// SessionService coordinates the live quiz lifecycle: starting sessions,
// accepting answers, advancing the question index once every participant has
// answered, and deriving results when a session finishes.
//
// External persistence and notification always happen outside the per-session
// progress lock; the lock covers only the in-memory counter update.
type SessionService struct {
	sessions  SessionRepository
	quizzes   QuizRepository
	progress  ProgressRegistry
	responses ResponseStore
	archive   Archive
	results   ResultStore
	notifier  Notifier
	now       func() time.Time
}

func NewSessionService(sessions SessionRepository, quizzes QuizRepository, progress ProgressRegistry, responses ResponseStore, archive Archive, results ResultStore, notifier Notifier) *SessionService {
	return &SessionService{
		sessions:  sessions,
		quizzes:   quizzes,
		progress:  progress,
		responses: responses,
		archive:   archive,
		results:   results,
		notifier:  notifier,
		now:       time.Now,
	}
}

// NewSessionServiceWithClock is test-only for deterministic timestamps.
func NewSessionServiceWithClock(sessions SessionRepository, quizzes QuizRepository, progress ProgressRegistry, responses ResponseStore, archive Archive, results ResultStore, notifier Notifier, now func() time.Time) *SessionService {
	s := NewSessionService(sessions, quizzes, progress, responses, archive, results, notifier)
	s.now = now
	return s
}

// CreateSession registers a new session over an existing quiz. Participant
// nicknames must be non-empty and unique.
func (s *SessionService) CreateSession(ctx context.Context, hostID, quizID string, participants []string) (domain.Session, error) {
	if hostID == "" || len(participants) == 0 {
		return domain.Session{}, domain.ErrInvalidSession
	}
	seen := make(map[string]struct{}, len(participants))
	for _, nickname := range participants {
		if nickname == "" {
			return domain.Session{}, domain.ErrInvalidSession
		}
		if _, dup := seen[nickname]; dup {
			return domain.Session{}, domain.ErrInvalidSession
		}
		seen[nickname] = struct{}{}
	}

	if _, err := s.quizzes.GetQuiz(ctx, quizID); err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		ID:           uuid.NewString(),
		HostID:       hostID,
		QuizID:       quizID,
		Participants: participants,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// GetSession exposes the session read model to transports.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.sessions.GetSession(ctx, sessionID)
}

// StartSession snapshots the participant count into a fresh progress tracker
// and stamps the session's start time. Starting twice fails with
// domain.ErrSessionAlreadyStarted.
func (s *SessionService) StartSession(ctx context.Context, sessionID string) error {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Started() {
		return domain.ErrSessionAlreadyStarted
	}

	if _, err := s.progress.Start(sessionID, len(session.Participants)); err != nil {
		return err
	}

	now := s.now()
	session.StartedAt = &now
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("persist session start: %w", err)
	}

	s.notifier.Notify(ctx, domain.Event{
		Type:      domain.EventSessionStarted,
		SessionID: sessionID,
		Scope:     domain.ScopeAll,
	})
	return nil
}

// SubmitAnswer evaluates and records one participant's answer, then advances
// the session's progress. When this answer is the last one for the current
// question, exactly this call fires the question-advance (or session-finish)
// notification; the other participants' concurrent submissions do not.
// Returns whether the answer was correct.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, participantID string, questionIndex int, selectedOptions []string, timeTakenMillis int64) (bool, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	quiz, err := s.quizzes.GetQuiz(ctx, session.QuizID)
	if err != nil {
		return false, err
	}

	if participantID == "" || len(selectedOptions) == 0 {
		return false, domain.ErrInvalidSubmission
	}
	if questionIndex < 0 || questionIndex >= len(quiz.Questions) {
		return false, domain.ErrInvalidSubmission
	}

	tracker, ok := s.progress.Get(sessionID)
	if !ok {
		return false, domain.ErrSessionNotStarted
	}

	question := quiz.Questions[questionIndex]
	correct := evaluateSelection(question.CorrectOptionIDs(), selectedOptions)

	response := domain.Response{
		SelectedOptions: selectedOptions,
		TimeTakenMillis: timeTakenMillis,
		Correct:         correct,
	}
	recorded, err := s.responses.Record(ctx, sessionID, participantID, questionIndex, response)
	if err != nil {
		return false, err
	}
	if err := s.archive.SaveResponses(ctx, sessionID, participantID, recorded); err != nil {
		return false, fmt.Errorf("persist responses: %w", err)
	}

	// The host's dashboard sees every answer as it lands, transitions or not.
	s.notifier.Notify(ctx, domain.Event{
		Type:          domain.EventAnswerRecorded,
		SessionID:     sessionID,
		Scope:         domain.ScopeAdmins,
		QuestionIndex: questionIndex,
		ParticipantID: participantID,
		Response:      &response,
	})

	outcome := tracker.RecordAnswer()
	if outcome.HasIndexChanged() {
		if outcome.Current >= len(quiz.Questions) {
			if err := s.finishRunningSession(ctx, session, quiz); err != nil {
				return correct, err
			}
		} else {
			s.notifier.Notify(ctx, domain.Event{
				Type:          domain.EventQuestionAdvanced,
				SessionID:     sessionID,
				Scope:         domain.ScopeAll,
				QuestionIndex: outcome.Current,
			})
		}
	}
	return correct, nil
}

// FinishSession stamps the session's end time. Idempotent: finishing an
// already-finished session leaves the original timestamp untouched.
func (s *SessionService) FinishSession(ctx context.Context, sessionID string) error {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	now := s.now()
	if session.FinishedBy(now) {
		return nil
	}

	session.EndedAt = &now
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("persist session finish: %w", err)
	}
	s.progress.Remove(sessionID)
	return nil
}

// FetchSessionResult returns the session's result, computing, persisting and
// caching it on first request. Fails if any listed participant has no
// recorded responses at all, which means the session was not properly tracked.
func (s *SessionService) FetchSessionResult(ctx context.Context, sessionID string) (domain.SessionResult, error) {
	if cached, ok, err := s.results.GetResult(ctx, sessionID); err == nil && ok {
		return cached, nil
	}

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return domain.SessionResult{}, err
	}
	quiz, err := s.quizzes.GetQuiz(ctx, session.QuizID)
	if err != nil {
		return domain.SessionResult{}, err
	}
	return s.computeAndStoreResult(ctx, session, quiz)
}

// DeleteSession removes the session and every trace of its live state: the
// progress tracker, recorded responses, and the cached result.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.progress.Remove(sessionID)
	if err := s.responses.Clear(ctx, sessionID, session.Participants); err != nil {
		return fmt.Errorf("clear responses: %w", err)
	}
	return s.results.InvalidateResult(ctx, sessionID)
}

// finishRunningSession handles the transition fired by the last answer of the
// last question: stamp and persist the end time, announce the finish, and
// derive the result while every participant's responses are still in store.
func (s *SessionService) finishRunningSession(ctx context.Context, session domain.Session, quiz domain.Quiz) error {
	now := s.now()
	if !session.FinishedBy(now) {
		session.EndedAt = &now
		if err := s.sessions.SaveSession(ctx, session); err != nil {
			return fmt.Errorf("persist session finish: %w", err)
		}
	}
	s.progress.Remove(session.ID)

	s.notifier.Notify(ctx, domain.Event{
		Type:      domain.EventSessionFinished,
		SessionID: session.ID,
		Scope:     domain.ScopeAll,
	})

	_, err := s.computeAndStoreResult(ctx, session, quiz)
	return err
}

func (s *SessionService) computeAndStoreResult(ctx context.Context, session domain.Session, quiz domain.Quiz) (domain.SessionResult, error) {
	gathered := make(map[string]domain.RecordedResponses, len(session.Participants))
	for _, nickname := range session.Participants {
		responses, err := s.responses.Fetch(ctx, session.ID, nickname)
		if err != nil {
			return domain.SessionResult{}, fmt.Errorf("gather responses for %q: %w", nickname, err)
		}
		gathered[nickname] = responses
	}

	result := computeSessionResult(session, quiz.Questions, gathered, s.now())
	if err := s.archive.SaveResult(ctx, session.ID, result); err != nil {
		return domain.SessionResult{}, fmt.Errorf("persist result: %w", err)
	}
	// Cache writes are best effort; the archived copy is authoritative.
	_ = s.results.PutResult(ctx, session.ID, result)
	return result, nil
}
