package domain

import "time"

// Session is one live run of a quiz: a host, a fixed participant list, and
// start/end timestamps stamped by the lifecycle service.
type Session struct {
	ID           string     `json:"id"`
	HostID       string     `json:"hostId"`
	QuizID       string     `json:"quizId"`
	Participants []string   `json:"participants"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
}

// Started reports whether the session has a start timestamp.
func (s Session) Started() bool {
	return s.StartedAt != nil
}

// FinishedBy reports whether the session ended at or before the given time.
func (s Session) FinishedBy(t time.Time) bool {
	return s.EndedAt != nil && !s.EndedAt.After(t)
}

// Option represents a possible answer for a question.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question models an MCQ question; MultiSelect allows more than one correct option.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []Option `json:"options"`
	MultiSelect bool     `json:"multiSelect"`
}

// CorrectOptionIDs returns the IDs of the question's correct options.
func (q Question) CorrectOptionIDs() []string {
	ids := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.Correct {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Quiz is an ordered collection of questions, immutable while a session runs.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Response is a participant's recorded answer for one question index.
type Response struct {
	SelectedOptions []string `json:"selectedOptions"`
	TimeTakenMillis int64    `json:"timeTakenMillis"`
	Correct         bool     `json:"correct"`
}

// RecordedResponses maps question index to the response recorded for it.
// A question index is recorded at most once per participant.
type RecordedResponses map[int]Response

// ParticipantResult is one participant's final score for a finished session.
// AverageResponseMillis divides total response time by the quiz's full
// question count, so unanswered questions count as zero time.
type ParticipantResult struct {
	Nickname              string  `json:"nickname"`
	CorrectAnswers        int     `json:"correctAnswers"`
	AverageResponseMillis float64 `json:"averageResponseMillis"`
}

// SessionResult is the immutable set of all participants' results,
// computed once when a session finishes.
type SessionResult struct {
	SessionID  string              `json:"sessionId"`
	Results    []ParticipantResult `json:"results"`
	ComputedAt time.Time           `json:"computedAt"`
}
