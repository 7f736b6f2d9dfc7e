package domain

// EventType identifies a session lifecycle notification.
type EventType string

const (
	// EventSubscribed acknowledges a new topic subscription; it is emitted by
	// the transport itself, never by the lifecycle service.
	EventSubscribed EventType = "subscribed"

	EventSessionStarted   EventType = "sessionStarted"
	EventSessionFinished  EventType = "sessionFinished"
	EventQuestionAdvanced EventType = "questionAdvanced"
	EventAnswerRecorded   EventType = "answerRecorded"
)

// EventScope controls which subscribers of a session topic receive an event.
type EventScope string

const (
	ScopeAll    EventScope = "all"
	ScopeAdmins EventScope = "admins"
)

// Event is a notification published to a session's topic. Delivery is
// fire-and-forget; the core never blocks on or retries it.
type Event struct {
	Type          EventType  `json:"type"`
	SessionID     string     `json:"sessionId"`
	Scope         EventScope `json:"-"`
	QuestionIndex int        `json:"questionIndex"`
	ParticipantID string     `json:"participantId,omitempty"`
	Response      *Response  `json:"response,omitempty"`
}
