package domain

import "errors"

var (
	// ErrSessionNotFound is returned when the referenced session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrSessionAlreadyStarted is returned when a session is started twice.
	ErrSessionAlreadyStarted = errors.New("session already started")
	// ErrSessionNotStarted is returned when progress is queried before start.
	ErrSessionNotStarted = errors.New("session not started")
	// ErrDuplicateAnswer is returned when a participant answers the same
	// question index twice; the first recorded response stands.
	ErrDuplicateAnswer = errors.New("question already answered")
	// ErrInvalidSubmission indicates a malformed answer payload.
	ErrInvalidSubmission = errors.New("invalid answer submission")
	// ErrInvalidSession indicates a malformed session definition.
	ErrInvalidSession = errors.New("invalid session definition")
	// ErrNoResponses is returned when a participant expected to have recorded
	// responses has none at result-computation time.
	ErrNoResponses = errors.New("no recorded responses for participant")
)
