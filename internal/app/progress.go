package app

import "sync"

// Progress tracks a single running session: the active question index and how
// many participants have answered it. One Progress exists per running session
// and carries its own lock; different sessions never contend.
type Progress struct {
	mu              sync.Mutex
	currentIndex    int
	numParticipants int
	numAnswers      int
}

// NewProgress returns a tracker positioned at question 0 with no answers yet.
func NewProgress(numParticipants int) *Progress {
	return &Progress{numParticipants: numParticipants}
}

// AnswerOutcome is the snapshot a single RecordAnswer call produced. Observed
// is the question index the answer was counted toward; Current is the live
// index after any advance. Both are captured inside the same critical section,
// so for N participants racing to answer the last open question, exactly one
// caller gets a pair that differs.
type AnswerOutcome struct {
	Observed int
	Current  int
}

// HasIndexChanged reports whether this call's answer advanced the question
// index. The caller that triggered the transition owns the downstream
// notification; the other racers see no change.
func (o AnswerOutcome) HasIndexChanged() bool {
	return o.Observed != o.Current
}

// RecordAnswer counts one answer toward the current question. When the count
// reaches the participant snapshot the index advances and the count resets,
// atomically with the increment. This is the sole state-advancing operation.
func (p *Progress) RecordAnswer() AnswerOutcome {
	p.mu.Lock()
	defer p.mu.Unlock()

	observed := p.currentIndex
	p.numAnswers++
	if p.numAnswers >= p.numParticipants {
		p.currentIndex++
		p.numAnswers = 0
	}
	return AnswerOutcome{Observed: observed, Current: p.currentIndex}
}

// CurrentIndex returns the live question index.
func (p *Progress) CurrentIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentIndex
}

// AnswerCount returns how many answers the current question has received.
func (p *Progress) AnswerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.numAnswers
}

// ProgressRegistry owns the trackers of all running sessions, keyed by session
// ID. Entries are created on start and removed when the session finishes or is
// deleted; a tracker exists only while its session runs.
type ProgressRegistry interface {
	// Start creates a tracker for the session. Fails with
	// domain.ErrSessionAlreadyStarted if one already exists.
	Start(sessionID string, numParticipants int) (*Progress, error)
	// Get returns the session's tracker, if it is running.
	Get(sessionID string) (*Progress, bool)
	// Remove drops the session's tracker.
	Remove(sessionID string)
}
