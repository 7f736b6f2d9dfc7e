package app

import (
	"sync"
	"testing"
)

func TestProgressAdvancesAfterAllAnswers(t *testing.T) {
	p := NewProgress(3)

	for i := 0; i < 2; i++ {
		outcome := p.RecordAnswer()
		if outcome.HasIndexChanged() {
			t.Fatalf("answer %d should not advance the index", i+1)
		}
	}
	if got := p.AnswerCount(); got != 2 {
		t.Fatalf("expected 2 answers counted, got %d", got)
	}

	outcome := p.RecordAnswer()
	if !outcome.HasIndexChanged() {
		t.Fatalf("last answer should advance the index")
	}
	if outcome.Observed != 0 || outcome.Current != 1 {
		t.Fatalf("expected transition 0 -> 1, got %d -> %d", outcome.Observed, outcome.Current)
	}
	if got := p.CurrentIndex(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := p.AnswerCount(); got != 0 {
		t.Fatalf("expected answer count reset, got %d", got)
	}
}

func TestProgressConcurrentAnswersAdvanceOnce(t *testing.T) {
	const participants = 64
	p := NewProgress(participants)

	outcomes := make([]AnswerOutcome, participants)
	var wg sync.WaitGroup
	for i := 0; i < participants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = p.RecordAnswer()
		}(i)
	}
	wg.Wait()

	changed := 0
	for _, outcome := range outcomes {
		if outcome.HasIndexChanged() {
			changed++
		}
	}
	if changed != 1 {
		t.Fatalf("expected exactly one submitter to observe the transition, got %d", changed)
	}
	if got := p.CurrentIndex(); got != 1 {
		t.Fatalf("expected index advanced exactly once to 1, got %d", got)
	}
	if got := p.AnswerCount(); got != 0 {
		t.Fatalf("expected answer count reset, got %d", got)
	}
}

func TestProgressIndexMonotonic(t *testing.T) {
	p := NewProgress(2)

	for question := 0; question < 5; question++ {
		if got := p.CurrentIndex(); got != question {
			t.Fatalf("expected index %d, got %d", question, got)
		}
		p.RecordAnswer()
		outcome := p.RecordAnswer()
		if !outcome.HasIndexChanged() || outcome.Current != question+1 {
			t.Fatalf("expected advance to %d, got %+v", question+1, outcome)
		}
	}
}
