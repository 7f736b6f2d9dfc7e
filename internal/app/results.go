package app

import (
	"sort"
	"time"

	"livequiz-service/internal/domain"
)

// computeSessionResult derives every participant's final score from their
// recorded responses. Pure given its inputs; safe to recompute or cache.
//
// Indices outside the quiz's question range are skipped defensively. The
// average response time divides by the full question count, so questions a
// participant never answered contribute zero time.
func computeSessionResult(session domain.Session, questions []domain.Question, responses map[string]domain.RecordedResponses, now time.Time) domain.SessionResult {
	totalQuestions := len(questions)

	results := make([]domain.ParticipantResult, 0, len(session.Participants))
	for _, nickname := range session.Participants {
		var correct int
		var totalMillis int64
		for index, response := range responses[nickname] {
			if index < 0 || index >= totalQuestions {
				continue
			}
			if response.Correct {
				correct++
			}
			totalMillis += response.TimeTakenMillis
		}

		average := 0.0
		if totalQuestions > 0 {
			average = float64(totalMillis) / float64(totalQuestions)
		}
		results = append(results, domain.ParticipantResult{
			Nickname:              nickname,
			CorrectAnswers:        correct,
			AverageResponseMillis: average,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CorrectAnswers != results[j].CorrectAnswers {
			return results[i].CorrectAnswers > results[j].CorrectAnswers
		}
		if results[i].AverageResponseMillis != results[j].AverageResponseMillis {
			return results[i].AverageResponseMillis < results[j].AverageResponseMillis
		}
		return results[i].Nickname < results[j].Nickname
	})

	return domain.SessionResult{
		SessionID:  session.ID,
		Results:    results,
		ComputedAt: now,
	}
}
