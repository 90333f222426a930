package examsession

import (
	"math/rand"

	"github.com/prepdrill/backend/internal/domain/questionbank"
)

// sample draws the question order for one attempt: filter by scope, shuffle
// uniformly, clamp to what is available, wrap with blank answer state. The
// returned slice is independent of the pool, so later bank loads cannot
// reach into a running attempt.
func sample(pool []questionbank.Question, scope Scope, count int) []Question {
	filtered := make([]questionbank.Question, 0, len(pool))
	for _, q := range pool {
		if scope.matches(q) {
			filtered = append(filtered, q)
		}
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	n := len(filtered)
	if count < n {
		n = count
	}
	if n <= 0 {
		return nil
	}

	questions := make([]Question, n)
	for i, q := range filtered[:n] {
		questions[i] = Question{Question: q}
	}
	return questions
}
