package examsession

import "github.com/prepdrill/backend/internal/domain/questionbank"

// Question is a bank question augmented with attempt-local answer state.
// The session owns these exclusively; they are discarded on reset.
type Question struct {
	questionbank.Question
	UserAnswer *string // nil until the first (and final) answer is recorded
	Revealed   bool
}

// Answered reports whether an answer has been recorded.
func (q Question) Answered() bool {
	return q.UserAnswer != nil
}

// Correct reports whether the recorded answer matches the correct option.
// Always false while unanswered.
func (q Question) Correct() bool {
	return q.UserAnswer != nil && *q.UserAnswer == q.Answer
}
