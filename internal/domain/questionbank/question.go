package questionbank

import (
	"errors"
	"fmt"
)

// ErrInvalidCorpus marks a rejected corpus load. The bank is left untouched
// whenever it is returned.
var ErrInvalidCorpus = errors.New("invalid question corpus")

// Question is one multiple-choice question from the imported corpus.
// Questions are immutable once loaded into a bank.
type Question struct {
	ID          string
	Text        string
	Options     []string
	Answer      string
	Category    string
	SubCategory string // Optional - paper/grouping key within a category
	Explanation string // Optional - reference text shown after reveal
}

// Validate checks that a single question record is well-formed.
func (q Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id cannot be empty")
	}
	if q.Text == "" {
		return errors.New("question text cannot be empty")
	}
	if len(q.Options) == 0 {
		return errors.New("question must have at least one option")
	}
	if q.Category == "" {
		return errors.New("question category cannot be empty")
	}
	if !q.HasOption(q.Answer) {
		return fmt.Errorf("answer %q is not one of the options", q.Answer)
	}
	return nil
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
