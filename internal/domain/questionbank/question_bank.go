package questionbank

import (
	"fmt"
	"sort"
	"sync"
)

// QuestionBank is the in-memory registry of the imported corpus. It is
// replaced wholesale by Load and read concurrently by samplers and handlers.
type QuestionBank struct {
	mu        sync.RWMutex
	questions []Question
}

// Summary describes the loaded corpus for selection pickers.
type Summary struct {
	Total    int
	Subjects []string
	Papers   []string
}

// New creates an empty bank.
func New() *QuestionBank {
	return &QuestionBank{}
}

// Load validates every record and replaces the entire bank. On any
// validation failure it returns ErrInvalidCorpus and leaves the previous
// contents untouched. Partial loads never happen.
func (b *QuestionBank) Load(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: empty question set", ErrInvalidCorpus)
	}

	seen := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidCorpus, i, err)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidCorpus, q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	replacement := make([]Question, len(questions))
	copy(replacement, questions)

	b.mu.Lock()
	b.questions = replacement
	b.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current corpus. Callers own the copy, so a
// later Load cannot reach questions already handed out.
func (b *QuestionBank) Snapshot() []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make([]Question, len(b.questions))
	copy(snapshot, b.questions)
	return snapshot
}

// Size returns the number of loaded questions.
func (b *QuestionBank) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.questions)
}

// Summary returns the corpus size plus the distinct subjects and papers,
// sorted for stable rendering.
func (b *QuestionBank) Summary() Summary {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subjects := make(map[string]struct{})
	papers := make(map[string]struct{})
	for _, q := range b.questions {
		subjects[q.Category] = struct{}{}
		if q.SubCategory != "" {
			papers[q.SubCategory] = struct{}{}
		}
	}

	return Summary{
		Total:    len(b.questions),
		Subjects: sortedKeys(subjects),
		Papers:   sortedKeys(papers),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
