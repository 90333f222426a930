// Package corpus reads and writes the question interchange format: a JSON
// array of records carrying id, question, options, answer, category and the
// optional subCategory and explanation keys.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prepdrill/backend/internal/domain/questionbank"
)

// Record is one question in the interchange format.
type Record struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Parse decodes a corpus document. Anything other than a JSON array of
// records is rejected wholesale with ErrInvalidCorpus; well-formedness of
// the individual records is the bank's concern at load time.
func Parse(data []byte) ([]questionbank.Question, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", questionbank.ErrInvalidCorpus, err)
	}

	questions := make([]questionbank.Question, len(records))
	for i, rec := range records {
		questions[i] = questionbank.Question{
			ID:          rec.ID,
			Text:        rec.Question,
			Options:     rec.Options,
			Answer:      rec.Answer,
			Category:    rec.Category,
			SubCategory: rec.SubCategory,
			Explanation: rec.Explanation,
		}
	}
	return questions, nil
}

// LoadFile reads and parses a corpus file, used for the boot-time preload.
func LoadFile(path string) ([]questionbank.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return Parse(data)
}

// Records maps bank questions back into the interchange format so an export
// round-trips through Parse unchanged.
func Records(questions []questionbank.Question) []Record {
	records := make([]Record, len(questions))
	for i, q := range questions {
		records[i] = Record{
			ID:          q.ID,
			Question:    q.Text,
			Options:     q.Options,
			Answer:      q.Answer,
			Category:    q.Category,
			SubCategory: q.SubCategory,
			Explanation: q.Explanation,
		}
	}
	return records
}
