package examsession

import "github.com/prepdrill/backend/internal/domain/questionbank"

// ScopeKind selects which slice of the bank a session may draw from.
type ScopeKind string

const (
	ScopeAll     ScopeKind = "all"
	ScopeSubject ScopeKind = "subject"
	ScopePaper   ScopeKind = "paper"
)

// Scope is the closed set of question filters. Build one with AllQuestions,
// BySubject or ByPaper rather than filling the struct directly.
type Scope struct {
	Kind    ScopeKind
	Subject string // set when Kind == ScopeSubject
	Paper   string // set when Kind == ScopePaper
}

// AllQuestions keeps the whole bank eligible.
func AllQuestions() Scope {
	return Scope{Kind: ScopeAll}
}

// BySubject keeps only questions whose category equals subject.
func BySubject(subject string) Scope {
	return Scope{Kind: ScopeSubject, Subject: subject}
}

// ByPaper keeps only questions whose sub-category equals paper.
func ByPaper(paper string) Scope {
	return Scope{Kind: ScopePaper, Paper: paper}
}

func (s Scope) matches(q questionbank.Question) bool {
	switch s.Kind {
	case ScopeSubject:
		return q.Category == s.Subject
	case ScopePaper:
		return q.SubCategory == s.Paper
	default:
		return true
	}
}

// Config describes one attempt request: the scope to draw from and the
// requested sample size. The time limit is derived from Count even when the
// bank cannot supply that many questions.
type Config struct {
	Scope Scope
	Count int
}
