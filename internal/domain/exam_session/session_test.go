package examsession_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
	"github.com/prepdrill/backend/internal/domain/questionbank"
)

func newBank(t *testing.T) *questionbank.QuestionBank {
	t.Helper()

	bank := questionbank.New()
	err := bank.Load([]questionbank.Question{
		{
			ID:          "q-1",
			Text:        "What is the maximum loss on a long call?",
			Options:     []string{"Unlimited", "The premium paid", "The strike"},
			Answer:      "The premium paid",
			Category:    "Options",
			SubCategory: "Derivatives Paper 1",
		},
		{
			ID:          "q-2",
			Text:        "A protective put combines a long stock position with",
			Options:     []string{"A short call", "A long put", "A short put"},
			Answer:      "A long put",
			Category:    "Options",
			SubCategory: "Derivatives Paper 1",
		},
		{
			ID:          "q-3",
			Text:        "Which Greek measures sensitivity to the underlying price?",
			Options:     []string{"Delta", "Theta", "Rho"},
			Answer:      "Delta",
			Category:    "Options",
			SubCategory: "Derivatives Paper 1",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return bank
}

func startSession(t *testing.T, count int) *examsession.Session {
	t.Helper()

	session := examsession.New(newBank(t))
	if err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: count}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return session
}

func TestStart(t *testing.T) {
	session := examsession.New(newBank(t))

	if got := session.State(); got != examsession.StateIdle {
		t.Errorf("expected state %q before start, got %q", examsession.StateIdle, got)
	}

	if err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := session.View()
	if view.State != examsession.StateRunning {
		t.Errorf("expected state %q, got %q", examsession.StateRunning, view.State)
	}
	if view.ID == "" {
		t.Error("expected a session id")
	}
	if len(view.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(view.Questions))
	}
	if view.Current != 0 {
		t.Errorf("expected cursor at 0, got %d", view.Current)
	}
	if view.Remaining <= 0 || view.Remaining > view.Duration {
		t.Errorf("expected remaining within (0, %v], got %v", view.Duration, view.Remaining)
	}
}

func TestStart_DurationFollowsRequestedCount(t *testing.T) {
	// Ask for 5 when only 3 match: the sample clamps but the clock does not.
	session := startSession(t, 5)

	view := session.View()
	if len(view.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(view.Questions))
	}
	if view.Duration != 6*time.Minute {
		t.Errorf("expected 6m duration, got %v", view.Duration)
	}
}

func TestStart_WhileRunning(t *testing.T) {
	session := startSession(t, 3)

	err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: 2})
	if !errors.Is(err, examsession.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	// The running attempt is untouched
	if got := len(session.View().Questions); got != 3 {
		t.Errorf("expected original 3 questions, got %d", got)
	}
}

func TestStart_NoMatchingQuestions(t *testing.T) {
	session := examsession.New(newBank(t))

	err := session.Start(examsession.Config{Scope: examsession.BySubject("History"), Count: 5})
	if !errors.Is(err, examsession.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
	if got := session.State(); got != examsession.StateIdle {
		t.Errorf("expected state %q, got %q", examsession.StateIdle, got)
	}
}

func TestSelectAnswer(t *testing.T) {
	session := startSession(t, 3)

	if err := session.SelectAnswer("q-1", "The premium paid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := session.Question("q-1")
	if !ok {
		t.Fatal("expected q-1 in session")
	}
	if q.UserAnswer == nil || *q.UserAnswer != "The premium paid" {
		t.Errorf("expected recorded answer %q, got %v", "The premium paid", q.UserAnswer)
	}
	if !q.Answered() {
		t.Error("expected question to report answered")
	}
}

func TestSelectAnswer_FirstAnswerIsFinal(t *testing.T) {
	session := startSession(t, 3)

	if err := session.SelectAnswer("q-1", "Unlimited"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.SelectAnswer("q-1", "The premium paid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, _ := session.Question("q-1")
	if q.UserAnswer == nil || *q.UserAnswer != "Unlimited" {
		t.Errorf("expected first answer %q to stand, got %v", "Unlimited", q.UserAnswer)
	}
}

func TestSelectAnswer_UnknownQuestion(t *testing.T) {
	session := startSession(t, 3)

	err := session.SelectAnswer("q-missing", "Delta")
	if !errors.Is(err, examsession.ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestSelectAnswer_NoSession(t *testing.T) {
	session := examsession.New(newBank(t))

	err := session.SelectAnswer("q-1", "Delta")
	if !errors.Is(err, examsession.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSelectAnswer_AfterSubmit(t *testing.T) {
	session := startSession(t, 3)
	if _, err := session.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := session.SelectAnswer("q-1", "Delta")
	if !errors.Is(err, examsession.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReveal(t *testing.T) {
	session := startSession(t, 3)

	if err := session.Reveal("q-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, _ := session.Question("q-2")
	if !q.Revealed {
		t.Error("expected question to be revealed")
	}

	// Revealing again is a no-op
	if err := session.Reveal("q-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, _ = session.Question("q-2")
	if !q.Revealed {
		t.Error("expected question to stay revealed")
	}
}

func TestReveal_AfterSubmit(t *testing.T) {
	session := startSession(t, 3)
	if _, err := session.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Review keeps working on the completed attempt
	if err := session.Reveal("q-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, _ := session.Question("q-2")
	if !q.Revealed {
		t.Error("expected question to be revealed")
	}
}

func TestReveal_UnknownQuestion(t *testing.T) {
	session := startSession(t, 3)

	err := session.Reveal("q-missing")
	if !errors.Is(err, examsession.ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestNavigate(t *testing.T) {
	session := startSession(t, 3)

	session.Navigate(2)
	if got := session.View().Current; got != 2 {
		t.Errorf("expected cursor at 2, got %d", got)
	}

	// Out-of-range moves leave the cursor alone
	session.Navigate(-1)
	if got := session.View().Current; got != 2 {
		t.Errorf("expected cursor to stay at 2, got %d", got)
	}
	session.Navigate(99)
	if got := session.View().Current; got != 2 {
		t.Errorf("expected cursor to stay at 2, got %d", got)
	}
}

func TestSubmit(t *testing.T) {
	session := startSession(t, 3)

	if err := session.SelectAnswer("q-1", "The premium paid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := session.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalQuestions != 3 {
		t.Errorf("expected 3 questions in report, got %d", report.TotalQuestions)
	}
	if report.CorrectCount != 1 {
		t.Errorf("expected 1 correct, got %d", report.CorrectCount)
	}
	if got := session.State(); got != examsession.StateCompleted {
		t.Errorf("expected state %q, got %q", examsession.StateCompleted, got)
	}
	if got := session.Remaining(); got != 0 {
		t.Errorf("expected zero remaining after submit, got %v", got)
	}
}

func TestSubmit_Twice(t *testing.T) {
	session := startSession(t, 3)

	first, err := session.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := session.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected repeated submits to return the same report")
	}
}

func TestSubmit_NoSession(t *testing.T) {
	session := examsession.New(newBank(t))

	_, err := session.Submit()
	if !errors.Is(err, examsession.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSubmit_Concurrent(t *testing.T) {
	session := startSession(t, 3)

	const submitters = 10
	reports := make([]*examsession.Report, submitters)

	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			report, err := session.Submit()
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			reports[i] = report
		}(i)
	}
	wg.Wait()

	for i := 1; i < submitters; i++ {
		if reports[i] != reports[0] {
			t.Fatal("expected every submitter to observe the same report")
		}
	}
}

func TestReset(t *testing.T) {
	bank := newBank(t)
	session := examsession.New(bank)
	if err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session.Reset()

	if got := session.State(); got != examsession.StateIdle {
		t.Errorf("expected state %q, got %q", examsession.StateIdle, got)
	}
	if got := len(session.View().Questions); got != 0 {
		t.Errorf("expected no questions after reset, got %d", got)
	}

	// The bank survives a reset and a fresh attempt works
	if bank.Size() != 3 {
		t.Errorf("expected bank to keep its 3 questions, got %d", bank.Size())
	}
	if err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReset_WhileRunning(t *testing.T) {
	session := startSession(t, 3)

	session.Reset()

	if got := session.State(); got != examsession.StateIdle {
		t.Errorf("expected state %q, got %q", examsession.StateIdle, got)
	}
}

func TestBankReloadLeavesRunningSessionAlone(t *testing.T) {
	bank := newBank(t)
	session := examsession.New(bank)
	if err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := bank.Load([]questionbank.Question{
		{
			ID:       "fresh-1",
			Text:     "Replacement question",
			Options:  []string{"A", "B"},
			Answer:   "A",
			Category: "Misc",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, q := range session.View().Questions {
		if q.ID == "fresh-1" {
			t.Fatal("expected running session to keep its own sample")
		}
	}
	if got := len(session.View().Questions); got != 3 {
		t.Errorf("expected 3 questions, got %d", got)
	}
}

func TestRemaining_ZeroWhenIdle(t *testing.T) {
	session := examsession.New(newBank(t))

	if got := session.Remaining(); got != 0 {
		t.Errorf("expected zero remaining, got %v", got)
	}
}
