// simulation/simulation.go
package simulation

import (
	"fmt"
	"log/slog"

	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
	"github.com/prepdrill/backend/internal/domain/questionbank"
)

// Run walks one scripted drill against the in-memory engine: load a small
// built-in corpus, start a timed session, answer a few questions, submit,
// and print the report. Smoke check without the HTTP surface.
func Run(logger *slog.Logger) error {
	// Load the built-in corpus
	bank := questionbank.New()
	if err := bank.Load(sampleQuestions()); err != nil {
		return fmt.Errorf("load sample corpus: %w", err)
	}

	// Start a session over every subject
	session := examsession.New(bank)
	if err := session.Start(examsession.Config{Scope: examsession.AllQuestions(), Count: 4}); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	view := session.View()
	logger.Info("drill started",
		"session_id", view.ID,
		"questions", len(view.Questions),
		"duration_minutes", int(view.Duration.Minutes()),
	)

	// Answer the first two correctly and the third wrong, skip the rest
	for i, q := range view.Questions {
		switch {
		case i < 2:
			if err := session.SelectAnswer(q.ID, q.Answer); err != nil {
				return fmt.Errorf("answer %s: %w", q.ID, err)
			}
		case i == 2:
			if err := session.SelectAnswer(q.ID, wrongOption(q)); err != nil {
				return fmt.Errorf("answer %s: %w", q.ID, err)
			}
		}
	}

	// Peek at one answer and jump back to the first question
	if err := session.Reveal(view.Questions[0].ID); err != nil {
		return fmt.Errorf("reveal %s: %w", view.Questions[0].ID, err)
	}
	session.Navigate(0)

	report, err := session.Submit()
	if err != nil {
		return fmt.Errorf("submit session: %w", err)
	}

	fmt.Printf("\n=== Session %s ===\n", view.ID)
	fmt.Printf("Score: %.2f\n", report.Score)
	fmt.Printf("Correct: %d  Incorrect: %d  Total: %d\n",
		report.CorrectCount, report.IncorrectCount, report.TotalQuestions)
	fmt.Printf("Accuracy: %.1f%%  Passed: %v\n", report.Accuracy, report.Passed)
	for _, stat := range report.TopicAnalysis {
		fmt.Printf("  %s: %d/%d (%.1f%%)\n", stat.Topic, stat.Correct, stat.Total, stat.Accuracy)
	}

	return nil
}

// wrongOption picks any option that is not the correct answer.
func wrongOption(q examsession.Question) string {
	for _, opt := range q.Options {
		if opt != q.Answer {
			return opt
		}
	}
	return q.Answer
}

func sampleQuestions() []questionbank.Question {
	return []questionbank.Question{
		{
			ID:          "sim-1",
			Text:        "Which position profits most directly from a fall in implied volatility?",
			Options:     []string{"Long straddle", "Short straddle", "Long call", "Long put"},
			Answer:      "Short straddle",
			Category:    "Options",
			SubCategory: "Derivatives Paper 1",
			Explanation: "A short straddle is short volatility on both legs, so a drop in implied volatility makes the position cheaper to buy back.",
		},
		{
			ID:          "sim-2",
			Text:        "At expiry, a call option is in the money when the underlying price is",
			Options:     []string{"Below the strike", "Equal to the strike", "Above the strike", "Unrelated to the strike"},
			Answer:      "Above the strike",
			Category:    "Options",
			SubCategory: "Derivatives Paper 1",
			Explanation: "A call grants the right to buy at the strike, which only has value when the underlying trades above it.",
		},
		{
			ID:          "sim-3",
			Text:        "Daily settlement of gains and losses on a futures position is called",
			Options:     []string{"Novation", "Marking to market", "Netting", "Rolling"},
			Answer:      "Marking to market",
			Category:    "Futures",
			SubCategory: "Derivatives Paper 2",
			Explanation: "Futures positions are revalued against the daily settlement price and the difference moves through the margin account.",
		},
		{
			ID:          "sim-4",
			Text:        "A margin call is triggered when the account balance falls below the",
			Options:     []string{"Initial margin", "Maintenance margin", "Variation margin", "Notional value"},
			Answer:      "Maintenance margin",
			Category:    "Futures",
			SubCategory: "Derivatives Paper 2",
			Explanation: "Once equity drops below the maintenance level, the holder must top the account back up to the initial margin.",
		},
		{
			ID:          "sim-5",
			Text:        "The party obliged to deliver the underlying in a futures contract is",
			Options:     []string{"The long", "The short", "The clearing house", "The broker"},
			Answer:      "The short",
			Category:    "Futures",
			SubCategory: "Derivatives Paper 2",
			Explanation: "The short commits to sell and deliver the underlying at expiry; the long commits to take delivery.",
		},
		{
			ID:          "sim-6",
			Text:        "Which strategy caps both the maximum gain and the maximum loss?",
			Options:     []string{"Long call", "Covered call", "Bull call spread", "Naked put"},
			Answer:      "Bull call spread",
			Category:    "Options",
			SubCategory: "Derivatives Paper 1",
			Explanation: "Buying the lower strike and selling the higher strike bounds the payoff between the two strikes.",
		},
	}
}
