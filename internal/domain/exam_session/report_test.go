package examsession_test

import (
	"testing"

	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
	"github.com/prepdrill/backend/internal/domain/questionbank"
)

// gradedQuestion builds a question answered with the given option. An empty
// given option leaves the question unanswered.
func gradedQuestion(id, category, given string) examsession.Question {
	q := examsession.Question{
		Question: questionbank.Question{
			ID:       id,
			Text:     "Question " + id,
			Options:  []string{"right", "wrong"},
			Answer:   "right",
			Category: category,
		},
	}
	if given != "" {
		q.UserAnswer = &given
	}
	return q
}

func TestScore(t *testing.T) {
	questions := []examsession.Question{
		gradedQuestion("q-1", "Options", "right"),
		gradedQuestion("q-2", "Options", "right"),
		gradedQuestion("q-3", "Options", "right"),
		gradedQuestion("q-4", "Futures", "right"),
		gradedQuestion("q-5", "Futures", "right"),
		gradedQuestion("q-6", "Futures", "right"),
		gradedQuestion("q-7", "Options", "wrong"),
		gradedQuestion("q-8", "Futures", "wrong"),
		gradedQuestion("q-9", "Options", ""),
		gradedQuestion("q-10", "Futures", ""),
	}

	report := examsession.Score(questions)

	if report.CorrectCount != 6 {
		t.Errorf("expected 6 correct, got %d", report.CorrectCount)
	}
	if report.IncorrectCount != 2 {
		t.Errorf("expected 2 incorrect, got %d", report.IncorrectCount)
	}
	if report.TotalQuestions != 10 {
		t.Errorf("expected 10 questions, got %d", report.TotalQuestions)
	}
	if report.Score != 5.5 {
		t.Errorf("expected score 5.5, got %v", report.Score)
	}
	if report.Accuracy != 60 {
		t.Errorf("expected accuracy 60, got %v", report.Accuracy)
	}
	// 5.5 misses the 6.0 pass mark even though accuracy reads 60%
	if report.Passed {
		t.Error("expected the attempt to fail")
	}
	if len(report.Questions) != 10 {
		t.Errorf("expected report to carry 10 questions, got %d", len(report.Questions))
	}
}

func TestScore_PassBoundary(t *testing.T) {
	questions := []examsession.Question{
		gradedQuestion("q-1", "Options", "right"),
		gradedQuestion("q-2", "Options", "right"),
		gradedQuestion("q-3", "Options", "right"),
		gradedQuestion("q-4", "Options", ""),
		gradedQuestion("q-5", "Options", ""),
	}

	report := examsession.Score(questions)

	// 3.0 against a pass mark of 5*0.6 = 3.0
	if report.Score != 3 {
		t.Errorf("expected score 3, got %v", report.Score)
	}
	if !report.Passed {
		t.Error("expected a score on the boundary to pass")
	}
}

func TestScore_PenaltyCanDropBelowPassMark(t *testing.T) {
	questions := []examsession.Question{
		gradedQuestion("q-1", "Options", "right"),
		gradedQuestion("q-2", "Options", "right"),
		gradedQuestion("q-3", "Options", "right"),
		gradedQuestion("q-4", "Options", "wrong"),
		gradedQuestion("q-5", "Options", "wrong"),
	}

	report := examsession.Score(questions)

	// 3 - 2*0.25 = 2.5 against a pass mark of 3.0
	if report.Score != 2.5 {
		t.Errorf("expected score 2.5, got %v", report.Score)
	}
	if report.Passed {
		t.Error("expected the penalty to push the attempt under the pass mark")
	}
}

func TestScore_TopicBuckets(t *testing.T) {
	questions := []examsession.Question{
		// Unanswered questions never open a topic bucket
		gradedQuestion("q-1", "Options", ""),
		gradedQuestion("q-2", "Futures", "right"),
		gradedQuestion("q-3", "Options", "right"),
		gradedQuestion("q-4", "Options", "wrong"),
		gradedQuestion("q-5", "Futures", "right"),
	}

	report := examsession.Score(questions)

	if len(report.TopicAnalysis) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(report.TopicAnalysis))
	}

	futures := report.TopicAnalysis[0]
	if futures.Topic != "Futures" {
		t.Errorf("expected first answered topic first, got %q", futures.Topic)
	}
	if futures.Correct != 2 || futures.Total != 2 {
		t.Errorf("expected Futures 2/2, got %d/%d", futures.Correct, futures.Total)
	}
	if futures.Accuracy != 100 {
		t.Errorf("expected Futures accuracy 100, got %v", futures.Accuracy)
	}

	options := report.TopicAnalysis[1]
	if options.Topic != "Options" {
		t.Errorf("expected Options second, got %q", options.Topic)
	}
	if options.Correct != 1 || options.Total != 2 {
		t.Errorf("expected Options 1/2, got %d/%d", options.Correct, options.Total)
	}
	if options.Accuracy != 50 {
		t.Errorf("expected Options accuracy 50, got %v", options.Accuracy)
	}
}

func TestScore_NoQuestions(t *testing.T) {
	report := examsession.Score(nil)

	if report.Score != 0 {
		t.Errorf("expected score 0, got %v", report.Score)
	}
	if report.Accuracy != 0 {
		t.Errorf("expected accuracy 0, got %v", report.Accuracy)
	}
	if report.Passed {
		t.Error("expected an empty attempt not to pass")
	}
	if len(report.TopicAnalysis) != 0 {
		t.Errorf("expected no topics, got %d", len(report.TopicAnalysis))
	}
}

func TestQuestionCorrect(t *testing.T) {
	q := gradedQuestion("q-1", "Options", "right")
	if !q.Correct() {
		t.Error("expected a matching answer to be correct")
	}

	q = gradedQuestion("q-1", "Options", "wrong")
	if q.Correct() {
		t.Error("expected a mismatched answer to be incorrect")
	}

	q = gradedQuestion("q-1", "Options", "")
	if q.Correct() {
		t.Error("expected an unanswered question to count as not correct")
	}
}
