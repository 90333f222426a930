// internal/service/insights.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prepdrill/backend/internal/advisor"
	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
	"github.com/prepdrill/backend/internal/worker"
)

// Explanation pairs a question id with generated review text.
type Explanation struct {
	QuestionID string
	Text       string
}

// InsightsService turns report data into tutor-style text via the advisor.
// Advisor failures never surface to callers: every method falls back to a
// human-readable string, and the session's report is never touched.
type InsightsService struct {
	advisor advisor.Advisor
	logger  *slog.Logger
}

// NewInsightsService creates an InsightsService.
func NewInsightsService(a advisor.Advisor, logger *slog.Logger) *InsightsService {
	return &InsightsService{
		advisor: a,
		logger:  logger,
	}
}

// StudyPlan produces a short plan from the report's topic breakdown.
func (s *InsightsService) StudyPlan(ctx context.Context, report examsession.Report) string {
	text, err := s.advisor.GenerateText(ctx, buildStudyPlanPrompt(report))
	if err != nil {
		s.logger.Error("study plan generation failed", "error", err)
		return studyPlanFallback
	}
	return text
}

// Explain produces review text for one question. The stored explanation, if
// any, is handed to the model as reference notes and doubles as the fallback.
func (s *InsightsService) Explain(ctx context.Context, q examsession.Question) string {
	text, err := s.advisor.GenerateText(ctx, buildExplainPrompt(q))
	if err != nil {
		s.logger.Error("explanation generation failed", "question_id", q.ID, "error", err)
		return explainFallback(q)
	}
	return text
}

const reviewWorkers = 3

// Review explains every question the student got wrong or skipped, fanning
// out through a bounded worker pool. Results come back in question order.
func (s *InsightsService) Review(ctx context.Context, questions []examsession.Question) []Explanation {
	var missed []examsession.Question
	for _, q := range questions {
		if !q.Correct() {
			missed = append(missed, q)
		}
	}
	if len(missed) == 0 {
		return nil
	}

	pool := worker.NewPool[string](reviewWorkers, len(missed))
	for _, q := range missed {
		pool.Submit(q.ID, func() string {
			return s.Explain(ctx, q)
		})
	}
	pool.Close()

	texts := make(map[string]string, len(missed))
	for range missed {
		res := <-pool.Results()
		texts[res.JobID] = res.Output
	}

	explanations := make([]Explanation, len(missed))
	for i, q := range missed {
		explanations[i] = Explanation{QuestionID: q.ID, Text: texts[q.ID]}
	}
	return explanations
}

// ── Prompt builders ─────────────────────────────────────────────────────────

const studyPlanFallback = "The study plan service is unavailable right now. " +
	"Start with the topics where your accuracy was lowest and retake a short " +
	"practice drill on each before attempting a full exam again."

func buildStudyPlanPrompt(report examsession.Report) string {
	outcome := "FAIL"
	if report.Passed {
		outcome = "PASS"
	}

	var topics strings.Builder
	for i, stat := range report.TopicAnalysis {
		fmt.Fprintf(&topics, "%d. %s — %d/%d correct (%.1f%%)\n",
			i+1, stat.Topic, stat.Correct, stat.Total, stat.Accuracy)
	}
	if topics.Len() == 0 {
		topics.WriteString("(no questions were answered)\n")
	}

	return fmt.Sprintf(`/no_think
You are a tutor reviewing a student's timed multiple-choice practice exam.

RESULT:
score %.2f of %d, accuracy %.1f%%, outcome %s

TOPIC PERFORMANCE:
%s
Write a short study plan for this student:
- Order the topics from weakest to strongest and say which to revisit first.
- Give one concrete practice suggestion per weak topic.
- At most two sentences of encouragement.
Respond with plain text only — no markdown, under 200 words.`,
		report.Score, report.TotalQuestions, report.Accuracy, outcome, topics.String())
}

func explainFallback(q examsession.Question) string {
	if q.Explanation != "" {
		return q.Explanation
	}
	return fmt.Sprintf("The correct answer is %q. A detailed explanation is unavailable right now.", q.Answer)
}

func buildExplainPrompt(q examsession.Question) string {
	var options strings.Builder
	for i, o := range q.Options {
		fmt.Fprintf(&options, "%d. %s\n", i+1, o)
	}

	studentAnswer := "not answered"
	if q.UserAnswer != nil {
		studentAnswer = *q.UserAnswer
	}

	notes := ""
	if q.Explanation != "" {
		notes = fmt.Sprintf("\nREFERENCE NOTES:\n%s\n", q.Explanation)
	}

	return fmt.Sprintf(`/no_think
You are a tutor explaining one multiple-choice exam question.

QUESTION:
%s

OPTIONS:
%s
CORRECT ANSWER:
%s

STUDENT'S ANSWER:
%s
%s
Explain in two or three sentences why the correct answer is right and, if the
student chose differently, why their choice falls short.
Respond with plain text only — no markdown.`,
		q.Text, options.String(), q.Answer, studentAnswer, notes)
}
