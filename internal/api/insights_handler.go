package api

import (
	"net/http"

	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
)

// ── Response types ──────────────────────────────────────────────────────────

type StudyPlanResponse struct {
	SessionID string `json:"session_id"`
	StudyPlan string `json:"study_plan"`
}

type ExplanationResponse struct {
	QuestionID  string `json:"question_id"`
	Explanation string `json:"explanation"`
}

type ReviewResponse struct {
	SessionID    string                `json:"session_id"`
	Explanations []ExplanationResponse `json:"explanations"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// studyPlan asks the LLM for a study plan built from the completed report.
// Always answers 200 once a result exists; LLM trouble degrades to a canned
// plan rather than an error.
// @Summary      Generate a study plan
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  StudyPlanResponse
// @Failure      404  {object}  map[string]string  "no completed session"
// @Router       /session/result/study-plan [post]
func (h *Handler) studyPlan(w http.ResponseWriter, r *http.Request) {
	view := h.session.View()
	if view.Result == nil {
		respondError(w, http.StatusNotFound, "no completed session")
		return
	}

	plan := h.insights.StudyPlan(r.Context(), *view.Result)
	respondJSON(w, http.StatusOK, StudyPlanResponse{SessionID: view.ID, StudyPlan: plan})
}

// reviewSession explains every missed or skipped question of the completed
// attempt in one shot.
// @Summary      Review missed questions
// @Description  Generates an explanation for each question that was not answered correctly.
// @Tags         Insights
// @Produce      json
// @Success      200  {object}  ReviewResponse
// @Failure      404  {object}  map[string]string  "no completed session"
// @Router       /session/result/review [post]
func (h *Handler) reviewSession(w http.ResponseWriter, r *http.Request) {
	view := h.session.View()
	if view.Result == nil {
		respondError(w, http.StatusNotFound, "no completed session")
		return
	}

	explanations := h.insights.Review(r.Context(), view.Questions)
	resp := ReviewResponse{
		SessionID:    view.ID,
		Explanations: make([]ExplanationResponse, len(explanations)),
	}
	for i, e := range explanations {
		resp.Explanations[i] = ExplanationResponse{QuestionID: e.QuestionID, Explanation: e.Text}
	}
	respondJSON(w, http.StatusOK, resp)
}

// explainQuestion generates an explanation for a single question. The answer
// must be visible first, either by reveal or by finishing the attempt.
// @Summary      Explain a question
// @Tags         Insights
// @Produce      json
// @Param        questionID  path      string  true  "Question id"
// @Success      200         {object}  ExplanationResponse
// @Failure      404         {object}  map[string]string  "question not in session"
// @Failure      409         {object}  map[string]string  "answer not yet revealed"
// @Router       /session/questions/{questionID}/explanation [post]
func (h *Handler) explainQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	q, ok := h.session.Question(questionID)
	if !ok {
		respondError(w, http.StatusNotFound, "question not in session")
		return
	}
	if !q.Revealed && h.session.State() != examsession.StateCompleted {
		respondError(w, http.StatusConflict, "reveal the answer before requesting an explanation")
		return
	}

	text := h.insights.Explain(r.Context(), q)
	respondJSON(w, http.StatusOK, ExplanationResponse{QuestionID: q.ID, Explanation: text})
}
