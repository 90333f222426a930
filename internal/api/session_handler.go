package api

import (
	"errors"
	"net/http"

	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	Mode    string `json:"mode" example:"subject"`
	Subject string `json:"subject,omitempty" example:"Options"`
	Paper   string `json:"paper,omitempty" example:"Derivatives Paper 1"`
	Count   int    `json:"count" example:"20"`
}

func (r *StartSessionRequest) Validate() error {
	switch r.Mode {
	case "all":
	case "subject":
		if r.Subject == "" {
			return errors.New("subject is required when mode is subject")
		}
	case "paper":
		if r.Paper == "" {
			return errors.New("paper is required when mode is paper")
		}
	default:
		return errors.New("invalid mode: must be all, subject, or paper")
	}
	if r.Count < 1 {
		return errors.New("count must be a positive integer")
	}
	return nil
}

// scope maps the validated request onto the engine's closed scope set.
func (r *StartSessionRequest) scope() examsession.Scope {
	switch r.Mode {
	case "subject":
		return examsession.BySubject(r.Subject)
	case "paper":
		return examsession.ByPaper(r.Paper)
	default:
		return examsession.AllQuestions()
	}
}

type SessionQuestionResponse struct {
	ID          string   `json:"id" example:"q-101"`
	Text        string   `json:"text" example:"Which position profits when implied volatility falls?"`
	Options     []string `json:"options"`
	Category    string   `json:"category" example:"Options"`
	SubCategory string   `json:"sub_category,omitempty" example:"Derivatives Paper 1"`
	UserAnswer  *string  `json:"user_answer,omitempty"`
	Revealed    bool     `json:"revealed"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

type SessionResponse struct {
	SessionID        string                    `json:"session_id"`
	State            string                    `json:"state" example:"running"`
	CurrentIndex     int                       `json:"current_index" example:"0"`
	TotalQuestions   int                       `json:"total_questions" example:"20"`
	AnsweredCount    int                       `json:"answered_count" example:"5"`
	DurationMinutes  int                       `json:"duration_minutes" example:"24"`
	RemainingSeconds int                       `json:"remaining_seconds" example:"1380"`
	Questions        []SessionQuestionResponse `json:"questions"`
}

type AnswerRequest struct {
	QuestionID string `json:"question_id" example:"q-101"`
	Option     string `json:"option" example:"Short straddle"`
}

func (r *AnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("question_id is required")
	}
	if r.Option == "" {
		return errors.New("option is required")
	}
	return nil
}

type AnswerResponse struct {
	QuestionID string  `json:"question_id"`
	UserAnswer *string `json:"user_answer"`
}

type RevealResponse struct {
	QuestionID  string `json:"question_id"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
}

type NavigateRequest struct {
	Index int `json:"index" example:"3"`
}

type NavigateResponse struct {
	CurrentIndex int `json:"current_index"`
}

type TopicStatResponse struct {
	Topic    string  `json:"topic" example:"Options"`
	Correct  int     `json:"correct" example:"1"`
	Total    int     `json:"total" example:"2"`
	Accuracy float64 `json:"accuracy" example:"50"`
}

type ReportResponse struct {
	SessionID      string                    `json:"session_id"`
	Score          float64                   `json:"score" example:"5.5"`
	CorrectCount   int                       `json:"correct_count" example:"6"`
	IncorrectCount int                       `json:"incorrect_count" example:"2"`
	TotalQuestions int                       `json:"total_questions" example:"10"`
	Accuracy       float64                   `json:"accuracy" example:"60"`
	Passed         bool                      `json:"passed" example:"false"`
	TopicAnalysis  []TopicStatResponse       `json:"topic_analysis"`
	Questions      []SessionQuestionResponse `json:"questions"`
}

// ── Response builders ───────────────────────────────────────────────────────

// sessionQuestionResponse masks the correct answer and explanation until the
// question is revealed or the attempt is over.
func sessionQuestionResponse(q examsession.Question, completed bool) SessionQuestionResponse {
	resp := SessionQuestionResponse{
		ID:          q.ID,
		Text:        q.Text,
		Options:     q.Options,
		Category:    q.Category,
		SubCategory: q.SubCategory,
		UserAnswer:  q.UserAnswer,
		Revealed:    q.Revealed,
	}
	if q.Revealed || completed {
		resp.Answer = q.Answer
		resp.Explanation = q.Explanation
	}
	return resp
}

func sessionResponse(view examsession.View) SessionResponse {
	completed := view.State == examsession.StateCompleted
	questions := make([]SessionQuestionResponse, len(view.Questions))
	answered := 0
	for i, q := range view.Questions {
		questions[i] = sessionQuestionResponse(q, completed)
		if q.Answered() {
			answered++
		}
	}

	return SessionResponse{
		SessionID:        view.ID,
		State:            string(view.State),
		CurrentIndex:     view.Current,
		TotalQuestions:   len(view.Questions),
		AnsweredCount:    answered,
		DurationMinutes:  int(view.Duration.Minutes()),
		RemainingSeconds: int(view.Remaining.Seconds()),
		Questions:        questions,
	}
}

func reportResponse(view examsession.View) ReportResponse {
	report := view.Result

	topics := make([]TopicStatResponse, len(report.TopicAnalysis))
	for i, stat := range report.TopicAnalysis {
		topics[i] = TopicStatResponse{
			Topic:    stat.Topic,
			Correct:  stat.Correct,
			Total:    stat.Total,
			Accuracy: stat.Accuracy,
		}
	}

	questions := make([]SessionQuestionResponse, len(view.Questions))
	for i, q := range view.Questions {
		questions[i] = sessionQuestionResponse(q, true)
	}

	return ReportResponse{
		SessionID:      view.ID,
		Score:          report.Score,
		CorrectCount:   report.CorrectCount,
		IncorrectCount: report.IncorrectCount,
		TotalQuestions: report.TotalQuestions,
		Accuracy:       report.Accuracy,
		Passed:         report.Passed,
		TopicAnalysis:  topics,
		Questions:      questions,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession begins a fresh timed attempt.
// @Summary      Start a session
// @Description  Sample questions by scope and start the clock. The time limit derives from the requested count even when fewer questions are available.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Selection"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string  "validation or no matching questions"
// @Failure      409   {object}  map[string]string  "session already running"
// @Router       /session [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.session.Start(examsession.Config{Scope: req.scope(), Count: req.Count})
	if h.handleSessionError(w, err) {
		return
	}

	view := h.session.View()
	h.logger.Info("session started",
		"session_id", view.ID,
		"questions", len(view.Questions),
		"duration_minutes", int(view.Duration.Minutes()),
	)
	respondJSON(w, http.StatusCreated, sessionResponse(view))
}

// getSession returns the current attempt with answers masked as needed.
// @Summary      Get the current session
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string  "no active session"
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view := h.session.View()
	if view.State == examsession.StateIdle {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(view))
}

// selectAnswer records the first answer for a question. Re-answering is a
// no-op; the response always carries the answer that stuck.
// @Summary      Answer a question
// @Description  The first answer is final; a second answer for the same question leaves the original in place.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerRequest  true  "Answer"
// @Success      200   {object}  AnswerResponse
// @Failure      400   {object}  map[string]string  "option not among the question's choices"
// @Failure      404   {object}  map[string]string  "question not in session"
// @Failure      409   {object}  map[string]string  "no running session"
// @Router       /session/answers [post]
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, ok := h.session.Question(req.QuestionID)
	if !ok {
		respondError(w, http.StatusNotFound, "question not in session")
		return
	}
	if !q.HasOption(req.Option) {
		respondError(w, http.StatusBadRequest, "option is not one of the question's choices")
		return
	}

	if err := h.session.SelectAnswer(req.QuestionID, req.Option); h.handleSessionError(w, err) {
		return
	}

	q, _ = h.session.Question(req.QuestionID)
	respondJSON(w, http.StatusOK, AnswerResponse{QuestionID: q.ID, UserAnswer: q.UserAnswer})
}

// revealAnswer marks a question's correct answer as shown and returns it.
// @Summary      Reveal a question's answer
// @Tags         Session
// @Produce      json
// @Param        questionID  path      string  true  "Question id"
// @Success      200         {object}  RevealResponse
// @Failure      404         {object}  map[string]string  "question not in session"
// @Router       /session/questions/{questionID}/reveal [post]
func (h *Handler) revealAnswer(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	if err := h.session.Reveal(questionID); h.handleSessionError(w, err) {
		return
	}

	q, _ := h.session.Question(questionID)
	respondJSON(w, http.StatusOK, RevealResponse{
		QuestionID:  q.ID,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	})
}

// navigate moves the cursor. Out-of-range indexes leave it where it was.
// @Summary      Move to a question
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      NavigateRequest  true  "Target index"
// @Success      200   {object}  NavigateResponse
// @Failure      404   {object}  map[string]string  "no active session"
// @Router       /session/position [put]
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	if h.session.State() == examsession.StateIdle {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}

	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.session.Navigate(req.Index)
	respondJSON(w, http.StatusOK, NavigateResponse{CurrentIndex: h.session.View().Current})
}

// submitSession finalizes the attempt and returns the report. Safe to call
// again after completion; the same report comes back.
// @Summary      Submit the session
// @Tags         Session
// @Produce      json
// @Success      200  {object}  ReportResponse
// @Failure      409  {object}  map[string]string  "no session to submit"
// @Router       /session/submit [post]
func (h *Handler) submitSession(w http.ResponseWriter, r *http.Request) {
	_, err := h.session.Submit()
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, reportResponse(h.session.View()))
}

// resetSession drops the attempt. The question bank stays loaded.
// @Summary      Reset the session
// @Tags         Session
// @Success      204
// @Router       /session [delete]
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.session.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// getResult returns the report of the completed attempt.
// @Summary      Get the session result
// @Tags         Session
// @Produce      json
// @Success      200  {object}  ReportResponse
// @Failure      404  {object}  map[string]string  "no completed session"
// @Router       /session/result [get]
func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	view := h.session.View()
	if view.Result == nil {
		respondError(w, http.StatusNotFound, "no completed session")
		return
	}
	respondJSON(w, http.StatusOK, reportResponse(view))
}
