package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/prepdrill/backend/internal/corpus"
)

// ── Request / Response types ────────────────────────────────────────────────

type ImportResult struct {
	Imported int `json:"imported" example:"120"`
}

type SummaryResponse struct {
	Total    int      `json:"total" example:"120"`
	Subjects []string `json:"subjects"`
	Papers   []string `json:"papers"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// importQuestions replaces the whole question bank with the uploaded corpus.
// A corpus that fails validation leaves the previous bank untouched.
// @Summary      Import a question corpus
// @Description  Upload a JSON array of questions. The import is all-or-nothing; one bad record rejects the batch.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      []corpus.Record  true  "Question corpus"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string  "malformed or invalid corpus"
// @Router       /questions/import [post]
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	questions, err := corpus.Parse(data)
	if h.handleSessionError(w, err) {
		return
	}
	if err := h.bank.Load(questions); h.handleSessionError(w, err) {
		return
	}

	h.logger.Info("corpus imported", "questions", len(questions))
	respondJSON(w, http.StatusCreated, ImportResult{Imported: len(questions)})
}

// exportQuestions downloads the loaded corpus as a JSON file.
// @Summary      Export the question corpus
// @Tags         Questions
// @Produce      json
// @Success      200  {array}   corpus.Record
// @Failure      404  {object}  map[string]string  "no corpus loaded"
// @Router       /questions/export [get]
func (h *Handler) exportQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.bank.Snapshot()
	if len(questions) == 0 {
		respondError(w, http.StatusNotFound, "no corpus loaded")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename=prepdrill-questions.json`)
	if err := json.NewEncoder(w).Encode(corpus.Records(questions)); err != nil {
		h.logger.Error("failed to encode corpus export", "error", err)
	}
}

// questionSummary reports what the bank currently holds.
// @Summary      Summarize the question bank
// @Tags         Questions
// @Produce      json
// @Success      200  {object}  SummaryResponse
// @Router       /questions/summary [get]
func (h *Handler) questionSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.bank.Summary()
	respondJSON(w, http.StatusOK, SummaryResponse{
		Total:    summary.Total,
		Subjects: summary.Subjects,
		Papers:   summary.Papers,
	})
}
