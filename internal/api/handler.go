// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
	"github.com/prepdrill/backend/internal/domain/questionbank"
	"github.com/prepdrill/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	bank     *questionbank.QuestionBank
	session  *examsession.Session
	insights *service.InsightsService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(bank *questionbank.QuestionBank, session *examsession.Session, insights *service.InsightsService, logger *slog.Logger) *Handler {
	return &Handler{
		bank:     bank,
		session:  session,
		insights: insights,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// decodeAndValidate decodes the request body and runs its Validate method.
// On failure it writes a 400 and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleSessionError maps engine errors onto HTTP statuses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, examsession.ErrUnknownQuestion):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, examsession.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, examsession.ErrNoQuestions):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, questionbank.ErrInvalidCorpus):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("session error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
