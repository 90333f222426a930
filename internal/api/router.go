package api

import "net/http"

// RegisterRoutes attaches every API route to the mux using method patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Corpus
	mux.HandleFunc("POST /questions/import", h.importQuestions)
	mux.HandleFunc("GET /questions/export", h.exportQuestions)
	mux.HandleFunc("GET /questions/summary", h.questionSummary)

	// Session lifecycle
	mux.HandleFunc("POST /session", h.startSession)
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("POST /session/answers", h.selectAnswer)
	mux.HandleFunc("POST /session/questions/{questionID}/reveal", h.revealAnswer)
	mux.HandleFunc("PUT /session/position", h.navigate)
	mux.HandleFunc("POST /session/submit", h.submitSession)
	mux.HandleFunc("DELETE /session", h.resetSession)
	mux.HandleFunc("GET /session/result", h.getResult)

	// Insights
	mux.HandleFunc("POST /session/result/study-plan", h.studyPlan)
	mux.HandleFunc("POST /session/result/review", h.reviewSession)
	mux.HandleFunc("POST /session/questions/{questionID}/explanation", h.explainQuestion)
}
