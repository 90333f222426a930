package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/prepdrill/backend/internal/advisor"
	"github.com/prepdrill/backend/internal/api"
	"github.com/prepdrill/backend/internal/corpus"
	examsession "github.com/prepdrill/backend/internal/domain/exam_session"
	"github.com/prepdrill/backend/internal/domain/questionbank"
	"github.com/prepdrill/backend/internal/infrastructure/config"
	"github.com/prepdrill/backend/internal/service"
	"github.com/prepdrill/backend/internal/simulation"

	_ "github.com/prepdrill/backend/docs" // generated swagger docs
)

// @title           PrepDrill API
// @version         1.0
// @description     Timed multiple-choice mock exams — import a question corpus, drill a scoped session against the clock, and get AI study guidance on the result.

// @host      localhost:8080
// @BasePath  /

func main() {
	simulate := flag.Bool("simulate", false, "run a scripted drill against the engine and exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if *simulate {
		if err := simulation.Run(logger); err != nil {
			logger.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Load()

	// ── Dependencies ────────────────────────────────────────────────
	bank := questionbank.New()
	if cfg.QuestionsFile != "" {
		questions, err := corpus.LoadFile(cfg.QuestionsFile)
		if err != nil {
			logger.Error("failed to load question corpus", "file", cfg.QuestionsFile, "error", err)
			os.Exit(1)
		}
		if err := bank.Load(questions); err != nil {
			logger.Error("failed to load question corpus", "file", cfg.QuestionsFile, "error", err)
			os.Exit(1)
		}
		logger.Info("question corpus loaded", "file", cfg.QuestionsFile, "questions", bank.Size())
	}

	session := examsession.New(bank)
	llm := advisor.NewOllamaAdvisor(cfg.LLMURL, cfg.LLMModel)
	insights := service.NewInsightsService(llm, logger)
	handler := api.NewHandler(bank, session, insights, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
