package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vibetheforce/talkvote/internal/adapters/generator/gemini"
	"github.com/vibetheforce/talkvote/internal/adapters/handler/http"
	"github.com/vibetheforce/talkvote/internal/adapters/repository/sqlite"
	"github.com/vibetheforce/talkvote/internal/config"
	"github.com/vibetheforce/talkvote/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	slog.SetDefault(newLogger(cfg.LogLevel))

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := sqlite.Initialize(db); err != nil {
		log.Fatal(err)
	}
	slog.Info("database ready", "path", cfg.DatabasePath)

	voteRepo := sqlite.NewVoteRepository(db)
	voteService := services.NewVoteService(voteRepo)

	generator := gemini.NewClient(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GeneratorTimeout,
	})
	if !generator.IsConfigured() {
		slog.Warn("GEMINI_API_KEY not configured, automatic summaries will be unavailable")
	}

	summaryService := services.NewSummaryService(voteService, generator, services.SummaryCacheConfig{
		TTL:             cfg.SummaryCacheTTL,
		MinVotes:        cfg.SummaryMinVotes,
		GenerateTimeout: cfg.GeneratorTimeout,
	})

	handler := http.NewHandler(
		http.NewVoteHandler(voteService),
		http.NewResultsHandler(voteService),
		http.NewSummaryHandler(summaryService, cfg.SummaryMinVotes),
		http.NewAdminHandler(voteService, cfg.AdminToken),
	)
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
