// Command summary is a one-shot job that prints the AI summary of the
// current voting data, using the same cache and generator wiring as the
// server. Useful for checking the Gemini credential and prompt output
// without running the HTTP surface.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/vibetheforce/talkvote/internal/adapters/generator/gemini"
	"github.com/vibetheforce/talkvote/internal/adapters/repository/sqlite"
	"github.com/vibetheforce/talkvote/internal/config"
	"github.com/vibetheforce/talkvote/internal/core/domain"
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

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := sqlite.Initialize(db); err != nil {
		log.Fatal(err)
	}

	voteService := services.NewVoteService(sqlite.NewVoteRepository(db))
	generator := gemini.NewClient(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GeneratorTimeout,
	})
	summaryService := services.NewSummaryService(voteService, generator, services.SummaryCacheConfig{
		TTL:             cfg.SummaryCacheTTL,
		MinVotes:        cfg.SummaryMinVotes,
		GenerateTimeout: cfg.GeneratorTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	results := voteService.GetResults(ctx)
	log.Printf("Current data: %d votes, %d comments, average %.2f",
		results.TotalVotes, results.TotalComments, results.AverageRating)

	summary := summaryService.GetSummary(ctx)
	switch summary.Status {
	case domain.SummaryOK:
		fmt.Println(summary.Text)
	case domain.SummaryInsufficientData:
		log.Printf("Not enough votes for a summary: have %d, need %d", summary.VoteCount, cfg.SummaryMinVotes)
	case domain.SummaryUnavailable:
		log.Fatal("Summary generator unavailable. Check GEMINI_API_KEY.")
	}
}
