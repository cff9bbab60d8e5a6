package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

// SummaryCacheConfig tunes the freshness window of the cached summary.
// Zero values fall back to the defaults below.
type SummaryCacheConfig struct {
	// TTL is how long a cached summary stays fresh.
	TTL time.Duration
	// MinVotes is the sample size required before the generator is called.
	MinVotes int
	// GenerateTimeout bounds a single generator call.
	GenerateTimeout time.Duration
}

const (
	defaultSummaryTTL      = 30 * time.Second
	defaultSummaryMinVotes = 10
	defaultGenerateTimeout = 30 * time.Second
)

type summaryService struct {
	votes ports.VoteService
	gen   ports.TextGenerator
	cfg   SummaryCacheConfig
	now   func() time.Time

	mu     sync.Mutex
	cached *domain.Summary
}

func NewSummaryService(votes ports.VoteService, gen ports.TextGenerator, cfg SummaryCacheConfig) ports.SummaryService {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSummaryTTL
	}
	if cfg.MinVotes <= 0 {
		cfg.MinVotes = defaultSummaryMinVotes
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = defaultGenerateTimeout
	}
	return &summaryService{
		votes: votes,
		gen:   gen,
		cfg:   cfg,
		now:   time.Now,
	}
}

// GetSummary returns the cached summary while it is fresh, regenerating it
// when the TTL has elapsed or the vote count has moved. Generation is
// synchronous: the first caller after expiry waits for the generator.
func (s *summaryService) GetSummary(ctx context.Context) domain.Summary {
	results := s.votes.GetResults(ctx)

	if results.TotalVotes < s.cfg.MinVotes {
		return domain.Summary{Status: domain.SummaryInsufficientData, VoteCount: results.TotalVotes}
	}

	if !s.gen.IsConfigured() {
		return domain.Summary{Status: domain.SummaryUnavailable, VoteCount: results.TotalVotes}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil &&
		s.cached.VoteCount == results.TotalVotes &&
		s.now().Sub(s.cached.GeneratedAt) <= s.cfg.TTL {
		return *s.cached
	}

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout)
	defer cancel()

	text, err := s.gen.Generate(genCtx, BuildSummaryPrompt(results))
	if err != nil {
		slog.Warn("summary generation failed", "error", err, "total_votes", results.TotalVotes)
		s.cached = nil
		return domain.Summary{Status: domain.SummaryUnavailable, VoteCount: results.TotalVotes}
	}

	summary := domain.Summary{
		Status:      domain.SummaryOK,
		Text:        text,
		VoteCount:   results.TotalVotes,
		GeneratedAt: s.now(),
	}
	s.cached = &summary
	return summary
}
