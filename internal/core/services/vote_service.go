package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

type voteService struct {
	repo ports.VoteRepository
}

func NewVoteService(repo ports.VoteRepository) ports.VoteService {
	return &voteService{
		repo: repo,
	}
}

func (s *voteService) SubmitVote(ctx context.Context, input ports.SubmitVoteInput) error {
	if !domain.ValidRating(input.Rating) {
		return domain.ErrInvalidRating
	}
	if utf8.RuneCountInString(input.Comment) > domain.MaxCommentLength {
		return domain.ErrCommentTooLong
	}

	// A whitespace-only comment is treated as no comment at all.
	comment := strings.TrimSpace(input.Comment)

	_, err := s.repo.SaveVote(ctx, input.Rating, input.SessionID, comment)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	return nil
}

func (s *voteService) GetResults(ctx context.Context) domain.Results {
	results, err := s.repo.Aggregate(ctx)
	if err != nil {
		// Results are advisory and must always render something, so a
		// storage failure degrades to the zero aggregate.
		slog.Error("failed to aggregate votes", "error", err)
		return domain.EmptyResults()
	}
	return results
}

func (s *voteService) GetComments(ctx context.Context) ([]domain.CommentWithRating, error) {
	comments, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return comments, nil
}

func (s *voteService) GetStats(ctx context.Context) (domain.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return stats, nil
}

func (s *voteService) ResetVotes(ctx context.Context) error {
	if err := s.repo.ResetAll(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}
