package ports

import (
	"context"

	"github.com/vibetheforce/talkvote/internal/core/domain"
)

// VoteRepository is the storage engine behind the voting service. The
// uniqueness of session_id and the vote/comment relation are enforced by
// the store itself, not checked by callers, so concurrent submissions with
// the same session resolve to exactly one success.
type VoteRepository interface {
	// SaveVote persists a vote and, when comment is non-empty, its comment
	// in one transaction. Returns domain.ErrAlreadyVoted when the session
	// already has a vote.
	SaveVote(ctx context.Context, rating int, sessionID, comment string) (int64, error)
	// Aggregate recomputes the full results view from committed rows.
	Aggregate(ctx context.Context) (domain.Results, error)
	// ListComments returns all comments with their vote's rating, newest first.
	ListComments(ctx context.Context) ([]domain.CommentWithRating, error)
	// Stats returns row totals and the first/last vote timestamps.
	Stats(ctx context.Context) (domain.Stats, error)
	// ResetAll deletes every comment and vote atomically.
	ResetAll(ctx context.Context) error
}

type SubmitVoteInput struct {
	Rating    int
	Comment   string
	SessionID string
}

// VoteService enforces the business rules on top of the repository.
type VoteService interface {
	// SubmitVote validates and persists one vote per session. Fails with
	// domain.ErrInvalidRating, domain.ErrCommentTooLong,
	// domain.ErrAlreadyVoted or domain.ErrStorage.
	SubmitVote(ctx context.Context, input SubmitVoteInput) error
	// GetResults never fails: storage errors degrade to a zeroed aggregate
	// so the results view always has something to render.
	GetResults(ctx context.Context) domain.Results
	GetComments(ctx context.Context) ([]domain.CommentWithRating, error)
	GetStats(ctx context.Context) (domain.Stats, error)
	// ResetVotes wipes all voting data. Errors are surfaced as-is; the
	// caller owns confirmation and authorization.
	ResetVotes(ctx context.Context) error
}
