package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

type fakeVoteRepo struct {
	saveErr      error
	aggregateErr error
	results      domain.Results

	savedRating  int
	savedSession string
	savedComment string
	saveCalls    int
	resetCalls   int
}

func (f *fakeVoteRepo) SaveVote(ctx context.Context, rating int, sessionID, comment string) (int64, error) {
	f.saveCalls++
	f.savedRating = rating
	f.savedSession = sessionID
	f.savedComment = comment
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	return 1, nil
}

func (f *fakeVoteRepo) Aggregate(ctx context.Context) (domain.Results, error) {
	if f.aggregateErr != nil {
		return domain.Results{}, f.aggregateErr
	}
	return f.results, nil
}

func (f *fakeVoteRepo) ListComments(ctx context.Context) ([]domain.CommentWithRating, error) {
	return nil, nil
}

func (f *fakeVoteRepo) Stats(ctx context.Context) (domain.Stats, error) {
	return domain.Stats{}, nil
}

func (f *fakeVoteRepo) ResetAll(ctx context.Context) error {
	f.resetCalls++
	return nil
}

func TestSubmitVoteInvalidRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		repo := &fakeVoteRepo{}
		service := NewVoteService(repo)

		err := service.SubmitVote(context.Background(), submitInput(rating, ""))
		require.ErrorIs(t, err, domain.ErrInvalidRating)
		assert.Equal(t, 0, repo.saveCalls, "no write may happen for rating %d", rating)
	}
}

func TestSubmitVoteCommentTooLong(t *testing.T) {
	repo := &fakeVoteRepo{}
	service := NewVoteService(repo)

	err := service.SubmitVote(context.Background(), submitInput(5, strings.Repeat("x", 501)))
	require.ErrorIs(t, err, domain.ErrCommentTooLong)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestSubmitVoteCommentAtLimit(t *testing.T) {
	repo := &fakeVoteRepo{}
	service := NewVoteService(repo)

	err := service.SubmitVote(context.Background(), submitInput(5, strings.Repeat("x", 500)))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestSubmitVoteTrimsComment(t *testing.T) {
	repo := &fakeVoteRepo{}
	service := NewVoteService(repo)

	err := service.SubmitVote(context.Background(), submitInput(4, "  nice talk  "))
	require.NoError(t, err)
	assert.Equal(t, "nice talk", repo.savedComment)
}

func TestSubmitVoteBlankCommentDropped(t *testing.T) {
	repo := &fakeVoteRepo{}
	service := NewVoteService(repo)

	err := service.SubmitVote(context.Background(), submitInput(4, "   \n\t "))
	require.NoError(t, err)
	assert.Equal(t, "", repo.savedComment)
}

func TestSubmitVoteAlreadyVoted(t *testing.T) {
	repo := &fakeVoteRepo{saveErr: domain.ErrAlreadyVoted}
	service := NewVoteService(repo)

	err := service.SubmitVote(context.Background(), submitInput(3, ""))
	require.ErrorIs(t, err, domain.ErrAlreadyVoted)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestSubmitVoteStorageError(t *testing.T) {
	repo := &fakeVoteRepo{saveErr: errors.New("disk on fire")}
	service := NewVoteService(repo)

	err := service.SubmitVote(context.Background(), submitInput(3, ""))
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestGetResultsDegradesOnStorageError(t *testing.T) {
	repo := &fakeVoteRepo{aggregateErr: errors.New("db gone")}
	service := NewVoteService(repo)

	results := service.GetResults(context.Background())
	assert.Equal(t, domain.EmptyResults(), results)
}

func TestGetResultsPassesThrough(t *testing.T) {
	expected := domain.EmptyResults()
	expected.Votes[5] = 3
	expected.TotalVotes = 3
	expected.AverageRating = 5.0

	repo := &fakeVoteRepo{results: expected}
	service := NewVoteService(repo)

	assert.Equal(t, expected, service.GetResults(context.Background()))
}

func TestResetVotes(t *testing.T) {
	repo := &fakeVoteRepo{}
	service := NewVoteService(repo)

	require.NoError(t, service.ResetVotes(context.Background()))
	assert.Equal(t, 1, repo.resetCalls)
}

func submitInput(rating int, comment string) ports.SubmitVoteInput {
	return ports.SubmitVoteInput{Rating: rating, Comment: comment, SessionID: "session-1"}
}
