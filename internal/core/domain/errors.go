package domain

import "errors"

var (
	ErrInvalidRating        = errors.New("rating must be an integer between 1 and 5")
	ErrCommentTooLong       = errors.New("comment exceeds 500 characters")
	ErrAlreadyVoted         = errors.New("session has already voted")
	ErrStorage              = errors.New("storage error")
	ErrGeneratorUnavailable = errors.New("summary generator unavailable")
	ErrReferentialIntegrity = errors.New("comment references a nonexistent vote")
)
