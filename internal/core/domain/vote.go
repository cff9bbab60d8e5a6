package domain

import "time"

// MaxCommentLength is the longest comment accepted with a vote, in runes.
const MaxCommentLength = 500

// Rating bounds for a vote.
const (
	MinRating = 1
	MaxRating = 5
)

// Vote is a single 1-5 rating tied to a browser session. A session can
// vote at most once; the storage schema enforces that.
type Vote struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is an optional piece of text attached to a vote. It has no
// lifecycle of its own: it is written in the same transaction as its vote
// and deleted together with it.
type Comment struct {
	ID        int64     `json:"id"`
	VoteID    int64     `json:"vote_id"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithRating is a comment joined with the rating of its vote, as
// shown on the results and admin views.
type CommentWithRating struct {
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRating reports whether r is within the accepted 1-5 range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
