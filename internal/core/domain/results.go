package domain

import (
	"math"
	"time"
)

// Results is the aggregate view over all votes at a point in time. It is
// recomputed from the store on every request, never persisted.
type Results struct {
	// Votes maps each rating 1..5 to its count. Every bucket is present
	// even when zero.
	Votes         map[int]int `json:"votes"`
	TotalVotes    int         `json:"total_votes"`
	AverageRating float64     `json:"average_rating"`
	TotalComments int         `json:"total_comments"`
}

// EmptyResults returns an all-zero aggregate with every rating bucket
// present. The results view falls back to this when the store is
// unavailable.
func EmptyResults() Results {
	votes := make(map[int]int, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		votes[r] = 0
	}
	return Results{Votes: votes, AverageRating: 0.0}
}

// MostVoted returns the rating with the highest count and that count.
// Lower ratings win ties so the answer is deterministic.
func (r Results) MostVoted() (rating, count int) {
	rating = MinRating
	for b := MinRating; b <= MaxRating; b++ {
		if r.Votes[b] > count {
			rating, count = b, r.Votes[b]
		}
	}
	return rating, count
}

// Percentage returns the share of votes for a rating, rounded to one
// decimal place. Zero when there are no votes.
func (r Results) Percentage(rating int) float64 {
	if r.TotalVotes == 0 {
		return 0.0
	}
	return math.Round(float64(r.Votes[rating])/float64(r.TotalVotes)*1000) / 10
}

// Stats is the administrative view of the store: row totals plus the time
// span of the collected votes. FirstVoteAt and LastVoteAt are nil when no
// votes exist.
type Stats struct {
	TotalVotes    int        `json:"total_votes"`
	TotalComments int        `json:"total_comments"`
	FirstVoteAt   *time.Time `json:"first_vote_at"`
	LastVoteAt    *time.Time `json:"last_vote_at"`
}
