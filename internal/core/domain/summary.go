package domain

import "time"

// SummaryStatus tells the caller what kind of summary payload it got.
type SummaryStatus string

const (
	// SummaryOK means Text holds a generated summary.
	SummaryOK SummaryStatus = "ok"
	// SummaryInsufficientData means too few votes exist to summarize.
	SummaryInsufficientData SummaryStatus = "insufficient_data"
	// SummaryUnavailable means the generator failed or is not configured.
	// The summary is advisory, so this is never surfaced as a hard error.
	SummaryUnavailable SummaryStatus = "unavailable"
)

// Summary is the natural-language reading of the vote distribution. The
// text is best-effort model output and never authoritative.
type Summary struct {
	Status      SummaryStatus `json:"status"`
	Text        string        `json:"text,omitempty"`
	VoteCount   int           `json:"-"`
	GeneratedAt time.Time     `json:"-"`
}
