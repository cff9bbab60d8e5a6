package ports

import (
	"context"

	"github.com/vibetheforce/talkvote/internal/core/domain"
)

// TextGenerator is the external language model behind the automatic
// summary. Implementations must honor ctx cancellation; any failure kind
// (timeout, auth, malformed response) is reported as an error wrapping
// domain.ErrGeneratorUnavailable.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// IsConfigured reports whether a credential is present, so callers can
	// short-circuit without attempting a call.
	IsConfigured() bool
}

// SummaryService produces the cached natural-language summary of the
// current vote distribution. It never returns an error: every failure
// degrades to a Summary with a non-ok status.
type SummaryService interface {
	GetSummary(ctx context.Context) domain.Summary
}
