package http

import (
	"net/http"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

type SummaryHandler struct {
	service  ports.SummaryService
	minVotes int
}

func NewSummaryHandler(service ports.SummaryService, minVotes int) *SummaryHandler {
	return &SummaryHandler{
		service:  service,
		minVotes: minVotes,
	}
}

type summaryResponse struct {
	Status      domain.SummaryStatus `json:"status"`
	Text        string               `json:"text,omitempty"`
	VotesNeeded int                  `json:"votes_needed,omitempty"`
}

// GetSummary always answers 200; the outcome is carried in the status
// field because the summary is advisory and never a hard failure.
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.GetSummary(r.Context())
	summaryRequests.WithLabelValues(string(summary.Status)).Inc()

	resp := summaryResponse{Status: summary.Status, Text: summary.Text}
	if summary.Status == domain.SummaryInsufficientData {
		resp.VotesNeeded = h.minVotes - summary.VoteCount
	}
	respondJSON(w, http.StatusOK, resp)
}
