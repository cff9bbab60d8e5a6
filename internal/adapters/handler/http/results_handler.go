package http

import (
	"net/http"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

type ResultsHandler struct {
	service ports.VoteService
}

func NewResultsHandler(service ports.VoteService) *ResultsHandler {
	return &ResultsHandler{
		service: service,
	}
}

// GetResults always answers 200: the service degrades storage failures to
// a zeroed aggregate so the live dashboard keeps rendering.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetResults(r.Context()))
}

func (h *ResultsHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.GetComments(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "storage_error", "failed to load comments")
		return
	}
	if comments == nil {
		comments = []domain.CommentWithRating{}
	}
	respondJSON(w, http.StatusOK, comments)
}
