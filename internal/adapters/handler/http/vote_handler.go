package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type submitVoteRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req submitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusInternalServerError, "missing_session", "no session assigned to request")
		return
	}

	input := ports.SubmitVoteInput{
		Rating:    req.Rating,
		Comment:   req.Comment,
		SessionID: sessionID,
	}

	if err := h.service.SubmitVote(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating):
			respondError(w, http.StatusBadRequest, "invalid_rating", err.Error())
		case errors.Is(err, domain.ErrCommentTooLong):
			respondError(w, http.StatusBadRequest, "comment_too_long", err.Error())
		case errors.Is(err, domain.ErrAlreadyVoted):
			respondError(w, http.StatusConflict, "already_voted", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "storage_error", "failed to record vote")
		}
		return
	}

	votesSubmitted.WithLabelValues(strconv.Itoa(req.Rating)).Inc()
	w.WriteHeader(http.StatusCreated)
}
