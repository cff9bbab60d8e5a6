package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/vibetheforce/talkvote/internal/core/ports"
)

type AdminHandler struct {
	service ports.VoteService
	token   string
}

// NewAdminHandler wires the administrative endpoints. When token is
// non-empty it is required in the X-Admin-Token header; the core reset
// operation itself stays policy-free.
func NewAdminHandler(service ports.VoteService, token string) *AdminHandler {
	return &AdminHandler{
		service: service,
		token:   token,
	}
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *AdminHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token")
		return
	}

	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if !req.Confirm {
		respondError(w, http.StatusBadRequest, "confirmation_required", "reset must be explicitly confirmed")
		return
	}

	if err := h.service.ResetVotes(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "reset_failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token")
		return
	}

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "storage_error", "failed to load stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return true
	}
	got := r.Header.Get("X-Admin-Token")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
