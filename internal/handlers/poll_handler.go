package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"broconnect/internal/models"
	"broconnect/internal/services"
)

type PollHandler struct {
	Service *services.PollService
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	poll, err := h.Service.CreatePoll(r.Context(), callerID(r), callerRole(r), req)
	if err != nil {
		respondError(w, err, "create poll")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(poll)
}

// GetPolls returns active polls with tallies and the caller's own vote.
func (h *PollHandler) GetPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.Service.GetPolls(r.Context(), callerID(r))
	if err != nil {
		respondError(w, err, "get polls")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(polls)
}

func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid poll ID", http.StatusBadRequest)
		return
	}

	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.Vote(r.Context(), id, callerID(r), req); err != nil {
		respondError(w, err, "submit vote")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PollHandler) DeactivatePoll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid poll ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeactivatePoll(r.Context(), id, callerRole(r)); err != nil {
		respondError(w, err, "deactivate poll")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
