package handlers

import (
	"encoding/json"
	"net/http"

	"broconnect/internal/models"
	"broconnect/internal/services"
)

type AssistantHandler struct {
	Service *services.AssistantService
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Chat(r.Context(), req)
	if err != nil {
		respondError(w, err, "get assistant response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
