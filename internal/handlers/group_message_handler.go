package handlers

import (
	"encoding/json"
	"net/http"

	"broconnect/internal/models"
	"broconnect/internal/services"
)

type GroupMessageHandler struct {
	Service *services.GroupMessageService
}

func (h *GroupMessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.CreateMessage(r.Context(), callerID(r), req)
	if err != nil {
		respondError(w, err, "send group message")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

func (h *GroupMessageHandler) GetRecentMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.GetRecentMessages(r.Context())
	if err != nil {
		respondError(w, err, "get group messages")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
