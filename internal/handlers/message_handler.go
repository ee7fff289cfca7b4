package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"broconnect/internal/models"
	"broconnect/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.CreateMessage(r.Context(), callerID(r), req)
	if err != nil {
		respondError(w, err, "send message")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

// GetConversation returns the full history between the caller and the user
// named in the path, oldest first.
func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	otherID, err := strconv.Atoi(getParam(r, "user_id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	messages, err := h.Service.GetConversation(r.Context(), callerID(r), otherID)
	if err != nil {
		respondError(w, err, "get conversation")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
