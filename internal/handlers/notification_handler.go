package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"broconnect/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Service.GetNotifications(r.Context(), callerID(r))
	if err != nil {
		respondError(w, err, "get notifications")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.MarkRead(r.Context(), id, callerID(r)); err != nil {
		respondError(w, err, "mark notification read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.MarkAllRead(r.Context(), callerID(r)); err != nil {
		respondError(w, err, "mark notifications read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterDeviceToken stores an FCM token so status changes can be pushed to
// the caller's device.
func (h *NotificationHandler) RegisterDeviceToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.RegisterDeviceToken(r.Context(), callerID(r), req.Token); err != nil {
		respondError(w, err, "register device token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
