package handlers

import (
	"encoding/json"
	"net/http"

	"broconnect/internal/services"
)

// deleteAllConfirmation must be sent verbatim before the wipe runs.
const deleteAllConfirmation = "DELETE_ALL_USERS"

type AdminHandler struct {
	Users *services.UserService
}

// DeleteAllUsers wipes every account and all dependent data. The request
// must carry ?confirm=DELETE_ALL_USERS verbatim; anything else is rejected.
func (h *AdminHandler) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if getParam(r, "confirm") != deleteAllConfirmation {
		http.Error(w, "Confirmation phrase does not match", http.StatusBadRequest)
		return
	}

	deleted, err := h.Users.DeleteAllUsers(r.Context(), callerRole(r))
	if err != nil {
		respondError(w, err, "delete all users")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"deleted": deleted})
}
