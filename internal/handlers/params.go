package handlers

import (
	"errors"
	"log"
	"net/http"

	"broconnect/internal/models"
	"broconnect/internal/validation"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.URL.Query().Get(name)
}

// callerID reads the authenticated user id injected by the JWT middleware.
func callerID(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}

func callerRole(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}

// respondError maps service errors onto HTTP statuses. Validation errors
// surface their message; everything unexpected is a logged generic 500.
func respondError(w http.ResponseWriter, err error, action string) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, models.ErrDuplicateEmail):
		http.Error(w, "A user with this email already exists", http.StatusConflict)
	case errors.Is(err, models.ErrDuplicateVote):
		http.Error(w, "You have already voted on this poll", http.StatusConflict)
	case errors.Is(err, models.ErrPollClosed):
		http.Error(w, "This poll is no longer open for voting", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidOption):
		http.Error(w, "Selected option is out of range", http.StatusBadRequest)
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrComplaintNotFound),
		errors.Is(err, models.ErrPollNotFound),
		errors.Is(err, models.ErrNoRecord):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		log.Printf("%s error: %v", action, err)
		http.Error(w, "Failed to "+action, http.StatusInternalServerError)
	}
}
