package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"broconnect/internal/models"
	"broconnect/internal/validation"
)

func TestRespondErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"bad credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate email", models.ErrDuplicateEmail, http.StatusConflict},
		{"duplicate vote", models.ErrDuplicateVote, http.StatusConflict},
		{"poll closed", models.ErrPollClosed, http.StatusBadRequest},
		{"invalid option", models.ErrInvalidOption, http.StatusBadRequest},
		{"complaint not found", models.ErrComplaintNotFound, http.StatusNotFound},
		{"user not found", models.ErrUserNotFound, http.StatusNotFound},
		{"no record", models.ErrNoRecord, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tc.err, "do the thing")
			if rec.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestRespondErrorValidation(t *testing.T) {
	err := validation.Check(models.CreateMessageRequest{ReceiverID: 1, Content: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}

	rec := httptest.NewRecorder()
	respondError(rec, err, "send message")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "content") {
		t.Fatalf("expected rule message in body, got %q", rec.Body.String())
	}
}

func TestRespondErrorGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.ErrBodyNotAllowed, "create complaint")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to create complaint") {
		t.Fatalf("expected generic message, got %q", rec.Body.String())
	}
}

func TestDeleteAllUsersConfirmation(t *testing.T) {
	h := &AdminHandler{}

	cases := []struct {
		name   string
		target string
	}{
		{"missing", "/admin/users"},
		{"wrong phrase", "/admin/users?confirm=yes+please"},
		{"lowercase", "/admin/users?confirm=delete_all_users"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, tc.target, nil)
			rec := httptest.NewRecorder()

			h.DeleteAllUsers(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", rec.Code)
			}
		})
	}
}
