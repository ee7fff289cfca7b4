package validation

import (
	"errors"
	"strings"
	"testing"

	"broconnect/internal/models"
)

func validComplaint() models.CreateComplaintRequest {
	return models.CreateComplaintRequest{
		Title:       "Projector broken in hall B",
		Description: "The projector has not worked for three days now.",
		Category:    "facility",
		Priority:    "medium",
	}
}

func TestCheckComplaintRequest(t *testing.T) {
	if err := Check(validComplaint()); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*models.CreateComplaintRequest)
	}{
		{"short title", func(r *models.CreateComplaintRequest) { r.Title = "hey" }},
		{"long title", func(r *models.CreateComplaintRequest) { r.Title = strings.Repeat("a", 201) }},
		{"short description", func(r *models.CreateComplaintRequest) { r.Description = "too short" }},
		{"long description", func(r *models.CreateComplaintRequest) { r.Description = strings.Repeat("a", 5001) }},
		{"unknown category", func(r *models.CreateComplaintRequest) { r.Category = "sports" }},
		{"unknown priority", func(r *models.CreateComplaintRequest) { r.Priority = "urgent" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validComplaint()
			tc.mutate(&req)

			err := Check(req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var ve *Error
			if !errors.As(err, &ve) {
				t.Fatalf("expected user-facing validation error, got %T", err)
			}
		})
	}
}

func TestCheckSignUpRequest(t *testing.T) {
	req := models.SignUpRequest{
		FullName: "Asha Nair",
		Email:    "asha@example.com",
		Password: "s3cret-enough",
		Batch:    "BCE-42",
	}
	if err := Check(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	req.Email = "not-an-email"
	err := Check(req)
	if err == nil {
		t.Fatal("expected email validation error")
	}
	if err.Error() != "a valid email address is required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	req.Email = "asha@example.com"
	req.Password = "short"
	if Check(req) == nil {
		t.Fatal("expected password length error")
	}
}

func TestCheckMessageRequest(t *testing.T) {
	if err := Check(models.CreateMessageRequest{ReceiverID: 2, Content: "hi"}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if Check(models.CreateMessageRequest{ReceiverID: 0, Content: "hi"}) == nil {
		t.Fatal("expected receiver validation error")
	}
	if Check(models.CreateMessageRequest{ReceiverID: 2, Content: ""}) == nil {
		t.Fatal("expected empty content error")
	}
	if Check(models.CreateMessageRequest{ReceiverID: 2, Content: strings.Repeat("a", 2001)}) == nil {
		t.Fatal("expected long content error")
	}
}

func TestCheckPollRequest(t *testing.T) {
	req := models.CreatePollRequest{
		Title:   "Next workshop slot",
		Options: []string{"morning", "evening"},
	}
	if err := Check(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	req.Options = []string{"only one"}
	err := Check(req)
	if err == nil {
		t.Fatal("expected options minimum error")
	}
	if err.Error() != "options must contain at least 2 entries" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCheckAssistantRequest(t *testing.T) {
	req := models.AssistantRequest{Message: "how do polls work?"}
	if err := Check(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	req.History = []models.AssistantTurn{{Role: "narrator", Content: "x"}}
	if Check(req) == nil {
		t.Fatal("expected history role validation error")
	}
}
