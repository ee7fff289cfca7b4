package services

import (
	"fmt"
	"testing"

	"broconnect/internal/models"
)

func TestBuildAssistantMessages(t *testing.T) {
	history := []models.AssistantTurn{
		{Role: "user", Content: "how do I raise a complaint?"},
		{Role: "assistant", Content: "use the complaints page"},
	}

	messages := BuildAssistantMessages("thanks, and polls?", history)
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Fatalf("expected system prompt first got %s", messages[0].Role)
	}
	if messages[1].Content != "how do I raise a complaint?" {
		t.Fatalf("unexpected history order: %s", messages[1].Content)
	}
	last := messages[len(messages)-1]
	if last.Role != "user" || last.Content != "thanks, and polls?" {
		t.Fatalf("expected new message last got %+v", last)
	}
}

func TestBuildAssistantMessagesTruncatesHistory(t *testing.T) {
	history := make([]models.AssistantTurn, 0, 80)
	for i := 0; i < 80; i++ {
		history = append(history, models.AssistantTurn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	messages := BuildAssistantMessages("latest", history)
	if len(messages) != maxHistoryTurns+2 {
		t.Fatalf("expected %d messages got %d", maxHistoryTurns+2, len(messages))
	}
	// the oldest turns are dropped, the newest kept
	if messages[1].Content != "turn 30" {
		t.Fatalf("expected history to start at turn 30 got %s", messages[1].Content)
	}
}

func TestBuildAssistantMessagesNoHistory(t *testing.T) {
	messages := BuildAssistantMessages("hello", nil)
	if len(messages) != 2 {
		t.Fatalf("expected system prompt plus message got %d", len(messages))
	}
}
