package services

import (
	"context"
	"strings"

	"broconnect/internal/models"
	"broconnect/internal/validation"
)

// Fixed framing for the assistant; the endpoint's reply is shown verbatim.
const assistantSystemPrompt = "You are a helpful AI assistant for BroConnect, a complaint management platform for an educational program. Help users with their questions about submitting complaints, tracking their status, and navigating the platform. Be friendly, concise, and helpful."

const maxHistoryTurns = 50

type AssistantService struct {
	Client *CompletionClient
}

// Chat sends the system prompt, the bounded prior history and the latest
// message, and returns the single completion. No streaming, no retries,
// no persistence beyond the caller's session.
func (s *AssistantService) Chat(ctx context.Context, req models.AssistantRequest) (models.AssistantResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := validation.Check(req); err != nil {
		return models.AssistantResponse{}, err
	}

	reply, err := s.Client.Complete(ctx, BuildAssistantMessages(req.Message, req.History))
	if err != nil {
		return models.AssistantResponse{}, err
	}
	return models.AssistantResponse{Response: reply}, nil
}

// BuildAssistantMessages assembles the completion payload: system prompt
// first, then at most the last maxHistoryTurns prior turns, then the new
// user message.
func BuildAssistantMessages(message string, history []models.AssistantTurn) []ChatMessage {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: assistantSystemPrompt})
	for _, turn := range history {
		messages = append(messages, ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: message})
	return messages
}
