package models

// AssistantTurn is one prior turn of the in-memory assistant conversation.
type AssistantTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type AssistantRequest struct {
	Message string          `json:"message" validate:"required,min=1,max=1000"`
	History []AssistantTurn `json:"history" validate:"max=50,dive"`
}

type AssistantResponse struct {
	Response string `json:"response"`
}
