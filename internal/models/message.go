package models

import "time"

// Direct message between two users. A conversation is the unordered pair
// of sender and receiver ids.
type Message struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"sender_id"`
	ReceiverID int       `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`

	SenderName string `json:"sender_name,omitempty"`
}

type CreateMessageRequest struct {
	ReceiverID int    `json:"receiver_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}
