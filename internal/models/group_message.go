package models

import "time"

// Group message on the single global channel.
type GroupMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	AuthorName string `json:"author_name,omitempty"`
}

type CreateGroupMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
