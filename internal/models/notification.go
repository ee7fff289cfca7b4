package models

import "time"

// Notification types written by the services.
const (
	NotificationComplaintStatus   = "complaint_status"
	NotificationComplaintAssigned = "complaint_assigned"
	NotificationMessage           = "message"
)

type Notification struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
