package services

import (
	"context"
	"strings"

	"broconnect/internal/models"
	"broconnect/internal/repositories"
	"broconnect/internal/validation"
)

type MessageService struct {
	MessageRepo   *repositories.MessageRepository
	UserRepo      *repositories.UserRepository
	Notifications *NotificationService
	Realtime      *RealtimePublisher
}

// CreateMessage validates and inserts a direct message, then publishes
// the inserted row so the websocket layer can deliver it to the receiver.
// The receiver also gets a stored notification naming the sender.
func (s *MessageService) CreateMessage(ctx context.Context, senderID int, req models.CreateMessageRequest) (models.Message, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := validation.Check(req); err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	message, err := s.MessageRepo.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, err
	}
	if sender, err := s.UserRepo.GetUserByID(ctx, senderID); err == nil {
		message.SenderName = sender.FullName
	}

	s.Realtime.Publish(ctx, models.EventDirectMessage, message.ReceiverID, message)

	if s.Notifications != nil {
		sender := message.SenderName
		if sender == "" {
			sender = "Someone"
		}
		s.Notifications.Notify(ctx, models.Notification{
			UserID:  message.ReceiverID,
			Type:    models.NotificationMessage,
			Title:   "New message",
			Message: sender + " sent you a message",
		})
	}
	return message, nil
}

// GetConversation returns the full exchange between the caller and the
// other participant, ascending by time.
func (s *MessageService) GetConversation(ctx context.Context, userID, otherID int) ([]models.Message, error) {
	return s.MessageRepo.GetConversation(ctx, userID, otherID)
}
