package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"broconnect/internal/models"
	"broconnect/internal/repositories"
)

type NotificationService struct {
	NotificationRepo *repositories.NotificationRepository
	Realtime         *RealtimePublisher

	// Optional: when configured, every stored notification is mirrored as
	// an FCM push to the owner's registered device tokens.
	FCM *messaging.Client
}

// Notify stores a notification row and fans it out. Failures are logged
// and swallowed: notifications ride along other operations and must not
// fail them.
func (s *NotificationService) Notify(ctx context.Context, n models.Notification) {
	created, err := s.NotificationRepo.CreateNotification(ctx, n)
	if err != nil {
		log.Printf("notification: create for user %d: %v", n.UserID, err)
		return
	}

	s.Realtime.Publish(ctx, models.EventNotification, created.UserID, created)

	if s.FCM != nil {
		s.push(ctx, created)
	}
}

func (s *NotificationService) push(ctx context.Context, n models.Notification) {
	tokens, err := s.NotificationRepo.GetDeviceTokens(ctx, n.UserID)
	if err != nil {
		log.Printf("notification: fetch tokens for user %d: %v", n.UserID, err)
		return
	}
	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: n.Title,
				Body:  n.Message,
			},
			Data: map[string]string{"type": n.Type},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{"apns-priority": "10"},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{Title: n.Title, Body: n.Message},
						Sound: "default",
					},
				},
			},
		}
		if _, err := s.FCM.Send(ctx, message); err != nil {
			log.Printf("notification: push to token %s: %v", token, err)
		}
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID int) ([]models.Notification, error) {
	return s.NotificationRepo.GetNotificationsForUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int) error {
	return s.NotificationRepo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int) error {
	return s.NotificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) RegisterDeviceToken(ctx context.Context, userID int, token string) error {
	return s.NotificationRepo.RegisterDeviceToken(ctx, userID, token)
}
