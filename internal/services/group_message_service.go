package services

import (
	"context"
	"strings"

	"broconnect/internal/models"
	"broconnect/internal/repositories"
	"broconnect/internal/validation"
)

// The group chat shows the most recent slice of the single global channel.
const groupHistoryLimit = 100

type GroupMessageService struct {
	GroupRepo *repositories.GroupMessageRepository
	UserRepo  *repositories.UserRepository
	Realtime  *RealtimePublisher
}

func (s *GroupMessageService) CreateMessage(ctx context.Context, userID int, req models.CreateGroupMessageRequest) (models.GroupMessage, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := validation.Check(req); err != nil {
		return models.GroupMessage{}, err
	}

	message := models.GroupMessage{UserID: userID, Content: req.Content}
	message, err := s.GroupRepo.CreateGroupMessage(ctx, message)
	if err != nil {
		return models.GroupMessage{}, err
	}

	if author, err := s.UserRepo.GetUserByID(ctx, userID); err == nil {
		message.AuthorName = author.FullName
	}

	// TargetID 0 broadcasts to every connected socket.
	s.Realtime.Publish(ctx, models.EventGroupMessage, 0, message)
	return message, nil
}

func (s *GroupMessageService) GetRecentMessages(ctx context.Context) ([]models.GroupMessage, error) {
	return s.GroupRepo.GetRecentMessages(ctx, groupHistoryLimit)
}
