package repositories

import (
	"context"
	"database/sql"
	"time"

	"broconnect/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, message.SenderID, message.ReceiverID, message.Content, time.Now()).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Message{}, models.ErrUserNotFound
		}
		return models.Message{}, err
	}
	return message, nil
}

// GetConversation returns every message between the two users in either
// direction, ascending by time.
func (r *MessageRepository) GetConversation(ctx context.Context, user1ID, user2ID int) ([]models.Message, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at, u.full_name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.CreatedAt, &m.SenderName); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
