package repositories

import (
	"context"
	"database/sql"
	"time"

	"broconnect/internal/models"
)

type GroupMessageRepository struct {
	DB *sql.DB
}

func (r *GroupMessageRepository) CreateGroupMessage(ctx context.Context, message models.GroupMessage) (models.GroupMessage, error) {
	query := `
		INSERT INTO group_messages (user_id, content, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, message.UserID, message.Content, time.Now()).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.GroupMessage{}, models.ErrUserNotFound
		}
		return models.GroupMessage{}, err
	}
	return message, nil
}

// GetRecentMessages returns the last `limit` messages of the global
// channel in ascending time order, author name joined.
func (r *GroupMessageRepository) GetRecentMessages(ctx context.Context, limit int) ([]models.GroupMessage, error) {
	query := `
		SELECT id, user_id, content, created_at, author_name FROM (
			SELECT g.id, g.user_id, g.content, g.created_at, u.full_name AS author_name
			FROM group_messages g
			JOIN users u ON u.id = g.user_id
			ORDER BY g.created_at DESC
			LIMIT $1
		) recent
		ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.GroupMessage
	for rows.Next() {
		var m models.GroupMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Content, &m.CreatedAt, &m.AuthorName); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
