package repositories

import (
	"context"
	"database/sql"
	"time"

	"broconnect/internal/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, type, title, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, n.UserID, n.Type, n.Title, n.Message, time.Now()).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *NotificationRepository) GetNotificationsForUser(ctx context.Context, userID int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead is idempotent: marking an already-read row is a no-op update.
// Scoped to the owner so users cannot touch others' notifications.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNoRecord
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`, userID)
	return err
}

func (r *NotificationRepository) RegisterDeviceToken(ctx context.Context, userID int, token string) error {
	query := `
		INSERT INTO device_tokens (user_id, token, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID, token, time.Now())
	return err
}

func (r *NotificationRepository) GetDeviceTokens(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT token FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
