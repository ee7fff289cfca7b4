package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"broconnect/internal/models"
)

type PollRepository struct {
	DB *sql.DB
}

func (r *PollRepository) CreatePoll(ctx context.Context, poll models.Poll) (models.Poll, error) {
	options, err := json.Marshal(poll.Options)
	if err != nil {
		return models.Poll{}, err
	}
	query := `
		INSERT INTO polls (title, description, options, created_by, is_active, expires_at, created_at)
		VALUES ($1, $2, $3, $4, true, $5, $6)
		RETURNING id, created_at`
	err = r.DB.QueryRowContext(ctx, query, poll.Title, poll.Description, options, poll.CreatedBy, poll.ExpiresAt, time.Now()).
		Scan(&poll.ID, &poll.CreatedAt)
	if err != nil {
		return models.Poll{}, err
	}
	poll.IsActive = true
	return poll, nil
}

func (r *PollRepository) GetActivePolls(ctx context.Context) ([]models.Poll, error) {
	query := `
		SELECT id, title, description, options, created_by, is_active, expires_at, created_at
		FROM polls
		WHERE is_active = true
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var polls []models.Poll
	for rows.Next() {
		poll, err := r.scanPoll(rows)
		if err != nil {
			return nil, err
		}
		polls = append(polls, poll)
	}
	return polls, rows.Err()
}

func (r *PollRepository) GetPollByID(ctx context.Context, id int) (models.Poll, error) {
	query := `
		SELECT id, title, description, options, created_by, is_active, expires_at, created_at
		FROM polls
		WHERE id = $1`
	poll, err := r.scanPoll(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, models.ErrPollNotFound
	}
	return poll, err
}

// CreateVote relies on the (poll_id, user_id) unique constraint for the
// one-vote-per-user rule.
func (r *PollRepository) CreateVote(ctx context.Context, vote models.PollVote) error {
	query := `
		INSERT INTO poll_votes (poll_id, user_id, selected_option, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, vote.PollID, vote.UserID, vote.SelectedOption, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateVote
		}
		if isForeignKeyViolation(err) {
			return models.ErrPollNotFound
		}
		return err
	}
	return nil
}

// GetVotesForActivePolls returns all votes joined to currently active
// polls; tallying happens in the service.
func (r *PollRepository) GetVotesForActivePolls(ctx context.Context) ([]models.PollVote, error) {
	query := `
		SELECT v.id, v.poll_id, v.user_id, v.selected_option, v.created_at
		FROM poll_votes v
		JOIN polls p ON p.id = v.poll_id
		WHERE p.is_active = true`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []models.PollVote
	for rows.Next() {
		var v models.PollVote
		if err := rows.Scan(&v.ID, &v.PollID, &v.UserID, &v.SelectedOption, &v.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (r *PollRepository) DeactivatePoll(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE polls SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPollNotFound
	}
	return nil
}

func (r *PollRepository) scanPoll(row rowScanner) (models.Poll, error) {
	var poll models.Poll
	var options []byte
	err := row.Scan(&poll.ID, &poll.Title, &poll.Description, &options, &poll.CreatedBy, &poll.IsActive, &poll.ExpiresAt, &poll.CreatedAt)
	if err != nil {
		return models.Poll{}, err
	}
	if err := json.Unmarshal(options, &poll.Options); err != nil {
		return models.Poll{}, err
	}
	return poll, nil
}
