package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"broconnect/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int
	query := `
		INSERT INTO users (full_name, email, password, batch, department, points, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, 'active', $6)
		RETURNING id`
	err = tx.QueryRowContext(ctx, query, user.FullName, user.Email, user.Password, user.Batch, user.Department, time.Now()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicateEmail
		}
		return 0, err
	}

	role := user.Role
	if role == "" {
		role = models.RoleStudent
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO user_roles (user_id, role, created_at) VALUES ($1, $2, $3)`, id, role, time.Now())
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT u.id, u.full_name, u.email, u.batch, u.department, u.points, u.badges, u.status, r.role, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE u.id = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT u.id, u.full_name, u.email, u.batch, u.department, u.points, u.badges, u.status, r.role, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE u.email = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

// GetPasswordByEmail returns the stored hash separately so user reads never
// carry it around.
func (r *UserRepository) GetPasswordByEmail(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.DB.QueryRowContext(ctx, `SELECT password FROM users WHERE email = $1`, email).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

// GetProfilesExcept lists every profile except the given user, for the
// messenger contact list.
func (r *UserRepository) GetProfilesExcept(ctx context.Context, userID int) ([]models.User, error) {
	query := `
		SELECT u.id, u.full_name, u.email, u.batch, u.department, u.points, u.badges, u.status, r.role, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE u.id <> $1
		ORDER BY u.full_name ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := r.scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) (models.User, error) {
	query := `
		UPDATE users
		SET full_name = $1, batch = $2, department = $3, updated_at = $4
		WHERE id = $5`
	res, err := r.DB.ExecContext(ctx, query, req.FullName, req.Batch, req.Department, time.Now(), userID)
	if err != nil {
		return models.User{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, userID)
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET refresh_token = $3, expires_at = $4`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = $1`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSessionsForUser(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

// DeleteAllUsers removes every account. Sessions, roles, complaints,
// messages, votes and notifications go with them through ON DELETE CASCADE.
// Destructive with no undo; the handler requires a literal confirmation.
func (r *UserRepository) DeleteAllUsers(ctx context.Context) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *UserRepository) scanUser(row rowScanner) (models.User, error) {
	user, err := r.scanUserRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) scanUserRow(row rowScanner) (models.User, error) {
	var user models.User
	var batch, department, status sql.NullString
	var badges []byte
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &batch, &department, &user.Points, &badges, &status, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	user.Batch = batch.String
	user.Department = department.String
	user.Status = status.String
	if len(badges) > 0 {
		if err := json.Unmarshal(badges, &user.Badges); err != nil {
			return models.User{}, err
		}
	}
	return user, nil
}
