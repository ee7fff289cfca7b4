package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"broconnect/internal/models"
)

type ComplaintRepository struct {
	DB *sql.DB
}

const complaintColumns = `id, complaint_code, student_id, assigned_to, title, description, category, status, priority, is_anonymous, attachments, resolution_note, resolution_date, created_at, updated_at`

// CreateComplaint inserts the record with status "new" and lets the
// generate_complaint_code() database function mint the human-readable code.
func (r *ComplaintRepository) CreateComplaint(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	query := `
		INSERT INTO complaints (complaint_code, student_id, title, description, category, status, priority, is_anonymous, created_at)
		VALUES (generate_complaint_code(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + complaintColumns
	row := r.DB.QueryRowContext(ctx, query, c.StudentID, c.Title, c.Description, c.Category, models.StatusNew, c.Priority, c.IsAnonymous, time.Now())
	return r.scanComplaint(row)
}

// GetComplaintsForStudent returns the student's own complaints, newest first.
func (r *ComplaintRepository) GetComplaintsForStudent(ctx context.Context, studentID int) ([]models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE student_id = $1 ORDER BY created_at DESC`
	return r.queryComplaints(ctx, query, studentID)
}

// GetComplaintsForAssignee returns complaints assigned to a staff member.
func (r *ComplaintRepository) GetComplaintsForAssignee(ctx context.Context, staffID int) ([]models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE assigned_to = $1 ORDER BY created_at DESC`
	return r.queryComplaints(ctx, query, staffID)
}

func (r *ComplaintRepository) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints ORDER BY created_at DESC`
	return r.queryComplaints(ctx, query)
}

func (r *ComplaintRepository) GetComplaintByID(ctx context.Context, id int) (models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`
	c, err := r.scanComplaint(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Complaint{}, models.ErrComplaintNotFound
	}
	return c, err
}

// UpdateStatus sets the new status and optional note. resolutionDate is
// non-nil exactly when the new status is resolved or closed.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int, status string, note *string, resolutionDate *time.Time) (models.Complaint, error) {
	query := `
		UPDATE complaints
		SET status = $1,
		    resolution_note = COALESCE($2, resolution_note),
		    resolution_date = COALESCE($3, resolution_date),
		    updated_at = $4
		WHERE id = $5
		RETURNING ` + complaintColumns
	c, err := r.scanComplaint(r.DB.QueryRowContext(ctx, query, status, note, resolutionDate, time.Now(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Complaint{}, models.ErrComplaintNotFound
	}
	return c, err
}

func (r *ComplaintRepository) AssignComplaint(ctx context.Context, id, staffID int) (models.Complaint, error) {
	query := `
		UPDATE complaints SET assigned_to = $1, updated_at = $2 WHERE id = $3
		RETURNING ` + complaintColumns
	c, err := r.scanComplaint(r.DB.QueryRowContext(ctx, query, staffID, time.Now(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Complaint{}, models.ErrComplaintNotFound
	}
	if isForeignKeyViolation(err) {
		return models.Complaint{}, models.ErrUserNotFound
	}
	return c, err
}

func (r *ComplaintRepository) AppendAttachment(ctx context.Context, id int, url string) error {
	query := `
		UPDATE complaints
		SET attachments = COALESCE(attachments, '[]'::jsonb) || to_jsonb($1::text), updated_at = $2
		WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, url, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrComplaintNotFound
	}
	return nil
}

func (r *ComplaintRepository) queryComplaints(ctx context.Context, query string, args ...interface{}) ([]models.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		c, err := r.scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

func (r *ComplaintRepository) scanComplaint(row rowScanner) (models.Complaint, error) {
	var c models.Complaint
	var attachments []byte
	err := row.Scan(&c.ID, &c.ComplaintCode, &c.StudentID, &c.AssignedTo, &c.Title, &c.Description,
		&c.Category, &c.Status, &c.Priority, &c.IsAnonymous, &attachments,
		&c.ResolutionNote, &c.ResolutionDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Complaint{}, err
	}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &c.Attachments); err != nil {
			return models.Complaint{}, err
		}
	}
	return c, nil
}
