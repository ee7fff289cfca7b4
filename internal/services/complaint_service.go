package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"broconnect/internal/models"
	"broconnect/internal/repositories"
	"broconnect/internal/validation"
)

// Uploader stores an attachment and returns its public URL.
type Uploader interface {
	Upload(file []byte, fileName, folder, contentType string) (string, error)
}

type ComplaintService struct {
	ComplaintRepo *repositories.ComplaintRepository
	UserRepo      *repositories.UserRepository
	Notifications *NotificationService
	Storage       Uploader
}

// CreateComplaint validates the submission and inserts it with status
// "new". The complaint code is minted server-side during the insert.
func (s *ComplaintService) CreateComplaint(ctx context.Context, studentID int, req models.CreateComplaintRequest) (models.Complaint, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := validation.Check(req); err != nil {
		return models.Complaint{}, err
	}

	complaint := models.Complaint{
		StudentID:   studentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		IsAnonymous: req.IsAnonymous,
	}
	return s.ComplaintRepo.CreateComplaint(ctx, complaint)
}

// GetComplaints applies the role filter: students see their own, staff see
// complaints assigned to them, admins see everything.
func (s *ComplaintService) GetComplaints(ctx context.Context, userID int, role string) ([]models.Complaint, error) {
	switch role {
	case models.RoleStudent:
		return s.ComplaintRepo.GetComplaintsForStudent(ctx, userID)
	case models.RoleStaff:
		return s.ComplaintRepo.GetComplaintsForAssignee(ctx, userID)
	default:
		return s.ComplaintRepo.GetAllComplaints(ctx)
	}
}

func (s *ComplaintService) GetStats(ctx context.Context, userID int, role string) (models.ComplaintStats, error) {
	complaints, err := s.GetComplaints(ctx, userID, role)
	if err != nil {
		return models.ComplaintStats{}, err
	}
	return ComputeStats(complaints), nil
}

// ComputeStats partitions a complaint set into the dashboard buckets:
// in_progress and under_review both count as "in progress", resolved and
// closed both as "resolved".
func ComputeStats(complaints []models.Complaint) models.ComplaintStats {
	stats := models.ComplaintStats{Total: len(complaints)}
	for _, c := range complaints {
		switch c.Status {
		case models.StatusNew:
			stats.New++
		case models.StatusInProgress, models.StatusUnderReview:
			stats.InProgress++
		case models.StatusResolved, models.StatusClosed:
			stats.Resolved++
		}
	}
	return stats
}

// GetComplaintByID returns the record with the submitter profile attached
// unless the complaint is anonymous. Students may only read their own.
func (s *ComplaintService) GetComplaintByID(ctx context.Context, id, userID int, role string) (models.Complaint, error) {
	complaint, err := s.ComplaintRepo.GetComplaintByID(ctx, id)
	if err != nil {
		return models.Complaint{}, err
	}
	if role == models.RoleStudent && complaint.StudentID != userID {
		return models.Complaint{}, models.ErrForbidden
	}

	if !complaint.IsAnonymous {
		student, err := s.UserRepo.GetUserByID(ctx, complaint.StudentID)
		if err == nil {
			complaint.Student = &student
		}
	}
	return complaint, nil
}

// UpdateStatus sets a new status. Any status may follow any other; there
// is no transition table. resolution_date is stamped exactly when the new
// status is resolved or closed. Staff and admins only.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int, role string, req models.UpdateComplaintStatusRequest) (models.Complaint, error) {
	if role != models.RoleStaff && role != models.RoleAdmin {
		return models.Complaint{}, models.ErrForbidden
	}
	req.ResolutionNote = strings.TrimSpace(req.ResolutionNote)
	if err := validation.Check(req); err != nil {
		return models.Complaint{}, err
	}

	var note *string
	if req.ResolutionNote != "" {
		note = &req.ResolutionNote
	}
	resolutionDate := ResolutionDateFor(req.Status, time.Now())

	complaint, err := s.ComplaintRepo.UpdateStatus(ctx, id, req.Status, note, resolutionDate)
	if err != nil {
		return models.Complaint{}, err
	}

	if s.Notifications != nil {
		s.Notifications.Notify(ctx, models.Notification{
			UserID:  complaint.StudentID,
			Type:    models.NotificationComplaintStatus,
			Title:   "Complaint updated",
			Message: fmt.Sprintf("Complaint %s is now %s", complaint.ComplaintCode, complaint.Status),
		})
	}
	return complaint, nil
}

// ResolutionDateFor returns the timestamp to stamp for a status change,
// nil unless the new status is resolved or closed.
func ResolutionDateFor(status string, now time.Time) *time.Time {
	if status == models.StatusResolved || status == models.StatusClosed {
		return &now
	}
	return nil
}

// AssignComplaint hands a complaint to a staff member. Admins only.
func (s *ComplaintService) AssignComplaint(ctx context.Context, id, staffID int, role string) (models.Complaint, error) {
	if role != models.RoleAdmin {
		return models.Complaint{}, models.ErrForbidden
	}
	complaint, err := s.ComplaintRepo.AssignComplaint(ctx, id, staffID)
	if err != nil {
		return models.Complaint{}, err
	}

	if s.Notifications != nil {
		s.Notifications.Notify(ctx, models.Notification{
			UserID:  staffID,
			Type:    models.NotificationComplaintAssigned,
			Title:   "Complaint assigned",
			Message: fmt.Sprintf("Complaint %s has been assigned to you", complaint.ComplaintCode),
		})
	}
	return complaint, nil
}

// AddAttachment uploads the file and appends its URL to the complaint.
// The submitter, staff and admins may attach.
func (s *ComplaintService) AddAttachment(ctx context.Context, id, userID int, role string, file []byte, fileName, contentType string) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("attachment storage is not configured")
	}
	complaint, err := s.ComplaintRepo.GetComplaintByID(ctx, id)
	if err != nil {
		return "", err
	}
	if role == models.RoleStudent && complaint.StudentID != userID {
		return "", models.ErrForbidden
	}

	url, err := s.Storage.Upload(file, fileName, "complaints", contentType)
	if err != nil {
		return "", err
	}
	if err := s.ComplaintRepo.AppendAttachment(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
