package models

import "time"

// Complaint statuses. There is no enforced transition graph: staff and
// admins may set any status after any other.
const (
	StatusNew         = "new"
	StatusUnderReview = "under_review"
	StatusInProgress  = "in_progress"
	StatusResolved    = "resolved"
	StatusClosed      = "closed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var ComplaintCategories = []string{"mentor", "hr", "facility", "payment", "technical", "other"}

type Complaint struct {
	ID             int        `json:"id"`
	ComplaintCode  string     `json:"complaint_code"`
	StudentID      int        `json:"student_id"`
	AssignedTo     *int       `json:"assigned_to,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	IsAnonymous    bool       `json:"is_anonymous"`
	Attachments    []string   `json:"attachments,omitempty"`
	ResolutionNote *string    `json:"resolution_note,omitempty"`
	ResolutionDate *time.Time `json:"resolution_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`

	// Submitter profile, attached on detail reads when the complaint is
	// not anonymous.
	Student *User `json:"student,omitempty"`
}

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=5,max=200"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
	Category    string `json:"category" validate:"required,oneof=mentor hr facility payment technical other"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	IsAnonymous bool   `json:"is_anonymous"`
}

type UpdateComplaintStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=new under_review in_progress resolved closed"`
	ResolutionNote string `json:"resolution_note" validate:"omitempty,max=5000"`
}

type ComplaintStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}
