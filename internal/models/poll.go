package models

import "time"

type Poll struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Options     []string   `json:"options"`
	CreatedBy   int        `json:"created_by"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PollVote struct {
	ID             int       `json:"id"`
	PollID         int       `json:"poll_id"`
	UserID         int       `json:"user_id"`
	SelectedOption int       `json:"selected_option"`
	CreatedAt      time.Time `json:"created_at"`
}

// PollResult is a poll joined with its tally and the caller's own vote.
type PollResult struct {
	Poll
	TotalVotes  int                `json:"total_votes"`
	OptionTally []PollOptionResult `json:"results"`
	UserVote    *int               `json:"user_vote,omitempty"`
	Expired     bool               `json:"expired"`
}

type PollOptionResult struct {
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type CreatePollRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Options     []string   `json:"options" validate:"required,min=2,dive,required,max=200"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type VoteRequest struct {
	SelectedOption int `json:"selected_option" validate:"gte=0"`
}
