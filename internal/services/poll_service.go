package services

import (
	"context"
	"math"
	"strings"
	"time"

	"broconnect/internal/models"
	"broconnect/internal/validation"
)

// PollStore is the persistence surface the poll service needs.
type PollStore interface {
	CreatePoll(ctx context.Context, poll models.Poll) (models.Poll, error)
	GetActivePolls(ctx context.Context) ([]models.Poll, error)
	GetPollByID(ctx context.Context, id int) (models.Poll, error)
	CreateVote(ctx context.Context, vote models.PollVote) error
	GetVotesForActivePolls(ctx context.Context) ([]models.PollVote, error)
	DeactivatePoll(ctx context.Context, id int) error
}

type PollService struct {
	PollRepo PollStore
}

// CreatePoll is admin-only. Blank options are dropped before the
// two-option minimum is checked.
func (s *PollService) CreatePoll(ctx context.Context, userID int, role string, req models.CreatePollRequest) (models.Poll, error) {
	if role != models.RoleAdmin {
		return models.Poll{}, models.ErrForbidden
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	req.Options = options
	if err := validation.Check(req); err != nil {
		return models.Poll{}, err
	}

	poll := models.Poll{
		Title:     req.Title,
		Options:   req.Options,
		CreatedBy: userID,
		ExpiresAt: req.ExpiresAt,
	}
	if req.Description != "" {
		poll.Description = &req.Description
	}
	return s.PollRepo.CreatePoll(ctx, poll)
}

// GetPolls returns all active polls with their tallies and the caller's
// own vote, newest first.
func (s *PollService) GetPolls(ctx context.Context, userID int) ([]models.PollResult, error) {
	polls, err := s.PollRepo.GetActivePolls(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := s.PollRepo.GetVotesForActivePolls(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.PollResult, 0, len(polls))
	now := time.Now()
	for _, poll := range polls {
		pollVotes := make([]models.PollVote, 0)
		for _, v := range votes {
			if v.PollID == poll.ID {
				pollVotes = append(pollVotes, v)
			}
		}
		results = append(results, BuildPollResult(poll, pollVotes, userID, now))
	}
	return results, nil
}

// BuildPollResult tallies the votes for one poll. Percentage per option is
// round(votes/total*100), 0 when there are no votes; the rounded values
// may legitimately not sum to 100.
func BuildPollResult(poll models.Poll, votes []models.PollVote, userID int, now time.Time) models.PollResult {
	result := models.PollResult{
		Poll:       poll,
		TotalVotes: len(votes),
		Expired:    IsExpired(poll, now),
	}

	counts := make([]int, len(poll.Options))
	for _, v := range votes {
		if v.SelectedOption >= 0 && v.SelectedOption < len(counts) {
			counts[v.SelectedOption]++
		}
		if v.UserID == userID {
			selected := v.SelectedOption
			result.UserVote = &selected
		}
	}

	result.OptionTally = make([]models.PollOptionResult, len(poll.Options))
	for i, text := range poll.Options {
		percentage := 0
		if result.TotalVotes > 0 {
			percentage = int(math.Round(float64(counts[i]) / float64(result.TotalVotes) * 100))
		}
		result.OptionTally[i] = models.PollOptionResult{Text: text, Votes: counts[i], Percentage: percentage}
	}
	return result
}

// IsExpired reports whether the poll's expiry timestamp has passed.
// Expired polls render as read-only tallies regardless of vote state.
func IsExpired(poll models.Poll, now time.Time) bool {
	return poll.ExpiresAt != nil && poll.ExpiresAt.Before(now)
}

// Vote records the caller's selected option. Uniqueness per (poll, user)
// is enforced by the store's constraint; expired and deactivated polls
// reject votes.
func (s *PollService) Vote(ctx context.Context, pollID, userID int, req models.VoteRequest) error {
	if err := validation.Check(req); err != nil {
		return err
	}

	poll, err := s.PollRepo.GetPollByID(ctx, pollID)
	if err != nil {
		return err
	}
	if !poll.IsActive || IsExpired(poll, time.Now()) {
		return models.ErrPollClosed
	}
	if req.SelectedOption >= len(poll.Options) {
		return models.ErrInvalidOption
	}

	vote := models.PollVote{PollID: pollID, UserID: userID, SelectedOption: req.SelectedOption}
	return s.PollRepo.CreateVote(ctx, vote)
}

// DeactivatePoll hides a poll from the active list. Admins only.
func (s *PollService) DeactivatePoll(ctx context.Context, pollID int, role string) error {
	if role != models.RoleAdmin {
		return models.ErrForbidden
	}
	return s.PollRepo.DeactivatePoll(ctx, pollID)
}
