package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"broconnect/internal/models"
)

// fakePollStore returns one canned poll and records votes.
type fakePollStore struct {
	poll  models.Poll
	votes []models.PollVote
}

func (f *fakePollStore) CreatePoll(_ context.Context, poll models.Poll) (models.Poll, error) {
	return poll, nil
}

func (f *fakePollStore) GetActivePolls(_ context.Context) ([]models.Poll, error) {
	return []models.Poll{f.poll}, nil
}

func (f *fakePollStore) GetPollByID(_ context.Context, id int) (models.Poll, error) {
	if id != f.poll.ID {
		return models.Poll{}, models.ErrPollNotFound
	}
	return f.poll, nil
}

func (f *fakePollStore) CreateVote(_ context.Context, vote models.PollVote) error {
	f.votes = append(f.votes, vote)
	return nil
}

func (f *fakePollStore) GetVotesForActivePolls(_ context.Context) ([]models.PollVote, error) {
	return f.votes, nil
}

func (f *fakePollStore) DeactivatePoll(_ context.Context, _ int) error { return nil }

func TestBuildPollResult(t *testing.T) {
	poll := models.Poll{ID: 1, Options: []string{"morning", "evening", "weekend"}}
	votes := []models.PollVote{
		{PollID: 1, UserID: 10, SelectedOption: 0},
		{PollID: 1, UserID: 11, SelectedOption: 0},
		{PollID: 1, UserID: 12, SelectedOption: 1},
	}

	result := BuildPollResult(poll, votes, 12, time.Now())
	if result.TotalVotes != 3 {
		t.Fatalf("expected 3 votes got %d", result.TotalVotes)
	}
	if result.OptionTally[0].Votes != 2 || result.OptionTally[0].Percentage != 67 {
		t.Fatalf("expected option 0 at 2 votes / 67%% got %+v", result.OptionTally[0])
	}
	if result.OptionTally[1].Percentage != 33 {
		t.Fatalf("expected option 1 at 33%% got %d", result.OptionTally[1].Percentage)
	}
	if result.OptionTally[2].Votes != 0 || result.OptionTally[2].Percentage != 0 {
		t.Fatalf("expected option 2 empty got %+v", result.OptionTally[2])
	}
	if result.UserVote == nil || *result.UserVote != 1 {
		t.Fatalf("expected caller's vote to be option 1 got %v", result.UserVote)
	}
	if result.Expired {
		t.Fatal("poll without expiry must not be expired")
	}
}

func TestBuildPollResultHalfSplit(t *testing.T) {
	poll := models.Poll{ID: 1, Options: []string{"yes", "no"}}
	votes := []models.PollVote{
		{PollID: 1, UserID: 10, SelectedOption: 0},
		{PollID: 1, UserID: 11, SelectedOption: 1},
	}

	result := BuildPollResult(poll, votes, 99, time.Now())
	if result.OptionTally[0].Percentage != 50 || result.OptionTally[1].Percentage != 50 {
		t.Fatalf("expected 50/50 split got %+v", result.OptionTally)
	}
	if result.UserVote != nil {
		t.Fatal("expected no vote for non-voter")
	}
}

func TestBuildPollResultNoVotes(t *testing.T) {
	poll := models.Poll{ID: 1, Options: []string{"a", "b"}}

	result := BuildPollResult(poll, nil, 10, time.Now())
	if result.TotalVotes != 0 {
		t.Fatalf("expected 0 votes got %d", result.TotalVotes)
	}
	for _, opt := range result.OptionTally {
		if opt.Percentage != 0 {
			t.Fatalf("expected 0%% with no votes got %d", opt.Percentage)
		}
	}
}

func TestVoteRejectsClosedPolls(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name string
		poll models.Poll
	}{
		{"deactivated", models.Poll{ID: 1, Options: []string{"a", "b"}, IsActive: false}},
		{"expired", models.Poll{ID: 1, Options: []string{"a", "b"}, IsActive: true, ExpiresAt: &past}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakePollStore{poll: tc.poll}
			svc := &PollService{PollRepo: store}

			err := svc.Vote(context.Background(), 1, 10, models.VoteRequest{SelectedOption: 0})
			if !errors.Is(err, models.ErrPollClosed) {
				t.Fatalf("expected ErrPollClosed got %v", err)
			}
			if len(store.votes) != 0 {
				t.Fatal("no vote must be recorded for a closed poll")
			}
		})
	}
}

func TestVoteOnOpenPoll(t *testing.T) {
	store := &fakePollStore{poll: models.Poll{ID: 1, Options: []string{"a", "b"}, IsActive: true}}
	svc := &PollService{PollRepo: store}

	if err := svc.Vote(context.Background(), 1, 10, models.VoteRequest{SelectedOption: 1}); err != nil {
		t.Fatalf("expected vote to succeed, got %v", err)
	}
	if len(store.votes) != 1 || store.votes[0].SelectedOption != 1 {
		t.Fatalf("expected recorded vote for option 1, got %+v", store.votes)
	}

	err := svc.Vote(context.Background(), 1, 10, models.VoteRequest{SelectedOption: 2})
	if !errors.Is(err, models.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption got %v", err)
	}

	err = svc.Vote(context.Background(), 99, 10, models.VoteRequest{SelectedOption: 0})
	if !errors.Is(err, models.ErrPollNotFound) {
		t.Fatalf("expected ErrPollNotFound got %v", err)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if !IsExpired(models.Poll{ExpiresAt: &past}, now) {
		t.Fatal("expected past expiry to be expired")
	}
	if IsExpired(models.Poll{ExpiresAt: &future}, now) {
		t.Fatal("unexpected expiry for future timestamp")
	}
	if IsExpired(models.Poll{}, now) {
		t.Fatal("poll without expiry must never expire")
	}
}
