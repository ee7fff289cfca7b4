package services

import (
	"testing"
	"time"

	"broconnect/internal/models"
)

func TestComputeStats(t *testing.T) {
	complaints := []models.Complaint{
		{Status: models.StatusNew},
		{Status: models.StatusNew},
		{Status: models.StatusInProgress},
		{Status: models.StatusUnderReview},
		{Status: models.StatusResolved},
		{Status: models.StatusClosed},
	}

	stats := ComputeStats(complaints)
	if stats.Total != 6 {
		t.Fatalf("expected total 6 got %d", stats.Total)
	}
	if stats.New != 2 {
		t.Fatalf("expected 2 new got %d", stats.New)
	}
	if stats.InProgress != 2 {
		t.Fatalf("expected under_review to count as in progress, got %d", stats.InProgress)
	}
	if stats.Resolved != 2 {
		t.Fatalf("expected closed to count as resolved, got %d", stats.Resolved)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats != (models.ComplaintStats{}) {
		t.Fatalf("expected zero stats got %+v", stats)
	}
}

func TestResolutionDateFor(t *testing.T) {
	now := time.Now()

	cases := []struct {
		status  string
		stamped bool
	}{
		{models.StatusNew, false},
		{models.StatusUnderReview, false},
		{models.StatusInProgress, false},
		{models.StatusResolved, true},
		{models.StatusClosed, true},
	}

	for _, tc := range cases {
		got := ResolutionDateFor(tc.status, now)
		if tc.stamped && (got == nil || !got.Equal(now)) {
			t.Fatalf("expected %s to stamp resolution date", tc.status)
		}
		if !tc.stamped && got != nil {
			t.Fatalf("expected no resolution date for %s", tc.status)
		}
	}
}
