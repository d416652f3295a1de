package handlers

import (
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestComputeSavingsGoalProgressPercentage(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	goal := models.SavingsGoal{TargetAmount: 1000, CurrentAmount: 250}

	progress := computeSavingsGoalProgress(goal, now)

	if progress.ProgressPercentage != 25.0 {
		t.Errorf("expected 25.0 percent, got %.2f", progress.ProgressPercentage)
	}
	if progress.DaysRemaining != nil {
		t.Errorf("expected no days remaining without a target date, got %d", *progress.DaysRemaining)
	}
	if !progress.OnTrack {
		t.Error("expected goal without target date to be on track")
	}
}

func TestComputeSavingsGoalProgressZeroTarget(t *testing.T) {
	progress := computeSavingsGoalProgress(models.SavingsGoal{TargetAmount: 0, CurrentAmount: 50}, time.Now())

	if progress.ProgressPercentage != 0 {
		t.Errorf("expected 0 percent for zero target, got %.2f", progress.ProgressPercentage)
	}
}

func TestComputeSavingsGoalProgressDaysRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)
	target := time.Date(2024, time.June, 25, 1, 0, 0, 0, time.UTC)
	goal := models.SavingsGoal{
		TargetAmount:  1000,
		CurrentAmount: 500,
		TargetDate:    &target,
		CreatedAt:     time.Date(2024, time.June, 5, 8, 0, 0, 0, time.UTC),
	}

	progress := computeSavingsGoalProgress(goal, now)

	if progress.DaysRemaining == nil || *progress.DaysRemaining != 10 {
		t.Fatalf("expected 10 days remaining, got %v", progress.DaysRemaining)
	}
	// 10 of 20 days passed, 50% saved: exactly on pace
	if !progress.OnTrack {
		t.Error("expected goal matching expected progress to be on track")
	}
}

func TestComputeSavingsGoalProgressBehindPace(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC)
	goal := models.SavingsGoal{
		TargetAmount:  1000,
		CurrentAmount: 100,
		TargetDate:    &target,
		CreatedAt:     time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
	}

	progress := computeSavingsGoalProgress(goal, now)

	if progress.OnTrack {
		t.Error("expected goal at 10% with 50% of time gone to be off track")
	}
}

func TestComputeSavingsGoalProgressOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	goal := models.SavingsGoal{
		TargetAmount:  1000,
		CurrentAmount: 200,
		TargetDate:    &target,
		CreatedAt:     time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}

	progress := computeSavingsGoalProgress(goal, now)

	if progress.DaysRemaining == nil || *progress.DaysRemaining != -5 {
		t.Fatalf("expected -5 days remaining for overdue goal, got %v", progress.DaysRemaining)
	}
	if progress.OnTrack {
		t.Error("expected overdue underfunded goal to be off track")
	}
}

func TestComputeSavingsGoalProgressTargetBeforeCreation(t *testing.T) {
	// Target date on/before creation leaves the goal on track
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	target := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	goal := models.SavingsGoal{
		TargetAmount:  1000,
		CurrentAmount: 0,
		TargetDate:    &target,
		CreatedAt:     time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}

	progress := computeSavingsGoalProgress(goal, now)

	if !progress.OnTrack {
		t.Error("expected goal with target date at creation to stay on track")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day different times",
			a:    time.Date(2024, time.June, 15, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.June, 15, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "forward",
			a:    time.Date(2024, time.June, 15, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.June, 18, 1, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "backward",
			a:    time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			want: -5,
		},
		{
			name: "across month boundary",
			a:    time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("daysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
