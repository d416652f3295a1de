package models

import "time"

type SavingsGoal struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	TargetDate    *time.Time `json:"target_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SavingsGoalProgress is a goal plus its computed pacing fields.
// DaysRemaining is nil when the goal has no target date.
type SavingsGoalProgress struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	TargetAmount       float64    `json:"target_amount"`
	CurrentAmount      float64    `json:"current_amount"`
	TargetDate         *time.Time `json:"target_date"`
	UserID             int        `json:"user_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ProgressPercentage float64    `json:"progress_percentage"`
	DaysRemaining      *int       `json:"days_remaining"`
	OnTrack            bool       `json:"on_track"`
}
