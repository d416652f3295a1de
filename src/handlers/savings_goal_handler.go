package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type savingsGoalRequest struct {
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount *float64   `json:"current_amount"`
	TargetDate    *time.Time `json:"target_date"`
}

func CreateSavingsGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req savingsGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create savings goal request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		// Current amount defaults to 0 when the client leaves it out
		currentAmount := 0.0
		if req.CurrentAmount != nil {
			currentAmount = *req.CurrentAmount
		}

		goal := &models.SavingsGoal{
			UserID:        int(userID),
			Name:          req.Name,
			TargetAmount:  req.TargetAmount,
			CurrentAmount: currentAmount,
			TargetDate:    req.TargetDate,
		}
		created, err := db.CreateSavingsGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to create savings goal for user %d: %v", userID, err)
			http.Error(w, "failed to create savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created savings goal id %d for user %d, name %s", created.ID, userID, created.Name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllSavingsGoalsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goals, err := db.GetAllSavingsGoalsForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get savings goals for user %d: %v", userID, err)
			http.Error(w, "failed to get savings goals", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goals)
	}
}

func GetSavingsGoalProgress(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goals, err := db.GetAllSavingsGoalsForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get savings goals for user %d: %v", userID, err)
			http.Error(w, "failed to get savings goal progress", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		progress := make([]models.SavingsGoalProgress, 0, len(goals))
		for _, goal := range goals {
			progress = append(progress, computeSavingsGoalProgress(goal, now))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(progress)
	}
}

func UpdateSavingsGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goalIDStr := chi.URLParam(r, "goal_id")
		goalID, err := strconv.Atoi(goalIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid goal id param: %s", goalIDStr)
			http.Error(w, "invalid goal id", http.StatusBadRequest)
			return
		}
		var req savingsGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update savings goal request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		existing, err := db.GetSavingsGoalByID(r.Context(), pool, goalID)
		if err != nil {
			log.Printf("ERROR: Savings goal id %d not found for update by user %d: %v", goalID, userID, err)
			http.Error(w, "savings goal not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized savings goal update attempt - User: %d, Goal: %d, Owner: %d", userID, goalID, existing.UserID)
			http.Error(w, "unauthorized access to savings goal", http.StatusForbidden)
			return
		}

		// Current amount only changes when the client supplied one
		currentAmount := existing.CurrentAmount
		if req.CurrentAmount != nil {
			currentAmount = *req.CurrentAmount
		}

		goal := &models.SavingsGoal{
			ID:            goalID,
			UserID:        int(userID),
			Name:          req.Name,
			TargetAmount:  req.TargetAmount,
			CurrentAmount: currentAmount,
			TargetDate:    req.TargetDate,
		}
		updated, err := db.UpdateSavingsGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to update savings goal id %d for user %d: %v", goalID, userID, err)
			http.Error(w, "failed to update savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated savings goal id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func AddFundsToSavingsGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goalIDStr := chi.URLParam(r, "goal_id")
		goalID, err := strconv.Atoi(goalIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid goal id param: %s", goalIDStr)
			http.Error(w, "invalid goal id", http.StatusBadRequest)
			return
		}
		var req struct {
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add funds request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			log.Printf("ERROR: Non-positive add funds amount %f for user %d, goal %d", req.Amount, userID, goalID)
			http.Error(w, "amount must be greater than zero", http.StatusBadRequest)
			return
		}

		existing, err := db.GetSavingsGoalByID(r.Context(), pool, goalID)
		if err != nil {
			log.Printf("ERROR: Savings goal id %d not found for add funds by user %d: %v", goalID, userID, err)
			http.Error(w, "savings goal not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized add funds attempt - User: %d, Goal: %d, Owner: %d", userID, goalID, existing.UserID)
			http.Error(w, "unauthorized access to savings goal", http.StatusForbidden)
			return
		}

		updated, err := db.AddFundsToSavingsGoal(r.Context(), pool, int(userID), goalID, req.Amount)
		if err != nil {
			log.Printf("ERROR: Failed to add funds to savings goal id %d for user %d: %v", goalID, userID, err)
			http.Error(w, "failed to add funds to savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Added %.2f to savings goal id %d for user %d", req.Amount, goalID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteSavingsGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goalIDStr := chi.URLParam(r, "goal_id")
		goalID, err := strconv.Atoi(goalIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid goal id param: %s", goalIDStr)
			http.Error(w, "invalid goal id", http.StatusBadRequest)
			return
		}

		existing, err := db.GetSavingsGoalByID(r.Context(), pool, goalID)
		if err != nil {
			log.Printf("ERROR: Savings goal id %d not found for delete by user %d: %v", goalID, userID, err)
			http.Error(w, "savings goal not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized savings goal delete attempt - User: %d, Goal: %d, Owner: %d", userID, goalID, existing.UserID)
			http.Error(w, "unauthorized access to savings goal", http.StatusForbidden)
			return
		}

		if err := db.DeleteSavingsGoal(r.Context(), pool, int(userID), goalID); err != nil {
			log.Printf("ERROR: Failed to delete savings goal id %d for user %d: %v", goalID, userID, err)
			http.Error(w, "failed to delete savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted savings goal id %d for user %d", goalID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "savings goal deleted"})
	}
}

// computeSavingsGoalProgress derives percentage saved and pacing from one
// goal. A goal with no target date is always on track, as is one whose target
// date is on or before its creation date.
func computeSavingsGoalProgress(goal models.SavingsGoal, now time.Time) models.SavingsGoalProgress {
	progressPercentage := 0.0
	if goal.TargetAmount > 0 {
		progressPercentage = goal.CurrentAmount / goal.TargetAmount * 100
	}

	var daysRemaining *int
	onTrack := true
	if goal.TargetDate != nil {
		remaining := daysBetween(now, *goal.TargetDate)
		daysRemaining = &remaining

		totalDays := daysBetween(goal.CreatedAt, *goal.TargetDate)
		if totalDays > 0 {
			daysPassed := daysBetween(goal.CreatedAt, now)
			expectedProgress := float64(daysPassed) / float64(totalDays) * 100
			onTrack = progressPercentage >= expectedProgress
		}
	}

	return models.SavingsGoalProgress{
		ID:                 goal.ID,
		Name:               goal.Name,
		TargetAmount:       goal.TargetAmount,
		CurrentAmount:      goal.CurrentAmount,
		TargetDate:         goal.TargetDate,
		UserID:             goal.UserID,
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
		ProgressPercentage: progressPercentage,
		DaysRemaining:      daysRemaining,
		OnTrack:            onTrack,
	}
}

// daysBetween counts whole calendar days from a to b, negative when b is
// before a.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}
