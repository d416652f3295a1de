package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Category string  `json:"category"`
			Amount   float64 `json:"amount"`
			Month    int     `json:"month"`
			Year     int     `json:"year"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Category == "" {
			http.Error(w, "category is required", http.StatusBadRequest)
			return
		}
		if req.Month < 1 || req.Month > 12 {
			http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
			return
		}

		// One budget per (user, category, month, year)
		_, err := db.GetBudgetByKey(r.Context(), pool, int(userID), req.Category, req.Month, req.Year)
		if err == nil {
			log.Printf("ERROR: Duplicate budget for user %d, category %s, %d/%d", userID, req.Category, req.Month, req.Year)
			http.Error(w, "budget for this category already exists for the selected month", http.StatusConflict)
			return
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("ERROR: Failed to check existing budget for user %d: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}

		budget := &models.Budget{
			UserID:   int(userID),
			Category: req.Category,
			Amount:   req.Amount,
			Month:    req.Month,
			Year:     req.Year,
		}
		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %d: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created budget id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudgetsForMonth(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		month, year, ok := monthYearParams(w, r)
		if !ok {
			return
		}
		budgets, err := db.GetBudgetsForMonth(r.Context(), pool, int(userID), month, year)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %d: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.Atoi(budgetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}
		var req struct {
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		existing, err := db.GetBudgetByID(r.Context(), pool, budgetID)
		if err != nil {
			log.Printf("ERROR: Budget id %d not found for update by user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized budget update attempt - User: %d, Budget: %d, Owner: %d", userID, budgetID, existing.UserID)
			http.Error(w, "unauthorized access to budget", http.StatusForbidden)
			return
		}

		updated, err := db.UpdateBudgetAmount(r.Context(), pool, int(userID), budgetID, req.Amount)
		if err != nil {
			log.Printf("ERROR: Failed to update budget id %d for user %d: %v", budgetID, userID, err)
			http.Error(w, "failed to update budget", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated budget id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.Atoi(budgetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}

		existing, err := db.GetBudgetByID(r.Context(), pool, budgetID)
		if err != nil {
			log.Printf("ERROR: Budget id %d not found for delete by user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized budget delete attempt - User: %d, Budget: %d, Owner: %d", userID, budgetID, existing.UserID)
			http.Error(w, "unauthorized access to budget", http.StatusForbidden)
			return
		}

		if err := db.DeleteBudget(r.Context(), pool, int(userID), budgetID); err != nil {
			log.Printf("ERROR: Failed to delete budget id %d for user %d: %v", budgetID, userID, err)
			http.Error(w, "failed to delete budget", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted budget id %d for user %d", budgetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "budget deleted"})
	}
}

func GetBudgetProgress(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		month, year, ok := monthYearParams(w, r)
		if !ok {
			return
		}

		budgets, err := db.GetBudgetsForMonth(r.Context(), pool, int(userID), month, year)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %d: %v", userID, err)
			http.Error(w, "failed to get budget progress", http.StatusInternalServerError)
			return
		}

		start, end := monthRange(year, month)
		transactions, err := db.GetTransactionsInRange(r.Context(), pool, int(userID), start, end)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get budget progress", http.StatusInternalServerError)
			return
		}

		progress := computeBudgetProgress(budgets, transactions)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(progress)
	}
}

// computeBudgetProgress sums each budget's expenses (category matched
// case-insensitively) and derives remaining amount and percentage spent.
// Remaining goes negative on overspend; a zero budget reports 0 percent.
func computeBudgetProgress(budgets []models.Budget, transactions []models.Transaction) []models.BudgetProgress {
	progress := make([]models.BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		var spent float64
		for _, t := range transactions {
			if t.Type != models.TransactionTypeExpense {
				continue
			}
			if !strings.EqualFold(t.Category, budget.Category) {
				continue
			}
			spent += t.Amount
		}

		percentage := 0.0
		if budget.Amount > 0 {
			percentage = spent / budget.Amount * 100
		}

		progress = append(progress, models.BudgetProgress{
			Category:     budget.Category,
			BudgetAmount: budget.Amount,
			Spent:        spent,
			Remaining:    budget.Amount - spent,
			Percentage:   percentage,
		})
	}
	return progress
}

// monthRange is [first instant of the month, first instant of the next).
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func monthYearParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "month query parameter must be between 1 and 12", http.StatusBadRequest)
		return 0, 0, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year query parameter is required", http.StatusBadRequest)
		return 0, 0, false
	}
	return month, year, true
}
