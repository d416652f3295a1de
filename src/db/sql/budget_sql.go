package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category, amount, month, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category, amount, month, year, created_at, updated_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.UserID, budget.Category, budget.Amount, budget.Month, budget.Year).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, budgetID int) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, month, year, created_at, updated_at
		FROM budgets WHERE id = $1
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budgetID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBudgetByKey looks up the one budget allowed per
// (user, category, month, year). Returns pgx.ErrNoRows when absent.
func GetBudgetByKey(ctx context.Context, pool *pgxpool.Pool, userID int, category string, month, year int) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, month, year, created_at, updated_at
		FROM budgets WHERE user_id = $1 AND category = $2 AND month = $3 AND year = $4
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, userID, category, month, year).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func GetBudgetsForMonth(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, month, year, created_at, updated_at
		FROM budgets WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// UpdateBudgetAmount replaces the cap only; category, month and year are
// immutable after creation.
func UpdateBudgetAmount(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int, amount float64) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET amount = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, category, amount, month, year, created_at, updated_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, amount, budgetID, userID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}
