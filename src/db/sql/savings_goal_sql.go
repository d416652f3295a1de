package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateSavingsGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	query := `
		INSERT INTO savings_goals (user_id, name, target_amount, current_amount, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, target_amount, current_amount, target_date, created_at, updated_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func GetSavingsGoalByID(ctx context.Context, pool *pgxpool.Pool, goalID int) (*models.SavingsGoal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, created_at, updated_at
		FROM savings_goals WHERE id = $1
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, goalID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func GetAllSavingsGoalsForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.SavingsGoal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, created_at, updated_at
		FROM savings_goals WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func UpdateSavingsGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	query := `
		UPDATE savings_goals
		SET name = $1, target_amount = $2, current_amount = $3, target_date = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, target_amount, current_amount, target_date, created_at, updated_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate, goal.ID, goal.UserID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// AddFundsToSavingsGoal increments current_amount in a single statement so
// concurrent deposits cannot lose an update.
func AddFundsToSavingsGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID int, amount float64) (*models.SavingsGoal, error) {
	query := `
		UPDATE savings_goals
		SET current_amount = current_amount + $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, target_amount, current_amount, target_date, created_at, updated_at
	`
	var g models.SavingsGoal
	err := pool.QueryRow(ctx, query, amount, goalID, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func DeleteSavingsGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID int) error {
	query := `DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("savings goal not found")
	}
	return nil
}
