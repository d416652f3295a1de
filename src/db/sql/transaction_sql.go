package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, category, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, type, amount, category, description, transaction_date, created_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txn.UserID, txn.Type, txn.Amount, txn.Category, txn.Description, txn.TransactionDate).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.TransactionDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, transactionID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, description, transaction_date, created_at
		FROM transactions WHERE id = $1
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, transactionID).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.TransactionDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func GetAllTransactionsForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, description, transaction_date, created_at
		FROM transactions WHERE user_id = $1
		ORDER BY transaction_date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.TransactionDate, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionsInRange returns the user's transactions with a transaction
// date in [start, end).
func GetTransactionsInRange(ctx context.Context, pool *pgxpool.Pool, userID int, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, description, transaction_date, created_at
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date < $3
		ORDER BY transaction_date
	`
	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.TransactionDate, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET type = $1, amount = $2, category = $3, description = $4, transaction_date = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, type, amount, category, description, transaction_date, created_at
	`
	var t models.Transaction
	err := pool.QueryRow(ctx, query, txn.Type, txn.Amount, txn.Category, txn.Description, txn.TransactionDate, txn.ID, txn.UserID).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Description, &t.TransactionDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID int) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}
