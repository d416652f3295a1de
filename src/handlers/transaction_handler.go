package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRequest struct {
	Type            string     `json:"type"`
	Amount          float64    `json:"amount"`
	Category        string     `json:"category"`
	Description     *string    `json:"description"`
	TransactionDate *time.Time `json:"transaction_date"`
}

func (req *transactionRequest) validate() string {
	if req.Type != models.TransactionTypeIncome && req.Type != models.TransactionTypeExpense {
		return "type must be INCOME or EXPENSE"
	}
	if req.Amount < 0 {
		return "amount must not be negative"
	}
	if req.Category == "" {
		return "category is required"
	}
	return ""
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			log.Printf("ERROR: Invalid create transaction request for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		// Transaction date defaults to now when the client leaves it out
		date := time.Now()
		if req.TransactionDate != nil {
			date = *req.TransactionDate
		}

		txn := &models.Transaction{
			UserID:          int(userID),
			Type:            req.Type,
			Amount:          req.Amount,
			Category:        req.Category,
			Description:     req.Description,
			TransactionDate: date,
		}
		created, err := db.CreateTransaction(r.Context(), pool, txn)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}
		cache.ClearAnalyticsCachesForUser(int(userID))
		log.Printf("INFO: Created transaction id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllTransactionsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactions, err := db.GetAllTransactionsForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactionIDStr := chi.URLParam(r, "transaction_id")
		transactionID, err := strconv.Atoi(transactionIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", transactionIDStr)
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			log.Printf("ERROR: Invalid update transaction request for user %d: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		existing, err := db.GetTransactionByID(r.Context(), pool, transactionID)
		if err != nil {
			log.Printf("ERROR: Transaction id %d not found for update by user %d: %v", transactionID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized transaction update attempt - User: %d, Transaction: %d, Owner: %d", userID, transactionID, existing.UserID)
			http.Error(w, "unauthorized access to transaction", http.StatusForbidden)
			return
		}

		date := existing.TransactionDate
		if req.TransactionDate != nil {
			date = *req.TransactionDate
		}

		txn := &models.Transaction{
			ID:              transactionID,
			UserID:          int(userID),
			Type:            req.Type,
			Amount:          req.Amount,
			Category:        req.Category,
			Description:     req.Description,
			TransactionDate: date,
		}
		updated, err := db.UpdateTransaction(r.Context(), pool, txn)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction id %d for user %d: %v", transactionID, userID, err)
			http.Error(w, "failed to update transaction", http.StatusInternalServerError)
			return
		}
		cache.ClearAnalyticsCachesForUser(int(userID))
		log.Printf("INFO: Updated transaction id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactionIDStr := chi.URLParam(r, "transaction_id")
		transactionID, err := strconv.Atoi(transactionIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", transactionIDStr)
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}

		existing, err := db.GetTransactionByID(r.Context(), pool, transactionID)
		if err != nil {
			log.Printf("ERROR: Transaction id %d not found for delete by user %d: %v", transactionID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}
		if existing.UserID != int(userID) {
			log.Printf("ERROR: Unauthorized transaction delete attempt - User: %d, Transaction: %d, Owner: %d", userID, transactionID, existing.UserID)
			http.Error(w, "unauthorized access to transaction", http.StatusForbidden)
			return
		}

		if err := db.DeleteTransaction(r.Context(), pool, int(userID), transactionID); err != nil {
			log.Printf("ERROR: Failed to delete transaction id %d for user %d: %v", transactionID, userID, err)
			http.Error(w, "failed to delete transaction", http.StatusInternalServerError)
			return
		}
		cache.ClearAnalyticsCachesForUser(int(userID))
		log.Printf("INFO: Deleted transaction id %d for user %d", transactionID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "transaction deleted"})
	}
}
