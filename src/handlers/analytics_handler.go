package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/analytics"
	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAnalytics(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		month, year, ok := monthYearParams(w, r)
		if !ok {
			return
		}

		cacheKey := cache.AnalyticsCacheKey(int(userID), year, month)
		if cached, found := cache.GetAnalyticsCache(cacheKey); found {
			if resp, ok := cached.(models.AnalyticsResponse); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(resp)
				return
			}
		}

		startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		endOfYear := startOfYear.AddDate(1, 0, 0)
		transactions, err := db.GetTransactionsInRange(r.Context(), pool, int(userID), startOfYear, endOfYear)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for analytics for user %d: %v", userID, err)
			http.Error(w, "failed to get analytics", http.StatusInternalServerError)
			return
		}

		resp := analytics.Build(transactions, year, month)
		cache.SetAnalyticsCache(int(userID), cacheKey, resp)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
