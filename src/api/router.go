package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/user/{user_id}", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteUser(pool))

			// Transactions
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Get("/transactions", handlers.GetAllTransactionsForUser(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets", handlers.GetBudgetsForMonth(pool))
			r.Get("/budgets/progress", handlers.GetBudgetProgress(pool))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Savings goals
			r.Post("/savings-goals", handlers.CreateSavingsGoal(pool))
			r.Get("/savings-goals", handlers.GetAllSavingsGoalsForUser(pool))
			r.Get("/savings-goals/progress", handlers.GetSavingsGoalProgress(pool))
			r.Put("/savings-goals/{goal_id}", handlers.UpdateSavingsGoal(pool))
			r.Post("/savings-goals/{goal_id}/add-funds", handlers.AddFundsToSavingsGoal(pool))
			r.Delete("/savings-goals/{goal_id}", handlers.DeleteSavingsGoal(pool))

			// Analytics
			r.Get("/analytics", handlers.GetAnalytics(pool))
		})
	})

	return r
}
