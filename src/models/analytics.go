package models

type CategoryBreakdown struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
}

// MonthlyTrend carries one calendar month of expense totals. Month is the
// first day of the month formatted as YYYY-MM-DD.
type MonthlyTrend struct {
	Month       string  `json:"month"`
	TotalAmount float64 `json:"total_amount"`
}

type IncomeVsExpense struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type AnalyticsResponse struct {
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	MonthlyTrend      []MonthlyTrend      `json:"monthly_trend"`
	IncomeVsExpenses  []IncomeVsExpense   `json:"income_vs_expenses"`
}
