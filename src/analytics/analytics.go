package analytics

import (
	"sort"
	"time"

	"fintrack-server/src/models"
)

// Build aggregates one user's transactions for a year into the three
// analytics views. yearTransactions must already be scoped to the user and
// to the given year; month selects which month the category breakdown
// covers.
func Build(yearTransactions []models.Transaction, year, month int) models.AnalyticsResponse {
	var monthTransactions []models.Transaction
	for _, t := range yearTransactions {
		if int(t.TransactionDate.Month()) == month {
			monthTransactions = append(monthTransactions, t)
		}
	}

	return models.AnalyticsResponse{
		CategoryBreakdown: CategoryBreakdown(monthTransactions),
		MonthlyTrend:      MonthlyTrend(yearTransactions, year),
		IncomeVsExpenses:  IncomeVsExpenses(yearTransactions, year),
	}
}

// CategoryBreakdown groups expense transactions by exact category string and
// sums their amounts, ordered by descending total. Ties break on category
// name ascending so the order is deterministic.
func CategoryBreakdown(transactions []models.Transaction) []models.CategoryBreakdown {
	totals := make(map[string]float64)
	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		totals[t.Category] += t.Amount
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category:    category,
			TotalAmount: total,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalAmount != breakdown[j].TotalAmount {
			return breakdown[i].TotalAmount > breakdown[j].TotalAmount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// MonthlyTrend sums expense amounts per calendar month. All twelve months of
// the year are emitted in order, zero-filled where no expenses exist.
func MonthlyTrend(transactions []models.Transaction, year int) []models.MonthlyTrend {
	totals := make([]float64, 13)
	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		totals[t.TransactionDate.Month()] += t.Amount
	}

	trend := make([]models.MonthlyTrend, 0, 12)
	for m := 1; m <= 12; m++ {
		trend = append(trend, models.MonthlyTrend{
			Month:       monthLabel(year, m),
			TotalAmount: totals[m],
		})
	}
	return trend
}

// IncomeVsExpenses sums income and expense amounts separately per calendar
// month, emitting all twelve months of the year in order.
func IncomeVsExpenses(transactions []models.Transaction, year int) []models.IncomeVsExpense {
	income := make([]float64, 13)
	expenses := make([]float64, 13)
	for _, t := range transactions {
		m := t.TransactionDate.Month()
		if t.Type == models.TransactionTypeIncome {
			income[m] += t.Amount
		} else {
			expenses[m] += t.Amount
		}
	}

	result := make([]models.IncomeVsExpense, 0, 12)
	for m := 1; m <= 12; m++ {
		result = append(result, models.IncomeVsExpense{
			Month:    monthLabel(year, m),
			Income:   income[m],
			Expenses: expenses[m],
		})
	}
	return result
}

// monthLabel is the first day of the month as YYYY-MM-DD.
func monthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
