package handlers

import (
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestComputeBudgetProgress(t *testing.T) {
	budgets := []models.Budget{
		{Category: "Food", Amount: 200, Month: 3, Year: 2024},
		{Category: "Transport", Amount: 50, Month: 3, Year: 2024},
	}
	transactions := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: 50, Category: "Food"},
		{Type: models.TransactionTypeExpense, Amount: 30, Category: "food"},
		{Type: models.TransactionTypeExpense, Amount: 70, Category: "Transport"},
		{Type: models.TransactionTypeIncome, Amount: 1000, Category: "Food"},
	}

	progress := computeBudgetProgress(budgets, transactions)

	if len(progress) != 2 {
		t.Fatalf("expected 2 progress records, got %d", len(progress))
	}

	food := progress[0]
	if food.Spent != 80 {
		t.Errorf("expected Food spent 80 (case-insensitive match, income excluded), got %.2f", food.Spent)
	}
	if food.Remaining != 120 {
		t.Errorf("expected Food remaining 120, got %.2f", food.Remaining)
	}
	if food.Percentage != 40 {
		t.Errorf("expected Food percentage 40, got %.2f", food.Percentage)
	}

	transport := progress[1]
	if transport.Remaining != -20 {
		t.Errorf("expected overspent Transport remaining -20, got %.2f", transport.Remaining)
	}
	if transport.Percentage != 140 {
		t.Errorf("expected Transport percentage 140, got %.2f", transport.Percentage)
	}
}

func TestComputeBudgetProgressZeroBudget(t *testing.T) {
	budgets := []models.Budget{{Category: "Misc", Amount: 0}}
	transactions := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: 15, Category: "Misc"},
	}

	progress := computeBudgetProgress(budgets, transactions)

	if progress[0].Percentage != 0 {
		t.Errorf("expected zero budget to report 0 percent, got %.2f", progress[0].Percentage)
	}
	if progress[0].Remaining != -15 {
		t.Errorf("expected remaining -15, got %.2f", progress[0].Remaining)
	}
}

func TestComputeBudgetProgressNoTransactions(t *testing.T) {
	budgets := []models.Budget{{Category: "Food", Amount: 100}}

	progress := computeBudgetProgress(budgets, nil)

	if progress[0].Spent != 0 || progress[0].Remaining != 100 || progress[0].Percentage != 0 {
		t.Errorf("expected untouched budget, got %+v", progress[0])
	}
}

func TestMonthRange(t *testing.T) {
	start, end := monthRange(2024, 2)

	if !start.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end %v", end)
	}

	// December rolls into the next year
	_, end = monthRange(2024, 12)
	if !end.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected December end %v", end)
	}
}
