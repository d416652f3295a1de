package analytics

import (
	"testing"
	"time"

	"fintrack-server/src/models"
)

func expense(amount float64, category string, date time.Time) models.Transaction {
	return models.Transaction{Type: models.TransactionTypeExpense, Amount: amount, Category: category, TransactionDate: date}
}

func income(amount float64, category string, date time.Time) models.Transaction {
	return models.Transaction{Type: models.TransactionTypeIncome, Amount: amount, Category: category, TransactionDate: date}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []models.Transaction{
		expense(50, "Food", day(2024, time.March, 5)),
		expense(30, "Food", day(2024, time.March, 10)),
		expense(120, "Rent", day(2024, time.March, 1)),
		income(1000, "Salary", day(2024, time.March, 1)),
	}

	breakdown := CategoryBreakdown(transactions)

	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(breakdown))
	}
	if breakdown[0].Category != "Rent" || breakdown[0].TotalAmount != 120 {
		t.Errorf("expected Rent 120 first, got %s %.2f", breakdown[0].Category, breakdown[0].TotalAmount)
	}
	if breakdown[1].Category != "Food" || breakdown[1].TotalAmount != 80 {
		t.Errorf("expected Food 80 second, got %s %.2f", breakdown[1].Category, breakdown[1].TotalAmount)
	}
}

func TestCategoryBreakdownExcludesIncome(t *testing.T) {
	breakdown := CategoryBreakdown([]models.Transaction{
		income(500, "Salary", day(2024, time.January, 3)),
	})
	if len(breakdown) != 0 {
		t.Fatalf("expected no categories for income-only input, got %d", len(breakdown))
	}
}

func TestCategoryBreakdownGroupsByExactString(t *testing.T) {
	breakdown := CategoryBreakdown([]models.Transaction{
		expense(10, "food", day(2024, time.May, 1)),
		expense(20, "Food", day(2024, time.May, 2)),
	})
	if len(breakdown) != 2 {
		t.Fatalf("expected case variants to group separately, got %d entries", len(breakdown))
	}
}

func TestCategoryBreakdownTieBreak(t *testing.T) {
	breakdown := CategoryBreakdown([]models.Transaction{
		expense(40, "Travel", day(2024, time.June, 1)),
		expense(40, "Books", day(2024, time.June, 2)),
	})
	if breakdown[0].Category != "Books" || breakdown[1].Category != "Travel" {
		t.Errorf("expected tie broken by category name, got %s then %s", breakdown[0].Category, breakdown[1].Category)
	}
}

func TestMonthlyTrend(t *testing.T) {
	transactions := []models.Transaction{
		expense(25, "Food", day(2024, time.February, 14)),
		expense(75, "Food", day(2024, time.February, 20)),
		expense(10, "Transport", day(2024, time.November, 3)),
		income(900, "Salary", day(2024, time.February, 1)),
	}

	trend := MonthlyTrend(transactions, 2024)

	if len(trend) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(trend))
	}
	if trend[0].Month != "2024-01-01" {
		t.Errorf("expected first entry labeled 2024-01-01, got %s", trend[0].Month)
	}
	if trend[1].TotalAmount != 100 {
		t.Errorf("expected February total 100, got %.2f", trend[1].TotalAmount)
	}
	if trend[10].TotalAmount != 10 {
		t.Errorf("expected November total 10, got %.2f", trend[10].TotalAmount)
	}
	for _, m := range []int{0, 2, 3, 4, 5, 6, 7, 8, 9, 11} {
		if trend[m].TotalAmount != 0 {
			t.Errorf("expected month %s zero-filled, got %.2f", trend[m].Month, trend[m].TotalAmount)
		}
	}
}

func TestIncomeVsExpenses(t *testing.T) {
	transactions := []models.Transaction{
		expense(50, "Food", day(2024, time.March, 5)),
		expense(30, "Food", day(2024, time.March, 10)),
		income(1000, "Salary", day(2024, time.March, 1)),
	}

	result := IncomeVsExpenses(transactions, 2024)

	if len(result) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(result))
	}
	march := result[2]
	if march.Month != "2024-03-01" {
		t.Errorf("expected March labeled 2024-03-01, got %s", march.Month)
	}
	if march.Income != 1000 || march.Expenses != 80 {
		t.Errorf("expected March income 1000 / expenses 80, got %.2f / %.2f", march.Income, march.Expenses)
	}
	for i, entry := range result {
		if i == 2 {
			continue
		}
		if entry.Income != 0 || entry.Expenses != 0 {
			t.Errorf("expected month %s zero-filled, got income %.2f expenses %.2f", entry.Month, entry.Income, entry.Expenses)
		}
	}
}

func TestBuildFiltersBreakdownToMonth(t *testing.T) {
	transactions := []models.Transaction{
		expense(80, "Food", day(2024, time.March, 5)),
		expense(200, "Rent", day(2024, time.April, 1)),
	}

	resp := Build(transactions, 2024, 3)

	if len(resp.CategoryBreakdown) != 1 {
		t.Fatalf("expected breakdown limited to March, got %d entries", len(resp.CategoryBreakdown))
	}
	if resp.CategoryBreakdown[0].Category != "Food" {
		t.Errorf("expected Food, got %s", resp.CategoryBreakdown[0].Category)
	}
	// Yearly views still cover both months
	if resp.MonthlyTrend[3].TotalAmount != 200 {
		t.Errorf("expected April trend 200, got %.2f", resp.MonthlyTrend[3].TotalAmount)
	}
}
