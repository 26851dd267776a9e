package ledger

import (
	"testing"

	"finai/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(amount string, tt models.TransactionType, cat models.Category, date string) models.Transaction {
	return models.Transaction{
		ID:       amount + string(tt) + date,
		Title:    "test",
		Amount:   dec(amount),
		Type:     tt,
		Category: cat,
		Date:     date,
	}
}

func TestTotalsEmptyLedger(t *testing.T) {
	assert.True(t, TotalIncome(nil).IsZero())
	assert.True(t, TotalExpense(nil).IsZero())
	assert.True(t, Balance(nil).IsZero())
	assert.True(t, CurrentSavings(nil).IsZero())
	assert.True(t, ExpenseRatio(nil, dec("1000")).IsZero())
	assert.True(t, GoalProgress(nil, dec("1000")).IsZero())
	assert.True(t, RemainingToGoal(nil, decimal.Zero).IsZero())
}

func TestBalanceSumInvariant(t *testing.T) {
	txs := []models.Transaction{
		tx("5000", models.TypeIncome, models.CategorySalary, "2025-01-01"),
		tx("1800", models.TypeExpense, models.CategoryHousing, "2025-01-05"),
		tx("450.50", models.TypeExpense, models.CategoryFood, "2025-01-08"),
		tx("200", models.TypeIncome, models.CategoryOther, "2025-01-10"),
	}

	income := TotalIncome(txs)
	expense := TotalExpense(txs)
	assert.True(t, Balance(txs).Equal(income.Sub(expense)))
	assert.True(t, income.Equal(dec("5200")))
	assert.True(t, expense.Equal(dec("2250.50")))
}

func TestCurrentSavingsNeverNegative(t *testing.T) {
	txs := []models.Transaction{
		tx("100", models.TypeIncome, models.CategorySalary, "2025-01-01"),
		tx("900", models.TypeExpense, models.CategoryShopping, "2025-01-02"),
	}

	assert.True(t, Balance(txs).Equal(dec("-800")), "balance itself is not clamped")
	assert.True(t, CurrentSavings(txs).IsZero())
}

func TestDivisionGuards(t *testing.T) {
	txs := []models.Transaction{
		tx("500", models.TypeExpense, models.CategoryBills, "2025-01-01"),
	}

	assert.True(t, ExpenseRatio(txs, decimal.Zero).IsZero())
	assert.True(t, GoalProgress(txs, decimal.Zero).IsZero())
}

func TestGoalProgressClamp(t *testing.T) {
	txs := []models.Transaction{
		tx("5000", models.TypeIncome, models.CategorySalary, "2025-01-01"),
	}

	// Savings (5000) far exceed the goal (1000): exactly 100, never more.
	progress := GoalProgress(txs, dec("1000"))
	assert.True(t, progress.Equal(dec("100")), "got %s", progress)
}

func TestRemainingToGoal(t *testing.T) {
	txs := []models.Transaction{
		tx("300", models.TypeIncome, models.CategorySalary, "2025-01-01"),
	}

	assert.True(t, RemainingToGoal(txs, dec("1000")).Equal(dec("700")))
	assert.True(t, RemainingToGoal(txs, dec("200")).IsZero(), "met goal floors at zero")
}

func TestSummarizePurity(t *testing.T) {
	txs := []models.Transaction{
		tx("5000", models.TypeIncome, models.CategorySalary, "2025-01-01"),
		tx("1800", models.TypeExpense, models.CategoryHousing, "2025-01-05"),
	}
	profile := models.UserProfile{MonthlyIncome: dec("5000"), SavingsGoal: dec("1000")}

	first := Summarize(txs, profile)
	second := Summarize(txs, profile)
	assert.Equal(t, first, second, "same input must yield identical output")
}

func TestSummarizeEndToEnd(t *testing.T) {
	// Scenario: one salary, one housing expense, income 5000, goal 1000.
	txs := []models.Transaction{
		tx("5000", models.TypeIncome, models.CategorySalary, "2025-02-01"),
		tx("1800", models.TypeExpense, models.CategoryHousing, "2025-02-05"),
	}
	profile := models.UserProfile{MonthlyIncome: dec("5000"), SavingsGoal: dec("1000")}

	s := Summarize(txs, profile)
	assert.True(t, s.TotalIncome.Equal(dec("5000")))
	assert.True(t, s.TotalExpense.Equal(dec("1800")))
	assert.True(t, s.Balance.Equal(dec("3200")))
	assert.True(t, s.CurrentSavings.Equal(dec("3200")))
	assert.True(t, s.ExpenseRatio.Equal(dec("36")), "got %s", s.ExpenseRatio)
	assert.True(t, s.GoalProgress.Equal(dec("100")), "clamped, savings exceed goal")
	assert.True(t, s.RemainingToGoal.IsZero())
	assert.True(t, s.FreeToSpend.Equal(dec("3200")))
}

func TestSummarizeNegativeBalance(t *testing.T) {
	txs := []models.Transaction{
		tx("100", models.TypeIncome, models.CategorySalary, "2025-02-01"),
		tx("400", models.TypeExpense, models.CategoryLeisure, "2025-02-02"),
	}
	profile := models.UserProfile{MonthlyIncome: dec("100"), SavingsGoal: dec("50")}

	s := Summarize(txs, profile)
	assert.True(t, s.Balance.Equal(dec("-300")))
	assert.True(t, s.CurrentSavings.IsZero())
	assert.True(t, s.GoalProgress.IsZero())
	assert.True(t, s.RemainingToGoal.Equal(dec("50")))
	assert.True(t, s.FreeToSpend.IsZero())
}

func TestExpensesByCategorySparse(t *testing.T) {
	txs := []models.Transaction{
		tx("50", models.TypeExpense, models.CategoryFood, "2025-01-01"),
	}

	totals := ExpensesByCategory(txs)
	require.Len(t, totals, 1, "zero-total categories must be absent")
	assert.True(t, totals[models.CategoryFood].Equal(dec("50")))
}

func TestExpensesByCategoryIgnoresIncome(t *testing.T) {
	txs := []models.Transaction{
		tx("5000", models.TypeIncome, models.CategorySalary, "2025-01-01"),
		tx("30", models.TypeExpense, models.CategoryTransport, "2025-01-02"),
		tx("70", models.TypeExpense, models.CategoryTransport, "2025-01-03"),
		tx("20", models.TypeExpense, models.CategoryFood, "2025-01-04"),
	}

	totals := ExpensesByCategory(txs)
	require.Len(t, totals, 2)
	assert.True(t, totals[models.CategoryTransport].Equal(dec("100")))
	assert.True(t, totals[models.CategoryFood].Equal(dec("20")))
}

func TestExpensesByCategoryEmpty(t *testing.T) {
	assert.Empty(t, ExpensesByCategory(nil))
}
