// Package ledger provides pure aggregation functions that turn the session's
// transaction collection into dashboard metrics. Nothing in this package does
// I/O or holds state: every function is a deterministic transformation of its
// arguments, and all divisions are guarded so no input can produce NaN,
// infinity or a panic.
package ledger

import (
	"finai/internal/logging"
	"finai/internal/models"

	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

var hundred = decimal.NewFromInt(100)

// TotalByType sums the amounts of all transactions with the given type.
// An empty or nil slice yields zero.
func TotalByType(txs []models.Transaction, tt models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == tt {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalIncome sums all income amounts.
func TotalIncome(txs []models.Transaction) decimal.Decimal {
	return TotalByType(txs, models.TypeIncome)
}

// TotalExpense sums all expense amounts.
func TotalExpense(txs []models.Transaction) decimal.Decimal {
	return TotalByType(txs, models.TypeExpense)
}

// Balance is total income minus total expense. It may be negative; callers
// must not clamp it, only derived display quantities are floored.
func Balance(txs []models.Transaction) decimal.Decimal {
	return TotalIncome(txs).Sub(TotalExpense(txs))
}

// CurrentSavings is the balance floored at zero. A negative true balance is
// never presented as negative savings.
func CurrentSavings(txs []models.Transaction) decimal.Decimal {
	return floorZero(Balance(txs))
}

// ExpenseRatio is total expense as a percentage of the declared monthly
// income. Defined as zero when the income is zero or negative.
func ExpenseRatio(txs []models.Transaction, monthlyIncome decimal.Decimal) decimal.Decimal {
	if !monthlyIncome.IsPositive() {
		return decimal.Zero
	}
	return TotalExpense(txs).Div(monthlyIncome).Mul(hundred)
}

// GoalProgress is current savings as a percentage of the savings goal,
// clamped at 100. Defined as zero when the goal is zero or negative.
func GoalProgress(txs []models.Transaction, savingsGoal decimal.Decimal) decimal.Decimal {
	if !savingsGoal.IsPositive() {
		return decimal.Zero
	}
	progress := CurrentSavings(txs).Div(savingsGoal).Mul(hundred)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}

// RemainingToGoal is the amount still missing to reach the savings goal,
// floored at zero once the goal is met.
func RemainingToGoal(txs []models.Transaction, savingsGoal decimal.Decimal) decimal.Decimal {
	return floorZero(savingsGoal.Sub(CurrentSavings(txs)))
}

// FreeToSpend is the declared monthly income minus total expense, floored at
// zero for display.
func FreeToSpend(txs []models.Transaction, monthlyIncome decimal.Decimal) decimal.Decimal {
	return floorZero(monthlyIncome.Sub(TotalExpense(txs)))
}

// Summary bundles the dashboard metrics derived from one pass over the
// session ledger and profile.
type Summary struct {
	TotalIncome     decimal.Decimal
	TotalExpense    decimal.Decimal
	Balance         decimal.Decimal
	CurrentSavings  decimal.Decimal
	ExpenseRatio    decimal.Decimal
	GoalProgress    decimal.Decimal
	RemainingToGoal decimal.Decimal
	FreeToSpend     decimal.Decimal
}

// Summarize computes the full dashboard summary for a transaction collection
// and profile. Safe for any input including an empty ledger and a zeroed
// profile.
func Summarize(txs []models.Transaction, profile models.UserProfile) Summary {
	return Summary{
		TotalIncome:     TotalIncome(txs),
		TotalExpense:    TotalExpense(txs),
		Balance:         Balance(txs),
		CurrentSavings:  CurrentSavings(txs),
		ExpenseRatio:    ExpenseRatio(txs, profile.MonthlyIncome),
		GoalProgress:    GoalProgress(txs, profile.SavingsGoal),
		RemainingToGoal: RemainingToGoal(txs, profile.SavingsGoal),
		FreeToSpend:     FreeToSpend(txs, profile.MonthlyIncome),
	}
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
