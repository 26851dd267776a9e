package ledger

import (
	"finai/internal/models"

	"github.com/shopspring/decimal"
)

// ExpensesByCategory sums expense amounts per category of the fixed
// enumeration. The result is sparse: categories with a zero total are absent,
// so consumers can render it directly without filtering. Free-form categories
// from the advisory service are not part of the breakdown; they stay visible
// in the transaction list itself.
func ExpensesByCategory(txs []models.Transaction) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, cat := range models.KnownCategories() {
		sum := decimal.Zero
		for _, tx := range txs {
			if tx.IsExpense() && tx.Category == cat {
				sum = sum.Add(tx.Amount)
			}
		}
		if sum.IsPositive() {
			totals[cat] = sum
		}
	}
	return totals
}
