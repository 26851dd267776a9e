// Package dashboard renders the derived metrics view of the ledger
package dashboard

import (
	"fmt"

	"finai/cmd/root"
	"finai/internal/ledger"
	"finai/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the financial dashboard",
	Long: `Show the metrics derived from the ledger: income and expense totals,
balance, savings, expense ratio, savings goal progress, the expense breakdown
by category and the daily cash flow series.`,
	Run: dashboardFunc,
}

func init() {
	Cmd.Flags().IntVarP(&root.Days, "days", "d", 7, "Number of most recent days in the daily series (0 = all)")
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Dashboard command called")

	session, err := root.OpenStore().Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	summary := ledger.Summarize(session.Transactions, session.Profile)

	fmt.Println("Dashboard")
	fmt.Println("---------")
	fmt.Printf("Total income:    %s\n", summary.TotalIncome.StringFixed(2))
	fmt.Printf("Total expense:   %s\n", summary.TotalExpense.StringFixed(2))
	fmt.Printf("Balance:         %s\n", summary.Balance.StringFixed(2))
	fmt.Printf("Current savings: %s\n", summary.CurrentSavings.StringFixed(2))
	fmt.Printf("Expense ratio:   %s%%\n", summary.ExpenseRatio.StringFixed(1))
	fmt.Printf("Goal progress:   %s%%\n", summary.GoalProgress.StringFixed(1))
	fmt.Printf("To goal:         %s\n", summary.RemainingToGoal.StringFixed(2))
	fmt.Printf("Free to spend:   %s\n", summary.FreeToSpend.StringFixed(2))

	byCategory := ledger.ExpensesByCategory(session.Transactions)
	if len(byCategory) > 0 {
		fmt.Println()
		fmt.Println("Expenses by category")
		for _, category := range orderedCategories(byCategory) {
			fmt.Printf("  %-12s %s\n", category, byCategory[category].StringFixed(2))
		}
	}

	series := ledger.DailySeries(session.Transactions, root.Days)
	if len(series) > 0 {
		fmt.Println()
		fmt.Println("Daily cash flow")
		for _, day := range series {
			fmt.Printf("  %04d-%02d-%02d  in %s  out %s\n",
				day.Day.Year, day.Day.Month, day.Day.Day,
				day.Income.StringFixed(2), day.Expense.StringFixed(2))
		}
	}
}

// orderedCategories returns the categories present in the breakdown in the
// fixed well-known order, so the output is stable across runs.
func orderedCategories(byCategory map[models.Category]decimal.Decimal) []models.Category {
	var ordered []models.Category
	for _, category := range models.KnownCategories() {
		if _, ok := byCategory[category]; ok {
			ordered = append(ordered, category)
		}
	}
	return ordered
}
