// Package add handles manual transaction entry
package add

import (
	"fmt"
	"time"

	"finai/cmd/root"
	"finai/internal/dateutils"
	"finai/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction to the ledger",
	Long: `Add an income or expense transaction to the ledger. Amounts are coerced,
never rejected: currency symbols are stripped, comma decimals accepted, and an
unparseable amount is recorded as zero.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Title, "title", "t", "", "Transaction title (required)")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "0", "Transaction amount (e.g. 12.50, R$ 1.800,00)")
	Cmd.Flags().StringVarP(&root.TxType, "type", "y", "expense", "Transaction type: income or expense")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Category (defaults to Other)")
	Cmd.Flags().StringVarP(&root.Date, "date", "d", "", "Transaction date (defaults to now)")
	if err := Cmd.MarkFlagRequired("title"); err != nil {
		root.Log.WithError(err).Warn("Failed to mark title flag required")
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Add command called")

	date := root.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	} else if parsed, err := dateutils.ParseDateString(date); err == nil {
		date = dateutils.ToISOTimestamp(parsed)
	} else {
		root.Log.WithField("date", root.Date).Warn("Could not parse date, using current time")
		date = time.Now().Format(time.RFC3339)
	}

	tx := models.NewTransaction(
		root.Title,
		models.ParseAmount(root.Amount).Abs(),
		models.ParseTransactionType(root.TxType),
		models.ParseCategory(root.Category),
		date,
	)

	s := root.OpenStore()
	session, err := s.Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	session.Append(tx)
	if err := s.Save(session); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}

	fmt.Printf("Added %s: %s %s (%s)\n", tx.Type, tx.Title, tx.Amount.StringFixed(2), tx.Category)
}
