// Package parse handles natural-language transaction entry via the AI advisor
package parse

import (
	"fmt"
	"strings"
	"time"

	"finai/cmd/root"
	"finai/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Draft a transaction from plain language using the Gemini model",
	Long: `Draft a transaction from a free-form description like "spent 45 on
groceries yesterday" using the Gemini model, then append it to the ledger.
When the model is unavailable or answers with something unusable, a safe
zero-amount draft titled with the raw input is recorded instead.`,
	Args: cobra.MinimumNArgs(1),
	Run:  parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")

	input := strings.Join(args, " ")

	s := root.OpenStore()
	session, err := s.Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	draft := root.NewAdvisor().ParseTransactionInput(cmd.Context(), input, time.Now())

	tx := models.NewTransaction(draft.Title, draft.Amount, draft.Type, draft.Category, draft.Date)
	session.Append(tx)

	if err := s.Save(session); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}

	fmt.Printf("Added %s: %s %s (%s) on %s\n", tx.Type, tx.Title, tx.Amount.StringFixed(2), tx.Category, tx.Date)
}
