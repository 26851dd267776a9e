// Package goals shows savings-goal progress and updates the goal
package goals

import (
	"fmt"

	"finai/cmd/root"
	"finai/internal/ledger"
	"finai/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the goals command
var Cmd = &cobra.Command{
	Use:   "goals",
	Short: "Show savings goal progress",
	Long: `Show how far the current savings are from the declared savings goal.
Use --set to replace the goal; the previous value is overwritten, no history
is kept.`,
	Run: goalsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SetGoal, "set", "g", "", "Set a new savings goal amount")
}

func goalsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Goals command called")

	s := root.OpenStore()
	session, err := s.Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	if root.SetGoal != "" {
		session.Profile.SavingsGoal = models.ParseAmount(root.SetGoal)
		session.Profile = session.Profile.Normalize()
		if err := s.Save(session); err != nil {
			root.Log.Fatalf("Error saving session: %v", err)
		}
		fmt.Printf("Savings goal set to %s\n", session.Profile.SavingsGoal.StringFixed(2))
	}

	goal := session.Profile.SavingsGoal
	savings := ledger.CurrentSavings(session.Transactions)
	progress := ledger.GoalProgress(session.Transactions, goal)
	remaining := ledger.RemainingToGoal(session.Transactions, goal)

	fmt.Println("Savings goal")
	fmt.Println("------------")
	fmt.Printf("Goal:      %s\n", goal.StringFixed(2))
	fmt.Printf("Saved:     %s\n", savings.StringFixed(2))
	fmt.Printf("Progress:  %s%%\n", progress.StringFixed(1))
	fmt.Printf("Remaining: %s\n", remaining.StringFixed(2))
}
