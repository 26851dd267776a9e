// Package profile shows and updates the user profile
package profile

import (
	"fmt"

	"finai/cmd/root"
	"finai/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the profile command
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the user profile",
	Long: `Show the profile the dashboard metrics are computed against: name,
declared monthly income, savings goal and plan. Any flag that is set replaces
the stored value; negative amounts are clamped to zero.`,
	Run: profileFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Name, "name", "n", "", "Display name")
	Cmd.Flags().StringVarP(&root.Income, "income", "i", "", "Declared monthly income")
	Cmd.Flags().StringVarP(&root.Goal, "goal", "g", "", "Savings goal amount")
	Cmd.Flags().StringVarP(&root.Plan, "plan", "p", "", "Plan: free or premium")
}

func profileFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Profile command called")

	s := root.OpenStore()
	session, err := s.Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	changed := false
	if root.Name != "" {
		session.Profile.Name = root.Name
		changed = true
	}
	if root.Income != "" {
		session.Profile.MonthlyIncome = models.ParseAmount(root.Income)
		changed = true
	}
	if root.Goal != "" {
		session.Profile.SavingsGoal = models.ParseAmount(root.Goal)
		changed = true
	}
	if root.Plan != "" {
		session.Profile.Plan = models.ParsePlan(root.Plan)
		changed = true
	}

	if changed {
		session.Profile = session.Profile.Normalize()
		if err := s.Save(session); err != nil {
			root.Log.Fatalf("Error saving session: %v", err)
		}
		fmt.Println("Profile updated")
	}

	p := session.Profile
	fmt.Println("Profile")
	fmt.Println("-------")
	fmt.Printf("Name:           %s\n", p.Name)
	fmt.Printf("Monthly income: %s\n", p.MonthlyIncome.StringFixed(2))
	fmt.Printf("Savings goal:   %s\n", p.SavingsGoal.StringFixed(2))
	fmt.Printf("Plan:           %s\n", p.Plan)
}
