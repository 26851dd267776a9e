package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Plan is the user's subscription tier.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// ParsePlan normalizes plan input, defaulting to the free tier.
func ParsePlan(s string) Plan {
	if strings.EqualFold(strings.TrimSpace(s), string(PlanPremium)) {
		return PlanPremium
	}
	return PlanFree
}

// UserProfile holds the user's declared income and savings target. It is a
// mutable singleton per session: settings and goal edits replace fields
// wholesale, last write wins, no history retained.
type UserProfile struct {
	Name          string          `json:"name" yaml:"name"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" yaml:"monthly_income"`
	SavingsGoal   decimal.Decimal `json:"savingsGoal" yaml:"savings_goal"`
	Plan          Plan            `json:"plan" yaml:"plan"`
}

// Normalize clamps negative numeric fields to zero and defaults the plan.
// MonthlyIncome and SavingsGoal are magnitudes; a negative value is a
// data-entry error, not a meaning.
func (p UserProfile) Normalize() UserProfile {
	if p.MonthlyIncome.IsNegative() {
		p.MonthlyIncome = decimal.Zero
	}
	if p.SavingsGoal.IsNegative() {
		p.SavingsGoal = decimal.Zero
	}
	if p.Plan != PlanPremium {
		p.Plan = PlanFree
	}
	return p
}
