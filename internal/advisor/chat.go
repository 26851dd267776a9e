package advisor

import (
	"context"
	"strings"

	"finai/internal/logging"
	"finai/internal/models"
)

// GetAdvice answers one free-text question about the user's finances. The
// context prompt carries the declared profile numbers, precomputed totals and
// the most recent transactions (bounded by the advisor's history limit).
//
// Without a credential the fixed instructional string is returned and no
// request is issued. Any request failure yields the fixed apologetic string;
// a raw error never reaches the caller.
func (a *Advisor) GetAdvice(ctx context.Context, txs []models.Transaction, profile models.UserProfile, question string) string {
	if !a.ai.Configured() {
		return MsgConfigureKey
	}

	text, err := a.ai.GenerateText(ctx, buildAdvicePrompt(txs, profile, question, a.historyLimit))
	if err != nil {
		a.log.WithError(err).WithField(logging.FieldOperation, "advice").
			Warn("Advice request failed")
		return MsgAdviceFailed
	}

	if strings.TrimSpace(text) == "" {
		return MsgAdviceEmpty
	}
	return text
}
