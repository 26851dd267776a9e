package advisor

import (
	"context"
	"encoding/json"
	"strings"

	"finai/internal/logging"
	"finai/internal/models"
)

// GenerateReport produces a free-text Markdown report over the whole
// transaction collection. Same fallback discipline as the chat operation:
// unconfigured yields the fixed instructional string without a request, any
// failure yields the fixed apologetic string.
func (a *Advisor) GenerateReport(ctx context.Context, txs []models.Transaction) string {
	if !a.ai.Configured() {
		return MsgReportNeedsKey
	}

	serialized, err := json.Marshal(txs)
	if err != nil {
		// Transactions are plain data; this only fires on a programming error.
		a.log.WithError(err).WithField(logging.FieldOperation, "report").
			Error("Failed to serialize transactions for report")
		return MsgReportFailed
	}

	text, err := a.ai.GenerateText(ctx, buildReportPrompt(string(serialized)))
	if err != nil {
		a.log.WithError(err).WithField(logging.FieldOperation, "report").
			Warn("Report request failed")
		return MsgReportFailed
	}

	if strings.TrimSpace(text) == "" {
		return MsgReportEmpty
	}
	return text
}
