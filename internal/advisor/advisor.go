// Package advisor converts the external language-model service's responses
// into strict internal shapes: a transaction draft, a chat reply, or a report.
// Every operation returns a usable value for every input. Whenever the service
// is missing, unreachable or returns something malformed, a deterministic
// fallback takes its place, so the caller has exactly one failure path per
// operation instead of the service's whole error taxonomy.
package advisor

import (
	"finai/internal/logging"
	"finai/internal/models"

	"github.com/shopspring/decimal"
)

// Fixed fallback responses. Constant per operation: tests and callers rely on
// these exact strings.
const (
	// MsgConfigureKey is returned by the chat operation when no credential is
	// present. The advisor never fabricates financial advice without a real
	// model behind it.
	MsgConfigureKey = "Please configure your GEMINI_API_KEY to receive financial advice."

	// MsgAdviceEmpty is returned when the model answers with empty text.
	MsgAdviceEmpty = "Sorry, I could not process your request at the moment."

	// MsgAdviceFailed is returned on any chat request failure.
	MsgAdviceFailed = "An error occurred while consulting the assistant. Please try again."

	// MsgReportNeedsKey is returned by report generation when no credential
	// is present.
	MsgReportNeedsKey = "A GEMINI_API_KEY is required to generate reports."

	// MsgReportEmpty is returned when the model produces an empty report.
	MsgReportEmpty = "Not enough data for an analysis."

	// MsgReportFailed is returned on any report request failure.
	MsgReportFailed = "Failed to generate the analysis. Please try again."
)

// DefaultHistoryLimit bounds how many recent transactions are inlined into
// the chat context prompt.
const DefaultHistoryLimit = 10

// Draft is the strict transaction shape extracted from free-form input. It
// has no ID yet; the caller turns an accepted draft into a ledger transaction.
type Draft struct {
	Title    string
	Amount   decimal.Decimal
	Type     models.TransactionType
	Category models.Category
	Date     string
}

// Advisor wraps an AIClient with the normalization and fallback policy.
type Advisor struct {
	ai           AIClient
	historyLimit int
	log          logging.Logger
}

// New creates an Advisor. A historyLimit of zero or less falls back to
// DefaultHistoryLimit.
func New(ai AIClient, historyLimit int, logger logging.Logger) *Advisor {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Advisor{ai: ai, historyLimit: historyLimit, log: logger}
}
