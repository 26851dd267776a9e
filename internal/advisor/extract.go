package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"finai/internal/dateutils"
	"finai/internal/logging"
	"finai/internal/models"
)

// draftPayload mirrors the JSON object the extraction prompt asks for.
// json.Number tolerates the model quoting the amount.
type draftPayload struct {
	Title    string      `json:"title"`
	Amount   json.Number `json:"amount"`
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
}

// ParseTransactionInput extracts a transaction draft from a free-form
// financial note such as "lunch at restaurant 45 today". now anchors
// relative-date resolution and supplies the default date.
//
// This operation never returns an error. If the service is unconfigured, the
// request fails, or the response is malformed, the result is the
// deterministic fallback draft built from the raw input: the text as title,
// amount 0, type EXPENSE, category Other, date now. The fallback is identical
// for every failure mode so the caller has a single failure path.
func (a *Advisor) ParseTransactionInput(ctx context.Context, input string, now time.Time) Draft {
	fallback := fallbackDraft(input, now)

	if !a.ai.Configured() {
		a.log.Debug("AI service not configured, returning fallback draft")
		return fallback
	}

	text, err := a.ai.GenerateText(ctx, buildExtractionPrompt(input, now))
	if err != nil {
		a.log.WithError(err).WithField(logging.FieldOperation, "parse_transaction").
			Warn("Extraction request failed, returning fallback draft")
		return fallback
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &payload); err != nil {
		// Parse failures and transport failures behave identically; the raw
		// payload is only surfaced in debug logs for observability.
		a.log.WithError(err).WithFields(
			logging.Field{Key: logging.FieldOperation, Value: "parse_transaction"},
			logging.Field{Key: logging.FieldReason, Value: "malformed_json"},
		).Warn("Extraction response unusable, returning fallback draft")
		a.log.WithField("raw_response", text).Debug("Unparseable extraction payload")
		return fallback
	}

	return normalizeDraft(payload, input, now)
}

// normalizeDraft coerces the semi-trusted payload into the strict draft
// shape, defaulting every missing or unusable field.
func normalizeDraft(payload draftPayload, input string, now time.Time) Draft {
	draft := fallbackDraft(input, now)

	if title := strings.TrimSpace(payload.Title); title != "" {
		draft.Title = title
	}

	// Negative amounts are a normalization error; the sign belongs to Type.
	draft.Amount = models.ParseAmount(payload.Amount.String()).Abs()

	draft.Type = models.ParseTransactionType(payload.Type)
	draft.Category = models.ParseCategory(payload.Category)

	if parsed, err := dateutils.ParseDateString(payload.Date); err == nil {
		draft.Date = dateutils.ToISOTimestamp(parsed)
	}

	return draft
}

// fallbackDraft is the deterministic result for any extraction failure.
func fallbackDraft(input string, now time.Time) Draft {
	return Draft{
		Title:    input,
		Amount:   models.ParseAmount("0"),
		Type:     models.TypeExpense,
		Category: models.CategoryOther,
		Date:     dateutils.ToISOTimestamp(now),
	}
}

// stripCodeFences removes Markdown code fences the model may wrap around JSON
// despite instructions.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening line (``` or ```json).
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	} else {
		return s
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
