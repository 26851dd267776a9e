package advisor

import (
	"fmt"
	"strings"
	"time"

	"finai/internal/dateutils"
	"finai/internal/ledger"
	"finai/internal/models"
)

// buildExtractionPrompt asks the model to turn a free-form financial note into
// the strict five-field draft shape. The current date is included so relative
// expressions ("yesterday", "today") can be resolved by the model.
func buildExtractionPrompt(input string, now time.Time) string {
	categories := make([]string, 0, len(models.KnownCategories()))
	for _, c := range models.KnownCategories() {
		categories = append(categories, c.String())
	}

	return fmt.Sprintf(`Analyze the following financial entry text and extract its data as JSON.
Entry: %q
Today is: %s

Rules:
1. Decide whether it is INCOME or EXPENSE.
2. Categorize using one of: %s.
3. Extract the numeric amount. If none is present, estimate or use 0.
4. Extract an ISO date (YYYY-MM-DD). Resolve relative dates like "yesterday"; if no date is mentioned, use today.
5. Write a short, clear title.

Output STRICT JSON only (no comments, no extra text).
Do NOT wrap the response in code fences.
The object must have exactly these fields:
{"title": string, "amount": number, "type": "INCOME"|"EXPENSE", "category": string, "date": string}`,
		input,
		dateutils.ToISODate(now),
		strings.Join(categories, ", "))
}

// buildAdvicePrompt summarizes the session for the chat request. Totals are
// precomputed and only the most recent transactions are inlined to cap the
// payload size.
func buildAdvicePrompt(txs []models.Transaction, profile models.UserProfile, question string, historyLimit int) string {
	recent := txs
	if historyLimit > 0 && len(recent) > historyLimit {
		recent = recent[len(recent)-historyLimit:]
	}

	var lines strings.Builder
	for _, tx := range recent {
		lines.WriteString(fmt.Sprintf("%s: %s (%s)\n", tx.Date, tx.Title, tx.Amount.String()))
	}

	totalIncome := ledger.TotalIncome(txs)
	totalExpense := ledger.TotalExpense(txs)

	return fmt.Sprintf(`You are FinAI, an empathetic, smart and organized personal finance assistant.
User data:
- Declared monthly income: %s
- Savings goal: %s
- Total income (history): %s
- Total expenses (history): %s
- Current balance: %s

Recent transactions:
%s
Answer the user's question clearly, practically and in a friendly tone. Use
Markdown formatting (bold, lists) for readability. If the user asks about
cutting costs, analyze the expenses above. If the user asks about concepts,
explain them simply. Be motivating but realistic.

User question: %s`,
		profile.MonthlyIncome.String(),
		profile.SavingsGoal.String(),
		totalIncome.String(),
		totalExpense.String(),
		totalIncome.Sub(totalExpense).String(),
		lines.String(),
		question)
}

// buildReportPrompt embeds the serialized ledger and the report outline.
func buildReportPrompt(serialized string) string {
	return fmt.Sprintf(`Generate a detailed financial report in Markdown based on these JSON transactions: %s

The report must contain:
1. **Period Summary**: total spent vs earned.
2. **Category Analysis**: where the user spent the most.
3. **Identified Patterns**: recurring or superfluous spending.
4. **Optimization Tips**: 3 concrete suggestions to save money.
5. **Conclusion**: one motivating sentence about the user's financial health.`, serialized)
}
