// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"finai/internal/currencyutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a money movement.
type TransactionType string

const (
	// TypeIncome marks money coming into the ledger.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense marks money leaving the ledger.
	TypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType normalizes free-form type input. Anything that is not
// recognizably income is treated as an expense, matching the entry-form policy
// of coercing rather than rejecting user input.
func ParseTransactionType(s string) TransactionType {
	if strings.EqualFold(strings.TrimSpace(s), string(TypeIncome)) {
		return TypeIncome
	}
	return TypeExpense
}

// Transaction represents a single dated money movement. A transaction is
// immutable once created: it is appended to the session ledger and never
// mutated or deleted.
type Transaction struct {
	ID       string          `json:"id" yaml:"id" csv:"ID"`
	Title    string          `json:"title" yaml:"title" csv:"Title"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount" csv:"Amount"`
	Type     TransactionType `json:"type" yaml:"type" csv:"Type"`
	Category Category        `json:"category" yaml:"category" csv:"Category"`
	// Date is an ISO-8601 timestamp (date with optional time part). It is kept
	// as a string because it is both displayed verbatim and parsed for
	// calendar-day bucketing.
	Date string `json:"date" yaml:"date" csv:"Date"`
}

// NewTransaction assembles a transaction with a fresh ID. The amount is
// coerced to a non-negative value; the sign of a movement lives in Type,
// never in Amount.
func NewTransaction(title string, amount decimal.Decimal, tt TransactionType, category Category, date string) Transaction {
	return Transaction{
		ID:       uuid.New().String(),
		Title:    title,
		Amount:   amount.Abs(),
		Type:     tt,
		Category: category,
		Date:     date,
	}
}

// IsIncome returns true if the transaction adds money to the ledger.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if the transaction removes money from the ledger.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// ParsedDate parses the transaction's ISO-8601 date string. It accepts a full
// RFC 3339 timestamp or a bare calendar date.
func (t Transaction) ParsedDate() (time.Time, error) {
	return ParseISODate(t.Date)
}

// ParseISODate parses an ISO-8601 date string with or without a time part.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// ParseAmount parses a string amount to decimal.Decimal, tolerating currency
// symbols, thousand separators and comma decimal points. Unparseable input
// yields zero rather than an error; the entry form never blocks on a bad
// amount.
func ParseAmount(amountStr string) decimal.Decimal {
	dec, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
