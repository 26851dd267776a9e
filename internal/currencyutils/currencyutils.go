// Package currencyutils provides common currency and decimal operations used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency codes and symbols stripped from amount input. The entry form
// accepts whatever the user (or the model) writes in front of a number.
var currencyTokens = strings.NewReplacer(
	"R$", "",
	"BRL", "",
	"USD", "",
	"EUR", "",
	"CHF", "",
)

var currencySymbols = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles various formats like "1,234.56", "1.234,56", "1234.56", "1234,56"
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a standard
// format that decimal.NewFromString can parse. Handles patterns like
// "R$ 1.234,56", "€1.234,56", "$1,234.56", "1 234,56", "1'234.56".
func StandardizeAmount(amountStr string) string {
	// Remove currency codes, symbols and whitespace
	amountStr = currencyTokens.Replace(amountStr)
	amountStr = currencySymbols.ReplaceAllString(amountStr, "")

	// Handle European format (1.234,56) -> (1234.56)
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		// Determine if the lone comma is a decimal or thousand separator
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Remove apostrophes used as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount formats a decimal amount with two decimal places and the given
// currency code, e.g. "BRL 1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formattedAmount := amount.StringFixed(2)
	if currency == "" {
		return formattedAmount
	}
	return fmt.Sprintf("%s %s", currency, formattedAmount)
}
