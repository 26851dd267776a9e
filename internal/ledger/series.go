package ledger

import (
	"sort"
	"time"

	"finai/internal/logging"
	"finai/internal/models"

	"github.com/shopspring/decimal"
)

// DayKey identifies a calendar day independently of display locale. Bucketing
// on (year, month, day) instead of a formatted date string keeps the trend
// series stable across locales and timezones.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DayKeyOf derives the calendar-day key for a point in time.
func DayKeyOf(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Before reports whether k falls on an earlier calendar day than other.
func (k DayKey) Before(other DayKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// Time returns the midnight UTC instant of the day.
func (k DayKey) Time() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC)
}

// DailyFlow is one bucket of the trend series: income and expense summed
// separately for a single calendar day.
type DailyFlow struct {
	Day     DayKey
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailySeries groups transactions by calendar day and sums income and expense
// per bucket. The result is ordered ascending by day. When window > 0 the
// series is truncated to the most recent window buckets.
//
// A transaction with an unparseable date is a data error; it is skipped with a
// warning so a single bad record never aborts the whole series.
func DailySeries(txs []models.Transaction, window int) []DailyFlow {
	buckets := make(map[DayKey]*DailyFlow)
	for _, tx := range txs {
		date, err := tx.ParsedDate()
		if err != nil {
			log.WithError(err).WithFields(
				logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
				logging.Field{Key: logging.FieldDate, Value: tx.Date},
			).Warn("Skipping transaction with unparseable date")
			continue
		}

		key := DayKeyOf(date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &DailyFlow{Day: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = bucket
		}
		if tx.IsIncome() {
			bucket.Income = bucket.Income.Add(tx.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
	}

	series := make([]DailyFlow, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day.Before(series[j].Day)
	})

	if window > 0 && len(series) > window {
		series = series[len(series)-window:]
	}
	return series
}
