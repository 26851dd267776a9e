package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"finai/internal/logging"
	"finai/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter used for CSV export. Configurable via the export section of the
// config file.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// ExportCSV writes the ledger to a CSV file. Column layout follows the csv
// tags on models.Transaction.
func ExportCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ImportCSV reads transactions from a CSV file previously produced by
// ExportCSV.
func ImportCSV(csvFile string) ([]models.Transaction, error) {
	log.WithField(logging.FieldFile, csvFile).Info("Reading transactions from CSV")

	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return transactions, nil
}
