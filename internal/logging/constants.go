package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldOperation     = "operation"
	FieldReason        = "reason"
	FieldCount         = "count"
	FieldDate          = "date"
	FieldModel         = "model"
	FieldFile          = "file_path"
)
