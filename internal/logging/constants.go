package logging

// Standardized field names for structured logging.
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldPeriod        = "period"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldTransactionID = "transaction_id"
	FieldIndex         = "index"
	FieldBalance       = "balance"
	FieldAlert         = "alert"
	FieldCount         = "count"
	FieldFile          = "file_path"
	FieldFormat        = "format"
	FieldError         = "error"
)

// Operation names used with FieldOperation.
const (
	OpAddIncome    = "add_income"
	OpAddExpense   = "add_expense"
	OpRemove       = "remove_transaction"
	OpSetLimit     = "set_limit"
	OpSetSavings   = "set_savings"
	OpClearSavings = "clear_savings"
	OpAddNote      = "add_note"
	OpAddReminder  = "add_reminder"
	OpImport       = "import"
	OpExport       = "export"
)
