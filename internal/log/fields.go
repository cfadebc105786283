package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldReportKind  = "report_kind"
	FieldReportRef   = "report_ref"
	FieldCategory    = "category"
	FieldCard        = "card_last_digits"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
	FieldSymbols     = "symbols"
	FieldRowCount    = "row_count"
	FieldAmountCents = "amount_cents"
	FieldDuration    = "duration_ms"
	FieldSheetsRef   = "sheets_ref"
	FieldBackend     = "backend"
)

// Components defines standard component names.
const (
	ComponentApp      = "app"
	ComponentReport   = "report"
	ComponentLedger   = "ledger"
	ComponentMarket   = "market"
	ComponentArchive  = "archive"
	ComponentAMQP     = "amqp"
	ComponentSettings = "settings"
)

// Operations defines standard operation names.
const (
	OpGenerate = "generate"
	OpFetch    = "fetch"
	OpParse    = "parse"
	OpFilter   = "filter"
	OpArchive  = "archive"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
