package itemdb

// DefaultPath is where the osrsreboxed-db checkout keeps the full item dump.
const DefaultPath = "osrsreboxed-db/docs/items-complete.json"

// SchemaName names the embedded schema the item file is validated against.
const SchemaName = "schemas/items-complete.schema.json"

const (
	ErrFmtReadFailed   = "%w: read %s: %w"
	ErrFmtSchemaFailed = "%w: %s does not match schema: %w"
	ErrFmtParseFailed  = "%w: parse %s: %w"
)

const (
	LogMsgLoaded       = "Item database loaded"
	LogMsgLoadFailed   = "Item database unavailable, item names will be omitted"
	LogMsgSkippedEntry = "Skipped item db entry"
)

// Reasons logged for skipped entries
const (
	SkipReasonNonNumericID  = "non-numeric id"
	SkipReasonNotAnObject   = "not an object"
	SkipReasonMissingName   = "missing name"
	SkipReasonNameNotString = "name is not a string"
)
