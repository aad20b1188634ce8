package validation

import "errors"

// ErrSchemaViolation wraps every document that fails its schema
var ErrSchemaViolation = errors.New("schema validation failed")

const (
	ErrMsgReadDataFailed   = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed = "failed to load schema %s: %w"
	ErrMsgParseDataFailed  = "failed to parse JSON data: %w"
)
