package itemdb

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/logger"
	"github.com/osse101/RuneStatus_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// record is the subset of an osrsreboxed item record we read. Name is left
// untyped so one malformed entry is skipped instead of failing the file.
type record struct {
	Name interface{} `json:"name"`
}

// Loader reads item tables from disk.
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that validates files against the embedded schema.
func NewLoader() *Loader {
	return &Loader{schemaValidator: validation.NewSchemaValidator(schemaFS)}
}

// Load reads an items-complete.json file. The document must be an object
// keyed by item id; entries whose key is not an integer, that are not
// objects, or whose name is missing or not a string are skipped.
func (l *Loader) Load(ctx context.Context, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadFailed, domain.ErrItemDBUnavailable, path, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaFailed, domain.ErrInvalidItemDB, path, err)
	}

	return parse(ctx, path, data)
}

// Load reads path with a fresh Loader.
func Load(ctx context.Context, path string) (*Table, error) {
	return NewLoader().Load(ctx, path)
}

// LoadOrEmpty is Load that never fails: problems are logged and an empty
// table is returned so the service can still run without names.
func (l *Loader) LoadOrEmpty(ctx context.Context, path string) *Table {
	table, err := l.Load(ctx, path)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLoadFailed, "path", path, "error", err)
		return Empty()
	}
	logger.FromContext(ctx).Info(LogMsgLoaded, "path", path, "items", table.Len())
	return table
}

func parse(ctx context.Context, path string, data []byte) (*Table, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrFmtParseFailed, domain.ErrInvalidItemDB, path, err)
	}

	log := logger.FromContext(ctx)
	names := make(map[int]string, len(raw))
	for key, entry := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			log.Debug(LogMsgSkippedEntry, "key", key, "reason", SkipReasonNonNumericID)
			continue
		}
		var rec record
		if err := json.Unmarshal(entry, &rec); err != nil {
			log.Debug(LogMsgSkippedEntry, "key", key, "reason", SkipReasonNotAnObject)
			continue
		}
		switch name := rec.Name.(type) {
		case string:
			names[id] = name
		case nil:
			log.Debug(LogMsgSkippedEntry, "key", key, "reason", SkipReasonMissingName)
		default:
			log.Debug(LogMsgSkippedEntry, "key", key, "reason", SkipReasonNameNotString)
		}
	}

	return &Table{names: names}, nil
}
