package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// SchemaValidator validates JSON documents against named JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	source fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that reads schemas by name from source.
// Packages usually pass an embed.FS holding their schema files.
func NewSchemaValidator(source fs.FS) SchemaValidator {
	return &validator{
		source:   source,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFailed, dataPath, err)
	}

	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFailed, schemaName, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf(ErrMsgParseDataFailed, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles a schema once and caches it by name
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.source, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(raw, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// Violation is one failed schema keyword.
type Violation struct {
	// Location holds the path tokens of the failing value, empty for the
	// document root.
	Location []string
	Keyword  string
	// Missing lists the absent properties of a failed "required" keyword.
	Missing []string
}

// ViolationError is returned when a document does not match its schema.
// It unwraps to ErrSchemaViolation.
type ViolationError struct {
	Violations []Violation
	lines      []string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s:\n%s", ErrSchemaViolation, strings.Join(e.lines, "\n"))
}

func (e *ViolationError) Unwrap() error {
	return ErrSchemaViolation
}

func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	out := &ViolationError{}
	collectErrors(validationErr, out)
	return out
}

// collectErrors renders every node of the error tree and records the leaves
// as violations.
func collectErrors(err *jsonschema.ValidationError, out *ViolationError) {
	if msg := formatError(err); msg != "" {
		out.lines = append(out.lines, msg)
	}
	if len(err.Causes) == 0 {
		out.Violations = append(out.Violations, newViolation(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, out)
	}
}

func newViolation(err *jsonschema.ValidationError) Violation {
	v := Violation{Location: err.InstanceLocation}
	if err.ErrorKind == nil {
		return v
	}
	v.Keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	if required, ok := err.ErrorKind.(*kind.Required); ok {
		v.Missing = required.Missing
	}
	return v
}

// formatError renders one failure as "at /path: keyword validation failed".
func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
