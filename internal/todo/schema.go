package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tugas-go/internal/utils"
)

// SchemaURL identifies the embedded collection schema.
const SchemaURL = "https://github.com/nibzard/tugas-go/todos.schema.json"

//go:embed schema/todos.schema.json
var embeddedSchema []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Schema returns the raw embedded JSON Schema.
func Schema() []byte {
	return bytes.Clone(embeddedSchema)
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // path to the error location, e.g. "[2].done"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath is an external JSON Schema file. If empty or unusable,
	// the embedded schema is used.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	SchemaPath string // "" when the embedded schema was used
}

// Validate checks a raw collection document against the JSON Schema.
func Validate(data []byte, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("invalid JSON: %w", err),
		})
		return result
	}

	schema, err := loadSchema(opts.SchemaPath, result)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err)
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

// loadSchema compiles the external schema when one is configured and falls
// back to the embedded schema with a warning otherwise.
func loadSchema(schemaPath string, result *ValidationResult) (*jsonschema.Schema, error) {
	if schemaPath != "" {
		schema, warning := compileExternal(schemaPath)
		if schema != nil {
			result.SchemaPath = schemaPath
			return schema, nil
		}
		result.Warnings = append(result.Warnings, warning)
	}
	return builtinSchema()
}

func compileExternal(schemaPath string) (*jsonschema.Schema, string) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Sprintf("invalid schema path: %v", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Sprintf("schema file not found: %s, using built-in schema", absPath)
		}
		return nil, fmt.Sprintf("failed to read schema file: %v, using built-in schema", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Sprintf("invalid schema file: %v, using built-in schema", err)
	}
	return schema, ""
}

func builtinSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(SchemaURL, bytes.NewReader(embeddedSchema)); err != nil {
			compileErr = fmt.Errorf("load built-in schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(SchemaURL)
	})
	return compiledSchema, compileErr
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
