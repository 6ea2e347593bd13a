// Package schemas provides JSON Schema validation for the engine's
// configuration artifacts. The schemas are embedded at compile time.
package schemas

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Names of the embedded schemas.
const (
	TaxonomySchema = "taxonomy.schema.json"
	ConfigSchema   = "engine_config.schema.json"
)

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the field-level failures for one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	msg := "validation failed:"
	for i, err := range ve.Errors {
		msg += fmt.Sprintf("\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return msg
}

// SchemaLoadError reports a problem with the schema itself rather than the document.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateFile validates a JSON document on disk against one of the embedded
// schemas. A well-formed document that violates the schema yields a
// *ValidationError with per-field detail.
func ValidateFile(schemaName, docPath string) error {
	schemaContent, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Schema: schemaName, Message: "unknown embedded schema", Cause: err}
	}

	absPath, err := filepath.Abs(docPath)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("document not found: %s", absPath)
	}

	docContent, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	return ValidateBytes(schemaName, schemaContent, docContent)
}

// ValidateBytes validates raw JSON content against raw schema content.
func ValidateBytes(schemaName string, schemaContent, docContent []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(docContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: schemaName, Message: "validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
