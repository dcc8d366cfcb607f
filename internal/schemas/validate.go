// Package schemas provides JSON Schema validation for the artifacts the matcher exports.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	analysisStateSchemaID = "https://github.com/jonathan/resume-matcher/schemas/analysis_state.schema.json"
	batchReportSchemaID   = "https://github.com/jonathan/resume-matcher/schemas/batch_report.schema.json"
)

//go:embed analysis_state.schema.json
var analysisStateSchema string

//go:embed batch_report.schema.json
var batchReportSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	compileOnce  sync.Once
	stateSchema  *gojsonschema.Schema
	reportSchema *gojsonschema.Schema
	compileErr   error
)

func compiled() (*gojsonschema.Schema, *gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		stateSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(analysisStateSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: analysisStateSchemaID, Message: "invalid schema", Cause: compileErr}
			return
		}

		// The report schema references the state schema by $id.
		sl := gojsonschema.NewSchemaLoader()
		if err := sl.AddSchema(analysisStateSchemaID, gojsonschema.NewStringLoader(analysisStateSchema)); err != nil {
			compileErr = &SchemaLoadError{Path: analysisStateSchemaID, Message: "failed to register schema", Cause: err}
			return
		}
		reportSchema, compileErr = sl.Compile(gojsonschema.NewStringLoader(batchReportSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: batchReportSchemaID, Message: "invalid schema", Cause: compileErr}
		}
	})
	return stateSchema, reportSchema, compileErr
}

// AnalysisStateSchema returns the embedded AnalysisState schema document
func AnalysisStateSchema() string {
	return analysisStateSchema
}

// ValidateAnalysisState marshals state and validates it against the AnalysisState schema
func ValidateAnalysisState(state *types.AnalysisState) error {
	if state == nil {
		return fmt.Errorf("analysis state is nil")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis state: %w", err)
	}
	return ValidateAnalysisStateJSON(data)
}

// ValidateAnalysisStateJSON validates raw JSON against the AnalysisState schema
func ValidateAnalysisStateJSON(data []byte) error {
	schema, _, err := compiled()
	if err != nil {
		return err
	}
	return validate(schema, gojsonschema.NewBytesLoader(data))
}

// ValidateBatchReportJSON validates a serialized batch report, including every embedded analysis
func ValidateBatchReportJSON(data []byte) error {
	_, schema, err := compiled()
	if err != nil {
		return err
	}
	return validate(schema, gojsonschema.NewBytesLoader(data))
}

func validate(schema *gojsonschema.Schema, document gojsonschema.JSONLoader) error {
	result, err := schema.Validate(document)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
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
