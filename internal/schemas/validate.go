// Package schemas provides JSON Schema validation for LLM-produced payloads.
// Model replies are untrusted input; validating them against a schema before
// unmarshalling keeps a malformed reply from partially applying.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// TailoredResume is the schema for the tailoring engine's expected reply.
const TailoredResume = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "summary": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}},
    "work_experiences": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "location": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "responsibilities": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// ExtractedResume is the schema for the LLM extraction tier's reply in the
// ingestion parser chain.
const ExtractedResume = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "personal": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "title": {"type": "string"},
        "summary": {"type": "string"},
        "phone": {"type": "string"},
        "email": {"type": "string"},
        "linkedin": {"type": "string"}
      }
    },
    "experience": {"type": "array", "items": {"type": "object"}},
    "education": {"type": "array", "items": {"type": "object"}},
    "skills": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a JSON document against one of the schema constants.
// Returns a *ValidationError listing every violated field, or an error if
// the document or schema cannot be parsed at all.
func Validate(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
