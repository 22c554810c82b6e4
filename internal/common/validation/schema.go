package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Document kinds with a registered shape schema.
const (
	DocumentNLU     = "nlu"
	DocumentDomain  = "domain"
	DocumentStories = "stories"
	DocumentRules   = "rules"
)

// Only the basic structural shape is checked; the consuming framework owns
// the full schema.
const stepsSchema = `{
	"type": "array",
	"minItems": 2,
	"maxItems": 2,
	"items": [
		{"type": "object", "required": ["intent"], "properties": {"intent": {"type": "string", "minLength": 1}}},
		{"type": "object", "required": ["action"], "properties": {"action": {"type": "string", "pattern": "^utter_"}}}
	]
}`

var documentSchemas = map[string]string{
	DocumentNLU: `{
		"type": "object",
		"required": ["version", "nlu"],
		"properties": {
			"version": {"type": "string", "minLength": 1},
			"nlu": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["intent", "examples"],
					"properties": {
						"intent": {"type": "string", "minLength": 1},
						"examples": {"type": "string"}
					}
				}
			}
		}
	}`,
	DocumentDomain: `{
		"type": "object",
		"required": ["version", "intents", "responses"],
		"properties": {
			"version": {"type": "string", "minLength": 1},
			"intents": {"type": "array", "items": {"type": "string", "minLength": 1}},
			"responses": {
				"type": "object",
				"propertyNames": {"pattern": "^utter_"},
				"additionalProperties": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["text"],
						"properties": {"text": {"type": "string"}}
					}
				}
			}
		}
	}`,
	DocumentStories: `{
		"type": "object",
		"required": ["version", "stories"],
		"properties": {
			"version": {"type": "string", "minLength": 1},
			"stories": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["story", "steps"],
					"properties": {"story": {"type": "string"}, "steps": ` + stepsSchema + `}
				}
			}
		}
	}`,
	DocumentRules: `{
		"type": "object",
		"required": ["version", "rules"],
		"properties": {
			"version": {"type": "string", "minLength": 1},
			"rules": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["rule", "steps"],
					"properties": {"rule": {"type": "string"}, "steps": ` + stepsSchema + `}
				}
			}
		}
	}`,
}

// ValidateDocument checks doc (any JSON-marshalable value) against the shape
// schema registered for kind.
func ValidateDocument(kind string, doc interface{}) (*ValidationResult, error) {
	schemaJSON, ok := documentSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("no schema registered for document %q", kind)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			return true
		}
	}
	return false
}
