package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	validSteps := []map[string]string{{"intent": "greet"}, {"action": "utter_greet"}}

	tests := []struct {
		name  string
		kind  string
		doc   interface{}
		valid bool
	}{
		{
			name:  "nlu",
			kind:  DocumentNLU,
			doc:   map[string]interface{}{"version": "3.1", "nlu": []map[string]string{{"intent": "greet", "examples": "- hi"}}},
			valid: true,
		},
		{
			name:  "nlu without version",
			kind:  DocumentNLU,
			doc:   map[string]interface{}{"nlu": []interface{}{}},
			valid: false,
		},
		{
			name: "domain",
			kind: DocumentDomain,
			doc: map[string]interface{}{
				"version":   "3.1",
				"intents":   []string{"greet"},
				"responses": map[string]interface{}{"utter_greet": []map[string]string{{"text": "Hi!"}}},
			},
			valid: true,
		},
		{
			name: "domain response without utter prefix",
			kind: DocumentDomain,
			doc: map[string]interface{}{
				"version":   "3.1",
				"intents":   []string{"greet"},
				"responses": map[string]interface{}{"greet": []map[string]string{{"text": "Hi!"}}},
			},
			valid: false,
		},
		{
			name:  "stories",
			kind:  DocumentStories,
			doc:   map[string]interface{}{"version": "3.1", "stories": []map[string]interface{}{{"story": "Story for greet", "steps": validSteps}}},
			valid: true,
		},
		{
			name: "story with one step",
			kind: DocumentStories,
			doc: map[string]interface{}{"version": "3.1", "stories": []map[string]interface{}{
				{"story": "Story for greet", "steps": validSteps[:1]},
			}},
			valid: false,
		},
		{
			name:  "rules",
			kind:  DocumentRules,
			doc:   map[string]interface{}{"version": "3.1", "rules": []map[string]interface{}{{"rule": "Rule for greet", "steps": validSteps}}},
			valid: true,
		},
		{
			name:  "rules missing list",
			kind:  DocumentRules,
			doc:   map[string]interface{}{"version": "3.1"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateDocument(tt.kind, tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, result.GetErrorMessages())
			if !tt.valid {
				assert.NotEmpty(t, result.GetErrorMessages())
			}
		})
	}
}

func TestValidateDocument_UnknownKind(t *testing.T) {
	_, err := ValidateDocument("slots", map[string]interface{}{})
	assert.Error(t, err)
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Errors: []ValidationError{{Field: "stories.0.steps", Message: "too short"}}}
	assert.True(t, result.HasErrors("stories"))
	assert.True(t, result.HasErrors("stories.0.steps"))
	assert.False(t, result.HasErrors("rules"))
}
