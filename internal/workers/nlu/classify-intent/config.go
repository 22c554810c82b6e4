// internal/workers/nlu/classify-intent/config.go
package classifyintent

import (
	"fmt"
	"regexp"
	"strings"

	"chatbot-trainprep/internal/common/config"
	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/models"
)

const DefaultFallbackIntent = "ask_general"

type Config struct {
	Rules          []models.KeywordRule
	FallbackIntent string
}

// LoadConfig builds the classifier config from the application config,
// falling back to the built-in table when no rules are configured.
func LoadConfig(cfg config.ClassifierConfig) (*Config, error) {
	fallback := CleanIntentName(cfg.FallbackIntent)
	if fallback == "" {
		fallback = DefaultFallbackIntent
	}

	if len(cfg.Rules) == 0 {
		return &Config{Rules: DefaultRules(), FallbackIntent: fallback}, nil
	}

	rules, err := RulesFromConfig(cfg.Rules)
	if err != nil {
		return nil, err
	}
	return &Config{Rules: rules, FallbackIntent: fallback}, nil
}

// RulesFromConfig normalizes configured rules, keeping their order.
func RulesFromConfig(in []config.KeywordRuleConfig) ([]models.KeywordRule, error) {
	rules := make([]models.KeywordRule, 0, len(in))
	for i, r := range in {
		keyword := strings.TrimSpace(r.Keyword)
		intent := CleanIntentName(r.Intent)
		if keyword == "" || intent == "" {
			return nil, errors.NewInvalidConfigError(fmt.Sprintf(
				"classifier rule %d: keyword and intent are required (got %q -> %q)", i, r.Keyword, r.Intent))
		}
		rules = append(rules, models.KeywordRule{Keyword: keyword, Intent: intent})
	}
	return rules, nil
}

var invalidIntentChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// CleanIntentName collapses every run of characters outside [A-Za-z0-9_]
// into one underscore and trims underscores from both ends.
func CleanIntentName(name string) string {
	return strings.Trim(invalidIntentChars.ReplaceAllString(name, "_"), "_")
}

// DefaultRules is the built-in cardiology FAQ table. A phrase must come
// before every shorter keyword it contains, otherwise the shorter keyword
// shadows it: "heart attack" before "heart", "high blood pressure" before
// "hi", "goodbye" before "bye".
func DefaultRules() []models.KeywordRule {
	return []models.KeywordRule{
		{Keyword: "heart attack", Intent: "ask_heart_attack"},
		{Keyword: "myocardial infarction", Intent: "ask_heart_attack"},
		{Keyword: "coronary artery disease", Intent: "ask_cad"},
		{Keyword: "rheumatic heart disease", Intent: "ask_rheumatic_heart_disease"},
		{Keyword: "valvular heart disease", Intent: "ask_valvular_heart_disease"},
		{Keyword: "congenital heart disease", Intent: "ask_congenital_heart_disease"},
		{Keyword: "peripheral artery disease", Intent: "ask_pad"},
		{Keyword: "high blood pressure", Intent: "ask_hypertension"},
		{Keyword: "hypertension", Intent: "ask_hypertension"},
		{Keyword: "aortic aneurysm", Intent: "ask_aortic_aneurysm"},
		{Keyword: "cardiomyopathy", Intent: "ask_cardiomyopathy"},
		{Keyword: "arrhythmia", Intent: "ask_arrhythmia"},
		{Keyword: "endocarditis", Intent: "ask_endocarditis"},
		{Keyword: "pericarditis", Intent: "ask_pericarditis"},
		{Keyword: "stroke", Intent: "ask_stroke"},
		{Keyword: "heart", Intent: "ask_heart_health"},
		{Keyword: "pain", Intent: "ask_pain"},
		{Keyword: "test", Intent: "ask_testing"},
		{Keyword: "family", Intent: "ask_family"},
		{Keyword: "pad", Intent: "ask_pad"},
		{Keyword: "hello", Intent: "greet"},
		{Keyword: "goodbye", Intent: "goodbye"},
		{Keyword: "bye", Intent: "goodbye"},
		{Keyword: "hi", Intent: "greet"},
	}
}
