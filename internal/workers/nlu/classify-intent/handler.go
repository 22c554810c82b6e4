package classifyintent

import (
	"strings"

	"chatbot-trainprep/internal/models"
)

const TaskType = "classify-intent"

// Classifier assigns exactly one intent to a question by keyword lookup.
// It holds no state beyond its immutable table and is safe to share.
type Classifier struct {
	rules    []models.KeywordRule
	lowered  []string
	fallback string
}

func NewClassifier(config *Config) *Classifier {
	fallback := config.FallbackIntent
	if fallback == "" {
		fallback = DefaultFallbackIntent
	}

	rules := make([]models.KeywordRule, len(config.Rules))
	copy(rules, config.Rules)

	lowered := make([]string, len(rules))
	for i, r := range rules {
		lowered[i] = strings.ToLower(r.Keyword)
	}

	return &Classifier{rules: rules, lowered: lowered, fallback: fallback}
}

// Classify returns the intent of the first rule whose keyword occurs in the
// question, ignoring case, or the fallback intent when none does.
func (c *Classifier) Classify(question string) string {
	q := strings.ToLower(question)
	for i, kw := range c.lowered {
		if kw != "" && strings.Contains(q, kw) {
			return c.rules[i].Intent
		}
	}
	return c.fallback
}

func (c *Classifier) Fallback() string {
	return c.fallback
}

// Rules returns a copy of the table in match order.
func (c *Classifier) Rules() []models.KeywordRule {
	out := make([]models.KeywordRule, len(c.rules))
	copy(out, c.rules)
	return out
}
