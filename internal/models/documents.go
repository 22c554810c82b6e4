// internal/models/documents.go
package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NLUDocument is data/nlu.yml. Examples holds "- question" lines joined by
// newlines, which the framework reads as one block string.
type NLUDocument struct {
	Version string     `json:"version" yaml:"version"`
	NLU     []NLUEntry `json:"nlu" yaml:"nlu"`
}

type NLUEntry struct {
	Intent   string `json:"intent" yaml:"intent"`
	Examples string `json:"examples" yaml:"examples"`
}

// MarshalYAML always writes Examples as a literal block, even when it holds
// a single line.
func (e NLUEntry) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "intent"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Intent},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "examples"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Examples, Style: yaml.LiteralStyle},
		},
	}, nil
}

// DomainDocument is domain.yml as produced from the corpus.
type DomainDocument struct {
	Version   string          `json:"version" yaml:"version"`
	Intents   []string        `json:"intents" yaml:"intents"`
	Responses ResponseCatalog `json:"responses" yaml:"responses"`
}

type ResponseVariant struct {
	Text string `json:"text" yaml:"text"`
}

type ResponseTemplate struct {
	Name     string
	Variants []ResponseVariant
}

// ResponseCatalog is the responses mapping. It is a slice so the
// utter_<intent> keys are written in intent order instead of sorted.
type ResponseCatalog []ResponseTemplate

func (c ResponseCatalog) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, tmpl := range c {
		var value yaml.Node
		variants := tmpl.Variants
		if variants == nil {
			variants = []ResponseVariant{}
		}
		if err := value.Encode(variants); err != nil {
			return nil, fmt.Errorf("encode %s: %w", tmpl.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tmpl.Name}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

func (c *ResponseCatalog) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("responses: expected mapping, got kind %d at line %d", value.Kind, value.Line)
	}
	out := make(ResponseCatalog, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var variants []ResponseVariant
		if err := value.Content[i+1].Decode(&variants); err != nil {
			return fmt.Errorf("responses.%s: %w", value.Content[i].Value, err)
		}
		out = append(out, ResponseTemplate{Name: value.Content[i].Value, Variants: variants})
	}
	*c = out
	return nil
}

func (c ResponseCatalog) MarshalJSON() ([]byte, error) {
	m := make(map[string][]ResponseVariant, len(c))
	for _, tmpl := range c {
		variants := tmpl.Variants
		if variants == nil {
			variants = []ResponseVariant{}
		}
		m[tmpl.Name] = variants
	}
	return json.Marshal(m)
}

// Lookup returns the variants registered under name.
func (c ResponseCatalog) Lookup(name string) ([]ResponseVariant, bool) {
	for _, tmpl := range c {
		if tmpl.Name == name {
			return tmpl.Variants, true
		}
	}
	return nil, false
}

// Step is one story or rule step; exactly one field is set.
type Step struct {
	Intent string `json:"intent,omitempty" yaml:"intent,omitempty"`
	Action string `json:"action,omitempty" yaml:"action,omitempty"`
}

type StoryDocument struct {
	Version string  `json:"version" yaml:"version"`
	Stories []Story `json:"stories" yaml:"stories"`
}

type Story struct {
	Story string `json:"story" yaml:"story"`
	Steps []Step `json:"steps" yaml:"steps"`
}

type RuleDocument struct {
	Version string `json:"version" yaml:"version"`
	Rules   []Rule `json:"rules" yaml:"rules"`
}

type Rule struct {
	Rule  string `json:"rule" yaml:"rule"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// UtterAction is the response/action name bound to an intent.
func UtterAction(intent string) string {
	return "utter_" + intent
}
