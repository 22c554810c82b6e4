package emitdocuments

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/common/logger"
	"chatbot-trainprep/internal/common/validation"
	"chatbot-trainprep/internal/models"
)

const TaskType = "emit-documents"

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute writes the four documents in order. A failed document does not
// stop the others; every document gets its own Result.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	steps := []struct {
		document string
		path     string
		write    func(string) errors.Outcome
	}{
		{validation.DocumentNLU, h.config.NLUPath, func(p string) errors.Outcome { return h.WriteExamples(input.Examples, p) }},
		{validation.DocumentDomain, h.config.DomainPath, func(p string) errors.Outcome { return h.WriteResponses(input.Responses, p) }},
		{validation.DocumentStories, h.config.StoriesPath, func(p string) errors.Outcome { return h.WriteStories(input.Examples, p) }},
		{validation.DocumentRules, h.config.RulesPath, func(p string) errors.Outcome { return h.WriteRules(input.Examples, p) }},
	}

	out := &Output{Results: make([]Result, 0, len(steps))}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out.Results = append(out.Results, Result{
			Document: step.document,
			Path:     step.path,
			Outcome:  step.write(step.path),
		})
	}
	return out, nil
}

// WriteExamples writes the NLU examples catalog.
func (h *Handler) WriteExamples(examples *models.IntentGroup, path string) errors.Outcome {
	return h.WriteDocument(validation.DocumentNLU, path, BuildNLU(h.config.SchemaVersion, examples))
}

// WriteResponses writes the domain file: the intent list and every recorded
// answer of each intent as a response variant.
func (h *Handler) WriteResponses(responses *models.IntentGroup, path string) errors.Outcome {
	return h.WriteDocument(validation.DocumentDomain, path, BuildDomain(h.config.SchemaVersion, responses))
}

func (h *Handler) WriteStories(examples *models.IntentGroup, path string) errors.Outcome {
	return h.WriteDocument(validation.DocumentStories, path, BuildStories(h.config.SchemaVersion, examples))
}

func (h *Handler) WriteRules(examples *models.IntentGroup, path string) errors.Outcome {
	return h.WriteDocument(validation.DocumentRules, path, BuildRules(h.config.SchemaVersion, examples))
}

func BuildNLU(version string, examples *models.IntentGroup) models.NLUDocument {
	doc := models.NLUDocument{Version: version, NLU: make([]models.NLUEntry, 0, examples.Len())}
	for _, intent := range examples.Labels() {
		doc.NLU = append(doc.NLU, models.NLUEntry{
			Intent:   intent,
			Examples: FormatExamples(examples.Values(intent)),
		})
	}
	return doc
}

var lineBreaks = regexp.MustCompile(`[ \t]*[\r\n]+[ \t]*`)

// FormatExamples renders questions as the "- q" block of an NLU entry.
// Line breaks inside a question are folded to one space so every question
// stays on its own line.
func FormatExamples(questions []string) string {
	lines := make([]string, len(questions))
	for i, q := range questions {
		lines[i] = "- " + lineBreaks.ReplaceAllString(q, " ")
	}
	return strings.Join(lines, "\n")
}

// ParseExamples is the inverse of FormatExamples. Blank lines are dropped.
func ParseExamples(block string) []string {
	var questions []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, strings.TrimSpace(strings.TrimPrefix(line, "-")))
	}
	return questions
}

func BuildDomain(version string, responses *models.IntentGroup) models.DomainDocument {
	doc := models.DomainDocument{
		Version:   version,
		Intents:   responses.Labels(),
		Responses: make(models.ResponseCatalog, 0, responses.Len()),
	}
	for _, intent := range responses.Labels() {
		answers := responses.Values(intent)
		variants := make([]models.ResponseVariant, len(answers))
		for i, a := range answers {
			variants[i] = models.ResponseVariant{Text: a}
		}
		doc.Responses = append(doc.Responses, models.ResponseTemplate{
			Name:     models.UtterAction(intent),
			Variants: variants,
		})
	}
	return doc
}

func BuildStories(version string, examples *models.IntentGroup) models.StoryDocument {
	doc := models.StoryDocument{Version: version, Stories: make([]models.Story, 0, examples.Len())}
	for _, intent := range examples.Labels() {
		doc.Stories = append(doc.Stories, models.Story{
			Story: fmt.Sprintf("Story for %s", intent),
			Steps: intentSteps(intent),
		})
	}
	return doc
}

func BuildRules(version string, examples *models.IntentGroup) models.RuleDocument {
	doc := models.RuleDocument{Version: version, Rules: make([]models.Rule, 0, examples.Len())}
	for _, intent := range examples.Labels() {
		doc.Rules = append(doc.Rules, models.Rule{
			Rule:  fmt.Sprintf("Rule for %s", intent),
			Steps: intentSteps(intent),
		})
	}
	return doc
}

func intentSteps(intent string) []models.Step {
	return []models.Step{
		{Intent: intent},
		{Action: models.UtterAction(intent)},
	}
}

// WriteDocument validates doc against the shape registered for document and
// writes it to path, creating parent directories.
func (h *Handler) WriteDocument(document, path string, doc interface{}) errors.Outcome {
	stage := TaskType + "/" + document

	result, err := validation.ValidateDocument(document, doc)
	if err != nil {
		return errors.Failure(stage, err)
	}
	if !result.Valid {
		return errors.Failure(stage, errors.NewDocumentValidationError(document, result.GetErrorMessages()))
	}

	data, err := Marshal(doc)
	if err != nil {
		return errors.Failure(stage, errors.NewDocumentWriteError(path, err))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Failure(stage, errors.NewDocumentWriteError(path, err))
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Failure(stage, errors.NewDocumentWriteError(path, err))
	}

	h.logger.Info("document written", map[string]interface{}{
		"document": document,
		"path":     path,
		"bytes":    len(data),
	})
	return errors.Success(stage)
}

// Marshal renders doc as block-style UTF-8 YAML with two-space indentation.
func Marshal(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
