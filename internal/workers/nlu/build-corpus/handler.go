package buildcorpus

import (
	"context"
	"strings"

	"chatbot-trainprep/internal/common/logger"
	"chatbot-trainprep/internal/models"
)

const TaskType = "build-corpus"

// IntentClassifier is the part of the classifier the builder needs.
type IntentClassifier interface {
	Classify(question string) string
}

type Handler struct {
	classifier IntentClassifier
	logger     logger.Logger
}

func NewHandler(classifier IntentClassifier, log logger.Logger) *Handler {
	return &Handler{
		classifier: classifier,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute groups the rows by intent in one pass. A row with a blank
// question or a blank answer is dropped entirely.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	out := &Output{
		Examples:  models.NewIntentGroup(),
		Responses: models.NewIntentGroup(),
	}

	for _, row := range input.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		question := strings.TrimSpace(row.Question)
		answer := strings.TrimSpace(row.Answer)
		if question == "" || answer == "" {
			out.Skipped++
			h.logger.Debug("row skipped", map[string]interface{}{
				"line":          row.Line,
				"blankQuestion": question == "",
				"blankAnswer":   answer == "",
			})
			continue
		}

		intent := h.classifier.Classify(question)
		out.Examples.Append(intent, question)
		out.Responses.Append(intent, answer)
		out.Processed++
	}

	h.logger.Info("corpus built", map[string]interface{}{
		"rows":      len(input.Rows),
		"processed": out.Processed,
		"skipped":   out.Skipped,
		"intents":   out.Examples.Len(),
	})

	return out, nil
}
