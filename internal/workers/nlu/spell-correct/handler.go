package spellcorrect

import (
	"context"
	"fmt"

	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/common/logger"
)

const (
	TaskType = "spell-correct"

	previewRunes = 50
)

// Corrector returns the corrected form of a text.
type Corrector interface {
	Correct(text string) (string, error)
}

// CorrectorFunc adapts a plain function to Corrector.
type CorrectorFunc func(text string) (string, error)

func (f CorrectorFunc) Correct(text string) (string, error) {
	return f(text)
}

// Component is the spell-correction preprocessing stage. Train and Process
// share one batching routine; batches run strictly in order.
type Component struct {
	config    *Config
	corrector Corrector
	logger    logger.Logger
}

func NewComponent(config *Config, corrector Corrector, log logger.Logger) *Component {
	config = normalize(config)
	c := &Component{
		config:    config,
		corrector: corrector,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
	c.logger.Debug("component configured", map[string]interface{}{
		"batchSize": config.BatchSize,
		"threshold": config.Threshold,
	})
	return c
}

// Train corrects the text of every training example in place.
func (c *Component) Train(ctx context.Context, data *TrainingData) (*Report, error) {
	return c.run(ctx, "train", data.TrainingExamples)
}

// Process corrects a batch of runtime messages in place and returns the
// same slice.
func (c *Component) Process(ctx context.Context, messages []*Message) ([]*Message, *Report, error) {
	report, err := c.run(ctx, "process", messages)
	return messages, report, err
}

func (c *Component) run(ctx context.Context, phase string, messages []*Message) (*Report, error) {
	total := len(messages)
	size := c.config.BatchSize
	batches := (total + size - 1) / size

	report := &Report{Messages: total}
	for start := 0; start < total; start += size {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		end := min(start+size, total)
		c.logger.Info("processing batch", map[string]interface{}{
			"phase":   phase,
			"batch":   report.Batches + 1,
			"batches": batches,
		})
		c.processBatch(messages[start:end], report)
		report.Batches++
	}

	c.logger.Info("spell correction finished", map[string]interface{}{
		"phase":     phase,
		"messages":  total,
		"corrected": report.Corrected,
		"failed":    len(report.Failures),
	})
	return report, nil
}

func (c *Component) processBatch(batch []*Message, report *Report) {
	for _, msg := range batch {
		if msg == nil || msg.Text == "" {
			continue
		}
		corrected, err := c.correct(msg.Text)
		if err != nil {
			stdErr := errors.NewSpellCorrectionError(preview(msg.Text), err)
			report.Failures = append(report.Failures, stdErr)
			c.logger.Error("error processing text", map[string]interface{}{
				"text":  stdErr.Metadata["preview"],
				"error": err.Error(),
			})
			continue
		}
		if corrected != msg.Text {
			report.Corrected++
		}
		msg.Text = corrected
	}
}

// correct turns a corrector panic into an error so that one bad text never
// aborts the pass.
func (c *Component) correct(text string) (corrected string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrector panic: %v", r)
		}
	}()
	return c.corrector.Correct(text)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes])
}
