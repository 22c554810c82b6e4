// internal/workers/nlu/spell-correct/models.go
package spellcorrect

import "chatbot-trainprep/internal/common/errors"

// Message is one training example or runtime message. Text is rewritten in
// place by the component.
type Message struct {
	Text   string `json:"text"`
	Intent string `json:"intent,omitempty"`
}

type TrainingData struct {
	TrainingExamples []*Message
}

// Report summarizes one pass. Failures holds one entry per message whose
// text was left unchanged because correction failed.
type Report struct {
	Messages  int
	Batches   int
	Corrected int
	Failures  []*errors.StandardError
}
