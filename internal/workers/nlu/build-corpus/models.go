// internal/workers/nlu/build-corpus/models.go
package buildcorpus

import "chatbot-trainprep/internal/models"

type Input struct {
	Rows []models.TrainingRow
}

// Output holds the two groupings. For every intent, Examples and Responses
// have the same length and the Nth example came from the same row as the
// Nth response.
type Output struct {
	Examples  *models.IntentGroup
	Responses *models.IntentGroup
	Processed int
	Skipped   int
}
