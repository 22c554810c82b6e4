// internal/workers/nlu/emit-documents/models.go
package emitdocuments

import (
	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/models"
)

type Input struct {
	Examples  *models.IntentGroup
	Responses *models.IntentGroup
}

// Result is the outcome of writing one document.
type Result struct {
	Document string
	Path     string
	Outcome  errors.Outcome
}

type Output struct {
	Results []Result
}

// Failed returns the results whose document was not written.
func (o *Output) Failed() []Result {
	var out []Result
	for _, r := range o.Results {
		if !r.Outcome.OK() {
			out = append(out, r)
		}
	}
	return out
}
