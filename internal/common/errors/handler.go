package errors

// Decision is what the caller does after a stage reports its outcome.
type Decision int

const (
	DecisionContinue Decision = iota
	DecisionAbort
)

func (d Decision) String() string {
	if d == DecisionAbort {
		return "abort"
	}
	return "continue"
}

// Outcome is the explicit result of one stage: Err is nil on success.
type Outcome struct {
	Stage string
	Err   *StandardError
}

func Success(stage string) Outcome {
	return Outcome{Stage: stage}
}

func Failure(stage string, err error) Outcome {
	return Outcome{Stage: stage, Err: AsStandardError(err)}
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

type ErrorHandler struct {
	logger Logger
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs a failed outcome and decides whether the run goes on.
// Successful outcomes always continue and are not logged here.
func (h *ErrorHandler) Handle(outcome Outcome) Decision {
	if outcome.OK() {
		return DecisionContinue
	}

	decision := DecisionContinue
	if outcome.Err.Fatal {
		decision = DecisionAbort
	}
	h.logError(outcome, decision)
	return decision
}

func (h *ErrorHandler) logError(outcome Outcome, decision Decision) {
	stdErr := outcome.Err
	fields := map[string]interface{}{
		"stage":         outcome.Stage,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"decision":      decision.String(),
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}
	h.logger.Error("stage failed", fields)
}
