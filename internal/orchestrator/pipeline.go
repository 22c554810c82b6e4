package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"chatbot-trainprep/internal/common/config"
	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/common/logger"
	"chatbot-trainprep/internal/common/metrics"
	"chatbot-trainprep/internal/common/observability"
	"chatbot-trainprep/internal/common/spreadsheet"
	"chatbot-trainprep/internal/common/validation"
	"chatbot-trainprep/internal/models"

	buildcorpus "chatbot-trainprep/internal/workers/nlu/build-corpus"
	classifyintent "chatbot-trainprep/internal/workers/nlu/classify-intent"
	emitdocuments "chatbot-trainprep/internal/workers/nlu/emit-documents"
)

const (
	stageRead  = "read-spreadsheet"
	statusOK   = "success"
	statusFail = "failure"
)

var documentLabels = map[string]string{
	validation.DocumentNLU:     "NLU data",
	validation.DocumentDomain:  "Domain data",
	validation.DocumentStories: "Stories data",
	validation.DocumentRules:   "Rules data",
}

// Summary describes one generate run.
type Summary struct {
	RunID         string
	RowsProcessed int
	RowsSkipped   int
	Intents       int
	Written       []string
	Failures      []*errors.StandardError
}

// Pipeline turns the Question/Answer spreadsheet into the four training
// documents. Console markers go to out, structured logs to the logger.
type Pipeline struct {
	cfg        *config.Config
	logger     logger.Logger
	out        io.Writer
	classifier *classifyintent.Classifier
}

func New(cfg *config.Config, log logger.Logger, out io.Writer) (*Pipeline, error) {
	classifierCfg, err := classifyintent.LoadConfig(cfg.Classifier)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:        cfg,
		logger:     log,
		out:        out,
		classifier: classifyintent.NewClassifier(classifierCfg),
	}, nil
}

// Run executes one generate pass. A missing or unreadable spreadsheet aborts
// before any file is written and is returned as the error. Document write
// failures are collected in the summary and do not stop the other documents.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.New().String()
	log := p.logger.WithFields(map[string]interface{}{"runId": runID})
	handler := errors.NewErrorHandler(log)

	recorder := metrics.NewRecorder()
	obs := observability.New(p.cfg.App.Name, recorder.Registry())
	defer func() {
		if err := recorder.WriteTextfile(p.cfg.Metrics.TextfilePath); err != nil {
			log.Warn("metrics textfile not written", map[string]interface{}{"error": err.Error()})
		}
		obs.Shutdown()
	}()

	summary := &Summary{RunID: runID}
	path := p.cfg.Input.Spreadsheet

	log.Info("run started", map[string]interface{}{"spreadsheet": path})

	start := time.Now()
	rows, stdErr := p.readRows(path)
	if stdErr != nil {
		obs.RecordStage(ctx, stageRead, statusFail, time.Since(start))
		if stdErr.Code == errors.ErrCodeSpreadsheetNotFound {
			fmt.Fprintf(p.out, "❌ Excel file '%s' not found!\n", path)
		}
		handler.Handle(errors.Failure(stageRead, stdErr))
		return summary, stdErr
	}
	obs.RecordStage(ctx, stageRead, statusOK, time.Since(start))

	start = time.Now()
	corpus, err := buildcorpus.NewHandler(p.classifier, log).Execute(ctx, &buildcorpus.Input{Rows: rows})
	if err != nil {
		obs.RecordStage(ctx, buildcorpus.TaskType, statusFail, time.Since(start))
		return summary, err
	}
	obs.RecordStage(ctx, buildcorpus.TaskType, statusOK, time.Since(start))

	summary.RowsProcessed = corpus.Processed
	summary.RowsSkipped = corpus.Skipped
	summary.Intents = corpus.Examples.Len()
	recorder.RowsProcessed.Add(float64(corpus.Processed))
	recorder.RowsSkipped.Add(float64(corpus.Skipped))
	for _, intent := range corpus.Examples.Labels() {
		recorder.IntentExamples.WithLabelValues(intent).Set(float64(corpus.Examples.Count(intent)))
	}

	start = time.Now()
	emitter := emitdocuments.NewHandler(emitdocuments.LoadConfig(p.cfg.Output), log)
	emitted, err := emitter.Execute(ctx, &emitdocuments.Input{
		Examples:  corpus.Examples,
		Responses: corpus.Responses,
	})
	status := statusOK
	if err != nil || len(emitted.Failed()) > 0 {
		status = statusFail
	}
	obs.RecordStage(ctx, emitdocuments.TaskType, status, time.Since(start))

	for _, result := range emitted.Results {
		label := documentLabels[result.Document]
		if result.Outcome.OK() {
			recorder.DocumentsWritten.WithLabelValues(result.Document).Inc()
			summary.Written = append(summary.Written, result.Path)
			fmt.Fprintf(p.out, "✅ %s written to '%s'\n", label, result.Path)
			continue
		}

		recorder.DocumentsFailed.WithLabelValues(result.Document, string(result.Outcome.Err.Code)).Inc()
		summary.Failures = append(summary.Failures, result.Outcome.Err)
		fmt.Fprintf(p.out, "❌ %s not written to '%s': %s\n", label, result.Path, result.Outcome.Err.Message)
		if handler.Handle(result.Outcome) == errors.DecisionAbort {
			return summary, result.Outcome.Err
		}
	}
	if err != nil {
		return summary, err
	}

	log.Info("run finished", map[string]interface{}{
		"rowsProcessed": summary.RowsProcessed,
		"rowsSkipped":   summary.RowsSkipped,
		"intents":       summary.Intents,
		"written":       len(summary.Written),
		"failed":        len(summary.Failures),
	})
	return summary, nil
}

func (p *Pipeline) readRows(path string) ([]models.TrainingRow, *errors.StandardError) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSpreadsheetNotFoundError(path)
		}
		return nil, errors.NewSpreadsheetReadError(path, err)
	}

	rows, err := spreadsheet.ReadRows(path, spreadsheet.Columns{
		Sheet:    p.cfg.Input.Sheet,
		Question: p.cfg.Input.QuestionColumn,
		Answer:   p.cfg.Input.AnswerColumn,
	})
	if err != nil {
		return nil, errors.NewSpreadsheetReadError(path, err)
	}
	return rows, nil
}
