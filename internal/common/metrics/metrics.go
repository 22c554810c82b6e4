package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the counters of one run. Each run owns its registry so
// nothing leaks between runs or tests; the registry is written out as a
// node-exporter textfile at the end of the run.
type Recorder struct {
	registry *prometheus.Registry

	RowsProcessed     prometheus.Counter
	RowsSkipped       prometheus.Counter
	IntentExamples    *prometheus.GaugeVec
	DocumentsWritten  *prometheus.CounterVec
	DocumentsFailed   *prometheus.CounterVec
	CorrectionBatches prometheus.Counter
	CorrectionsFailed prometheus.Counter
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		RowsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "trainprep_rows_processed_total",
			Help: "Spreadsheet rows turned into training examples",
		}),
		RowsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "trainprep_rows_skipped_total",
			Help: "Spreadsheet rows dropped for a blank question or answer",
		}),
		IntentExamples: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trainprep_intent_examples",
				Help: "Number of examples grouped under each intent",
			},
			[]string{"intent"},
		),
		DocumentsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trainprep_documents_written_total",
				Help: "Generated documents written to disk",
			},
			[]string{"document"},
		),
		DocumentsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trainprep_documents_failed_total",
				Help: "Generated documents that could not be written",
			},
			[]string{"document", "error_code"},
		),
		CorrectionBatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "trainprep_spellcheck_batches_total",
			Help: "Spell-correction batches processed",
		}),
		CorrectionsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "trainprep_spellcheck_failures_total",
			Help: "Messages left unchanged because correction failed",
		}),
	}
}

// Registry exposes the registerer so other exporters can share it.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all gathered metrics to path. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
