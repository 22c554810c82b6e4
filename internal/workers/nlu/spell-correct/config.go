// internal/workers/nlu/spell-correct/config.go
package spellcorrect

import (
	"github.com/spf13/cast"

	"chatbot-trainprep/internal/common/config"
)

const (
	DefaultThreshold = 0.5
	DefaultBatchSize = 50
)

// Config holds the recognized component options. Threshold is accepted and
// kept but no decision reads it.
type Config struct {
	Threshold float64
	BatchSize int
}

func LoadConfig(cfg config.SpellCheckConfig) *Config {
	return normalize(&Config{Threshold: cfg.Threshold, BatchSize: cfg.BatchSize})
}

// ConfigFromMap reads the plug-in style option map ("threshold",
// "batch_size"). Unknown keys are ignored and unparsable values fall back to
// the defaults.
func ConfigFromMap(options map[string]interface{}) *Config {
	cfg := &Config{Threshold: DefaultThreshold, BatchSize: DefaultBatchSize}
	if raw, ok := options["threshold"]; ok {
		if v, err := cast.ToFloat64E(raw); err == nil {
			cfg.Threshold = v
		}
	}
	if raw, ok := options["batch_size"]; ok {
		if v, err := cast.ToIntE(raw); err == nil {
			cfg.BatchSize = v
		}
	}
	return normalize(cfg)
}

func normalize(cfg *Config) *Config {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return cfg
}
