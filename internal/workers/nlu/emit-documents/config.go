// internal/workers/nlu/emit-documents/config.go
package emitdocuments

import "chatbot-trainprep/internal/common/config"

type Config struct {
	SchemaVersion string
	NLUPath       string
	DomainPath    string
	StoriesPath   string
	RulesPath     string
}

func LoadConfig(cfg config.OutputConfig) *Config {
	return &Config{
		SchemaVersion: cfg.SchemaVersion,
		NLUPath:       cfg.NLUPath,
		DomainPath:    cfg.DomainPath,
		StoriesPath:   cfg.StoriesPath,
		RulesPath:     cfg.RulesPath,
	}
}
