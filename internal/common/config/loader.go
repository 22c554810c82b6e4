package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "TRAINPREP"

// Load reads config.yaml (plus config.<environment>.yaml when present) from
// the usual locations into the global viper instance, which the CLI has
// already bound its flags to. A missing config file is not an error.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.GetViper()
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv(EnvPrefix + "_APP_ENVIRONMENT")
	if env != "" {
		v.SetConfigName(fmt.Sprintf("config.%s", env))
		_ = v.MergeInConfig()
	}

	return decode(v)
}

// LoadFromFile reads exactly one config file into a fresh viper instance.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func decode(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "trainprep"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Input.Spreadsheet == "" {
		cfg.Input.Spreadsheet = "kokoro_chatbot_testing.xlsx"
	}
	if cfg.Input.QuestionColumn == "" {
		cfg.Input.QuestionColumn = "Question"
	}
	if cfg.Input.AnswerColumn == "" {
		cfg.Input.AnswerColumn = "Answer"
	}

	if cfg.Output.SchemaVersion == "" {
		cfg.Output.SchemaVersion = "3.1"
	}
	if cfg.Output.NLUPath == "" {
		cfg.Output.NLUPath = "data/nlu.yml"
	}
	if cfg.Output.DomainPath == "" {
		cfg.Output.DomainPath = "domain.yml"
	}
	if cfg.Output.StoriesPath == "" {
		cfg.Output.StoriesPath = "data/stories.yml"
	}
	if cfg.Output.RulesPath == "" {
		cfg.Output.RulesPath = "data/rules.yml"
	}

	if cfg.Classifier.FallbackIntent == "" {
		cfg.Classifier.FallbackIntent = "ask_general"
	}

	if cfg.CleanKeys.Path == "" {
		cfg.CleanKeys.Path = "domain.yml"
	}

	if cfg.SpellCheck.Threshold == 0 {
		cfg.SpellCheck.Threshold = 0.5
	}
	if cfg.SpellCheck.BatchSize <= 0 {
		cfg.SpellCheck.BatchSize = 50
	}
	if cfg.SpellCheck.Depth <= 0 {
		cfg.SpellCheck.Depth = 2
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Input.QuestionColumn == cfg.Input.AnswerColumn {
		return fmt.Errorf("input.question_column and input.answer_column must differ")
	}

	for i, rule := range cfg.Classifier.Rules {
		if strings.TrimSpace(rule.Keyword) == "" {
			return fmt.Errorf("classifier.rules[%d].keyword is required", i)
		}
		if strings.TrimSpace(rule.Intent) == "" {
			return fmt.Errorf("classifier.rules[%d].intent is required", i)
		}
	}

	return nil
}
