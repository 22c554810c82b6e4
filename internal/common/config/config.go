package config

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Input      InputConfig      `mapstructure:"input"`
	Output     OutputConfig     `mapstructure:"output"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	CleanKeys  CleanKeysConfig  `mapstructure:"clean_keys"`
	SpellCheck SpellCheckConfig `mapstructure:"spellcheck"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InputConfig locates the Question/Answer spreadsheet. Sheet is only used
// for .xlsx files; empty means the first sheet.
type InputConfig struct {
	Spreadsheet    string `mapstructure:"spreadsheet"`
	Sheet          string `mapstructure:"sheet"`
	QuestionColumn string `mapstructure:"question_column"`
	AnswerColumn   string `mapstructure:"answer_column"`
}

type OutputConfig struct {
	SchemaVersion string `mapstructure:"schema_version"`
	NLUPath       string `mapstructure:"nlu_path"`
	DomainPath    string `mapstructure:"domain_path"`
	StoriesPath   string `mapstructure:"stories_path"`
	RulesPath     string `mapstructure:"rules_path"`
}

// ClassifierConfig overrides the built-in keyword table when Rules is set.
// Order is significant: the first matching keyword wins.
type ClassifierConfig struct {
	FallbackIntent string              `mapstructure:"fallback_intent"`
	Rules          []KeywordRuleConfig `mapstructure:"rules"`
}

type KeywordRuleConfig struct {
	Keyword string `mapstructure:"keyword"`
	Intent  string `mapstructure:"intent"`
}

type CleanKeysConfig struct {
	Path string `mapstructure:"path"`
}

// SpellCheckConfig mirrors the plug-in options. Threshold is accepted and
// carried through but nothing reads it.
type SpellCheckConfig struct {
	Threshold      float64 `mapstructure:"threshold"`
	BatchSize      int     `mapstructure:"batch_size"`
	DictionaryPath string  `mapstructure:"dictionary_path"`
	Depth          int     `mapstructure:"depth"`
	TrainOnAnswers bool    `mapstructure:"train_on_answers"`
}

type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}
