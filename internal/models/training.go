// internal/models/training.go
package models

// KeywordRule maps a keyword or phrase to an intent label. Rules are kept in
// an ordered slice and the first one contained in a question wins.
type KeywordRule struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Intent  string `json:"intent" yaml:"intent"`
}

// TrainingRow is one spreadsheet row. Line is the 1-based sheet row.
type TrainingRow struct {
	Line     int    `json:"line"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
