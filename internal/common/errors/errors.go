package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ErrorCode string

const (
	ErrCodeYAMLParseFailed ErrorCode = "YAML_PARSE_FAILED"
	ErrCodeFileIOFailed    ErrorCode = "FILE_IO_FAILED"

	ErrCodeSpreadsheetNotFound   ErrorCode = "SPREADSHEET_NOT_FOUND"
	ErrCodeSpreadsheetReadFailed ErrorCode = "SPREADSHEET_READ_FAILED"

	ErrCodeDocumentValidationFailed ErrorCode = "DOCUMENT_VALIDATION_FAILED"
	ErrCodeDocumentWriteFailed      ErrorCode = "DOCUMENT_WRITE_FAILED"

	ErrCodeSpellCorrectionFailed ErrorCode = "SPELL_CORRECTION_FAILED"

	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the single failure value passed between stages. Fatal
// marks failures that must stop the run before anything is written.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Fatal     bool                   `json:"fatal"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata returns e after merging the given key/value into its metadata.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, fatal bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Fatal:     fatal,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

func NewYAMLParseError(path string, err error) *StandardError {
	return newError(ErrCodeYAMLParseFailed, "Malformed YAML document",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), false, err).
		WithMetadata("path", path)
}

func NewFileIOError(path string, err error) *StandardError {
	return newError(ErrCodeFileIOFailed, "File operation failed",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), false, err).
		WithMetadata("path", path)
}

func NewSpreadsheetNotFoundError(path string) *StandardError {
	return newError(ErrCodeSpreadsheetNotFound, "Input spreadsheet not found",
		fmt.Sprintf("path: %s", path), true, nil).
		WithMetadata("path", path)
}

func NewSpreadsheetReadError(path string, err error) *StandardError {
	return newError(ErrCodeSpreadsheetReadFailed, "Input spreadsheet could not be read",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), true, err).
		WithMetadata("path", path)
}

func NewDocumentValidationError(document string, problems []string) *StandardError {
	return newError(ErrCodeDocumentValidationFailed, "Generated document has an invalid shape",
		fmt.Sprintf("document: %s, problems: %s", document, strings.Join(problems, "; ")), false, nil).
		WithMetadata("document", document)
}

func NewDocumentWriteError(path string, err error) *StandardError {
	return newError(ErrCodeDocumentWriteFailed, "Generated document could not be written",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), false, err).
		WithMetadata("path", path)
}

func NewSpellCorrectionError(preview string, err error) *StandardError {
	return newError(ErrCodeSpellCorrectionFailed, "Spell correction failed",
		fmt.Sprintf("text: %s..., error: %s", preview, err.Error()), false, err).
		WithMetadata("preview", preview)
}

func NewInvalidConfigError(details string) *StandardError {
	return newError(ErrCodeInvalidConfig, "Invalid configuration", details, true, nil)
}

// AsStandardError unwraps err into a *StandardError, wrapping unknown errors
// as non-fatal INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false, err)
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Code == code
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "YAML"):
		return "PARSE"
	case strings.Contains(codeStr, "FILE") || strings.Contains(codeStr, "WRITE"):
		return "IO"
	case strings.Contains(codeStr, "SPREADSHEET"):
		return "INPUT"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "CONFIG"):
		return "VALIDATION"
	case strings.Contains(codeStr, "SPELL"):
		return "ITEM"
	default:
		return "OTHER"
	}
}
