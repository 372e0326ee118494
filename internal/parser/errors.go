package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/stardeck/internal/errors"
)

// ParseError represents an input parsing error with example formats.
type ParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// ClockExamples provides example time-of-day formats.
var ClockExamples = []string{
	"0930",
	"930",
	"9:30",
	"9am",
	"5:30 pm",
}

// DateExamples provides example date formats.
var DateExamples = []string{
	"2025-01-02",
	"today",
	"yesterday",
	"2 days ago",
}

// NewClockError creates a time-of-day parse error with standard examples.
func NewClockError(field, input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      field,
		Message:    "could not parse time of day",
		Examples:   ClockExamples,
		Suggestion: "Times are 24-hour HHMM values or phrases like '9am'.",
		Err:        errors.ErrInvalidTime,
	}
}

// NewDateError creates a date parse error with standard examples.
func NewDateError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "date",
		Message:    "could not parse date",
		Examples:   DateExamples,
		Suggestion: "Use YYYY-MM-DD or phrases like 'yesterday'.",
		Err:        errors.ErrInvalidDate,
	}
}

// ToUserError converts a ParseError to a UserError for consistent handling.
func (e *ParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 {
		suggestion = fmt.Sprintf("%s Try: %s", suggestion, strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}
	return errors.NewUserErrorWithField(e.Err, e.Field, e.Input, strings.TrimSpace(suggestion))
}
