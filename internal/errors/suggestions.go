package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidTimeRange:   "The end of a schedule entry must come after its start, e.g. 0900 1030.",
	ErrTimeOutOfRange:     "Use 24-hour HHMM times from 0000 to 2359.",
	ErrInvalidTime:        "Try formats like '0930', '9:30', '930' or '9am'.",
	ErrEmptyDescription:   "Give the schedule entry a description.",
	ErrEmptyTask:          "Task text cannot be blank.",
	ErrInvalidID:          "Use 'stardeck schedule' or 'stardeck task' to see ids.",
	ErrInvalidDate:        "Use YYYY-MM-DD or phrases like 'yesterday'.",
	ErrUnknownAction:      "This is a bug in the dashboard key bindings.",
	ErrNetworkUnavailable: "Check your internet connection and API key.",
	ErrStorage:            "Check permissions on the data directory (~/.local/share/stardeck/).",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}
