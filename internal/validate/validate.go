// Package validate provides input validation for user-supplied dashboard
// records. Validation stops at presence and type checks.
package validate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/model"
)

// ClockTime validates a single HHMM time of day.
func ClockTime(field string, v int) error {
	if !model.ValidHHMM(v) {
		return errors.NewUserErrorWithField(errors.ErrTimeOutOfRange, field, strconv.Itoa(v),
			"Use 24-hour HHMM times from 0000 to 2359 with minutes below 60.")
	}
	return nil
}

// ScheduleEntry validates the fields of a new schedule entry. The
// description is expected to be trimmed already.
func ScheduleEntry(start, end int, description string) error {
	if err := ClockTime("start", start); err != nil {
		return err
	}
	if err := ClockTime("end", end); err != nil {
		return err
	}
	if start >= end {
		return errors.NewUserErrorWithField(errors.ErrInvalidTimeRange, "end",
			model.FormatHHMM(end), "")
	}
	if description == "" {
		return errors.NewUserError(errors.ErrEmptyDescription, "")
	}
	return nil
}

// TaskText validates the text of a new task. The text is expected to be
// trimmed already.
func TaskText(text string) error {
	if text == "" {
		return errors.NewUserError(errors.ErrEmptyTask, "")
	}
	return nil
}

// Endpoint validates a configured HTTP(S) endpoint.
func Endpoint(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || rawURL == "" {
		return errors.NewUserErrorWithField(errors.ErrNetworkUnavailable, "url", rawURL,
			"Provide a valid URL starting with https://")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.NewUserErrorWithField(errors.ErrNetworkUnavailable, "url", rawURL,
			"URLs must use https:// or http://")
	}
	if strings.TrimSpace(parsed.Hostname()) == "" {
		return errors.NewUserErrorWithField(errors.ErrNetworkUnavailable, "url", rawURL,
			"Provide a URL with a hostname")
	}
	return nil
}
