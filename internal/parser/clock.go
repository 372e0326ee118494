// Package parser turns loosely formatted user input into the values the
// stores expect: HHMM clock integers, calendar dates and record ids.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/model"
)

var (
	digitsRegex    = regexp.MustCompile(`^\d{1,4}$`)
	colonRegex     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	// A natural phrase must name a time of day: "9am", "5:30 pm", "noon".
	timeOfDayRegex = regexp.MustCompile(`(?i)\d\s*[ap]\.?m\b|\d:\d{2}|\bnoon\b|\bmidnight\b`)
)

// ParseClock parses a time of day into an HHMM integer.
// Accepts "0930", "930", "9:30" and natural forms like "9am" or "5:30 pm".
// Range checks are left to the caller so that "2400" parses and is then
// rejected with a range error rather than a syntax error.
func ParseClock(field, input string) (int, error) {
	return ParseClockAt(field, input, time.Now())
}

// ParseClockAt is ParseClock with an explicit reference time for "now".
// Phrases without a time of day ("tomorrow", "monday", "in 2 hours",
// "2025-03-04") and bare numbers longer than four digits are rejected.
func ParseClockAt(field, input string, now time.Time) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, errors.NewUserErrorWithField(errors.ErrMissingArgument, field, input,
			"Provide a time such as 0930 or 9:30.")
	}

	if digitsRegex.MatchString(input) {
		v, err := strconv.Atoi(input)
		if err != nil {
			return 0, NewClockError(field, input).ToUserError()
		}
		return v, nil
	}

	if m := colonRegex.FindStringSubmatch(input); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return h*100 + mm, nil
	}

	if strings.EqualFold(input, "now") {
		return model.HHMMOf(now), nil
	}

	if !timeOfDayRegex.MatchString(input) {
		return 0, NewClockError(field, input).ToUserError()
	}

	cfg := &dateparser.Configuration{
		CurrentTime:        now,
		ReturnTimeAsPeriod: true,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.IsZero() || !result.Period.IsTime() {
		return 0, NewClockError(field, input).ToUserError()
	}
	return model.HHMMOf(result.Time), nil
}

// ParseClockRange parses a start and end pair.
func ParseClockRange(start, end string) (int, int, error) {
	s, err := ParseClock("start", start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ParseClock("end", end)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}
