package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/stardeck/internal/model"
)

// ParseDate parses a calendar date relative to now.
// Empty input and "today" return now's date.
func ParseDate(input string, now time.Time) (model.DateKey, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return model.DateKeyFor(now), nil
	}

	if t, err := time.ParseInLocation(model.DateKeyLayout, input, now.Location()); err == nil {
		return model.DateKeyFor(t), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return "", NewDateError(input).ToUserError()
	}
	return model.DateKeyFor(result.Time), nil
}
