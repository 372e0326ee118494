package parser

import (
	"strconv"
	"strings"

	"github.com/manav03panchal/stardeck/internal/errors"
)

// ParseID parses a record id as shown by the list commands.
func ParseID(input string) (int64, error) {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "#"))
	if input == "" {
		return 0, errors.NewUserErrorWithField(errors.ErrMissingArgument, "id", input, "")
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewUserErrorWithField(errors.ErrInvalidID, "id", input, "")
	}
	return id, nil
}
