package validate

import (
	"strings"
	"unicode"
)

// SanitizeLine trims a single-line input and strips control characters.
func SanitizeLine(s string) string {
	s = strings.TrimSpace(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
