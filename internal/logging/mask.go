package logging

import (
	"net/url"
	"strings"
)

// MaskChar is the character used for masking.
const MaskChar = "*"

// sensitiveParams are query parameters never written to logs verbatim.
var sensitiveParams = []string{"api_key", "apikey", "token", "key"}

// MaskValue masks a sensitive value, keeping at most eight mask characters.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	return strings.Repeat(MaskChar, min(len(value), 8))
}

// MaskURL replaces sensitive query parameter values in raw. Unparseable
// input is masked entirely.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return MaskValue(raw)
	}
	q := u.Query()
	changed := false
	for _, name := range sensitiveParams {
		if v := q.Get(name); v != "" {
			q.Set(name, MaskValue(v))
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
