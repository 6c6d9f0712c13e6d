package mood

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`(?i)\b(?:[a-z][a-z0-9+.-]*://|www\.)\S+`)
	mentionPattern = regexp.MustCompile(`[@#]\w+`)
)

// Normalize prepares raw journal text for the signal extractors: URLs,
// @mentions and #tags are stripped, whitespace runs collapse to single
// spaces, and the result is trimmed and lowercased. Always defined; empty
// input yields an empty string.
func Normalize(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")
	return strings.ToLower(text)
}
