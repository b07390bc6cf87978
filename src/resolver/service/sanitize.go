package resolver_service

import (
	"regexp"
	"strings"
)

var markdownFences = regexp.MustCompile("```(?:json)?\\s*|\\s*```")

// StripMarkdownFences removes code fence delimiters the model may wrap around
// its output despite the instructions. Idempotent and lossless for payloads
// that carry no fences.
func StripMarkdownFences(raw string) string {
	return strings.TrimSpace(markdownFences.ReplaceAllString(raw, ""))
}
