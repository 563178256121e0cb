package services

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxResumeChars         = 35000
	MaxJobDescriptionChars = 15000

	TruncationMarker = "\n\n[...truncated]"
)

// Truncate cuts text to at most limit characters (runes) and appends
// TruncationMarker when anything was removed.
func Truncate(text string, limit int) (string, bool) {
	if utf8.RuneCountInString(text) <= limit {
		return text, false
	}

	runes := []rune(text)
	return string(runes[:limit]) + TruncationMarker, true
}

// extractJSON pulls the outermost JSON object out of a model reply that may
// be wrapped in markdown fences or surrounded by prose.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
