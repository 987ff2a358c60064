package donation

import (
	"regexp"
	"strings"
)

// MaxNoteLength bounds a donor note after sanitization.
const MaxNoteLength = 120

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeNote strips URL-like substrings, collapses whitespace runs and
// truncates to MaxNoteLength runes. A note that sanitizes to nothing is nil
// ("no note"), never the empty string.
func SanitizeNote(raw string) *string {
	cleaned := urlPattern.ReplaceAllString(strings.TrimSpace(raw), "")
	cleaned = strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return nil
	}

	runes := []rune(cleaned)
	if len(runes) > MaxNoteLength {
		cleaned = string(runes[:MaxNoteLength])
	}
	return &cleaned
}
