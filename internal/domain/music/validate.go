package music

import (
	"net/url"
	"strings"
)

// NoneMarker is the literal a user sends to skip an optional free-text step.
const NoneMarker = "-"

const minNameLength = 2

// ValidateDisplayName checks an artist or track name collected in a guided
// step. Returns the trimmed value.
func ValidateDisplayName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if len([]rune(name)) < minNameLength {
		return "", ErrNameTooShort
	}
	return name, nil
}

// ValidateTitle shares the display-name rule; kept separate so callers report
// the right validation error.
func ValidateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if len([]rune(title)) < minNameLength {
		return "", ErrTitleTooShort
	}
	return title, nil
}

// ValidatePaymentLink requires an absolute http(s) URL.
func ValidatePaymentLink(raw string) (string, error) {
	link := strings.TrimSpace(raw)
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidPaymentLink
	}
	return link, nil
}

// OptionalText maps the "-" skip marker (and blank input) to nil.
func OptionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == NoneMarker {
		return nil
	}
	return &trimmed
}
