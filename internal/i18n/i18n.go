// Package i18n holds the user-facing string tables. Text only; no flow
// decisions live here. All strings use HTML formatting.
package i18n

import "strings"

// Langs lists supported language codes. The first entry is the fallback.
var Langs = []string{"uz", "ru"}

func IsSupported(lang string) bool {
	for _, l := range Langs {
		if l == lang {
			return true
		}
	}
	return false
}

func table(lang string) map[string]string {
	if lang == "ru" {
		return ru
	}
	return uz
}

// T returns the localized string for key, falling back to uz and then to the
// key itself so a missing entry is visible, not a blank message.
func T(lang, key string) string {
	if s, ok := table(lang)[key]; ok {
		return s
	}
	if s, ok := uz[key]; ok {
		return s
	}
	return key
}

// Tf substitutes {name}-style placeholders; args are name/value pairs.
func Tf(lang, key string, args ...string) string {
	s := T(lang, key)
	if len(args) < 2 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
