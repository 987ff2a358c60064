package music

import "strings"

// Genres is the closed set offered in every genre keyboard. Order matters for
// keyboard layout.
var Genres = []string{"Pop", "Rock", "Indie", "Hip Hop", "Rap", "Electronic", "Other"}

// CancelChoice is the reserved genre-keyboard token that aborts the flow.
const CancelChoice = "CANCEL"

func IsValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// genreGroup maps a genre to its channel group key. Rap shares the hiphop
// channel; the long tail lands in discovery.
func genreGroup(genre string) string {
	switch genre {
	case "Pop":
		return "pop"
	case "Rock":
		return "rock"
	case "Hip Hop", "Rap":
		return "hiphop"
	default:
		return "discovery"
	}
}

// NormalizeGenre trims and title-matches user-selected genres against the
// closed set, so stored rows never hold a free-form genre string.
func NormalizeGenre(genre string) (string, bool) {
	trimmed := strings.TrimSpace(genre)
	for _, g := range Genres {
		if strings.EqualFold(g, trimmed) {
			return g, true
		}
	}
	return "", false
}
