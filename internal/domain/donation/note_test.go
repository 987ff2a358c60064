package donation

import (
	"strings"
	"testing"
)

func TestSanitizeNoteStripsLinks(t *testing.T) {
	t.Parallel()

	got := SanitizeNote("great track https://spam.example/x check it")
	if got == nil {
		t.Fatal("SanitizeNote returned nil for a note with residual text")
	}
	if *got != "great track check it" {
		t.Fatalf("SanitizeNote = %q, want %q", *got, "great track check it")
	}
}

func TestSanitizeNoteLinkOnlyBecomesNil(t *testing.T) {
	t.Parallel()

	if got := SanitizeNote("http://only.example/link"); got != nil {
		t.Fatalf("SanitizeNote = %q, want nil", *got)
	}
	if got := SanitizeNote("   "); got != nil {
		t.Fatalf("SanitizeNote(blank) = %q, want nil", *got)
	}
}

func TestSanitizeNoteCollapsesWhitespaceAndTruncates(t *testing.T) {
	t.Parallel()

	got := SanitizeNote("a\n\nb\t c")
	if got == nil || *got != "a b c" {
		t.Fatalf("SanitizeNote = %v, want %q", got, "a b c")
	}

	long := strings.Repeat("x", 300)
	got = SanitizeNote(long)
	if got == nil {
		t.Fatal("SanitizeNote returned nil for a long note")
	}
	if len([]rune(*got)) != MaxNoteLength {
		t.Fatalf("len = %d, want %d", len([]rune(*got)), MaxNoteLength)
	}
}
