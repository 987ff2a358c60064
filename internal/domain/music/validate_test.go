package music

import (
	"errors"
	"testing"
)

func TestValidateDisplayName(t *testing.T) {
	t.Parallel()

	got, err := ValidateDisplayName("  DJ Aria  ")
	if err != nil {
		t.Fatalf("ValidateDisplayName error = %v", err)
	}
	if got != "DJ Aria" {
		t.Fatalf("ValidateDisplayName = %q, want trimmed value", got)
	}

	if _, err := ValidateDisplayName(" x "); !errors.Is(err, ErrNameTooShort) {
		t.Fatalf("error = %v, want ErrNameTooShort", err)
	}
}

func TestValidatePaymentLink(t *testing.T) {
	t.Parallel()

	if _, err := ValidatePaymentLink("https://click.uz/pay/abc"); err != nil {
		t.Fatalf("ValidatePaymentLink error = %v", err)
	}

	for _, raw := range []string{"click.uz/pay", "ftp://x.uz/a", "https://", "not a url"} {
		if _, err := ValidatePaymentLink(raw); !errors.Is(err, ErrInvalidPaymentLink) {
			t.Fatalf("ValidatePaymentLink(%q) error = %v, want ErrInvalidPaymentLink", raw, err)
		}
	}
}

func TestOptionalText(t *testing.T) {
	t.Parallel()

	if got := OptionalText("-"); got != nil {
		t.Fatalf("OptionalText(-) = %q, want nil", *got)
	}
	if got := OptionalText("  "); got != nil {
		t.Fatalf("OptionalText(blank) = %q, want nil", *got)
	}
	if got := OptionalText(" hello "); got == nil || *got != "hello" {
		t.Fatalf("OptionalText(hello) = %v, want trimmed value", got)
	}
}

func TestNormalizeGenre(t *testing.T) {
	t.Parallel()

	got, ok := NormalizeGenre(" hip hop ")
	if !ok || got != "Hip Hop" {
		t.Fatalf("NormalizeGenre = %q, %v, want Hip Hop", got, ok)
	}
	if _, ok := NormalizeGenre("Jazzcore"); ok {
		t.Fatal("NormalizeGenre accepted a genre outside the closed set")
	}
}
