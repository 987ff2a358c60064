package donation

import (
	"errors"
	"testing"
)

func TestParseAmountAcceptsGroupedDigits(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"15000", "15,000", "15 000", " 15'000 "} {
		got, err := ParseAmount(raw, DefaultMinAmount, DefaultMaxAmount)
		if err != nil {
			t.Fatalf("ParseAmount(%q) error = %v", raw, err)
		}
		if got != 15000 {
			t.Fatalf("ParseAmount(%q) = %d, want 15000", raw, got)
		}
	}
}

func TestParseAmountBounds(t *testing.T) {
	t.Parallel()

	if _, err := ParseAmount("500", DefaultMinAmount, DefaultMaxAmount); !errors.Is(err, ErrAmountBelowMinimum) {
		t.Fatalf("ParseAmount(500) error = %v, want ErrAmountBelowMinimum", err)
	}
	if _, err := ParseAmount("2000000", DefaultMinAmount, DefaultMaxAmount); !errors.Is(err, ErrAmountAboveMaximum) {
		t.Fatalf("ParseAmount(2000000) error = %v, want ErrAmountAboveMaximum", err)
	}
	if got, err := ParseAmount("1000", DefaultMinAmount, DefaultMaxAmount); err != nil || got != 1000 {
		t.Fatalf("ParseAmount(1000) = %d, %v, want 1000 at the boundary", got, err)
	}
}

func TestParseAmountRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "", "  ", "10k", "-5000"} {
		if _, err := ParseAmount(raw, DefaultMinAmount, DefaultMaxAmount); err == nil {
			t.Fatalf("ParseAmount(%q) expected an error", raw)
		}
	}
	if _, err := ParseAmount("abc", DefaultMinAmount, DefaultMaxAmount); !errors.Is(err, ErrAmountNotNumeric) {
		t.Fatalf("ParseAmount(abc) error = %v, want ErrAmountNotNumeric", err)
	}
}
