package donation

import (
	"strconv"
	"strings"
)

// PresetAmounts are the one-tap donation choices, in whole so'm.
var PresetAmounts = []int64{5000, 10000, 25000}

// CustomChoice marks the "enter your own amount" keyboard option.
const CustomChoice = "custom"

// Bounds for custom amounts. Kept as defaults; the service layer may
// override them from config.
const (
	DefaultMinAmount int64 = 1000
	DefaultMaxAmount int64 = 1000000
)

func IsPresetAmount(amount int64) bool {
	for _, a := range PresetAmounts {
		if a == amount {
			return true
		}
	}
	return false
}

// ParseAmount parses user-typed amounts. Digit grouping characters (spaces,
// commas, apostrophes) are stripped before parsing, so "15 000", "15,000" and
// "15000" are equivalent. The three failure modes are distinguishable so the
// user gets a specific re-prompt.
func ParseAmount(raw string, min, max int64) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\'', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return 0, ErrAmountNotNumeric
	}

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, ErrAmountNotNumeric
	}
	if amount < min {
		return 0, ErrAmountBelowMinimum
	}
	if amount > max {
		return 0, ErrAmountAboveMaximum
	}
	return amount, nil
}
