package i18n

import (
	"strings"
	"testing"
)

func TestTFallsBackToUzbekThenKey(t *testing.T) {
	t.Parallel()

	if got := T("ru", "cancelled"); got != ru["cancelled"] {
		t.Fatalf("T(ru) = %q, want the russian entry", got)
	}
	if got := T("de", "cancelled"); got != uz["cancelled"] {
		t.Fatalf("T(unknown lang) = %q, want the uzbek entry", got)
	}
	if got := T("uz", "no_such_key_xyz"); got != "no_such_key_xyz" {
		t.Fatalf("T(missing key) = %q, want the key itself", got)
	}
}

func TestTfSubstitutesPlaceholders(t *testing.T) {
	t.Parallel()

	got := Tf("uz", "amount_below_min", "min", "1 000")
	if strings.Contains(got, "{min}") {
		t.Fatalf("Tf left placeholder unsubstituted: %q", got)
	}
	if !strings.Contains(got, "1 000") {
		t.Fatalf("Tf missing value: %q", got)
	}
}

func TestRussianTableCoversUzbekKeys(t *testing.T) {
	t.Parallel()

	for key := range uz {
		if _, ok := ru[key]; !ok {
			t.Fatalf("ru table missing key %q", key)
		}
	}
	for key := range ru {
		if _, ok := uz[key]; !ok {
			t.Fatalf("uz table missing key %q", key)
		}
	}
}
