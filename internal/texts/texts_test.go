package texts

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		0:       "0",
		500:     "500",
		5000:    "5 000",
		25000:   "25 000",
		100000:  "100 000",
		1000000: "1 000 000",
	}
	for amount, want := range cases {
		if got := FormatAmount(amount); got != want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", amount, got, want)
		}
	}
}

func TestTrackCaptionOptionalParts(t *testing.T) {
	t.Parallel()

	link := "https://click.uz/p/1"
	caption := "late night vibes"

	full := TrackCaption("Tun", "Aria", &link, &caption)
	if !strings.Contains(full, "Tun") || !strings.Contains(full, "Aria") {
		t.Fatalf("caption missing title or artist: %q", full)
	}
	if !strings.Contains(full, link) || !strings.Contains(full, caption) {
		t.Fatalf("caption missing optional parts: %q", full)
	}

	bare := TrackCaption("Tun", "Aria", nil, nil)
	if strings.Contains(bare, "Support:") {
		t.Fatalf("bare caption mentions a payment link: %q", bare)
	}
}

func TestDonationCardReflectsAnonymityAndNote(t *testing.T) {
	t.Parallel()

	note := "keep going"
	card := DonationCard("Tun", "Aria", 10000, true, &note)
	if !strings.Contains(card, "10 000") {
		t.Fatalf("card missing formatted amount: %q", card)
	}
	if !strings.Contains(card, "ON") {
		t.Fatalf("card does not show anonymity on: %q", card)
	}
	if !strings.Contains(card, note) {
		t.Fatalf("card missing note: %q", card)
	}

	card = DonationCard("Tun", "Aria", 10000, false, nil)
	if !strings.Contains(card, "OFF") || !strings.Contains(card, "(none)") {
		t.Fatalf("card defaults wrong: %q", card)
	}
}

func TestAppreciationPublicUsesPlaceholderName(t *testing.T) {
	t.Parallel()

	msg := AppreciationPublic("Someone", 5000, "Aria", "Tun", nil)
	if !strings.Contains(msg, "Someone") {
		t.Fatalf("appreciation missing donor name: %q", msg)
	}
	if strings.Contains(msg, "💬") {
		t.Fatalf("appreciation shows a note row without a note: %q", msg)
	}
}

func TestCreatorDMHidesAnonymousDonor(t *testing.T) {
	t.Parallel()

	username := "donor1"
	msg := CreatorDM(true, "Real Name", &username, 5000, "Tun", nil)
	if strings.Contains(msg, "Real Name") || strings.Contains(msg, username) {
		t.Fatalf("anonymous DM leaks donor identity: %q", msg)
	}

	msg = CreatorDM(false, "Real Name", &username, 5000, "Tun", nil)
	if !strings.Contains(msg, "Real Name") || !strings.Contains(msg, "@donor1") {
		t.Fatalf("public DM missing donor identity: %q", msg)
	}
}
