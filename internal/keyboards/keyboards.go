// Package keyboards builds the inline keyboards using transport-neutral
// ports types. Callback data stays within Telegram's 64-byte limit.
package keyboards

import (
	"fmt"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/i18n"
	"sadomusic/internal/ports"
	"sadomusic/internal/texts"
)

// Lang offers the language choices shown on /start.
func Lang() ports.Keyboard {
	return ports.Keyboard{
		{
			{Text: "🇺🇿 O'zbekcha", Data: "lang:uz"},
			{Text: "🇷🇺 Русский", Data: "lang:ru"},
		},
	}
}

// UserType asks whether the user is an artist or a listener.
func UserType(lang string) ports.Keyboard {
	return ports.Keyboard{
		{
			{Text: i18n.T(lang, "i_am_artist"), Data: "usertype:artist"},
			{Text: i18n.T(lang, "i_am_listener"), Data: "usertype:listener"},
		},
	}
}

// Genres lays the genre list out two per row with a trailing cancel row.
// prefix selects the callback family: onbgenre, subgenre or profilegenre.
func Genres(prefix, lang string) ports.Keyboard {
	var kb ports.Keyboard
	var row []ports.Button
	for _, g := range music.Genres {
		row = append(row, ports.Button{Text: g, Data: prefix + ":" + g})
		if len(row) == 2 {
			kb = append(kb, row)
			row = nil
		}
	}
	if len(row) > 0 {
		kb = append(kb, row)
	}
	kb = append(kb, []ports.Button{
		{Text: i18n.T(lang, "cancel"), Data: prefix + ":" + music.CancelChoice},
	})
	return kb
}

// AdminReview is attached to the moderator's submission card.
func AdminReview(submissionID string) ports.Keyboard {
	return ports.Keyboard{
		{
			{Text: "✅ Approve", Data: "admin_approve:" + submissionID},
			{Text: "❌ Reject", Data: "admin_reject:" + submissionID},
		},
	}
}

// ProfileActions lists the editable profile fields.
func ProfileActions(lang string) ports.Keyboard {
	return ports.Keyboard{
		{{Text: i18n.T(lang, "edit_name"), Data: "profile:edit:display_name"}},
		{{Text: i18n.T(lang, "edit_payment"), Data: "profile:edit:payment_link"}},
		{{Text: i18n.T(lang, "edit_genre"), Data: "profile:edit:default_genre"}},
		{{Text: i18n.T(lang, "edit_bio"), Data: "profile:edit:bio"}},
	}
}

// DonationAmounts offers preset amounts, a custom entry and cancel.
func DonationAmounts(trackID string, presets []int64, lang string) ports.Keyboard {
	var row []ports.Button
	for _, p := range presets {
		row = append(row, ports.Button{
			Text: texts.FormatAmount(p),
			Data: fmt.Sprintf("donamtsel:%s:%d", trackID, p),
		})
	}
	return ports.Keyboard{
		row,
		{{Text: i18n.T(lang, "custom_amount"), Data: "donamtsel:" + trackID + ":custom"}},
		{{Text: i18n.T(lang, "cancel"), Data: "doncancel"}},
	}
}

// DonationNoteOptions follows amount selection: add a note or skip.
func DonationNoteOptions(donationID, lang string) ports.Keyboard {
	return ports.Keyboard{
		{{Text: i18n.T(lang, "add_note"), Data: "don_note:" + donationID}},
		{{Text: i18n.T(lang, "skip_note"), Data: "don_skip_note:" + donationID}},
	}
}

// DonationAnonymity asks whether the donation is public or anonymous.
func DonationAnonymity(donationID, lang string) ports.Keyboard {
	return ports.Keyboard{
		{
			{Text: i18n.T(lang, "public_donation"), Data: "don_public:" + donationID},
			{Text: i18n.T(lang, "anonymous_donation"), Data: "don_anon_set:" + donationID},
		},
	}
}

// DonationConfirm is attached to the DM confirmation card. The anonymity
// toggle edits the card in place.
func DonationConfirm(donationID string, anonymous bool, lang string) ports.Keyboard {
	anonLabel := i18n.T(lang, "anon_off")
	if anonymous {
		anonLabel = i18n.T(lang, "anon_on")
	}
	return ports.Keyboard{
		{{Text: anonLabel, Data: "don_anon:" + donationID}},
		{
			{Text: i18n.T(lang, "confirm"), Data: "don_ok:" + donationID},
			{Text: i18n.T(lang, "cancel"), Data: "don_cancel:" + donationID},
		},
	}
}

// TrackPost carries the deep-link buttons attached to a published channel
// post. Deep links open the bot in private chat.
func TrackPost(trackID, artistID, botUsername string) ports.Keyboard {
	return ports.Keyboard{
		{{Text: "❤️ Support Artist (Demo)", URL: fmt.Sprintf("https://t.me/%s?start=donate_%s", botUsername, trackID)}},
		{{Text: "👤 Artist Profile", URL: fmt.Sprintf("https://t.me/%s?start=artist_%s", botUsername, artistID)}},
	}
}

// TrackSupport is attached to search results inside the bot chat.
func TrackSupport(trackID, lang string) ports.Keyboard {
	return ports.Keyboard{
		{{Text: i18n.T(lang, "support_artist"), Data: "support_track:" + trackID}},
	}
}
