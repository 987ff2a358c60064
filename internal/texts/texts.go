// Package texts builds the composed message bodies (cards, captions,
// notifications). HTML formatting throughout, like every other outbound
// message.
package texts

import (
	"fmt"
	"strings"
)

// FormatAmount renders 15000 as "15 000" (space-grouped so'm amounts).
func FormatAmount(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// TrackCaption is the channel-post caption with optional description and
// payment link.
func TrackCaption(title, artistName string, paymentLink, caption *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎵 <b>%s</b>\n🎤 %s\n", title, artistName)
	if caption != nil {
		fmt.Fprintf(&b, "\n%s\n", *caption)
	}
	if paymentLink != nil {
		fmt.Fprintf(&b, "\n💳 Support: %s", *paymentLink)
	}
	return b.String()
}

// DiscussionAnchor is the message the appreciation posts get threaded under.
func DiscussionAnchor(postCaption string) string {
	return "🧵 Comments for:\n" + postCaption
}

// ReviewCaption is the moderator review card for a pending submission.
func ReviewCaption(title, artistName, genre string, caption, paymentLink *string, submissionID string) string {
	var b strings.Builder
	b.WriteString("🎵 <b>New Submission</b>\n\n")
	fmt.Fprintf(&b, "<b>Title:</b> %s\n", title)
	fmt.Fprintf(&b, "<b>Artist:</b> %s\n", artistName)
	fmt.Fprintf(&b, "<b>Genre:</b> %s\n", genre)
	if caption != nil {
		fmt.Fprintf(&b, "<b>Caption:</b> %s\n", *caption)
	}
	if paymentLink != nil {
		fmt.Fprintf(&b, "<b>Payment:</b> %s\n", *paymentLink)
	}
	fmt.Fprintf(&b, "\n<code>ID: %s</code>", submissionID)
	return b.String()
}

// DonationCard is the confirmation card shown in the donor's DM.
func DonationCard(trackTitle, artistName string, amount int64, anonymous bool, note *string) string {
	noteStr := "(none)"
	if note != nil {
		noteStr = *note
	}
	anonStr := "OFF"
	if anonymous {
		anonStr = "ON"
	}
	return fmt.Sprintf(
		"💸 <b>Donation Confirmation</b> — <i>Demo Mode</i>\n\n"+
			"Amount: <b>%s so'm</b>\n"+
			"To: <b>%s</b>\n"+
			"Track: <i>%s</i>\n"+
			"Anonymous: <b>%s</b>\n"+
			"Note: <i>%s</i>\n\n"+
			"⚠️ <i>Payment integration coming soon. No real payment will be processed.</i>",
		FormatAmount(amount), artistName, trackTitle, anonStr, noteStr,
	)
}

// AppreciationPublic is the message posted under the track's discussion
// anchor after a confirmed donation.
func AppreciationPublic(donorPublic string, amount int64, artistName, trackTitle string, note *string) string {
	msg := fmt.Sprintf(
		"❤️ <b>%s</b> donated <b>%s so'm</b> to <b>%s</b> (Demo)\n🎵 <i>%s</i>",
		donorPublic, FormatAmount(amount), artistName, trackTitle,
	)
	if note != nil {
		msg += fmt.Sprintf("\n💬 %q", *note)
	}
	return msg
}

// CreatorDM is the private notification the artist receives.
func CreatorDM(anonymous bool, donorName string, donorUsername *string, amount int64, trackTitle string, note *string) string {
	var msg string
	if anonymous {
		msg = fmt.Sprintf(
			"You received an anonymous donation 💸 (Demo)\nAmount: <b>%s so'm</b>\nTrack: <i>%s</i>",
			FormatAmount(amount), trackTitle,
		)
	} else {
		uname := ""
		if donorUsername != nil {
			uname = fmt.Sprintf(" (@%s)", *donorUsername)
		}
		if donorName == "" {
			donorName = "Unknown"
		}
		msg = fmt.Sprintf(
			"You received a donation 💸 (Demo)\nAmount: <b>%s so'm</b>\nFrom: <b>%s</b>%s\nTrack: <i>%s</i>",
			FormatAmount(amount), donorName, uname, trackTitle,
		)
	}
	if note != nil {
		msg += fmt.Sprintf("\nNote: %q", *note)
	}
	return msg
}

// DonationStart opens the amount-selection step.
func DonationStart(trackTitle, artistName string) string {
	return fmt.Sprintf(
		"❤️ <b>Support Artist</b> — <i>Demo Mode, Coming Soon</i>\n\n"+
			"🎵 Track: <i>%s</i>\n"+
			"🎤 Artist: <b>%s</b>\n\n"+
			"⚠️ <i>Payment integration coming soon. This is a demo.</i>\n\n"+
			"Choose donation amount:",
		trackTitle, artistName,
	)
}

// ArtistProfile renders the public artist profile with recent tracks.
func ArtistProfile(artistName string, bio *string, totalTracks int64, tracks []ProfileTrack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎤 <b>%s</b>\n\n", artistName)
	if bio != nil {
		fmt.Fprintf(&b, "📝 %s\n\n", *bio)
	}
	fmt.Fprintf(&b, "🎵 <b>Total tracks:</b> %d\n\n", totalTracks)

	if len(tracks) == 0 {
		b.WriteString("<i>No tracks yet</i>")
		return b.String()
	}

	b.WriteString("<b>Recent tracks:</b>\n")
	for _, t := range tracks {
		fmt.Fprintf(&b, "\n🎵 <b>%s</b>\n   Genre: %s\n", t.Title, t.Genre)
	}
	return b.String()
}

type ProfileTrack struct {
	Title string
	Genre string
}

// OwnProfile renders the artist's private /profile view.
func OwnProfile(displayName string, paymentLink, defaultGenre, bio *string, tracks []ProfileTrack) string {
	dash := func(v *string) string {
		if v == nil {
			return "—"
		}
		return *v
	}

	lines := make([]string, 0, len(tracks))
	for _, t := range tracks {
		lines = append(lines, fmt.Sprintf("• %s (%s)", t.Title, t.Genre))
	}
	tracksText := strings.Join(lines, "\n")
	if tracksText == "" {
		tracksText = "No tracks yet"
	}

	return fmt.Sprintf(
		"🎤 <b>%s</b>\n💳 Payment: %s\n🎧 Default genre: %s\n📝 Bio: %s\n\n🎵 <b>Recent tracks:</b>\n%s",
		displayName, dash(paymentLink), dash(defaultGenre), dash(bio), tracksText,
	)
}
