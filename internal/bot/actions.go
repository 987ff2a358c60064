package bot

import (
	"strconv"
	"strings"

	"sadomusic/internal/domain/music"
)

// Action is the decoded form of a callback payload. The parser returns a
// closed set of action types; anything else is rejected at the edge.
type Action interface{ isAction() }

type LangAction struct{ Lang string }

type UserTypeAction struct{ Artist bool }

type ProfileEditAction struct{ Field string }

// GenrePickAction covers the three genre keyboards. Flow is one of
// "onboarding", "submit", "profile". Cancel means the reserved cancel row
// was tapped.
type GenrePickAction struct {
	Flow   string
	Genre  string
	Cancel bool
}

type ReviewAction struct {
	SubmissionID string
	Approve      bool
}

// DonationAmountAction is an amount selection on the preset keyboard.
// Custom means "let me type an amount".
type DonationAmountAction struct {
	TrackID string
	Amount  int64
	Custom  bool
}

type DonationNoteAction struct {
	DonationID string
	Skip       bool
}

// DonationVisibilityAction is the explicit public/anonymous choice.
type DonationVisibilityAction struct {
	DonationID string
	Anonymous  bool
}

// DonationToggleAction flips anonymity from the confirmation card.
type DonationToggleAction struct{ DonationID string }

type DonationConfirmAction struct{ DonationID string }

// DonationAbortAction cancels before a donation row exists (amount stage).
type DonationAbortAction struct{}

// DonationCancelAction cancels an existing CREATED donation.
type DonationCancelAction struct{ DonationID string }

type SupportTrackAction struct{ TrackID string }

func (LangAction) isAction()               {}
func (UserTypeAction) isAction()           {}
func (ProfileEditAction) isAction()        {}
func (GenrePickAction) isAction()          {}
func (ReviewAction) isAction()             {}
func (DonationAmountAction) isAction()     {}
func (DonationNoteAction) isAction()       {}
func (DonationVisibilityAction) isAction() {}
func (DonationToggleAction) isAction()     {}
func (DonationConfirmAction) isAction()    {}
func (DonationAbortAction) isAction()      {}
func (DonationCancelAction) isAction()     {}
func (SupportTrackAction) isAction()       {}

// ParseAction decodes a callback payload. ok=false means the payload is not
// a known action and must be answered with a generic "unknown" response.
func ParseAction(data string) (Action, bool) {
	// The amount-stage cancel is the one payload without an argument.
	if data == "doncancel" {
		return DonationAbortAction{}, true
	}

	prefix, rest, found := strings.Cut(data, ":")
	if !found || rest == "" {
		return nil, false
	}

	switch prefix {
	case "lang":
		return LangAction{Lang: rest}, true
	case "usertype":
		switch rest {
		case "artist":
			return UserTypeAction{Artist: true}, true
		case "listener":
			return UserTypeAction{Artist: false}, true
		}
		return nil, false
	case "profile":
		field, ok := strings.CutPrefix(rest, "edit:")
		if !ok || field == "" {
			return nil, false
		}
		return ProfileEditAction{Field: field}, true
	case "onbgenre":
		return genrePick("onboarding", rest), true
	case "subgenre":
		return genrePick("submit", rest), true
	case "profilegenre":
		return genrePick("profile", rest), true
	case "admin_approve":
		return ReviewAction{SubmissionID: rest, Approve: true}, true
	case "admin_reject":
		return ReviewAction{SubmissionID: rest, Approve: false}, true
	case "donamtsel":
		trackID, choice, found := strings.Cut(rest, ":")
		if !found || trackID == "" || choice == "" {
			return nil, false
		}
		if choice == "custom" {
			return DonationAmountAction{TrackID: trackID, Custom: true}, true
		}
		amount, err := strconv.ParseInt(choice, 10, 64)
		if err != nil || amount <= 0 {
			return nil, false
		}
		return DonationAmountAction{TrackID: trackID, Amount: amount}, true
	case "don_note":
		return DonationNoteAction{DonationID: rest}, true
	case "don_skip_note":
		return DonationNoteAction{DonationID: rest, Skip: true}, true
	case "don_public":
		return DonationVisibilityAction{DonationID: rest}, true
	case "don_anon_set":
		return DonationVisibilityAction{DonationID: rest, Anonymous: true}, true
	case "don_anon":
		return DonationToggleAction{DonationID: rest}, true
	case "don_ok":
		return DonationConfirmAction{DonationID: rest}, true
	case "don_cancel":
		return DonationCancelAction{DonationID: rest}, true
	case "support_track":
		return SupportTrackAction{TrackID: rest}, true
	}
	return nil, false
}

func genrePick(flow, choice string) GenrePickAction {
	if choice == music.CancelChoice {
		return GenrePickAction{Flow: flow, Cancel: true}
	}
	return GenrePickAction{Flow: flow, Genre: choice}
}
