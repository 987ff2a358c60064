package session

// Step tags the single active guided flow a user can be in. Starting a new
// flow replaces whatever step was active before.
type Step string

const (
	// Artist onboarding.
	StepOnboardingName        Step = "onboarding_name"
	StepOnboardingPaymentLink Step = "onboarding_payment_link"
	StepOnboardingGenre       Step = "onboarding_genre"
	StepOnboardingBio         Step = "onboarding_bio"

	// Track submission.
	StepSubmitAudio   Step = "submit_audio"
	StepSubmitTitle   Step = "submit_title"
	StepSubmitGenre   Step = "submit_genre"
	StepSubmitCaption Step = "submit_caption"

	// Profile field edit.
	StepProfileEditValue Step = "profile_edit_value"

	// Donation.
	StepDonationCustomAmount Step = "donation_custom_amount"
	StepDonationNote         Step = "donation_note"

	// Discovery.
	StepSearchQuery Step = "search_query"
)

// Field-bag keys. Values are always strings; numeric values are formatted
// with strconv by the owning handler.
const (
	FieldDefaultGenre = "default_genre"
	FieldName         = "name"
	FieldPaymentLink  = "payment_link"
	FieldGenre        = "genre"
	FieldTitle        = "title"
	FieldAudioFileID  = "audio_file_id"
	FieldEditField    = "edit_field"
	FieldTrackID      = "track_id"
	FieldDonationID   = "donation_id"
)

// Session is one user's in-flight guided flow: the current step plus the
// fields collected so far.
type Session struct {
	UserID int64
	Step   Step
	Fields map[string]string
}

// Field returns a collected field value; ok reports whether it is present
// and non-empty. Handlers must treat a missing field as session expiry, not
// as a default.
func (s Session) Field(key string) (string, bool) {
	v, ok := s.Fields[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
