// Package bot routes inbound updates to the usecase services: command
// handling, guided-flow session steps and callback actions.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"sadomusic/internal/bootstrap/logging"
	donationdomain "sadomusic/internal/domain/donation"
	"sadomusic/internal/domain/music"
	"sadomusic/internal/domain/session"
	"sadomusic/internal/errs"
	"sadomusic/internal/i18n"
	"sadomusic/internal/keyboards"
	"sadomusic/internal/ports"
	"sadomusic/internal/texts"
	"sadomusic/internal/usecase/discovery"
	donationuc "sadomusic/internal/usecase/donation"
	"sadomusic/internal/usecase/registry"
	"sadomusic/internal/usecase/review"
)

type Options struct {
	BotUsername string
}

type Dispatcher struct {
	gateway   ports.Gateway
	source    ports.UpdateSource
	sessions  ports.SessionStore
	settings  ports.UserSettingsRepository
	artists   ports.ArtistRepository
	registry  *registry.Service
	review    *review.Service
	donations *donationuc.Service
	discovery *discovery.Service
	opts      Options

	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

func NewDispatcher(
	gateway ports.Gateway,
	source ports.UpdateSource,
	sessions ports.SessionStore,
	settings ports.UserSettingsRepository,
	artists ports.ArtistRepository,
	registrySvc *registry.Service,
	reviewSvc *review.Service,
	donationSvc *donationuc.Service,
	discoverySvc *discovery.Service,
	opts Options,
) *Dispatcher {
	return &Dispatcher{
		gateway:   gateway,
		source:    source,
		sessions:  sessions,
		settings:  settings,
		artists:   artists,
		registry:  registrySvc,
		review:    reviewSvc,
		donations: donationSvc,
		discovery: discoverySvc,
		opts:      opts,
		limiters:  make(map[int64]*rate.Limiter),
	}
}

// Run consumes updates until ctx is canceled. Each update is handled on its
// own goroutine; per-user rate limiting drops floods at the door.
func (d *Dispatcher) Run(ctx context.Context) error {
	updates, err := d.source.Updates(ctx)
	if err != nil {
		return errs.Wrap(err, "open update stream")
	}

	logging.Info(ctx, "dispatcher started", slog.String("bot", d.opts.BotUsername))

	for upd := range updates {
		if !d.limiter(upd.UserID).Allow() {
			continue
		}
		go d.handle(ctx, upd)
	}
	return nil
}

func (d *Dispatcher) limiter(userID int64) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.limiters[userID]
	if !ok {
		l = rate.NewLimiter(rate.Limit(2), 5)
		d.limiters[userID] = l
	}
	return l
}

func (d *Dispatcher) handle(ctx context.Context, upd ports.Update) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(ctx, "handler panic",
				slog.Int64("user_id", upd.UserID),
				slog.Any("panic", r))
		}
	}()

	ctx = logging.WithAttrs(ctx, slog.Int64("user_id", upd.UserID))

	if upd.IsCallback() {
		d.handleCallback(ctx, upd)
		return
	}
	d.handleMessage(ctx, upd)
}

func (d *Dispatcher) lang(ctx context.Context, userID int64) string {
	lang, err := d.settings.GetLang(ctx, userID)
	if err != nil || !i18n.IsSupported(lang) {
		return ports.DefaultLang
	}
	return lang
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, text string, kb ports.Keyboard) {
	_, err := d.gateway.SendMessage(ctx, ports.OutgoingMessage{
		To:       music.ChatRef{ID: chatID},
		Text:     text,
		Keyboard: kb,
	})
	if err != nil {
		logging.Warn(ctx, "reply failed", slog.Any("err", errs.Loggable(err)))
	}
}

// --- messages ---

func (d *Dispatcher) handleMessage(ctx context.Context, upd ports.Update) {
	if strings.HasPrefix(upd.Text, "/") {
		d.handleCommand(ctx, upd)
		return
	}

	sess, found, err := d.sessions.Get(ctx, upd.UserID)
	if err != nil {
		logging.Error(ctx, "session load failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	if !found {
		// Free text outside any flow is ignored.
		return
	}
	d.handleStep(ctx, upd, sess)
}

func (d *Dispatcher) handleCommand(ctx context.Context, upd ports.Update) {
	fields := strings.Fields(upd.Text)
	command := strings.ToLower(fields[0])
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}
	payload := ""
	if len(fields) > 1 {
		payload = fields[1]
	}

	lang := d.lang(ctx, upd.UserID)

	switch command {
	case "/start":
		d.handleStart(ctx, upd, payload, lang)
	case "/language":
		d.reply(ctx, upd.ChatID, i18n.T(lang, "select_language"), keyboards.Lang())
	case "/submit":
		d.startSubmission(ctx, upd, lang)
	case "/profile":
		d.showOwnProfile(ctx, upd, lang)
	case "/cancel":
		d.cancelFlow(ctx, upd, lang)
	case "/help":
		d.reply(ctx, upd.ChatID, i18n.T(lang, "help_text"), nil)
	case "/channels":
		d.showChannels(ctx, upd, lang)
	case "/search":
		if err := d.sessions.Begin(ctx, upd.UserID, session.StepSearchQuery, nil); err != nil {
			logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
			return
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "search_prompt"), nil)
	case "/chatid":
		d.reply(ctx, upd.ChatID, fmt.Sprintf("Chat ID: <code>%d</code>", upd.ChatID), nil)
	default:
		d.reply(ctx, upd.ChatID, i18n.T(lang, "help_text"), nil)
	}
}

func (d *Dispatcher) handleStart(ctx context.Context, upd ports.Update, payload, lang string) {
	if trackID, ok := strings.CutPrefix(payload, "donate_"); ok {
		d.startDonation(ctx, upd, trackID, lang)
		return
	}
	if artistID, ok := strings.CutPrefix(payload, "artist_"); ok {
		d.showPublicProfile(ctx, upd, artistID, lang)
		return
	}

	if _, err := d.artists.GetByUserID(ctx, upd.UserID); err == nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "welcome_back"), nil)
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "welcome_new"), keyboards.Lang())
}

func (d *Dispatcher) cancelFlow(ctx context.Context, upd ports.Update, lang string) {
	_, found, err := d.sessions.Get(ctx, upd.UserID)
	if err != nil {
		logging.Error(ctx, "session load failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	if !found {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "nothing_to_cancel"), nil)
		return
	}
	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "cancelled"), nil)
}

func (d *Dispatcher) startSubmission(ctx context.Context, upd ports.Update, lang string) {
	artist, err := d.artists.GetByUserID(ctx, upd.UserID)
	if err != nil {
		// First /submit doubles as the onboarding entry point; the
		// submission flow starts right after the profile is created.
		if err := d.sessions.Begin(ctx, upd.UserID, session.StepOnboardingName, nil); err != nil {
			logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
			return
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "onboard_start"), nil)
		return
	}
	if err := d.sessions.Begin(ctx, upd.UserID, session.StepSubmitAudio, nil); err != nil {
		logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.Tf(lang, "uploading_as", "name", artist.DisplayName), nil)
}

func (d *Dispatcher) showOwnProfile(ctx context.Context, upd ports.Update, lang string) {
	profile, err := d.registry.ProfileByUserID(ctx, upd.UserID)
	if err != nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "no_profile"), nil)
		return
	}

	tracks := make([]texts.ProfileTrack, 0, len(profile.Tracks))
	for _, t := range profile.Tracks {
		tracks = append(tracks, texts.ProfileTrack{Title: t.Title, Genre: t.Genre})
	}
	a := profile.Artist
	d.reply(ctx, upd.ChatID,
		texts.OwnProfile(a.DisplayName, a.PaymentLink, a.DefaultGenre, a.Bio, tracks),
		keyboards.ProfileActions(lang))
}

func (d *Dispatcher) showPublicProfile(ctx context.Context, upd ports.Update, artistID, lang string) {
	profile, err := d.registry.ProfileByArtistID(ctx, artistID)
	if err != nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "artist_not_found"), nil)
		return
	}

	tracks := make([]texts.ProfileTrack, 0, len(profile.Tracks))
	for _, t := range profile.Tracks {
		tracks = append(tracks, texts.ProfileTrack{Title: t.Title, Genre: t.Genre})
	}
	a := profile.Artist
	d.reply(ctx, upd.ChatID,
		texts.ArtistProfile(a.DisplayName, a.Bio, profile.TotalTracks, tracks), nil)
}

func (d *Dispatcher) showChannels(ctx context.Context, upd ports.Update, lang string) {
	entries := d.discovery.Channels()
	if len(entries) == 0 {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "no_channels"), nil)
		return
	}

	var b strings.Builder
	b.WriteString(i18n.T(lang, "channels_list_header"))
	for _, e := range entries {
		label := e.Ref.Username
		if label == "" {
			label = strconv.FormatInt(e.Ref.ID, 10)
		}
		fmt.Fprintf(&b, "\n• %s — %s", e.Group, label)
	}
	d.reply(ctx, upd.ChatID, b.String(), nil)
}

// --- session steps ---

func (d *Dispatcher) handleStep(ctx context.Context, upd ports.Update, sess session.Session) {
	lang := d.lang(ctx, upd.UserID)

	switch sess.Step {
	case session.StepOnboardingName:
		d.stepOnboardingName(ctx, upd, lang)
	case session.StepOnboardingPaymentLink:
		d.stepOnboardingPayment(ctx, upd, lang)
	case session.StepOnboardingBio:
		d.stepOnboardingBio(ctx, upd, sess, lang)
	case session.StepSubmitAudio:
		d.stepSubmitAudio(ctx, upd, lang)
	case session.StepSubmitTitle:
		d.stepSubmitTitle(ctx, upd, lang)
	case session.StepSubmitCaption:
		d.stepSubmitCaption(ctx, upd, sess, lang)
	case session.StepProfileEditValue:
		d.stepProfileEdit(ctx, upd, sess, lang)
	case session.StepDonationCustomAmount:
		d.stepDonationAmount(ctx, upd, sess, lang)
	case session.StepDonationNote:
		d.stepDonationNote(ctx, upd, sess, lang)
	case session.StepSearchQuery:
		d.stepSearch(ctx, upd, lang)
	}
}

func (d *Dispatcher) expireSession(ctx context.Context, upd ports.Update, lang string) {
	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "session_expired"), nil)
}

func (d *Dispatcher) stepOnboardingName(ctx context.Context, upd ports.Update, lang string) {
	name, err := music.ValidateDisplayName(upd.Text)
	if err != nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "name_too_short"), nil)
		return
	}
	err = d.sessions.Advance(ctx, upd.UserID, session.StepOnboardingPaymentLink,
		map[string]string{session.FieldName: name})
	if err != nil {
		logging.Error(ctx, "session advance failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "payment_prompt"), nil)
}

func (d *Dispatcher) stepOnboardingPayment(ctx context.Context, upd ports.Update, lang string) {
	link, err := music.ValidatePaymentLink(upd.Text)
	if err != nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "invalid_url"), nil)
		return
	}

	err = d.sessions.Advance(ctx, upd.UserID, session.StepOnboardingGenre,
		map[string]string{session.FieldPaymentLink: link})
	if err != nil {
		logging.Error(ctx, "session advance failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "choose_genre"), keyboards.Genres("onbgenre", lang))
}

func (d *Dispatcher) stepOnboardingBio(ctx context.Context, upd ports.Update, sess session.Session, lang string) {
	name, ok := sess.Field(session.FieldName)
	if !ok {
		d.expireSession(ctx, upd, lang)
		return
	}

	in := registry.CompleteOnboardingInput{
		UserID:      upd.UserID,
		DisplayName: name,
		Bio:         music.OptionalText(upd.Text),
	}
	if link, ok := sess.Field(session.FieldPaymentLink); ok {
		in.PaymentLink = &link
	}
	if genre, ok := sess.Field(session.FieldDefaultGenre); ok {
		in.DefaultGenre = &genre
	}

	if _, err := d.registry.CompleteOnboarding(ctx, in); err != nil {
		if errors.Is(err, music.ErrArtistExists) {
			d.reply(ctx, upd.ChatID, i18n.T(lang, "welcome_back"), nil)
		} else {
			logging.Error(ctx, "onboarding failed", slog.Any("err", errs.Loggable(err)))
			d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
		}
		if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
			logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
		}
		return
	}

	// The profile-created message asks for the first track, so the
	// submission flow starts immediately.
	if err := d.sessions.Begin(ctx, upd.UserID, session.StepSubmitAudio, nil); err != nil {
		logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "profile_created"), nil)
}

func (d *Dispatcher) stepSubmitAudio(ctx context.Context, upd ports.Update, lang string) {
	if upd.AudioFileID == "" {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "send_audio_prompt"), nil)
		return
	}
	err := d.sessions.Advance(ctx, upd.UserID, session.StepSubmitTitle,
		map[string]string{session.FieldAudioFileID: upd.AudioFileID})
	if err != nil {
		logging.Error(ctx, "session advance failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "send_title"), nil)
}

func (d *Dispatcher) stepSubmitTitle(ctx context.Context, upd ports.Update, lang string) {
	title, err := music.ValidateTitle(upd.Text)
	if err != nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "title_too_short"), nil)
		return
	}
	err = d.sessions.Advance(ctx, upd.UserID, session.StepSubmitGenre,
		map[string]string{session.FieldTitle: title})
	if err != nil {
		logging.Error(ctx, "session advance failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "genre_prompt"), keyboards.Genres("subgenre", lang))
}

func (d *Dispatcher) stepSubmitCaption(ctx context.Context, upd ports.Update, sess session.Session, lang string) {
	title, okTitle := sess.Field(session.FieldTitle)
	genre, okGenre := sess.Field(session.FieldGenre)
	audioFileID, okAudio := sess.Field(session.FieldAudioFileID)
	if !okTitle || !okGenre || !okAudio {
		d.expireSession(ctx, upd, lang)
		return
	}

	_, err := d.review.Submit(ctx, review.SubmitInput{
		UserID:      upd.UserID,
		Title:       title,
		Genre:       genre,
		Caption:     music.OptionalText(upd.Text),
		AudioFileID: audioFileID,
	})
	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	if err != nil {
		logging.Error(ctx, "submission failed", slog.Any("err", errs.Loggable(err)))
		d.reply(ctx, upd.ChatID, i18n.T(lang, "submission_failed"), nil)
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "submission_received"), nil)
}

func (d *Dispatcher) stepProfileEdit(ctx context.Context, upd ports.Update, sess session.Session, lang string) {
	field, ok := sess.Field(session.FieldEditField)
	if !ok {
		d.expireSession(ctx, upd, lang)
		return
	}

	if err := d.registry.UpdateProfileField(ctx, upd.UserID, field, upd.Text); err != nil {
		switch {
		case errors.Is(err, music.ErrNameTooShort):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "name_too_short"), nil)
		case errors.Is(err, music.ErrInvalidPaymentLink):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "invalid_url"), nil)
		case errors.Is(err, music.ErrInvalidGenre):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "choose_genre"), keyboards.Genres("profilegenre", lang))
		default:
			logging.Error(ctx, "profile edit failed", slog.Any("err", errs.Loggable(err)))
			d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
		}
		return
	}

	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "updated"), nil)
}

func (d *Dispatcher) stepDonationAmount(ctx context.Context, upd ports.Update, sess session.Session, lang string) {
	trackID, ok := sess.Field(session.FieldTrackID)
	if !ok {
		d.expireSession(ctx, upd, lang)
		return
	}

	amount, err := d.donations.ParseCustomAmount(upd.Text)
	if err != nil {
		min, max := d.donations.Bounds()
		switch {
		case errors.Is(err, donationdomain.ErrAmountBelowMinimum):
			d.reply(ctx, upd.ChatID, i18n.Tf(lang, "amount_below_min", "min", texts.FormatAmount(min)), nil)
		case errors.Is(err, donationdomain.ErrAmountAboveMaximum):
			d.reply(ctx, upd.ChatID, i18n.Tf(lang, "amount_above_max", "max", texts.FormatAmount(max)), nil)
		default:
			d.reply(ctx, upd.ChatID, i18n.T(lang, "amount_not_number"), nil)
		}
		return
	}

	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	d.createDonation(ctx, upd, trackID, amount, lang)
}

func (d *Dispatcher) stepDonationNote(ctx context.Context, upd ports.Update, sess session.Session, lang string) {
	donationID, ok := sess.Field(session.FieldDonationID)
	if !ok {
		d.expireSession(ctx, upd, lang)
		return
	}

	if _, err := d.donations.SetNote(ctx, donationID, upd.Text); err != nil {
		if errors.Is(err, donationdomain.ErrNotEditable) {
			d.reply(ctx, upd.ChatID, i18n.T(lang, "not_editable"), nil)
		} else {
			logging.Error(ctx, "note save failed", slog.Any("err", errs.Loggable(err)))
			d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
		}
		if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
			logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
		}
		return
	}

	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "note_saved"), nil)
	d.askVisibility(ctx, upd.ChatID, donationID, lang)
}

func (d *Dispatcher) stepSearch(ctx context.Context, upd ports.Update, lang string) {
	result, err := d.discovery.Search(ctx, upd.Text)
	if err != nil {
		logging.Error(ctx, "search failed", slog.Any("err", errs.Loggable(err)))
		d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
		return
	}
	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}

	if len(result.Artists) == 0 && len(result.Tracks) == 0 {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "search_no_results"), nil)
		return
	}

	var b strings.Builder
	b.WriteString(i18n.T(lang, "search_results_header"))
	for _, a := range result.Artists {
		fmt.Fprintf(&b, "\n🎤 <b>%s</b> — /start artist_%s", a.DisplayName, a.ArtistID)
	}
	d.reply(ctx, upd.ChatID, b.String(), nil)

	for _, hit := range result.Tracks {
		d.reply(ctx, upd.ChatID,
			fmt.Sprintf("🎵 <b>%s</b>\n🎤 %s", hit.Track.Title, hit.Artist.DisplayName),
			keyboards.TrackSupport(hit.Track.TrackID, lang))
	}
}

// --- callbacks ---

func (d *Dispatcher) answer(ctx context.Context, upd ports.Update, text string, alert bool) {
	if err := d.gateway.AnswerCallback(ctx, upd.CallbackID, text, alert); err != nil {
		logging.Warn(ctx, "callback answer failed", slog.Any("err", errs.Loggable(err)))
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, upd ports.Update) {
	lang := d.lang(ctx, upd.UserID)

	action, ok := ParseAction(upd.CallbackData)
	if !ok {
		d.answer(ctx, upd, i18n.T(lang, "unknown_action"), false)
		return
	}

	switch a := action.(type) {
	case LangAction:
		d.onLang(ctx, upd, a)
	case UserTypeAction:
		d.onUserType(ctx, upd, a, lang)
	case ProfileEditAction:
		d.onProfileEdit(ctx, upd, a, lang)
	case GenrePickAction:
		d.onGenrePick(ctx, upd, a, lang)
	case ReviewAction:
		d.onReview(ctx, upd, a, lang)
	case SupportTrackAction:
		d.answer(ctx, upd, "", false)
		d.startDonation(ctx, upd, a.TrackID, lang)
	case DonationAmountAction:
		d.onDonationAmount(ctx, upd, a, lang)
	case DonationNoteAction:
		d.onDonationNote(ctx, upd, a, lang)
	case DonationVisibilityAction:
		d.onDonationVisibility(ctx, upd, a, lang)
	case DonationToggleAction:
		d.onDonationToggle(ctx, upd, a, lang)
	case DonationConfirmAction:
		d.onDonationConfirm(ctx, upd, a, lang)
	case DonationAbortAction:
		d.onDonationAbort(ctx, upd, lang)
	case DonationCancelAction:
		d.onDonationCancel(ctx, upd, a, lang)
	}
}

func (d *Dispatcher) onLang(ctx context.Context, upd ports.Update, a LangAction) {
	if !i18n.IsSupported(a.Lang) {
		d.answer(ctx, upd, i18n.T(ports.DefaultLang, "invalid_language"), false)
		return
	}
	if err := d.settings.SetLang(ctx, upd.UserID, a.Lang); err != nil {
		logging.Error(ctx, "language save failed", slog.Any("err", errs.Loggable(err)))
		d.answer(ctx, upd, i18n.T(a.Lang, "something_wrong"), false)
		return
	}
	d.answer(ctx, upd, i18n.T(a.Lang, "language_saved"), false)

	if _, err := d.artists.GetByUserID(ctx, upd.UserID); err == nil {
		d.reply(ctx, upd.ChatID, i18n.T(a.Lang, "welcome_back"), nil)
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(a.Lang, "choose_user_type"), keyboards.UserType(a.Lang))
}

func (d *Dispatcher) onUserType(ctx context.Context, upd ports.Update, a UserTypeAction, lang string) {
	d.answer(ctx, upd, "", false)
	if !a.Artist {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "listener_info"), nil)
		return
	}
	if err := d.sessions.Begin(ctx, upd.UserID, session.StepOnboardingName, nil); err != nil {
		logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "onboard_start"), nil)
}

func (d *Dispatcher) onProfileEdit(ctx context.Context, upd ports.Update, a ProfileEditAction, lang string) {
	d.answer(ctx, upd, "", false)

	if a.Field == "default_genre" {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "choose_genre"), keyboards.Genres("profilegenre", lang))
		return
	}

	promptKey := map[string]string{
		"display_name": "edit_name_prompt",
		"payment_link": "edit_payment_prompt",
		"bio":          "edit_bio_prompt",
	}[a.Field]
	if promptKey == "" {
		d.answer(ctx, upd, i18n.T(lang, "unknown_action"), false)
		return
	}

	err := d.sessions.Begin(ctx, upd.UserID, session.StepProfileEditValue,
		map[string]string{session.FieldEditField: a.Field})
	if err != nil {
		logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, promptKey), nil)
}

func (d *Dispatcher) onGenrePick(ctx context.Context, upd ports.Update, a GenrePickAction, lang string) {
	if a.Cancel {
		d.answer(ctx, upd, "", false)
		if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
			logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "cancelled"), nil)
		return
	}

	genre, ok := music.NormalizeGenre(a.Genre)
	if !ok {
		d.answer(ctx, upd, i18n.T(lang, "unknown_action"), false)
		return
	}
	d.answer(ctx, upd, "", false)

	switch a.Flow {
	case "onboarding":
		err := d.sessions.Advance(ctx, upd.UserID, session.StepOnboardingBio,
			map[string]string{session.FieldDefaultGenre: genre})
		if err != nil {
			logging.Error(ctx, "session advance failed", slog.Any("err", errs.Loggable(err)))
			return
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "bio_prompt"), nil)
	case "submit":
		err := d.sessions.Advance(ctx, upd.UserID, session.StepSubmitCaption,
			map[string]string{session.FieldGenre: genre})
		if err != nil {
			logging.Error(ctx, "session advance failed", slog.Any("err", errs.Loggable(err)))
			return
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "caption_prompt"), nil)
	case "profile":
		if err := d.registry.UpdateProfileField(ctx, upd.UserID, "default_genre", genre); err != nil {
			logging.Error(ctx, "profile edit failed", slog.Any("err", errs.Loggable(err)))
			d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
			return
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "genre_updated"), nil)
	}
}

func (d *Dispatcher) onReview(ctx context.Context, upd ports.Update, a ReviewAction, lang string) {
	var err error
	if a.Approve {
		_, err = d.review.Approve(ctx, upd.UserID, a.SubmissionID)
	} else {
		err = d.review.Reject(ctx, upd.UserID, a.SubmissionID)
	}

	switch {
	case err == nil:
		d.answer(ctx, upd, "OK", false)
	case errors.Is(err, review.ErrNotAuthorized):
		d.answer(ctx, upd, i18n.T(lang, "not_authorized"), true)
	case errors.Is(err, music.ErrAlreadyReviewed):
		d.answer(ctx, upd, i18n.T(lang, "already_processed"), true)
	case errors.Is(err, music.ErrChannelNotConfigured):
		d.answer(ctx, upd, i18n.T(lang, "channel_not_configured"), true)
	default:
		logging.Error(ctx, "review action failed",
			slog.String("submission_id", a.SubmissionID),
			slog.Any("err", errs.Loggable(err)))
		d.answer(ctx, upd, i18n.T(lang, "something_wrong"), true)
	}
}

// --- donation flow ---

func (d *Dispatcher) startDonation(ctx context.Context, upd ports.Update, trackID, lang string) {
	track, artist, err := d.donations.Begin(ctx, trackID)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrTrackNotFound):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "track_not_found"), nil)
		case errors.Is(err, music.ErrTrackInactive):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "track_inactive"), nil)
		default:
			logging.Error(ctx, "donation start failed", slog.Any("err", errs.Loggable(err)))
			d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
		}
		return
	}

	d.reply(ctx, upd.ChatID,
		texts.DonationStart(track.Title, artist.DisplayName),
		keyboards.DonationAmounts(track.TrackID, donationdomain.PresetAmounts, lang))
}

func (d *Dispatcher) onDonationAmount(ctx context.Context, upd ports.Update, a DonationAmountAction, lang string) {
	d.answer(ctx, upd, "", false)

	if a.Custom {
		err := d.sessions.Begin(ctx, upd.UserID, session.StepDonationCustomAmount,
			map[string]string{session.FieldTrackID: a.TrackID})
		if err != nil {
			logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
			return
		}
		d.reply(ctx, upd.ChatID, i18n.T(lang, "custom_amount_prompt"), nil)
		return
	}

	d.createDonation(ctx, upd, a.TrackID, a.Amount, lang)
}

func (d *Dispatcher) createDonation(ctx context.Context, upd ports.Update, trackID string, amount int64, lang string) {
	var username *string
	if upd.Username != "" {
		u := upd.Username
		username = &u
	}

	event, err := d.donations.Create(ctx, donationuc.CreateInput{
		TrackID:       trackID,
		DonorUserID:   upd.UserID,
		DonorName:     upd.DisplayName,
		DonorUsername: username,
		Amount:        amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, donationdomain.ErrThrottled):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "donation_throttled"), nil)
		case errors.Is(err, ports.ErrTrackNotFound):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "track_not_found"), nil)
		case errors.Is(err, music.ErrTrackInactive):
			d.reply(ctx, upd.ChatID, i18n.T(lang, "track_inactive"), nil)
		default:
			logging.Error(ctx, "donation create failed", slog.Any("err", errs.Loggable(err)))
			d.reply(ctx, upd.ChatID, i18n.T(lang, "something_wrong"), nil)
		}
		return
	}

	title, artistName := "", ""
	if track, artist, err := d.donations.Begin(ctx, trackID); err == nil {
		title = track.Title
		artistName = artist.DisplayName
	}
	d.reply(ctx, upd.ChatID,
		i18n.Tf(lang, "ask_note",
			"amount", texts.FormatAmount(event.Amount),
			"title", title,
			"artist", artistName),
		keyboards.DonationNoteOptions(event.DonationID, lang))
}

func (d *Dispatcher) askVisibility(ctx context.Context, chatID int64, donationID, lang string) {
	d.reply(ctx, chatID, i18n.T(lang, "choose_visibility"), keyboards.DonationAnonymity(donationID, lang))
}

func (d *Dispatcher) onDonationNote(ctx context.Context, upd ports.Update, a DonationNoteAction, lang string) {
	d.answer(ctx, upd, "", false)

	if a.Skip {
		d.askVisibility(ctx, upd.ChatID, a.DonationID, lang)
		return
	}

	err := d.sessions.Begin(ctx, upd.UserID, session.StepDonationNote,
		map[string]string{session.FieldDonationID: a.DonationID})
	if err != nil {
		logging.Error(ctx, "session begin failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	d.reply(ctx, upd.ChatID, i18n.T(lang, "note_prompt"), nil)
}

func (d *Dispatcher) onDonationVisibility(ctx context.Context, upd ports.Update, a DonationVisibilityAction, lang string) {
	if err := d.donations.SetAnonymity(ctx, a.DonationID, upd.UserID, a.Anonymous); err != nil {
		d.answerDonationError(ctx, upd, err, lang)
		return
	}
	d.answer(ctx, upd, "", false)
	d.sendCard(ctx, upd.ChatID, a.DonationID, lang)
}

func (d *Dispatcher) sendCard(ctx context.Context, chatID int64, donationID, lang string) {
	event, track, artist, err := d.donations.Card(ctx, donationID)
	if err != nil {
		logging.Error(ctx, "donation card load failed", slog.Any("err", errs.Loggable(err)))
		d.reply(ctx, chatID, i18n.T(lang, "something_wrong"), nil)
		return
	}
	d.reply(ctx, chatID,
		texts.DonationCard(track.Title, artist.DisplayName, event.Amount, event.IsAnonymous, event.Note),
		keyboards.DonationConfirm(event.DonationID, event.IsAnonymous, lang))
}

func (d *Dispatcher) onDonationToggle(ctx context.Context, upd ports.Update, a DonationToggleAction, lang string) {
	if _, err := d.donations.ToggleAnonymity(ctx, a.DonationID, upd.UserID); err != nil {
		d.answerDonationError(ctx, upd, err, lang)
		return
	}
	d.answer(ctx, upd, i18n.T(lang, "anon_updated"), false)

	event, track, artist, err := d.donations.Card(ctx, a.DonationID)
	if err != nil {
		logging.Error(ctx, "donation card load failed", slog.Any("err", errs.Loggable(err)))
		return
	}
	err = d.gateway.EditMessageText(ctx, upd.CallbackChatID, upd.CallbackMessageID,
		texts.DonationCard(track.Title, artist.DisplayName, event.Amount, event.IsAnonymous, event.Note),
		keyboards.DonationConfirm(event.DonationID, event.IsAnonymous, lang))
	if err != nil {
		logging.Warn(ctx, "donation card edit failed", slog.Any("err", errs.Loggable(err)))
	}
}

func (d *Dispatcher) onDonationConfirm(ctx context.Context, upd ports.Update, a DonationConfirmAction, lang string) {
	event, err := d.donations.Confirm(ctx, a.DonationID, upd.UserID)
	if err != nil {
		d.answerDonationError(ctx, upd, err, lang)
		return
	}
	d.answer(ctx, upd, i18n.T(lang, "confirmed_short"), false)

	_, track, artist, cardErr := d.donations.Card(ctx, a.DonationID)
	if cardErr == nil {
		err = d.gateway.EditMessageText(ctx, upd.CallbackChatID, upd.CallbackMessageID,
			texts.DonationCard(track.Title, artist.DisplayName, event.Amount, event.IsAnonymous, event.Note)+
				"\n\n"+i18n.T(lang, "donation_confirmed"), nil)
		if err != nil {
			logging.Warn(ctx, "donation card edit failed", slog.Any("err", errs.Loggable(err)))
		}
	}
}

func (d *Dispatcher) onDonationAbort(ctx context.Context, upd ports.Update, lang string) {
	d.answer(ctx, upd, "", false)
	if err := d.sessions.Clear(ctx, upd.UserID); err != nil {
		logging.Error(ctx, "session clear failed", slog.Any("err", errs.Loggable(err)))
	}
	err := d.gateway.EditMessageText(ctx, upd.CallbackChatID, upd.CallbackMessageID,
		i18n.T(lang, "donation_canceled"), nil)
	if err != nil {
		d.reply(ctx, upd.ChatID, i18n.T(lang, "donation_canceled"), nil)
	}
}

func (d *Dispatcher) onDonationCancel(ctx context.Context, upd ports.Update, a DonationCancelAction, lang string) {
	if err := d.donations.Cancel(ctx, a.DonationID, upd.UserID); err != nil {
		d.answerDonationError(ctx, upd, err, lang)
		return
	}
	d.answer(ctx, upd, i18n.T(lang, "canceled_short"), false)

	err := d.gateway.EditMessageText(ctx, upd.CallbackChatID, upd.CallbackMessageID,
		i18n.T(lang, "donation_canceled"), nil)
	if err != nil {
		logging.Warn(ctx, "donation card edit failed", slog.Any("err", errs.Loggable(err)))
	}
}

func (d *Dispatcher) answerDonationError(ctx context.Context, upd ports.Update, err error, lang string) {
	switch {
	case errors.Is(err, donationdomain.ErrNotEditable):
		d.answer(ctx, upd, i18n.T(lang, "already_processed"), true)
	case errors.Is(err, donationdomain.ErrDonorUnknown):
		d.answer(ctx, upd, i18n.T(lang, "not_authorized"), true)
	case errors.Is(err, ports.ErrDonationNotFound):
		d.answer(ctx, upd, i18n.T(lang, "donation_not_found"), true)
	default:
		logging.Error(ctx, "donation action failed", slog.Any("err", errs.Loggable(err)))
		d.answer(ctx, upd, i18n.T(lang, "something_wrong"), true)
	}
}
