// Package donation owns the donation lifecycle: from the Support button to a
// confirmed (demo) donation with its public appreciation.
package donation

import (
	"context"
	"log/slog"
	"time"

	"sadomusic/internal/bootstrap/logging"
	donationdomain "sadomusic/internal/domain/donation"
	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	"sadomusic/internal/ids"
	"sadomusic/internal/ports"
	"sadomusic/internal/texts"
)

const donationIDLength = 12

type Options struct {
	MaxPerWindow  int
	WindowSeconds int64
	MinAmount     int64
	MaxAmount     int64
}

type Service struct {
	donations ports.DonationRepository
	tracks    ports.TrackRepository
	artists   ports.ArtistRepository
	settings  ports.UserSettingsRepository
	gateway   ports.Gateway
	directory *music.ChannelDirectory
	opts      Options

	now func() int64
}

func NewService(
	donations ports.DonationRepository,
	tracks ports.TrackRepository,
	artists ports.ArtistRepository,
	settings ports.UserSettingsRepository,
	gateway ports.Gateway,
	directory *music.ChannelDirectory,
	opts Options,
) *Service {
	if opts.MinAmount <= 0 {
		opts.MinAmount = donationdomain.DefaultMinAmount
	}
	if opts.MaxAmount <= 0 {
		opts.MaxAmount = donationdomain.DefaultMaxAmount
	}
	return &Service{
		donations: donations,
		tracks:    tracks,
		artists:   artists,
		settings:  settings,
		gateway:   gateway,
		directory: directory,
		opts:      opts,
		now:       func() int64 { return time.Now().Unix() },
	}
}

// Begin loads the donation target. Only ACTIVE tracks accept donations.
func (s *Service) Begin(ctx context.Context, trackID string) (ports.Track, ports.Artist, error) {
	track, err := s.tracks.GetByID(ctx, trackID)
	if err != nil {
		return ports.Track{}, ports.Artist{}, err
	}
	if track.Status != music.TrackActive {
		return ports.Track{}, ports.Artist{}, music.ErrTrackInactive
	}
	artist, err := s.artists.GetByID(ctx, track.ArtistID)
	if err != nil {
		return ports.Track{}, ports.Artist{}, err
	}
	return track, artist, nil
}

// ParseCustomAmount applies the configured bounds to user-typed amounts.
func (s *Service) ParseCustomAmount(raw string) (int64, error) {
	return donationdomain.ParseAmount(raw, s.opts.MinAmount, s.opts.MaxAmount)
}

// Bounds exposes the configured amount range for error messages.
func (s *Service) Bounds() (min, max int64) {
	return s.opts.MinAmount, s.opts.MaxAmount
}

type CreateInput struct {
	TrackID       string
	DonorUserID   int64
	DonorName     string
	DonorUsername *string
	Amount        int64
}

// Create records a CREATED donation after the throttle check. The anonymity
// flag starts from the donor's saved default.
func (s *Service) Create(ctx context.Context, in CreateInput) (ports.DonationEvent, error) {
	if in.DonorUserID == 0 {
		return ports.DonationEvent{}, donationdomain.ErrDonorUnknown
	}
	if in.Amount < s.opts.MinAmount {
		return ports.DonationEvent{}, donationdomain.ErrAmountBelowMinimum
	}
	if in.Amount > s.opts.MaxAmount {
		return ports.DonationEvent{}, donationdomain.ErrAmountAboveMaximum
	}

	track, err := s.tracks.GetByID(ctx, in.TrackID)
	if err != nil {
		return ports.DonationEvent{}, err
	}
	if track.Status != music.TrackActive {
		return ports.DonationEvent{}, music.ErrTrackInactive
	}

	since := s.now() - s.opts.WindowSeconds
	recent, err := s.donations.CountRecentConfirmed(ctx, in.DonorUserID, in.TrackID, since)
	if err != nil {
		return ports.DonationEvent{}, errs.Wrap(err, "count recent donations")
	}
	if s.opts.MaxPerWindow > 0 && recent >= int64(s.opts.MaxPerWindow) {
		return ports.DonationEvent{}, donationdomain.ErrThrottled
	}

	anonymous, err := s.settings.GetAnonymousDefault(ctx, in.DonorUserID)
	if err != nil {
		anonymous = false
	}

	event := ports.DonationEvent{
		DonationID:    ids.New("don_", donationIDLength),
		TrackID:       track.TrackID,
		ArtistID:      track.ArtistID,
		DonorUserID:   in.DonorUserID,
		DonorName:     in.DonorName,
		DonorUsername: in.DonorUsername,
		Amount:        in.Amount,
		IsAnonymous:   anonymous,
		Status:        donationdomain.StatusCreated,
		CreatedAt:     s.now(),
	}
	if err := s.donations.Create(ctx, event); err != nil {
		return ports.DonationEvent{}, errs.Wrap(err, "create donation")
	}
	return event, nil
}

// SetNote sanitizes and stores the donor note. Returns the stored note (nil
// when the text sanitized away to nothing).
func (s *Service) SetNote(ctx context.Context, donationID, raw string) (*string, error) {
	note := donationdomain.SanitizeNote(raw)
	ok, err := s.donations.SetNote(ctx, donationID, note)
	if err != nil {
		return nil, errs.Wrap(err, "set donation note")
	}
	if !ok {
		return nil, donationdomain.ErrNotEditable
	}
	return note, nil
}

// ToggleAnonymity flips the card's anonymity flag and remembers the new
// value as the donor's default for the next donation.
func (s *Service) ToggleAnonymity(ctx context.Context, donationID string, userID int64) (bool, error) {
	event, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return false, err
	}
	if event.DonorUserID != userID {
		return false, donationdomain.ErrDonorUnknown
	}

	newValue, err := s.donations.ToggleAnonymous(ctx, donationID)
	if err != nil {
		return false, err
	}
	if err := s.settings.SetAnonymousDefault(ctx, userID, newValue); err != nil {
		logging.Warn(ctx, "anonymity default not saved",
			slog.Int64("user_id", userID),
			slog.Any("err", errs.Loggable(err)))
	}
	return newValue, nil
}

// SetAnonymity writes an explicit anonymity choice (visibility step).
func (s *Service) SetAnonymity(ctx context.Context, donationID string, userID int64, anonymous bool) error {
	event, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return err
	}
	if event.DonorUserID != userID {
		return donationdomain.ErrDonorUnknown
	}

	ok, err := s.donations.SetAnonymous(ctx, donationID, anonymous)
	if err != nil {
		return errs.Wrap(err, "set donation anonymity")
	}
	if !ok {
		return donationdomain.ErrNotEditable
	}
	if err := s.settings.SetAnonymousDefault(ctx, userID, anonymous); err != nil {
		logging.Warn(ctx, "anonymity default not saved",
			slog.Int64("user_id", userID),
			slog.Any("err", errs.Loggable(err)))
	}
	return nil
}

// Confirm flips the donation to CONFIRMED, exactly once. The appreciation
// post and the artist DM follow the durable write and are best effort.
func (s *Service) Confirm(ctx context.Context, donationID string, userID int64) (ports.DonationEvent, error) {
	event, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return ports.DonationEvent{}, err
	}
	if event.DonorUserID != userID {
		return ports.DonationEvent{}, donationdomain.ErrDonorUnknown
	}

	ok, err := s.donations.MarkConfirmed(ctx, donationID, s.now())
	if err != nil {
		return ports.DonationEvent{}, errs.Wrap(err, "mark donation confirmed")
	}
	if !ok {
		return ports.DonationEvent{}, donationdomain.ErrNotEditable
	}

	// Re-read: note and anonymity may have changed since the first load.
	event, err = s.donations.GetByID(ctx, donationID)
	if err != nil {
		return ports.DonationEvent{}, err
	}

	s.announce(ctx, event)
	return event, nil
}

// Cancel flips the donation to CANCELED. Idempotent from the caller's view:
// a second tap reports ErrNotEditable.
func (s *Service) Cancel(ctx context.Context, donationID string, userID int64) error {
	event, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return err
	}
	if event.DonorUserID != userID {
		return donationdomain.ErrDonorUnknown
	}

	ok, err := s.donations.MarkCanceled(ctx, donationID)
	if err != nil {
		return errs.Wrap(err, "mark donation canceled")
	}
	if !ok {
		return donationdomain.ErrNotEditable
	}
	return nil
}

// Card loads everything the confirmation card renders.
func (s *Service) Card(ctx context.Context, donationID string) (ports.DonationEvent, ports.Track, ports.Artist, error) {
	event, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return ports.DonationEvent{}, ports.Track{}, ports.Artist{}, err
	}
	track, err := s.tracks.GetByID(ctx, event.TrackID)
	if err != nil {
		return ports.DonationEvent{}, ports.Track{}, ports.Artist{}, err
	}
	artist, err := s.artists.GetByID(ctx, event.ArtistID)
	if err != nil {
		return ports.DonationEvent{}, ports.Track{}, ports.Artist{}, err
	}
	return event, track, artist, nil
}

// announce posts the public appreciation under the track's discussion anchor
// and notifies the artist in private. Failures are logged, never surfaced:
// the donation is already durable.
func (s *Service) announce(ctx context.Context, event ports.DonationEvent) {
	track, err := s.tracks.GetByID(ctx, event.TrackID)
	if err != nil {
		logging.Warn(ctx, "appreciation skipped, track missing",
			slog.String("donation_id", event.DonationID),
			slog.Any("err", errs.Loggable(err)))
		return
	}
	artist, err := s.artists.GetByID(ctx, event.ArtistID)
	if err != nil {
		logging.Warn(ctx, "appreciation skipped, artist missing",
			slog.String("donation_id", event.DonationID),
			slog.Any("err", errs.Loggable(err)))
		return
	}

	donorPublic := event.DonorName
	if event.IsAnonymous || donorPublic == "" {
		donorPublic = donationdomain.AnonymousPlaceholder
	}

	// No anchor means the post went up without a comments thread; the
	// appreciation has nowhere to hang and is skipped.
	if discussion, ok := s.directory.DiscussionFor(track.Genre); ok && track.DiscussionAnchorID != 0 {
		_, err := s.gateway.SendMessage(ctx, ports.OutgoingMessage{
			To:               discussion,
			Text:             texts.AppreciationPublic(donorPublic, event.Amount, artist.DisplayName, track.Title, event.Note),
			ReplyToMessageID: track.DiscussionAnchorID,
		})
		if err != nil {
			logging.Warn(ctx, "appreciation post failed",
				slog.String("donation_id", event.DonationID),
				slog.Any("err", errs.Loggable(err)))
		}
	}

	_, err = s.gateway.SendMessage(ctx, ports.OutgoingMessage{
		To:   music.ChatRef{ID: artist.TgUserID},
		Text: texts.CreatorDM(event.IsAnonymous, event.DonorName, event.DonorUsername, event.Amount, track.Title, event.Note),
	})
	if err != nil {
		logging.Warn(ctx, "artist donation DM failed",
			slog.String("donation_id", event.DonationID),
			slog.Any("err", errs.Loggable(err)))
	}
}
