// Package review owns the submission lifecycle: intake, moderator review
// and publication to the genre channel.
package review

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sadomusic/internal/bootstrap/logging"
	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	"sadomusic/internal/i18n"
	"sadomusic/internal/ids"
	"sadomusic/internal/keyboards"
	"sadomusic/internal/ports"
	"sadomusic/internal/texts"
)

// ErrNotAuthorized rejects review actions from anyone but the moderator.
var ErrNotAuthorized = errors.New("user is not the moderator")

const (
	submissionIDLength = 10
	trackIDLength      = 10
)

type Options struct {
	ModeratorID int64
	BotUsername string
}

type Service struct {
	submissions ports.SubmissionRepository
	tracks      ports.TrackRepository
	artists     ports.ArtistRepository
	settings    ports.UserSettingsRepository
	uow         ports.UnitOfWork
	gateway     ports.Gateway
	directory   *music.ChannelDirectory
	opts        Options

	now func() int64
}

func NewService(
	submissions ports.SubmissionRepository,
	tracks ports.TrackRepository,
	artists ports.ArtistRepository,
	settings ports.UserSettingsRepository,
	uow ports.UnitOfWork,
	gateway ports.Gateway,
	directory *music.ChannelDirectory,
	opts Options,
) *Service {
	return &Service{
		submissions: submissions,
		tracks:      tracks,
		artists:     artists,
		settings:    settings,
		uow:         uow,
		gateway:     gateway,
		directory:   directory,
		opts:        opts,
		now:         func() int64 { return time.Now().Unix() },
	}
}

type SubmitInput struct {
	UserID      int64
	Title       string
	Genre       string
	Caption     *string
	AudioFileID string
}

// Submit records a PENDING submission and sends the moderator a review card.
// The card is best effort: a Telegram failure leaves the submission queued,
// it never rolls the row back.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (ports.Submission, error) {
	title, err := music.ValidateTitle(in.Title)
	if err != nil {
		return ports.Submission{}, err
	}
	genre, ok := music.NormalizeGenre(in.Genre)
	if !ok {
		return ports.Submission{}, music.ErrInvalidGenre
	}

	artist, err := s.artists.GetByUserID(ctx, in.UserID)
	if err != nil {
		return ports.Submission{}, err
	}

	sub := ports.Submission{
		SubmissionID:    ids.New("sub_", submissionIDLength),
		ArtistID:        artist.ArtistID,
		SubmitterUserID: in.UserID,
		Title:           title,
		Genre:           genre,
		Caption:         in.Caption,
		AudioFileID:     in.AudioFileID,
		Status:          music.SubmissionPending,
		CreatedAt:       s.now(),
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return ports.Submission{}, errs.Wrap(err, "create submission")
	}

	s.sendReviewCard(ctx, sub, artist)
	return sub, nil
}

func (s *Service) sendReviewCard(ctx context.Context, sub ports.Submission, artist ports.Artist) {
	msgID, err := s.gateway.SendAudio(ctx, ports.OutgoingAudio{
		To:       music.ChatRef{ID: s.opts.ModeratorID},
		FileID:   sub.AudioFileID,
		Caption:  texts.ReviewCaption(sub.Title, artist.DisplayName, sub.Genre, sub.Caption, artist.PaymentLink, sub.SubmissionID),
		Keyboard: keyboards.AdminReview(sub.SubmissionID),
	})
	if err != nil {
		logging.Warn(ctx, "review card delivery failed",
			slog.String("submission_id", sub.SubmissionID),
			slog.Any("err", errs.Loggable(err)))
		return
	}
	if err := s.submissions.SetReviewMessageID(ctx, sub.SubmissionID, msgID); err != nil {
		logging.Warn(ctx, "review card message id not recorded",
			slog.String("submission_id", sub.SubmissionID),
			slog.Any("err", errs.Loggable(err)))
	}
}

type ApproveResult struct {
	Track ports.Track
}

// Approve publishes an approved submission: audio to the genre channel, an
// anchor to the discussion group, then the Track row and the status flip in
// one transaction. Notifying the submitter and refreshing the review card
// come after the commit and are best effort.
func (s *Service) Approve(ctx context.Context, moderatorUserID int64, submissionID string) (ApproveResult, error) {
	if moderatorUserID != s.opts.ModeratorID {
		return ApproveResult{}, ErrNotAuthorized
	}

	sub, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return ApproveResult{}, err
	}
	if sub.Status != music.SubmissionPending {
		return ApproveResult{}, music.ErrAlreadyReviewed
	}

	artist, err := s.artists.GetByID(ctx, sub.ArtistID)
	if err != nil {
		return ApproveResult{}, err
	}

	channel, ok := s.directory.ChannelFor(sub.Genre)
	if !ok {
		// Submission stays PENDING so the moderator can retry after fixing
		// the channel configuration.
		return ApproveResult{}, music.ErrChannelNotConfigured
	}

	trackID := ids.New("trk_", trackIDLength)
	caption := texts.TrackCaption(sub.Title, artist.DisplayName, artist.PaymentLink, sub.Caption)

	channelMsgID, err := s.gateway.SendAudio(ctx, ports.OutgoingAudio{
		To:       channel,
		FileID:   sub.AudioFileID,
		Caption:  caption,
		Keyboard: keyboards.TrackPost(trackID, artist.ArtistID, s.opts.BotUsername),
	})
	if err != nil {
		return ApproveResult{}, errs.Wrap(err, "publish track to channel")
	}

	var anchorID int64
	if discussion, ok := s.directory.DiscussionFor(sub.Genre); ok {
		anchorID, err = s.gateway.SendMessage(ctx, ports.OutgoingMessage{
			To:   discussion,
			Text: texts.DiscussionAnchor(caption),
		})
		if err != nil {
			logging.Warn(ctx, "discussion anchor not posted",
				slog.String("submission_id", submissionID),
				slog.Any("err", errs.Loggable(err)))
			anchorID = 0
		}
	}

	track := ports.Track{
		TrackID:            trackID,
		ArtistID:           artist.ArtistID,
		Title:              sub.Title,
		Genre:              sub.Genre,
		Caption:            sub.Caption,
		AudioFileID:        sub.AudioFileID,
		ChannelMessageID:   channelMsgID,
		DiscussionAnchorID: anchorID,
		Status:             music.TrackActive,
		CreatedAt:          s.now(),
	}

	err = s.uow.WithTx(ctx, func(ctx context.Context) error {
		ok, err := s.submissions.MarkReviewed(ctx, submissionID, music.SubmissionApproved, s.now())
		if err != nil {
			return errs.Wrap(err, "mark submission approved")
		}
		if !ok {
			return music.ErrAlreadyReviewed
		}
		if err := s.tracks.Create(ctx, track); err != nil {
			return errs.Wrap(err, "create track")
		}
		return nil
	})
	if err != nil {
		return ApproveResult{}, err
	}

	s.notifySubmitter(ctx, sub, "submitter_approved")
	s.refreshReviewCard(ctx, sub, artist, "✅ APPROVED")
	return ApproveResult{Track: track}, nil
}

// Reject flips the submission to REJECTED and notifies the submitter. No
// channel post happens and no Track row is created.
func (s *Service) Reject(ctx context.Context, moderatorUserID int64, submissionID string) error {
	if moderatorUserID != s.opts.ModeratorID {
		return ErrNotAuthorized
	}

	sub, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}

	ok, err := s.submissions.MarkReviewed(ctx, submissionID, music.SubmissionRejected, s.now())
	if err != nil {
		return errs.Wrap(err, "mark submission rejected")
	}
	if !ok {
		return music.ErrAlreadyReviewed
	}

	artist, err := s.artists.GetByID(ctx, sub.ArtistID)
	if err == nil {
		s.refreshReviewCard(ctx, sub, artist, "❌ REJECTED")
	}
	s.notifySubmitter(ctx, sub, "submitter_rejected")
	return nil
}

func (s *Service) notifySubmitter(ctx context.Context, sub ports.Submission, key string) {
	lang, err := s.settings.GetLang(ctx, sub.SubmitterUserID)
	if err != nil {
		lang = ports.DefaultLang
	}
	_, err = s.gateway.SendMessage(ctx, ports.OutgoingMessage{
		To:   music.ChatRef{ID: sub.SubmitterUserID},
		Text: i18n.Tf(lang, key, "title", sub.Title),
	})
	if err != nil {
		logging.Warn(ctx, "submitter notification failed",
			slog.String("submission_id", sub.SubmissionID),
			slog.Any("err", errs.Loggable(err)))
	}
}

func (s *Service) refreshReviewCard(ctx context.Context, sub ports.Submission, artist ports.Artist, verdict string) {
	if sub.ReviewMessageID == nil {
		return
	}
	caption := texts.ReviewCaption(sub.Title, artist.DisplayName, sub.Genre, sub.Caption, artist.PaymentLink, sub.SubmissionID)
	err := s.gateway.EditMessageCaption(ctx, s.opts.ModeratorID, *sub.ReviewMessageID, caption+"\n\n"+verdict, nil)
	if err != nil {
		logging.Warn(ctx, "review card refresh failed",
			slog.String("submission_id", sub.SubmissionID),
			slog.Any("err", errs.Loggable(err)))
	}
}
