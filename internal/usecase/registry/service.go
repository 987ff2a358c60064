// Package registry owns the artist registry usecases: onboarding and
// profile maintenance.
package registry

import (
	"context"
	"errors"
	"time"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	"sadomusic/internal/ids"
	"sadomusic/internal/ports"
)

const artistIDLength = 10

type Service struct {
	artists ports.ArtistRepository
	tracks  ports.TrackRepository

	now func() int64
}

func NewService(artists ports.ArtistRepository, tracks ports.TrackRepository) *Service {
	return &Service{
		artists: artists,
		tracks:  tracks,
		now:     func() int64 { return time.Now().Unix() },
	}
}

type CompleteOnboardingInput struct {
	UserID       int64
	DisplayName  string
	PaymentLink  *string
	DefaultGenre *string
	Bio          *string
}

// CompleteOnboarding registers a new artist. A user already registered gets
// music.ErrArtistExists; onboarding never overwrites an existing profile.
func (s *Service) CompleteOnboarding(ctx context.Context, in CompleteOnboardingInput) (ports.Artist, error) {
	name, err := music.ValidateDisplayName(in.DisplayName)
	if err != nil {
		return ports.Artist{}, err
	}
	if in.PaymentLink != nil {
		if _, err := music.ValidatePaymentLink(*in.PaymentLink); err != nil {
			return ports.Artist{}, err
		}
	}
	if in.DefaultGenre != nil {
		normalized, ok := music.NormalizeGenre(*in.DefaultGenre)
		if !ok {
			return ports.Artist{}, music.ErrInvalidGenre
		}
		in.DefaultGenre = &normalized
	}

	if _, err := s.artists.GetByUserID(ctx, in.UserID); err == nil {
		return ports.Artist{}, music.ErrArtistExists
	} else if !errors.Is(err, ports.ErrArtistNotFound) {
		return ports.Artist{}, errs.Wrap(err, "check existing artist")
	}

	artist := ports.Artist{
		ArtistID:     ids.New("art_", artistIDLength),
		TgUserID:     in.UserID,
		DisplayName:  name,
		PaymentLink:  in.PaymentLink,
		DefaultGenre: in.DefaultGenre,
		Bio:          in.Bio,
		CreatedAt:    s.now(),
	}
	if err := s.artists.Create(ctx, artist); err != nil {
		return ports.Artist{}, errs.Wrap(err, "create artist")
	}
	return artist, nil
}

// UpdateProfileField validates and writes one profile column for the artist
// owned by userID. Sending "-" clears an optional field.
func (s *Service) UpdateProfileField(ctx context.Context, userID int64, field, raw string) error {
	if _, ok := ports.ArtistProfileFields[field]; !ok {
		return errs.Wrapf(errors.New("unknown profile field"), "field %q", field)
	}

	artist, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	var value *string
	switch field {
	case "display_name":
		name, err := music.ValidateDisplayName(raw)
		if err != nil {
			return err
		}
		value = &name
	case "payment_link":
		value = music.OptionalText(raw)
		if value != nil {
			link, err := music.ValidatePaymentLink(*value)
			if err != nil {
				return err
			}
			value = &link
		}
	case "default_genre":
		value = music.OptionalText(raw)
		if value != nil {
			normalized, ok := music.NormalizeGenre(*value)
			if !ok {
				return music.ErrInvalidGenre
			}
			value = &normalized
		}
	default: // bio, profile_url
		value = music.OptionalText(raw)
	}

	if err := s.artists.UpdateField(ctx, artist.ArtistID, field, value); err != nil {
		return errs.Wrapf(err, "update artist %s field %s", artist.ArtistID, field)
	}
	return nil
}

type Profile struct {
	Artist      ports.Artist
	Tracks      []ports.Track
	TotalTracks int64
}

const profileTrackLimit = 5

// ProfileByUserID loads the artist's own profile view.
func (s *Service) ProfileByUserID(ctx context.Context, userID int64) (Profile, error) {
	artist, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return s.profile(ctx, artist)
}

// ProfileByArtistID loads the public profile behind an artist deep link.
func (s *Service) ProfileByArtistID(ctx context.Context, artistID string) (Profile, error) {
	artist, err := s.artists.GetByID(ctx, artistID)
	if err != nil {
		return Profile{}, err
	}
	return s.profile(ctx, artist)
}

func (s *Service) profile(ctx context.Context, artist ports.Artist) (Profile, error) {
	tracks, err := s.tracks.ListByArtist(ctx, artist.ArtistID, profileTrackLimit)
	if err != nil {
		return Profile{}, errs.Wrap(err, "list artist tracks")
	}
	total, err := s.tracks.CountByArtist(ctx, artist.ArtistID)
	if err != nil {
		return Profile{}, errs.Wrap(err, "count artist tracks")
	}
	return Profile{Artist: artist, Tracks: tracks, TotalTracks: total}, nil
}
