package ports

import (
	"context"
	"errors"
)

var ErrTrackNotFound = errors.New("track not found")

type Track struct {
	TrackID            string
	ArtistID           string
	Title              string
	Genre              string
	Caption            *string
	AudioFileID        string
	ChannelMessageID   int64
	DiscussionAnchorID int64
	Status             string
	CreatedAt          int64
}

type TrackRepository interface {
	Create(ctx context.Context, track Track) error
	GetByID(ctx context.Context, trackID string) (Track, error)
	// ListByArtist returns newest-first tracks for an artist profile.
	ListByArtist(ctx context.Context, artistID string, limit int) ([]Track, error)
	CountByArtist(ctx context.Context, artistID string) (int64, error)
	SearchByTitle(ctx context.Context, query string, limit int) ([]Track, error)
}
