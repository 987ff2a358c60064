package ports

import (
	"context"
	"errors"
)

var ErrArtistNotFound = errors.New("artist not found")

type Artist struct {
	ArtistID     string
	TgUserID     int64
	DisplayName  string
	PaymentLink  *string
	ProfileURL   *string
	DefaultGenre *string
	Bio          *string
	CreatedAt    int64
}

// ArtistProfileFields enumerates the columns an artist may edit after
// onboarding.
var ArtistProfileFields = map[string]struct{}{
	"display_name":  {},
	"payment_link":  {},
	"profile_url":   {},
	"default_genre": {},
	"bio":           {},
}

type ArtistRepository interface {
	Create(ctx context.Context, artist Artist) error
	GetByID(ctx context.Context, artistID string) (Artist, error)
	// GetByUserID resolves the unique artist owned by a platform user.
	GetByUserID(ctx context.Context, tgUserID int64) (Artist, error)
	// UpdateField sets one profile column; field must be listed in
	// ArtistProfileFields. nil clears the column.
	UpdateField(ctx context.Context, artistID string, field string, value *string) error
	SearchByName(ctx context.Context, query string, limit int) ([]Artist, error)
}
