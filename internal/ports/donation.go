package ports

import (
	"context"
	"errors"
)

var ErrDonationNotFound = errors.New("donation not found")

type DonationEvent struct {
	DonationID    string
	TrackID       string
	ArtistID      string
	DonorUserID   int64
	DonorName     string
	DonorUsername *string
	Amount        int64
	Note          *string
	IsAnonymous   bool
	Status        string
	CreatedAt     int64
	ConfirmedAt   *int64
}

type DonationRepository interface {
	Create(ctx context.Context, donation DonationEvent) error
	GetByID(ctx context.Context, donationID string) (DonationEvent, error)

	// SetNote replaces the note while the donation is still CREATED.
	// ok=false means the donation already reached a terminal state.
	SetNote(ctx context.Context, donationID string, note *string) (ok bool, err error)
	// SetAnonymous writes the flag while CREATED. Writing the value that is
	// already stored still reports ok=true.
	SetAnonymous(ctx context.Context, donationID string, anonymous bool) (ok bool, err error)
	// ToggleAnonymous flips the flag in a single conditional UPDATE (no
	// read-modify-write) so rapid repeated taps cannot lose an update.
	ToggleAnonymous(ctx context.Context, donationID string) (newValue bool, err error)

	// MarkConfirmed / MarkCanceled flip CREATED to a terminal state, guarded
	// on the current status. ok=false means already processed.
	MarkConfirmed(ctx context.Context, donationID string, confirmedAt int64) (ok bool, err error)
	MarkCanceled(ctx context.Context, donationID string) (ok bool, err error)

	// CountRecentConfirmed counts one donor's CONFIRMED donations against one
	// track with confirmed_at >= since. Feeds the throttling decision.
	CountRecentConfirmed(ctx context.Context, donorUserID int64, trackID string, since int64) (int64, error)
}
