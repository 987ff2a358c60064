package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sadomusic/internal/domain/donation"
	"sadomusic/internal/errs"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/ports"
)

type DonationRepository struct {
	db *gorm.DB
}

var _ ports.DonationRepository = (*DonationRepository)(nil)

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, event ports.DonationEvent) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	anonymous := 0
	if event.IsAnonymous {
		anonymous = 1
	}

	row := model.DonationEvent{
		DonationID:    event.DonationID,
		TrackID:       event.TrackID,
		ArtistID:      event.ArtistID,
		DonorUserID:   event.DonorUserID,
		DonorName:     event.DonorName,
		DonorUsername: event.DonorUsername,
		Amount:        event.Amount,
		Note:          event.Note,
		IsAnonymous:   anonymous,
		Status:        event.Status,
		CreatedAt:     event.CreatedAt,
		ConfirmedAt:   event.ConfirmedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert donation")
	}
	return nil
}

func (r *DonationRepository) GetByID(ctx context.Context, donationID string) (ports.DonationEvent, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.DonationEvent{}, err
	}

	var row model.DonationEvent
	if err := db.Where("donation_id = ?", donationID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DonationEvent{}, ports.ErrDonationNotFound
		}
		return ports.DonationEvent{}, errs.Wrap(err, "query donation")
	}
	return donationFromModel(row), nil
}

func (r *DonationRepository) SetNote(ctx context.Context, donationID string, note *string) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.DonationEvent{}).
		Where("donation_id = ? AND status = ?", donationID, donation.StatusCreated).
		Update("note", note)
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "set donation note")
	}
	return res.RowsAffected > 0, nil
}

func (r *DonationRepository) SetAnonymous(ctx context.Context, donationID string, anonymous bool) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	value := 0
	if anonymous {
		value = 1
	}

	// The write is a no-op when the stored value already matches; report
	// ok from the row's status, not RowsAffected.
	res := db.Model(&model.DonationEvent{}).
		Where("donation_id = ? AND status = ?", donationID, donation.StatusCreated).
		Update("is_anonymous", value)
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "set donation anonymity")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	current, err := r.GetByID(ctx, donationID)
	if err != nil {
		return false, err
	}
	return current.Status == donation.StatusCreated, nil
}

// ToggleAnonymous flips the flag in one conditional UPDATE so that rapid
// repeated taps from the confirmation card cannot lose an update.
func (r *DonationRepository) ToggleAnonymous(ctx context.Context, donationID string) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.DonationEvent{}).
		Where("donation_id = ? AND status = ?", donationID, donation.StatusCreated).
		Update("is_anonymous", gorm.Expr("1 - is_anonymous"))
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "toggle donation anonymity")
	}
	if res.RowsAffected == 0 {
		return false, donation.ErrNotEditable
	}

	current, err := r.GetByID(ctx, donationID)
	if err != nil {
		return false, err
	}
	return current.IsAnonymous, nil
}

func (r *DonationRepository) MarkConfirmed(ctx context.Context, donationID string, confirmedAt int64) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.DonationEvent{}).
		Where("donation_id = ? AND status = ?", donationID, donation.StatusCreated).
		Updates(map[string]any{
			"status":       donation.StatusConfirmed,
			"confirmed_at": confirmedAt,
		})
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "confirm donation")
	}
	return res.RowsAffected > 0, nil
}

func (r *DonationRepository) MarkCanceled(ctx context.Context, donationID string) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.DonationEvent{}).
		Where("donation_id = ? AND status = ?", donationID, donation.StatusCreated).
		Update("status", donation.StatusCanceled)
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "cancel donation")
	}
	return res.RowsAffected > 0, nil
}

func (r *DonationRepository) CountRecentConfirmed(ctx context.Context, donorUserID int64, trackID string, since int64) (int64, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&model.DonationEvent{}).
		Where("donor_user_id = ? AND track_id = ? AND status = ? AND confirmed_at IS NOT NULL AND confirmed_at >= ?",
			donorUserID, trackID, donation.StatusConfirmed, since).
		Count(&count).Error; err != nil {
		return 0, errs.Wrap(err, "count recent confirmed donations")
	}
	return count, nil
}

func donationFromModel(row model.DonationEvent) ports.DonationEvent {
	return ports.DonationEvent{
		DonationID:    row.DonationID,
		TrackID:       row.TrackID,
		ArtistID:      row.ArtistID,
		DonorUserID:   row.DonorUserID,
		DonorName:     row.DonorName,
		DonorUsername: row.DonorUsername,
		Amount:        row.Amount,
		Note:          row.Note,
		IsAnonymous:   row.IsAnonymous != 0,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		ConfirmedAt:   row.ConfirmedAt,
	}
}
