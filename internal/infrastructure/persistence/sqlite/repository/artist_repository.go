package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sadomusic/internal/errs"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/ports"
)

type ArtistRepository struct {
	db *gorm.DB
}

var _ ports.ArtistRepository = (*ArtistRepository)(nil)

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, artist ports.Artist) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	row := artistToModel(artist)
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert artist")
	}
	return nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, artistID string) (ports.Artist, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.Artist{}, err
	}

	var row model.Artist
	if err := db.Where("artist_id = ?", artistID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Artist{}, ports.ErrArtistNotFound
		}
		return ports.Artist{}, errs.Wrap(err, "query artist by id")
	}
	return artistFromModel(row), nil
}

func (r *ArtistRepository) GetByUserID(ctx context.Context, tgUserID int64) (ports.Artist, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.Artist{}, err
	}

	var row model.Artist
	if err := db.Where("tg_user_id = ?", tgUserID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Artist{}, ports.ErrArtistNotFound
		}
		return ports.Artist{}, errs.Wrap(err, "query artist by user id")
	}
	return artistFromModel(row), nil
}

func (r *ArtistRepository) UpdateField(ctx context.Context, artistID string, field string, value *string) error {
	if _, ok := ports.ArtistProfileFields[field]; !ok {
		return fmt.Errorf("invalid artist field %q", field)
	}

	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	res := db.Model(&model.Artist{}).
		Where("artist_id = ?", artistID).
		Update(field, value)
	if res.Error != nil {
		return errs.Wrapf(res.Error, "update artist field %q", field)
	}
	if res.RowsAffected == 0 {
		return ports.ErrArtistNotFound
	}
	return nil
}

func (r *ArtistRepository) SearchByName(ctx context.Context, query string, limit int) ([]ports.Artist, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	pattern := "%" + strings.TrimSpace(query) + "%"
	q := db.Model(&model.Artist{}).Where("display_name LIKE ?", pattern).Order("display_name asc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.Artist
	if err := q.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "search artists")
	}

	items := make([]ports.Artist, 0, len(rows))
	for _, row := range rows {
		items = append(items, artistFromModel(row))
	}
	return items, nil
}

func artistToModel(a ports.Artist) model.Artist {
	return model.Artist{
		ArtistID:     a.ArtistID,
		TgUserID:     a.TgUserID,
		DisplayName:  a.DisplayName,
		PaymentLink:  a.PaymentLink,
		ProfileURL:   a.ProfileURL,
		DefaultGenre: a.DefaultGenre,
		Bio:          a.Bio,
		CreatedAt:    a.CreatedAt,
	}
}

func artistFromModel(row model.Artist) ports.Artist {
	return ports.Artist{
		ArtistID:     row.ArtistID,
		TgUserID:     row.TgUserID,
		DisplayName:  row.DisplayName,
		PaymentLink:  row.PaymentLink,
		ProfileURL:   row.ProfileURL,
		DefaultGenre: row.DefaultGenre,
		Bio:          row.Bio,
		CreatedAt:    row.CreatedAt,
	}
}
