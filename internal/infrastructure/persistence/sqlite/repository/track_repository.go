package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"sadomusic/internal/errs"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/ports"
)

type TrackRepository struct {
	db *gorm.DB
}

var _ ports.TrackRepository = (*TrackRepository)(nil)

func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

func (r *TrackRepository) Create(ctx context.Context, track ports.Track) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	row := model.Track{
		TrackID:            track.TrackID,
		ArtistID:           track.ArtistID,
		Title:              track.Title,
		Genre:              track.Genre,
		Caption:            track.Caption,
		AudioFileID:        track.AudioFileID,
		ChannelMessageID:   track.ChannelMessageID,
		DiscussionAnchorID: track.DiscussionAnchorID,
		Status:             track.Status,
		CreatedAt:          track.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert track")
	}
	return nil
}

func (r *TrackRepository) GetByID(ctx context.Context, trackID string) (ports.Track, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.Track{}, err
	}

	var row model.Track
	if err := db.Where("track_id = ?", trackID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Track{}, ports.ErrTrackNotFound
		}
		return ports.Track{}, errs.Wrap(err, "query track")
	}
	return trackFromModel(row), nil
}

func (r *TrackRepository) ListByArtist(ctx context.Context, artistID string, limit int) ([]ports.Track, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	q := db.Model(&model.Track{}).
		Where("artist_id = ?", artistID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.Track
	if err := q.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "list artist tracks")
	}
	return tracksFromModels(rows), nil
}

func (r *TrackRepository) CountByArtist(ctx context.Context, artistID string) (int64, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&model.Track{}).
		Where("artist_id = ?", artistID).
		Count(&count).Error; err != nil {
		return 0, errs.Wrap(err, "count artist tracks")
	}
	return count, nil
}

func (r *TrackRepository) SearchByTitle(ctx context.Context, query string, limit int) ([]ports.Track, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	pattern := "%" + strings.TrimSpace(query) + "%"
	q := db.Model(&model.Track{}).
		Where("title LIKE ?", pattern).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.Track
	if err := q.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "search tracks")
	}
	return tracksFromModels(rows), nil
}

func trackFromModel(row model.Track) ports.Track {
	return ports.Track{
		TrackID:            row.TrackID,
		ArtistID:           row.ArtistID,
		Title:              row.Title,
		Genre:              row.Genre,
		Caption:            row.Caption,
		AudioFileID:        row.AudioFileID,
		ChannelMessageID:   row.ChannelMessageID,
		DiscussionAnchorID: row.DiscussionAnchorID,
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
	}
}

func tracksFromModels(rows []model.Track) []ports.Track {
	items := make([]ports.Track, 0, len(rows))
	for _, row := range rows {
		items = append(items, trackFromModel(row))
	}
	return items
}
