package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sadomusic/internal/errs"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/ports"
)

type UserSettingsRepository struct {
	db *gorm.DB
}

var _ ports.UserSettingsRepository = (*UserSettingsRepository)(nil)

func NewUserSettingsRepository(db *gorm.DB) *UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

func (r *UserSettingsRepository) GetLang(ctx context.Context, userID int64) (string, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return "", err
	}

	var row model.UserSettings
	if err := db.Where("user_id = ?", userID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DefaultLang, nil
		}
		return "", errs.Wrap(err, "query user settings")
	}
	if row.Lang == "" {
		return ports.DefaultLang, nil
	}
	return row.Lang, nil
}

func (r *UserSettingsRepository) SetLang(ctx context.Context, userID int64, lang string) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	row := model.UserSettings{UserID: userID, Lang: lang}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{"lang": lang}),
	}).Create(&row).Error; err != nil {
		return errs.Wrap(err, "upsert user lang")
	}
	return nil
}

func (r *UserSettingsRepository) GetAnonymousDefault(ctx context.Context, userID int64) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	var row model.UserSettings
	if err := db.Where("user_id = ?", userID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errs.Wrap(err, "query user settings")
	}
	return row.AnonymousDefault != 0, nil
}

func (r *UserSettingsRepository) SetAnonymousDefault(ctx context.Context, userID int64, anonymous bool) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	value := 0
	if anonymous {
		value = 1
	}

	row := model.UserSettings{UserID: userID, Lang: ports.DefaultLang, AnonymousDefault: value}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{"anonymous_default": value}),
	}).Create(&row).Error; err != nil {
		return errs.Wrap(err, "upsert anonymous default")
	}
	return nil
}
