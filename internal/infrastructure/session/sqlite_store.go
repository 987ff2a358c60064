package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "sadomusic/internal/domain/session"
	"sadomusic/internal/errs"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/ports"
)

// SQLiteStore persists guided-flow sessions so a restart mid-flow degrades
// to "please restart" instead of silently dropping collected fields.
type SQLiteStore struct {
	db *gorm.DB
}

var _ ports.SessionStore = (*SQLiteStore)(nil)

func NewSQLiteStore(db *gorm.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Begin(ctx context.Context, userID int64, step domain.Step, fields map[string]string) error {
	return s.upsert(ctx, userID, step, fields)
}

func (s *SQLiteStore) Advance(ctx context.Context, userID int64, step domain.Step, updates map[string]string) error {
	current, found, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	merged := make(map[string]string)
	if found {
		for k, v := range current.Fields {
			merged[k] = v
		}
	}
	for k, v := range updates {
		merged[k] = v
	}

	return s.upsert(ctx, userID, step, merged)
}

func (s *SQLiteStore) Get(ctx context.Context, userID int64) (domain.Session, bool, error) {
	if ctx == nil {
		return domain.Session{}, false, errors.New("context is required")
	}

	var row model.Conversation
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, errs.Wrap(err, "query conversation")
	}

	fields := make(map[string]string)
	if row.Fields != "" {
		if err := json.Unmarshal([]byte(row.Fields), &fields); err != nil {
			return domain.Session{}, false, errs.Wrap(err, "decode conversation fields")
		}
	}

	return domain.Session{
		UserID: row.UserID,
		Step:   domain.Step(row.Step),
		Fields: fields,
	}, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context, userID int64) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Conversation{}).Error; err != nil {
		return errs.Wrap(err, "delete conversation")
	}
	return nil
}

func (s *SQLiteStore) upsert(ctx context.Context, userID int64, step domain.Step, fields map[string]string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if step == "" {
		return errors.New("step is required")
	}

	if fields == nil {
		fields = map[string]string{}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return errs.Wrap(err, "encode conversation fields")
	}

	row := model.Conversation{
		UserID:    userID,
		Step:      string(step),
		Fields:    string(encoded),
		UpdatedAt: time.Now().Unix(),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"step":       row.Step,
			"fields":     row.Fields,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error; err != nil {
		return errs.Wrap(err, "upsert conversation")
	}
	return nil
}
