package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/ports"
)

type SubmissionRepository struct {
	db *gorm.DB
}

var _ ports.SubmissionRepository = (*SubmissionRepository)(nil)

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission ports.Submission) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	row := model.Submission{
		SubmissionID:    submission.SubmissionID,
		ArtistID:        submission.ArtistID,
		SubmitterUserID: submission.SubmitterUserID,
		Title:           submission.Title,
		Genre:           submission.Genre,
		Caption:         submission.Caption,
		AudioFileID:     submission.AudioFileID,
		Status:          submission.Status,
		ReviewMessageID: submission.ReviewMessageID,
		CreatedAt:       submission.CreatedAt,
		ReviewedAt:      submission.ReviewedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert submission")
	}
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, submissionID string) (ports.Submission, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.Submission{}, err
	}

	var row model.Submission
	if err := db.Where("submission_id = ?", submissionID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Submission{}, ports.ErrSubmissionNotFound
		}
		return ports.Submission{}, errs.Wrap(err, "query submission")
	}
	return submissionFromModel(row), nil
}

func (r *SubmissionRepository) SetReviewMessageID(ctx context.Context, submissionID string, messageID int64) error {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return err
	}

	res := db.Model(&model.Submission{}).
		Where("submission_id = ?", submissionID).
		Update("review_message_id", messageID)
	if res.Error != nil {
		return errs.Wrap(res.Error, "set review message id")
	}
	if res.RowsAffected == 0 {
		return ports.ErrSubmissionNotFound
	}
	return nil
}

// MarkReviewed is the only status write. Guarding on PENDING in the WHERE
// clause makes duplicate moderator clicks a detectable no-op.
func (r *SubmissionRepository) MarkReviewed(ctx context.Context, submissionID string, status string, reviewedAt int64) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.Submission{}).
		Where("submission_id = ? AND status = ?", submissionID, music.SubmissionPending).
		Updates(map[string]any{
			"status":      status,
			"reviewed_at": reviewedAt,
		})
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "mark submission reviewed")
	}
	return res.RowsAffected > 0, nil
}

func submissionFromModel(row model.Submission) ports.Submission {
	return ports.Submission{
		SubmissionID:    row.SubmissionID,
		ArtistID:        row.ArtistID,
		SubmitterUserID: row.SubmitterUserID,
		Title:           row.Title,
		Genre:           row.Genre,
		Caption:         row.Caption,
		AudioFileID:     row.AudioFileID,
		Status:          row.Status,
		ReviewMessageID: row.ReviewMessageID,
		CreatedAt:       row.CreatedAt,
		ReviewedAt:      row.ReviewedAt,
	}
}
