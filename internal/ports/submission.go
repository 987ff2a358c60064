package ports

import (
	"context"
	"errors"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type Submission struct {
	SubmissionID    string
	ArtistID        string
	SubmitterUserID int64
	Title           string
	Genre           string
	Caption         *string
	AudioFileID     string
	Status          string
	ReviewMessageID *int64
	CreatedAt       int64
	ReviewedAt      *int64
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission Submission) error
	GetByID(ctx context.Context, submissionID string) (Submission, error)
	// SetReviewMessageID records the moderator review card once it is sent.
	SetReviewMessageID(ctx context.Context, submissionID string, messageID int64) error
	// MarkReviewed flips PENDING to the given terminal status. The write is
	// guarded on the current status; ok=false means the submission had
	// already left PENDING (duplicate moderator click).
	MarkReviewed(ctx context.Context, submissionID string, status string, reviewedAt int64) (ok bool, err error)
}
