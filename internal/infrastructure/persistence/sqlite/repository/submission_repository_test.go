package repository

import (
	"context"
	"errors"
	"testing"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/ports"
)

func seedSubmission(t *testing.T, repo *SubmissionRepository, id string) {
	t.Helper()

	err := repo.Create(context.Background(), ports.Submission{
		SubmissionID:    id,
		ArtistID:        "art_1",
		SubmitterUserID: 10,
		Title:           "Tun",
		Genre:           "Pop",
		AudioFileID:     "file1",
		Status:          music.SubmissionPending,
		CreatedAt:       100,
	})
	if err != nil {
		t.Fatalf("create submission: %v", err)
	}
}

func TestMarkReviewedGuardsOnPending(t *testing.T) {
	repo := NewSubmissionRepository(setupDB(t))
	ctx := context.Background()
	seedSubmission(t, repo, "sub_1")

	ok, err := repo.MarkReviewed(ctx, "sub_1", music.SubmissionApproved, 200)
	if err != nil || !ok {
		t.Fatalf("MarkReviewed = %v, %v, want true", ok, err)
	}

	// The second click, approve or reject, is a no-op.
	ok, err = repo.MarkReviewed(ctx, "sub_1", music.SubmissionRejected, 300)
	if err != nil {
		t.Fatalf("MarkReviewed second: %v", err)
	}
	if ok {
		t.Fatal("MarkReviewed flipped an already reviewed submission")
	}

	got, err := repo.GetByID(ctx, "sub_1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != music.SubmissionApproved {
		t.Fatalf("status = %q, want APPROVED", got.Status)
	}
	if got.ReviewedAt == nil || *got.ReviewedAt != 200 {
		t.Fatalf("reviewed_at = %v, want 200", got.ReviewedAt)
	}
}

func TestSetReviewMessageID(t *testing.T) {
	repo := NewSubmissionRepository(setupDB(t))
	ctx := context.Background()
	seedSubmission(t, repo, "sub_1")

	if err := repo.SetReviewMessageID(ctx, "sub_1", 42); err != nil {
		t.Fatalf("SetReviewMessageID: %v", err)
	}
	got, err := repo.GetByID(ctx, "sub_1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ReviewMessageID == nil || *got.ReviewMessageID != 42 {
		t.Fatalf("review_message_id = %v, want 42", got.ReviewMessageID)
	}

	if err := repo.SetReviewMessageID(ctx, "sub_missing", 1); !errors.Is(err, ports.ErrSubmissionNotFound) {
		t.Fatalf("error = %v, want ErrSubmissionNotFound", err)
	}
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewSubmissionRepository(setupDB(t))

	if _, err := repo.GetByID(context.Background(), "sub_nope"); !errors.Is(err, ports.ErrSubmissionNotFound) {
		t.Fatalf("error = %v, want ErrSubmissionNotFound", err)
	}
}
