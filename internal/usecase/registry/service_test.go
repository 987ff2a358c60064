package registry

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/infrastructure/persistence/sqlite/repository"
	"sadomusic/internal/ports"
)

func setup(t *testing.T) (*Service, ports.TrackRepository) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "registry.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(&model.Artist{}, &model.Track{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	tracks := repository.NewTrackRepository(db)
	return NewService(repository.NewArtistRepository(db), tracks), tracks
}

func str(s string) *string { return &s }

func TestCompleteOnboarding(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	artist, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{
		UserID:       42,
		DisplayName:  "  Aria  ",
		PaymentLink:  str("https://pay.example/aria"),
		DefaultGenre: str("hip hop"),
		Bio:          str("night sessions"),
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if !strings.HasPrefix(artist.ArtistID, "art_") {
		t.Fatalf("artist id = %q, want art_ prefix", artist.ArtistID)
	}
	if artist.DisplayName != "Aria" {
		t.Fatalf("display name = %q, want trimmed", artist.DisplayName)
	}
	if artist.DefaultGenre == nil || *artist.DefaultGenre != "Hip Hop" {
		t.Fatalf("default genre = %v, want normalized Hip Hop", artist.DefaultGenre)
	}

	// One profile per user.
	if _, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{UserID: 42, DisplayName: "Other"}); !errors.Is(err, music.ErrArtistExists) {
		t.Fatalf("second onboarding error = %v, want ErrArtistExists", err)
	}
}

func TestCompleteOnboardingValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{UserID: 1, DisplayName: "x"}); !errors.Is(err, music.ErrNameTooShort) {
		t.Fatalf("short name error = %v, want ErrNameTooShort", err)
	}
	if _, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{
		UserID: 1, DisplayName: "Aria", PaymentLink: str("ftp://pay.example"),
	}); err == nil {
		t.Fatal("invalid payment link accepted")
	}
	if _, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{
		UserID: 1, DisplayName: "Aria", DefaultGenre: str("polka"),
	}); !errors.Is(err, music.ErrInvalidGenre) {
		t.Fatalf("bad genre error = %v, want ErrInvalidGenre", err)
	}

	// Nothing persisted after failed attempts.
	if _, err := svc.ProfileByUserID(ctx, 1); !errors.Is(err, ports.ErrArtistNotFound) {
		t.Fatalf("profile error = %v, want ErrArtistNotFound", err)
	}
}

func TestUpdateProfileField(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{UserID: 42, DisplayName: "Aria"}); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}

	if err := svc.UpdateProfileField(ctx, 42, "display_name", "Aria Nova"); err != nil {
		t.Fatalf("update display_name: %v", err)
	}
	if err := svc.UpdateProfileField(ctx, 42, "payment_link", "https://pay.example/an"); err != nil {
		t.Fatalf("update payment_link: %v", err)
	}
	if err := svc.UpdateProfileField(ctx, 42, "default_genre", "rock"); err != nil {
		t.Fatalf("update default_genre: %v", err)
	}
	if err := svc.UpdateProfileField(ctx, 42, "bio", "from Tashkent"); err != nil {
		t.Fatalf("update bio: %v", err)
	}

	profile, err := svc.ProfileByUserID(ctx, 42)
	if err != nil {
		t.Fatalf("ProfileByUserID: %v", err)
	}
	a := profile.Artist
	if a.DisplayName != "Aria Nova" {
		t.Fatalf("display name = %q", a.DisplayName)
	}
	if a.PaymentLink == nil || *a.PaymentLink != "https://pay.example/an" {
		t.Fatalf("payment link = %v", a.PaymentLink)
	}
	if a.DefaultGenre == nil || *a.DefaultGenre != "Rock" {
		t.Fatalf("default genre = %v", a.DefaultGenre)
	}
	if a.Bio == nil || *a.Bio != "from Tashkent" {
		t.Fatalf("bio = %v", a.Bio)
	}

	// "-" clears an optional field.
	if err := svc.UpdateProfileField(ctx, 42, "payment_link", "-"); err != nil {
		t.Fatalf("clear payment_link: %v", err)
	}
	profile, err = svc.ProfileByUserID(ctx, 42)
	if err != nil {
		t.Fatalf("ProfileByUserID: %v", err)
	}
	if profile.Artist.PaymentLink != nil {
		t.Fatalf("payment link = %v, want cleared", profile.Artist.PaymentLink)
	}
}

func TestUpdateProfileFieldGuards(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if err := svc.UpdateProfileField(ctx, 99, "bio", "text"); !errors.Is(err, ports.ErrArtistNotFound) {
		t.Fatalf("unregistered user error = %v, want ErrArtistNotFound", err)
	}

	if _, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{UserID: 42, DisplayName: "Aria"}); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if err := svc.UpdateProfileField(ctx, 42, "tg_user_id", "1"); err == nil {
		t.Fatal("non-profile column accepted")
	}
	if err := svc.UpdateProfileField(ctx, 42, "display_name", "x"); !errors.Is(err, music.ErrNameTooShort) {
		t.Fatalf("short name error = %v, want ErrNameTooShort", err)
	}
	if err := svc.UpdateProfileField(ctx, 42, "default_genre", "polka"); !errors.Is(err, music.ErrInvalidGenre) {
		t.Fatalf("bad genre error = %v, want ErrInvalidGenre", err)
	}
}

func TestProfileTrackSummary(t *testing.T) {
	svc, tracks := setup(t)
	ctx := context.Background()

	artist, err := svc.CompleteOnboarding(ctx, CompleteOnboardingInput{UserID: 42, DisplayName: "Aria"})
	if err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}

	for i := 0; i < 7; i++ {
		err := tracks.Create(ctx, ports.Track{
			TrackID:     "trk_" + string(rune('a'+i)),
			ArtistID:    artist.ArtistID,
			Title:       "Track " + string(rune('A'+i)),
			Genre:       "Pop",
			AudioFileID: "file",
			Status:      music.TrackActive,
			CreatedAt:   int64(100 + i),
		})
		if err != nil {
			t.Fatalf("seed track %d: %v", i, err)
		}
	}

	profile, err := svc.ProfileByArtistID(ctx, artist.ArtistID)
	if err != nil {
		t.Fatalf("ProfileByArtistID: %v", err)
	}
	if profile.TotalTracks != 7 {
		t.Fatalf("total tracks = %d, want 7", profile.TotalTracks)
	}
	if len(profile.Tracks) != 5 {
		t.Fatalf("listed tracks = %d, want capped at 5", len(profile.Tracks))
	}
	// Newest first.
	if profile.Tracks[0].TrackID != "trk_g" {
		t.Fatalf("first track = %q, want the newest", profile.Tracks[0].TrackID)
	}
}
