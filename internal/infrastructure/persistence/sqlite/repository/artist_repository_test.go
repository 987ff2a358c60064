package repository

import (
	"context"
	"errors"
	"testing"

	"sadomusic/internal/ports"
)

func TestArtistUniquePerUser(t *testing.T) {
	repo := NewArtistRepository(setupDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, ports.Artist{ArtistID: "art_1", TgUserID: 10, DisplayName: "Aria", CreatedAt: 100}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, ports.Artist{ArtistID: "art_2", TgUserID: 10, DisplayName: "Aria2", CreatedAt: 101}); err == nil {
		t.Fatal("second artist row for the same user was accepted")
	}
}

func TestArtistUpdateField(t *testing.T) {
	repo := NewArtistRepository(setupDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, ports.Artist{ArtistID: "art_1", TgUserID: 10, DisplayName: "Aria", CreatedAt: 100}); err != nil {
		t.Fatalf("create: %v", err)
	}

	bio := "night sessions"
	if err := repo.UpdateField(ctx, "art_1", "bio", &bio); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	got, err := repo.GetByID(ctx, "art_1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Bio == nil || *got.Bio != bio {
		t.Fatalf("bio = %v, want %q", got.Bio, bio)
	}

	// nil clears the column.
	if err := repo.UpdateField(ctx, "art_1", "bio", nil); err != nil {
		t.Fatalf("UpdateField(nil): %v", err)
	}
	got, err = repo.GetByID(ctx, "art_1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Bio != nil {
		t.Fatalf("bio = %q, want cleared", *got.Bio)
	}

	if err := repo.UpdateField(ctx, "art_1", "status", &bio); err == nil {
		t.Fatal("UpdateField accepted a column outside the allow-list")
	}
	if err := repo.UpdateField(ctx, "art_missing", "bio", &bio); !errors.Is(err, ports.ErrArtistNotFound) {
		t.Fatalf("error = %v, want ErrArtistNotFound", err)
	}
}

func TestArtistSearchByName(t *testing.T) {
	repo := NewArtistRepository(setupDB(t))
	ctx := context.Background()

	for i, name := range []string{"Aria", "Arianna", "Bekzod"} {
		if err := repo.Create(ctx, ports.Artist{
			ArtistID:    "art_" + string(rune('a'+i)),
			TgUserID:    int64(10 + i),
			DisplayName: name,
			CreatedAt:   100,
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	hits, err := repo.SearchByName(ctx, "ari", 10)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
}
