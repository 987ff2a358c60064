package repository

import (
	"context"
	"errors"
	"testing"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/ports"
)

func seedTrack(t *testing.T, repo *TrackRepository, id, artistID, title string, createdAt int64) {
	t.Helper()

	err := repo.Create(context.Background(), ports.Track{
		TrackID:     id,
		ArtistID:    artistID,
		Title:       title,
		Genre:       "Pop",
		AudioFileID: "file",
		Status:      music.TrackActive,
		CreatedAt:   createdAt,
	})
	if err != nil {
		t.Fatalf("seed track %s: %v", id, err)
	}
}

func TestTrackListByArtist(t *testing.T) {
	repo := NewTrackRepository(setupDB(t))
	ctx := context.Background()

	seedTrack(t, repo, "trk_1", "art_1", "First", 100)
	seedTrack(t, repo, "trk_2", "art_1", "Second", 300)
	seedTrack(t, repo, "trk_3", "art_1", "Third", 200)
	seedTrack(t, repo, "trk_4", "art_2", "Elsewhere", 400)

	tracks, err := repo.ListByArtist(ctx, "art_1", 2)
	if err != nil {
		t.Fatalf("ListByArtist: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want limit 2", len(tracks))
	}
	if tracks[0].TrackID != "trk_2" || tracks[1].TrackID != "trk_3" {
		t.Fatalf("order = %s, %s, want newest first", tracks[0].TrackID, tracks[1].TrackID)
	}

	count, err := repo.CountByArtist(ctx, "art_1")
	if err != nil {
		t.Fatalf("CountByArtist: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestTrackSearchByTitle(t *testing.T) {
	repo := NewTrackRepository(setupDB(t))
	ctx := context.Background()

	seedTrack(t, repo, "trk_1", "art_1", "Tungi shahar", 100)
	seedTrack(t, repo, "trk_2", "art_1", "Shahar lights", 200)
	seedTrack(t, repo, "trk_3", "art_1", "Bahor", 300)

	tracks, err := repo.SearchByTitle(ctx, "  shahar ", 10)
	if err != nil {
		t.Fatalf("SearchByTitle: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d hits, want 2", len(tracks))
	}
	if tracks[0].TrackID != "trk_2" {
		t.Fatalf("first hit = %s, want the newest match", tracks[0].TrackID)
	}
}

func TestTrackGetByIDMissing(t *testing.T) {
	repo := NewTrackRepository(setupDB(t))

	if _, err := repo.GetByID(context.Background(), "trk_nope"); !errors.Is(err, ports.ErrTrackNotFound) {
		t.Fatalf("error = %v, want ErrTrackNotFound", err)
	}
}
