package session

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	domain "sadomusic/internal/domain/session"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "sessions.sqlite")
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
	if err := db.AutoMigrate(&model.Conversation{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestAdvanceMergesFields(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Begin(ctx, 10, domain.StepSubmitAudio, nil); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := store.Advance(ctx, 10, domain.StepSubmitTitle, map[string]string{
		domain.FieldAudioFileID: "file1",
	}); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := store.Advance(ctx, 10, domain.StepSubmitGenre, map[string]string{
		domain.FieldTitle: "Tun",
	}); err != nil {
		t.Fatalf("Advance second: %v", err)
	}

	sess, found, err := store.Get(ctx, 10)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if sess.Step != domain.StepSubmitGenre {
		t.Fatalf("step = %q, want %q", sess.Step, domain.StepSubmitGenre)
	}
	if v, ok := sess.Field(domain.FieldAudioFileID); !ok || v != "file1" {
		t.Fatalf("audio field = %q, %v, want file1 carried across steps", v, ok)
	}
	if v, ok := sess.Field(domain.FieldTitle); !ok || v != "Tun" {
		t.Fatalf("title field = %q, %v", v, ok)
	}
}

func TestBeginReplacesPreviousFlow(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Begin(ctx, 10, domain.StepSubmitAudio, map[string]string{
		domain.FieldAudioFileID: "file1",
	}); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := store.Begin(ctx, 10, domain.StepSearchQuery, nil); err != nil {
		t.Fatalf("Begin second: %v", err)
	}

	sess, found, err := store.Get(ctx, 10)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if sess.Step != domain.StepSearchQuery {
		t.Fatalf("step = %q, want the new flow", sess.Step)
	}
	if _, ok := sess.Field(domain.FieldAudioFileID); ok {
		t.Fatal("old flow fields survived Begin")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Clear(ctx, 42); err != nil {
		t.Fatalf("Clear with no session: %v", err)
	}

	if err := store.Begin(ctx, 42, domain.StepSearchQuery, nil); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := store.Clear(ctx, 42); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found, err := store.Get(ctx, 42); err != nil || found {
		t.Fatalf("Get after clear = %v, %v, want not found", found, err)
	}
}
