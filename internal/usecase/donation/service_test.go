package donation

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	donationdomain "sadomusic/internal/domain/donation"
	"sadomusic/internal/domain/music"
	"sadomusic/internal/infrastructure/persistence/sqlite/model"
	"sadomusic/internal/infrastructure/persistence/sqlite/repository"
	"sadomusic/internal/ports"
)

type fakeGateway struct {
	mu       sync.Mutex
	messages []ports.OutgoingMessage
	nextID   int64
}

func (g *fakeGateway) SendMessage(_ context.Context, msg ports.OutgoingMessage) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = append(g.messages, msg)
	g.nextID++
	return g.nextID, nil
}

func (g *fakeGateway) SendAudio(_ context.Context, _ ports.OutgoingAudio) (int64, error) {
	return 0, errors.New("not used")
}

func (g *fakeGateway) EditMessageText(_ context.Context, _ int64, _ int64, _ string, _ ports.Keyboard) error {
	return nil
}

func (g *fakeGateway) EditMessageCaption(_ context.Context, _ int64, _ int64, _ string, _ ports.Keyboard) error {
	return nil
}

func (g *fakeGateway) AnswerCallback(_ context.Context, _ string, _ string, _ bool) error {
	return nil
}

type fixture struct {
	svc      *Service
	gateway  *fakeGateway
	settings ports.UserSettingsRepository
	now      int64
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "donation.sqlite")
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
	if err := db.AutoMigrate(
		&model.UserSettings{},
		&model.Artist{},
		&model.Track{},
		&model.DonationEvent{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	gateway := &fakeGateway{}
	directory := music.NewChannelDirectory(
		map[string]string{"pop": "@pop_channel"},
		map[string]string{"pop": "@pop_chat"},
	)
	settings := repository.NewUserSettingsRepository(db)

	svc := NewService(
		repository.NewDonationRepository(db),
		repository.NewTrackRepository(db),
		repository.NewArtistRepository(db),
		settings,
		gateway,
		directory,
		Options{MaxPerWindow: 2, WindowSeconds: 3600, MinAmount: 1000, MaxAmount: 1000000},
	)

	f := &fixture{svc: svc, gateway: gateway, settings: settings, now: 10000}
	svc.now = func() int64 { return f.now }

	ctx := context.Background()
	artists := repository.NewArtistRepository(db)
	if err := artists.Create(ctx, ports.Artist{ArtistID: "art_1", TgUserID: 7, DisplayName: "Aria", CreatedAt: 100}); err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	tracks := repository.NewTrackRepository(db)
	if err := tracks.Create(ctx, ports.Track{
		TrackID:            "trk_1",
		ArtistID:           "art_1",
		Title:              "Tun",
		Genre:              "Pop",
		AudioFileID:        "file1",
		ChannelMessageID:   1,
		DiscussionAnchorID: 2,
		Status:             music.TrackActive,
		CreatedAt:          100,
	}); err != nil {
		t.Fatalf("seed track: %v", err)
	}
	if err := tracks.Create(ctx, ports.Track{
		TrackID:     "trk_2",
		ArtistID:    "art_1",
		Title:       "Kun",
		Genre:       "Pop",
		AudioFileID: "file2",
		Status:      music.TrackActive,
		CreatedAt:   100,
	}); err != nil {
		t.Fatalf("seed track2: %v", err)
	}
	if err := tracks.Create(ctx, ports.Track{
		TrackID:     "trk_removed",
		ArtistID:    "art_1",
		Title:       "Eski",
		Genre:       "Pop",
		AudioFileID: "file3",
		Status:      "REMOVED",
		CreatedAt:   100,
	}); err != nil {
		t.Fatalf("seed removed track: %v", err)
	}

	return f
}

func (f *fixture) create(t *testing.T, trackID string) ports.DonationEvent {
	t.Helper()

	event, err := f.svc.Create(context.Background(), CreateInput{
		TrackID:     trackID,
		DonorUserID: 42,
		DonorName:   "Donor",
		Amount:      10000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return event
}

func TestDonationLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	event := f.create(t, "trk_1")
	if event.Status != donationdomain.StatusCreated {
		t.Fatalf("status = %q, want CREATED", event.Status)
	}
	if !strings.HasPrefix(event.DonationID, "don_") {
		t.Fatalf("donation id = %q, want don_ prefix", event.DonationID)
	}

	note, err := f.svc.SetNote(ctx, event.DonationID, "love it https://spam.example/x")
	if err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	if note == nil || *note != "love it" {
		t.Fatalf("note = %v, want link stripped", note)
	}

	on, err := f.svc.ToggleAnonymity(ctx, event.DonationID, 42)
	if err != nil || !on {
		t.Fatalf("ToggleAnonymity = %v, %v, want on", on, err)
	}

	confirmed, err := f.svc.Confirm(ctx, event.DonationID, 42)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if confirmed.Status != donationdomain.StatusConfirmed {
		t.Fatalf("status = %q, want CONFIRMED", confirmed.Status)
	}

	// Appreciation is threaded under the discussion anchor and hides the
	// anonymous donor; the artist gets a DM.
	var appreciation, dm *ports.OutgoingMessage
	for i := range f.gateway.messages {
		m := &f.gateway.messages[i]
		if m.To.Username == "@pop_chat" {
			appreciation = m
		}
		if m.To.ID == 7 {
			dm = m
		}
	}
	if appreciation == nil || dm == nil {
		t.Fatalf("appreciation=%v dm=%v, want both sent", appreciation != nil, dm != nil)
	}
	if appreciation.ReplyToMessageID != 2 {
		t.Fatalf("appreciation reply-to = %d, want the anchor id", appreciation.ReplyToMessageID)
	}
	if !strings.Contains(appreciation.Text, donationdomain.AnonymousPlaceholder) || strings.Contains(appreciation.Text, "Donor") {
		t.Fatalf("appreciation leaks donor identity: %q", appreciation.Text)
	}

	// Terminal state: everything after confirm is rejected.
	if _, err := f.svc.Confirm(ctx, event.DonationID, 42); !errors.Is(err, donationdomain.ErrNotEditable) {
		t.Fatalf("second confirm error = %v, want ErrNotEditable", err)
	}
	if err := f.svc.Cancel(ctx, event.DonationID, 42); !errors.Is(err, donationdomain.ErrNotEditable) {
		t.Fatalf("cancel after confirm error = %v, want ErrNotEditable", err)
	}
	if _, err := f.svc.SetNote(ctx, event.DonationID, "late"); !errors.Is(err, donationdomain.ErrNotEditable) {
		t.Fatalf("note after confirm error = %v, want ErrNotEditable", err)
	}
}

func TestAppreciationSkippedWithoutAnchor(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// trk_2 was published without a discussion anchor.
	event := f.create(t, "trk_2")
	if _, err := f.svc.Confirm(ctx, event.DonationID, 42); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	for _, m := range f.gateway.messages {
		if m.To.Username == "@pop_chat" {
			t.Fatalf("appreciation sent un-threaded: %+v", m)
		}
	}
	var dm bool
	for _, m := range f.gateway.messages {
		if m.To.ID == 7 {
			dm = true
		}
	}
	if !dm {
		t.Fatal("artist DM skipped along with the appreciation")
	}
}

func TestCreateRequiresDonorAndActiveTrack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateInput{TrackID: "trk_1", Amount: 5000})
	if !errors.Is(err, donationdomain.ErrDonorUnknown) {
		t.Fatalf("error = %v, want ErrDonorUnknown", err)
	}

	_, err = f.svc.Create(ctx, CreateInput{TrackID: "trk_missing", DonorUserID: 42, Amount: 5000})
	if !errors.Is(err, ports.ErrTrackNotFound) {
		t.Fatalf("error = %v, want ErrTrackNotFound", err)
	}

	_, err = f.svc.Create(ctx, CreateInput{TrackID: "trk_1", DonorUserID: 42, Amount: 500})
	if !errors.Is(err, donationdomain.ErrAmountBelowMinimum) {
		t.Fatalf("error = %v, want ErrAmountBelowMinimum", err)
	}
}

func TestThrottleCountsConfirmedPerTrack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// Two confirmed donations reach the per-track limit.
	for i := 0; i < 2; i++ {
		event := f.create(t, "trk_1")
		if _, err := f.svc.Confirm(ctx, event.DonationID, 42); err != nil {
			t.Fatalf("Confirm: %v", err)
		}
	}

	if _, err := f.svc.Create(ctx, CreateInput{TrackID: "trk_1", DonorUserID: 42, DonorName: "Donor", Amount: 5000}); !errors.Is(err, donationdomain.ErrThrottled) {
		t.Fatalf("error = %v, want ErrThrottled", err)
	}

	// Another track is unaffected.
	if _, err := f.svc.Create(ctx, CreateInput{TrackID: "trk_2", DonorUserID: 42, DonorName: "Donor", Amount: 5000}); err != nil {
		t.Fatalf("other track throttled: %v", err)
	}

	// The window slides: once the confirmations age out, the donor may give
	// again.
	f.now += 3601
	if _, err := f.svc.Create(ctx, CreateInput{TrackID: "trk_1", DonorUserID: 42, DonorName: "Donor", Amount: 5000}); err != nil {
		t.Fatalf("donation after window expiry: %v", err)
	}
}

func TestCanceledDonationsDoNotThrottle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		event := f.create(t, "trk_1")
		if err := f.svc.Cancel(ctx, event.DonationID, 42); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
	}

	if _, err := f.svc.Create(ctx, CreateInput{TrackID: "trk_1", DonorUserID: 42, DonorName: "Donor", Amount: 5000}); err != nil {
		t.Fatalf("canceled donations counted against the throttle: %v", err)
	}
}

func TestAnonymityDefaultCarriesToNextDonation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	event := f.create(t, "trk_1")
	if event.IsAnonymous {
		t.Fatal("first donation unexpectedly anonymous")
	}

	if _, err := f.svc.ToggleAnonymity(ctx, event.DonationID, 42); err != nil {
		t.Fatalf("ToggleAnonymity: %v", err)
	}
	if saved, err := f.settings.GetAnonymousDefault(ctx, 42); err != nil || !saved {
		t.Fatalf("saved default = %v, %v, want true", saved, err)
	}

	next := f.create(t, "trk_2")
	if !next.IsAnonymous {
		t.Fatal("saved anonymity default not applied to the next donation")
	}
}

func TestOwnershipGuards(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	event := f.create(t, "trk_1")

	if _, err := f.svc.Confirm(ctx, event.DonationID, 777); !errors.Is(err, donationdomain.ErrDonorUnknown) {
		t.Fatalf("confirm by stranger error = %v, want ErrDonorUnknown", err)
	}
	if err := f.svc.Cancel(ctx, event.DonationID, 777); !errors.Is(err, donationdomain.ErrDonorUnknown) {
		t.Fatalf("cancel by stranger error = %v, want ErrDonorUnknown", err)
	}
	if _, err := f.svc.ToggleAnonymity(ctx, event.DonationID, 777); !errors.Is(err, donationdomain.ErrDonorUnknown) {
		t.Fatalf("toggle by stranger error = %v, want ErrDonorUnknown", err)
	}
}

func TestBeginRejectsInactiveTrack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	if _, _, err := f.svc.Begin(ctx, "trk_missing"); !errors.Is(err, ports.ErrTrackNotFound) {
		t.Fatalf("error = %v, want ErrTrackNotFound", err)
	}
	if _, _, err := f.svc.Begin(ctx, "trk_removed"); !errors.Is(err, music.ErrTrackInactive) {
		t.Fatalf("error = %v, want ErrTrackInactive", err)
	}
	if _, err := f.svc.Create(ctx, CreateInput{TrackID: "trk_removed", DonorUserID: 42, DonorName: "Donor", Amount: 5000}); !errors.Is(err, music.ErrTrackInactive) {
		t.Fatalf("create error = %v, want ErrTrackInactive", err)
	}
}
