package bootstrap

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sadomusic/internal/bootstrap/config"
	"sadomusic/internal/bootstrap/database"
	"sadomusic/internal/bootstrap/logging"
	"sadomusic/internal/bot"
	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	sqliterepo "sadomusic/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "sadomusic/internal/infrastructure/persistence/sqlite/uow"
	sessioninfra "sadomusic/internal/infrastructure/session"
	"sadomusic/internal/infrastructure/telegram"
	"sadomusic/internal/ports"
	"sadomusic/internal/usecase/discovery"
	donationuc "sadomusic/internal/usecase/donation"
	"sadomusic/internal/usecase/registry"
	"sadomusic/internal/usecase/review"
)

// Module wires config, database, repositories and usecase services. The
// Telegram transport lives in BotModule so schema commands run without a
// bot token.
var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(provideDirectory),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewUserSettingsRepository,
			fx.As(new(ports.UserSettingsRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewArtistRepository,
			fx.As(new(ports.ArtistRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewSubmissionRepository,
			fx.As(new(ports.SubmissionRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewTrackRepository,
			fx.As(new(ports.TrackRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewDonationRepository,
			fx.As(new(ports.DonationRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sessioninfra.NewSQLiteStore,
			fx.As(new(ports.SessionStore)),
		),
	),
	fx.Provide(registry.NewService),
	fx.Provide(discovery.NewService),
)

// BotModule adds the Telegram transport and the update dispatcher.
var BotModule = fx.Options(
	fx.Provide(provideBotAPI),
	fx.Provide(
		fx.Annotate(
			telegram.NewGateway,
			fx.As(new(ports.Gateway)),
		),
	),
	fx.Provide(
		fx.Annotate(
			telegram.NewSource,
			fx.As(new(ports.UpdateSource)),
		),
	),
	fx.Provide(provideReviewService),
	fx.Provide(provideDonationService),
	fx.Provide(provideDispatcher),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideDirectory(cfg config.Config) *music.ChannelDirectory {
	return music.NewChannelDirectory(cfg.Channels.Map(), cfg.Discussions.Map())
}

func provideBotAPI(ctx context.Context, cfg config.Config) (*tgbotapi.BotAPI, error) {
	if err := cfg.ValidateBot(); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, errs.Wrap(err, "connect bot api")
	}

	logging.Info(logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx")),
		"bot authorized", slog.String("username", api.Self.UserName))
	return api, nil
}

func provideReviewService(
	submissions ports.SubmissionRepository,
	tracks ports.TrackRepository,
	artists ports.ArtistRepository,
	settings ports.UserSettingsRepository,
	uowPort ports.UnitOfWork,
	gateway ports.Gateway,
	directory *music.ChannelDirectory,
	cfg config.Config,
	api *tgbotapi.BotAPI,
) *review.Service {
	username := cfg.Bot.Username
	if username == "" {
		username = api.Self.UserName
	}
	return review.NewService(submissions, tracks, artists, settings, uowPort, gateway, directory, review.Options{
		ModeratorID: cfg.Bot.ModeratorID,
		BotUsername: username,
	})
}

func provideDonationService(
	donations ports.DonationRepository,
	tracks ports.TrackRepository,
	artists ports.ArtistRepository,
	settings ports.UserSettingsRepository,
	gateway ports.Gateway,
	directory *music.ChannelDirectory,
	cfg config.Config,
) *donationuc.Service {
	return donationuc.NewService(donations, tracks, artists, settings, gateway, directory, donationuc.Options{
		MaxPerWindow:  cfg.Donations.MaxPerWindow,
		WindowSeconds: cfg.Donations.WindowSeconds,
		MinAmount:     cfg.Donations.MinAmount,
		MaxAmount:     cfg.Donations.MaxAmount,
	})
}

func provideDispatcher(
	gateway ports.Gateway,
	source ports.UpdateSource,
	sessions ports.SessionStore,
	settings ports.UserSettingsRepository,
	artists ports.ArtistRepository,
	registrySvc *registry.Service,
	reviewSvc *review.Service,
	donationSvc *donationuc.Service,
	discoverySvc *discovery.Service,
	cfg config.Config,
	api *tgbotapi.BotAPI,
) *bot.Dispatcher {
	username := cfg.Bot.Username
	if username == "" {
		username = api.Self.UserName
	}
	return bot.NewDispatcher(gateway, source, sessions, settings, artists,
		registrySvc, reviewSvc, donationSvc, discoverySvc, bot.Options{
			BotUsername: username,
		})
}
