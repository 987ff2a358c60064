package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"sadomusic/internal/bootstrap/logging"
	"sadomusic/internal/errs"
)

type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Bot         BotConfig       `mapstructure:"bot"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Channels    ChannelsConfig  `mapstructure:"channels"`
	Discussions ChannelsConfig  `mapstructure:"discussions"`
	Donations   DonationsConfig `mapstructure:"donations"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type BotConfig struct {
	Token       string `mapstructure:"token"`
	Username    string `mapstructure:"username"`
	ModeratorID int64  `mapstructure:"moderator_id"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// ChannelsConfig holds one destination per genre group. Values are either a
// numeric chat id or an @username; empty means not configured.
type ChannelsConfig struct {
	Pop       string `mapstructure:"pop"`
	Rock      string `mapstructure:"rock"`
	HipHop    string `mapstructure:"hiphop"`
	Discovery string `mapstructure:"discovery"`
}

// Map keys the destinations by channel group for the channel directory.
func (c ChannelsConfig) Map() map[string]string {
	return map[string]string{
		"pop":       c.Pop,
		"rock":      c.Rock,
		"hiphop":    c.HipHop,
		"discovery": c.Discovery,
	}
}

type DonationsConfig struct {
	MaxPerWindow  int   `mapstructure:"max_per_window"`
	WindowSeconds int64 `mapstructure:"window_seconds"`
	MinAmount     int64 `mapstructure:"min_amount"`
	MaxAmount     int64 `mapstructure:"max_amount"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SADO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			// Keep default and env-backed config when no file is provided.
			logging.Warn(logCtx, "config file not found, fallback to defaults and env")
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	if cfg.Database.DSN == "" {
		return Config{}, errors.New("database.dsn is required")
	}
	if cfg.Donations.MinAmount <= 0 || cfg.Donations.MaxAmount < cfg.Donations.MinAmount {
		return Config{}, errors.New("donations amount bounds are invalid")
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Int64("moderator_id", cfg.Bot.ModeratorID),
	)

	return cfg, nil
}

// ValidateBot checks the fields only the long-running bot needs. Schema
// migration must stay possible without platform credentials.
func (c Config) ValidateBot() error {
	if strings.TrimSpace(c.Bot.Token) == "" {
		return errors.New("bot.token is required")
	}
	if c.Bot.ModeratorID == 0 {
		return errors.New("bot.moderator_id is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Sado Music")
	v.SetDefault("app.env", "local")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/sadomusic.sqlite")
	v.SetDefault("donations.max_per_window", 5)
	v.SetDefault("donations.window_seconds", 3600)
	v.SetDefault("donations.min_amount", 1000)
	v.SetDefault("donations.max_amount", 1000000)
}
