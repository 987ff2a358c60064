package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"sadomusic/internal/bootstrap"
	"sadomusic/internal/bootstrap/logging"
	"sadomusic/internal/bot"
	"sadomusic/internal/errs"
)

// withApp runs a command against the core container (config, database,
// repositories). No Telegram connection is made.
func withApp(run func(cmd *cobra.Command, app *bootstrap.App) error) func(cmd *cobra.Command, args []string) error {
	return runner(func(targets *fxTargets) fx.Option {
		return fx.Options(bootstrap.Module, fx.Populate(&targets.app))
	}, func(cmd *cobra.Command, targets *fxTargets) error {
		return run(cmd, targets.app)
	})
}

// withBot additionally brings up the Telegram transport and the dispatcher.
func withBot(run func(cmd *cobra.Command, app *bootstrap.App, d *bot.Dispatcher) error) func(cmd *cobra.Command, args []string) error {
	return runner(func(targets *fxTargets) fx.Option {
		return fx.Options(bootstrap.Module, bootstrap.BotModule,
			fx.Populate(&targets.app, &targets.dispatcher))
	}, func(cmd *cobra.Command, targets *fxTargets) error {
		return run(cmd, targets.app, targets.dispatcher)
	})
}

type fxTargets struct {
	app        *bootstrap.App
	dispatcher *bot.Dispatcher
}

func runner(build func(*fxTargets) fx.Option, run func(*cobra.Command, *fxTargets) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
		)

		targets := &fxTargets{}
		fxApp := fx.New(
			build(targets),
			fx.Provide(func() context.Context { return ctx }),
			fx.Provide(
				fx.Annotate(
					func() string { return cfgFile },
					fx.ResultTags(`name:"configFile"`),
				),
			),
		)

		startCtx, cancelStart := context.WithTimeout(ctx, 30*time.Second)
		defer cancelStart()
		if err := fxApp.Start(startCtx); err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "start fx application")
		}

		defer func() {
			stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelStop()
			if err := fxApp.Stop(stopCtx); err != nil {
				logging.Error(ctx, "fx application stop failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		if err := run(cmd, targets); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}
