package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sadomusic/internal/bootstrap"
	"sadomusic/internal/bootstrap/logging"
	"sadomusic/internal/bot"
	"sadomusic/internal/errs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot (long polling)",
	RunE: withBot(func(cmd *cobra.Command, app *bootstrap.App, d *bot.Dispatcher) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctx = logging.WithAttrs(ctx, slog.String("command", cmd.CommandPath()))

		// AutoMigrate is idempotent; running it here keeps first deploys to a
		// single command.
		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		if err := d.Run(ctx); err != nil {
			return errs.Wrap(err, "run dispatcher")
		}

		logging.Info(ctx, "bot stopped")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(runCmd)
}
