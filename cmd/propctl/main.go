// Command propctl inspects consensus proposals: it turns TOML proposal
// documents into the canonical bytes validators sign, and back.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	root := NewRootCmd(logger, level)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Info("Failure", "err", err)
		os.Stderr.Sync()
		return err
	}

	return nil
}

// NewRootCmd builds the propctl command tree. If level is non-nil,
// the --log-level flag adjusts it before any subcommand runs.
func NewRootCmd(log *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use: "propctl SUBCOMMAND",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

		SilenceUsage: true,

		Short: "Encode and decode consensus proposals",

		Long: `propctl converts between TOML proposal documents and proposal sign bytes.

A proposal document looks like:

  block_number = 42
  fork_id = 0
  round = 3
  pol_round = 1   # omit when there is no proof-of-lock
  block_hash = "0x..."
  proposer = "0x..."
`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if level == nil {
				return nil
			}
			return level.UnmarshalText([]byte(logLevel))
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		NewEncodeCmd(log),
		NewDecodeCmd(log),
		NewRoundTripCmd(log),
	)

	return rootCmd
}
