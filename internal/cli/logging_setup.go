package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/landquant/severance/internal/logging"
)

// setupLogging configures the root logger from the --debug flag and the
// SEVERANCE_LOG_LEVEL environment variable, attaches a trace ID, and stores
// the logger on the command context so every layer below logs through it.
func setupLogging(cmd *cobra.Command) {
	level := "info"
	if envLevel := os.Getenv("SEVERANCE_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	root := logging.New(logging.Config{
		Level:   level,
		Console: isTerminal(os.Stderr),
	})
	logger = logging.ComponentLogger(root, "cli")

	ctx := logger.WithContext(cmd.Context())
	ctx = logging.ContextWithTraceID(ctx, logging.NewTraceID())
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}
