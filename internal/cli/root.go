// Package cli wires the severance command tree: calculate, validate, and
// schema. The CLI is a thin boundary around the engine; it reads input
// documents, applies configuration overrides, and serializes the output
// record, leaving every valuation decision to the engine.
package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/landquant/severance/internal/engine"
)

// Exit codes. Validation failures get their own code so filing pipelines can
// distinguish a bad document from an operational fault.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the severance CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "severance",
		Short:   "Severance-damages valuation engine",
		Long:    "Severance: quantify the loss of value to the remainder of a property after a partial taking, using before/after appraisal methodology",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to a YAML constant-override file")
	cmd.AddCommand(newCalculateCmd(), newValidateCmd(), newSchemaCmd())

	return cmd
}

const rootCmdExample = `  # Calculate severance damages from a filing
  severance calculate taking.json

  # Write the output record to a file
  severance calculate taking.json --output damages.json

  # Calculate several filings concurrently
  severance calculate north.json south.json east.json

  # Check a document against the input contract without calculating
  severance validate taking.json

  # Print the JSON Schema for offline validation
  severance schema`

// ExitCode maps an error returned by command execution to the process exit
// code. Validation problems (schema gate or field validator) are the
// caller's to fix and signal 2; anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var valErr *engine.ValidationError
	if errors.As(err, &valErr) || errors.Is(err, errSchemaRejected) {
		return ExitValidation
	}
	return ExitError
}
