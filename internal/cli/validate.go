package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/landquant/severance/internal/engine"
	"github.com/landquant/severance/internal/schema"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <input.json>",
		Short: "Check an input document without calculating",
		Long: `Validate an input document against the JSON Schema contract and the
cross-field consistency rules, reporting every violation found. Nothing is
calculated. Exit code 2 signals a rejected document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	in, err := schema.Decode(data)
	if err != nil {
		if schema.IsValidationError(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return fmt.Errorf("%w: %s", errSchemaRejected, path)
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	if violations := engine.Validate(in); len(violations) > 0 {
		printViolations(cmd.ErrOrStderr(), path, violations)
		return &engine.ValidationError{Violations: violations}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
	logger.Debug().Str("operation", "validate").Str("input", path).Msg("document accepted")
	return nil
}
