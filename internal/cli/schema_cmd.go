package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/landquant/severance/internal/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the input JSON Schema",
		Long:  "Print the JSON Schema (draft 2020-12) that input documents must satisfy, for offline validation or editor integration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(schema.JSON()))
			return err
		},
	}
}
