package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/landquant/severance/internal/config"
	"github.com/landquant/severance/internal/engine"
	"github.com/landquant/severance/internal/engine/batch"
	"github.com/landquant/severance/internal/parcel"
	"github.com/landquant/severance/internal/schema"
)

// errSchemaRejected marks input documents the schema gate refused; the root
// command maps it to the validation exit code.
var errSchemaRejected = errors.New("input rejected by schema")

func newCalculateCmd() *cobra.Command {
	var (
		outputPath  string
		concurrency int
		showSummary bool
	)

	cmd := &cobra.Command{
		Use:   "calculate <input.json> [input.json...]",
		Short: "Calculate severance damages for one or more filings",
		Long: `Calculate severance damages from structured input documents.

Each document must satisfy the input schema (see "severance schema"). A
single input writes one indented JSON output record; multiple inputs are
calculated concurrently and written as NDJSON in input order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath != "" && len(args) > 1 {
				return errors.New("--output is only valid with a single input file")
			}
			return runCalculate(cmd, args, outputPath, concurrency, showSummary)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the output record to this path instead of stdout")
	cmd.Flags().IntVar(&concurrency, "concurrency", batch.DefaultConcurrency, "parallel calculations when given multiple inputs")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "print a human-readable summary to stderr")

	return cmd
}

func runCalculate(cmd *cobra.Command, paths []string, outputPath string, concurrency int, showSummary bool) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng := engine.New(cfg)

	inputs := make([]*parcel.Input, len(paths))
	for i, path := range paths {
		in, err := decodeInputFile(path)
		if err != nil {
			return err
		}
		inputs[i] = in
	}

	if len(inputs) == 1 {
		return calculateOne(ctx, cmd, eng, inputs[0], paths[0], outputPath, showSummary)
	}
	return calculateMany(ctx, cmd, eng, inputs, paths, concurrency)
}

func calculateOne(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, in *parcel.Input, path, outputPath string, showSummary bool) error {
	summary, err := eng.Calculate(ctx, in)
	if err != nil {
		var valErr *engine.ValidationError
		if errors.As(err, &valErr) {
			printViolations(cmd.ErrOrStderr(), path, valErr.Violations)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("writing output record: %w", err)
	}

	if showSummary {
		writeHumanSummary(cmd.ErrOrStderr(), summary)
	}

	logger.Info().
		Str("operation", "calculate").
		Str("input", path).
		Float64("total_severance_damages", summary.TotalSeveranceDamages).
		Msg("calculation written")
	return nil
}

func calculateMany(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, inputs []*parcel.Input, paths []string, concurrency int) error {
	runner, err := batch.NewRunner(eng, concurrency)
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx, inputs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			var valErr *engine.ValidationError
			if errors.As(res.Err, &valErr) {
				printViolations(cmd.ErrOrStderr(), paths[res.Index], valErr.Violations)
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", paths[res.Index], res.Err)
			}
			continue
		}
		if err := enc.Encode(res.Summary); err != nil {
			return fmt.Errorf("writing output record for %s: %w", paths[res.Index], err)
		}
	}

	logger.Info().
		Str("operation", "calculate").
		Int("inputs", len(inputs)).
		Int("concurrency", concurrency).
		Msg("batch calculation complete")
	return firstErr
}

// decodeInputFile reads and schema-checks one input document.
func decodeInputFile(path string) (*parcel.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	in, err := schema.Decode(data)
	if err != nil {
		if schema.IsValidationError(err) {
			return nil, fmt.Errorf("%w: %s: %s", errSchemaRejected, path, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// loadConfig builds the engine configuration, applying the --config override
// file when present.
func loadConfig(cmd *cobra.Command) (*config.EngineConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.New()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("config", path).Msg("constant overrides applied")
	return cfg, nil
}

func printViolations(w io.Writer, path string, violations []engine.Violation) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(struct {
		Input      string             `json:"input"`
		Violations []engine.Violation `json:"violations"`
	}{Input: path, Violations: violations})
}
