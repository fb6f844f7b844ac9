package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/batteval/pkg/evaluator"
	"github.com/ccollicutt/batteval/pkg/output"
)

// EvaluateOptions holds command-line options for the evaluate command.
type EvaluateOptions struct {
	ConfigOptions

	Quiet   bool
	NoColor bool
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand() *cobra.Command {
	opts := &EvaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate <root>",
		Short: "Score and rank every algorithm folder under a root directory",
		Long: `Walk the root directory, score every algorithm folder and list the folders
from lowest to highest absolute error.

A folder's error is the sum of its logs' errors. A log's error is the
difference between its Model count, less duplicate detections, and its Video
count. Algorithm folders nested in other algorithm folders are listed on
their own and also count toward the outer folder.

Example:
  batteval evaluate ./recordings
  batteval evaluate --threshold 45 ./recordings
  batteval evaluate --policy doubled -v ./recordings
  batteval evaluate -c batteval.yaml ./recordings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, args, opts)
		},
	}

	bindConfigFlags(cmd, &opts.ConfigOptions)
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no per-folder listing")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable styled output")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string, opts *EvaluateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd, &opts.ConfigOptions)
	if err != nil {
		return err
	}
	cfg.Root = args[0]

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	e, err := evaluator.New(cfg, evaluator.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating evaluator: %w", err)
	}

	result, err := e.Evaluate(ctx)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	formatter := output.NewTextFormatter(output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
		NoColor: noColor(opts.NoColor),
	})

	if err := formatter.Format(ctx, output.NewReport(result), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}
