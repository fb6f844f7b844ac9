package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/batteval/pkg/evaluator"
	"github.com/ccollicutt/batteval/pkg/scorer"
)

// NewScoreCommand creates the score command.
func NewScoreCommand() *cobra.Command {
	opts := &ConfigOptions{}

	cmd := &cobra.Command{
		Use:   "score <log-file|folder>...",
		Short: "Score individual detection logs or algorithm folders",
		Long: `Score one or more detection logs and print each file's breakdown: the raw
Model and Video counts, the timed model events found, how many of them were
dropped as duplicate detections, and the resulting error.

Files named directly are scored regardless of their name or extension. A
directory is scored as a single algorithm folder: its qualifying logs are
summed, whatever the directory is called.

Example:
  batteval score recordings/cam1/bayes/run1.txt
  batteval score --threshold 10 recordings/cam1/bayes/*.txt
  batteval score recordings/cam1/bayes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, args, opts)
		},
	}

	bindConfigFlags(cmd, opts)

	return cmd
}

func runScore(cmd *cobra.Command, args []string, opts *ConfigOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	s, err := scorer.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating scorer: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	ev, err := evaluator.New(cfg, evaluator.WithLogger(logger))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	total := 0

	for _, path := range args {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			r, err := ev.ScoreFolder(ctx, path)
			if err != nil {
				return fmt.Errorf("scoring folder %s: %w", path, err)
			}
			total += r.Error

			fmt.Fprintf(w, "%6d  %s/ (%d files)\n", r.Error, path, r.Files)
			for _, fs := range r.FileScores {
				printFileScore(w, fs)
			}
			continue
		}

		fs, err := s.ScoreFile(ctx, path)
		if err != nil {
			if !cfg.SkipUnreadable {
				return fmt.Errorf("scoring %s: %w", path, err)
			}
			logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		total += fs.Error
		printFileScore(w, fs)
	}

	if len(args) > 1 {
		fmt.Fprintf(w, "%6d  total\n", total)
	}
	return nil
}

func printFileScore(w io.Writer, fs scorer.FileScore) {
	fmt.Fprintf(w, "%6d  %s\n", fs.Error, fs.Path)
	fmt.Fprintf(w, "        model=%d video=%d events=%d excluded=%d effective=%d\n",
		fs.ModelCount, fs.VideoCount, fs.Events, fs.Exclusions, fs.EffectiveModel())
}
