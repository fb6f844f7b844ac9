// Package cli provides the command-line interface for batteval.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/batteval/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// SilenceErrors stops cobra from printing the error itself
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "batteval",
		Short: "Rank battery-detection algorithms against video ground truth",
		Long: `batteval scores battery-detection algorithms by comparing the batteries a
model detected ("Model" lines) with the batteries labelled from video
("Video" lines) in text logs.

Every folder named bayes or default under the root is an algorithm run. The
.txt logs beneath it are scored and summed, and the folders are listed from
lowest to highest error.

Model detections that start less than the minimum time between batteries
after the previous one ended are treated as duplicates of the same battery.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewEvaluateCommand())
	rootCmd.AddCommand(commands.NewScoreCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
