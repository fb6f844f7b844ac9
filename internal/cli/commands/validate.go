package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/batteval/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a batteval configuration file without running an evaluation.

Checks:
  - YAML syntax
  - Threshold is a non-negative integer
  - Folder names, extension and markers are set
  - Error policy is absolute or doubled`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Minimum time between batteries: %d\n", cfg.MinTimeBetweenBatteries)
	fmt.Fprintf(out, "  Algorithm folders: %s\n", strings.Join(cfg.AlgorithmFolders, ", "))
	fmt.Fprintf(out, "  File extension:    %s\n", cfg.FileExtension)
	fmt.Fprintf(out, "  Excluded names:    %s\n", strings.Join(cfg.ExcludeSubstrings, ", "))
	fmt.Fprintf(out, "  Markers:           %s / %s\n", cfg.ModelMarker, cfg.VideoMarker)
	fmt.Fprintf(out, "  Error policy:      %s\n", cfg.ErrorPolicy)
	if cfg.SkipUnreadable {
		fmt.Fprintf(out, "  Unreadable paths are skipped\n")
	}

	return nil
}
