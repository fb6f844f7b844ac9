package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/batteval/pkg/walker"
)

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &ConfigOptions{}

	cmd := &cobra.Command{
		Use:   "detect <root>",
		Short: "List the algorithm folders and logs that would be scored",
		Long: `Walk the root directory and list every algorithm folder with the number of
logs beneath it that qualify for scoring, without scoring them.

Useful for checking folder names and exclusions before an evaluation.

Example:
  batteval detect ./recordings
  batteval detect -v ./recordings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	bindConfigFlags(cmd, opts)

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *ConfigOptions) error {
	root := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	w := walker.FromConfig(cfg, walker.WithLogger(newLogger(cmd.ErrOrStderr(), opts.Verbose)))

	folders, err := w.FindFolders(ctx, root)
	if err != nil {
		return fmt.Errorf("finding algorithm folders: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Root: %s\n", root)
	fmt.Fprintf(out, "Algorithm folders: %d\n", len(folders))

	excluded := map[string]struct{}{}
	for _, dir := range folders {
		listing, err := w.FolderFiles(ctx, dir)
		if err != nil {
			return fmt.Errorf("listing files in %s: %w", dir, err)
		}

		rel, err := filepath.Rel(root, dir)
		if err != nil {
			rel = dir
		}
		if listing.Unreadable {
			fmt.Fprintf(out, "  %s (unreadable, skipped)\n", rel)
			continue
		}
		fmt.Fprintf(out, "  %s (%d files)\n", rel, len(listing.Files))

		if opts.Verbose {
			for _, f := range listing.Files {
				fmt.Fprintf(out, "    - %s\n", f)
			}
		}
		for _, f := range listing.Excluded {
			excluded[f] = struct{}{}
		}
	}

	if n := len(excluded); n > 0 {
		fmt.Fprintf(out, "Excluded by name: %d\n", n)
	}

	return nil
}
