package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/batteval/pkg/config"
)

// ConfigOptions holds the flags that override configuration values.
type ConfigOptions struct {
	ConfigFile     string
	Threshold      int
	Policy         string
	SkipUnreadable bool
	Verbose        bool
}

// bindConfigFlags registers the shared configuration flags on cmd.
func bindConfigFlags(cmd *cobra.Command, opts *ConfigOptions) {
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().IntVarP(&opts.Threshold, "threshold", "t", config.DefaultMinTimeBetweenBatteries,
		"Minimum time between batteries; closer model detections count once")
	cmd.Flags().StringVar(&opts.Policy, "policy", string(config.DefaultErrorPolicy), "Error policy (absolute|doubled)")
	cmd.Flags().BoolVar(&opts.SkipUnreadable, "skip-unreadable", false, "Log and skip unreadable folders and files instead of failing")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show raw counts and debug logging")
}

// loadConfig loads the configuration file, if any, and applies flag
// overrides. Flags only override values the user set explicitly.
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *ConfigOptions) (*config.Config, error) {
	cfg, err := config.Load(ctx, opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.MinTimeBetweenBatteries = opts.Threshold
	}
	if flags.Changed("policy") {
		policy, err := config.ParsePolicy(opts.Policy)
		if err != nil {
			return nil, err
		}
		cfg.ErrorPolicy = policy
	}
	if flags.Changed("skip-unreadable") {
		cfg.SkipUnreadable = opts.SkipUnreadable
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a text logger writing to w. Verbose enables debug output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// noColor reports whether terminal styling should be disabled.
func noColor(flag bool) bool {
	if flag {
		return true
	}
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
