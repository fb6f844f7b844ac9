package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidThreshold is returned for a threshold that is not a non-negative integer.
	ErrInvalidThreshold = errors.New("invalid minimum time between batteries")

	// ErrInvalidPolicy is returned for an unknown error policy.
	ErrInvalidPolicy = errors.New("invalid error policy")
)

// Load reads and validates a configuration file. An empty path returns the
// defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ParsePolicy converts a policy name into an ErrorPolicy.
func ParsePolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyAbsolute, PolicyDoubled:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (must be absolute or doubled)", ErrInvalidPolicy, s)
	}
}

// Validate checks a configuration for errors. It does not check Root, which
// is supplied on the command line and validated by the walker.
func Validate(cfg *Config) error {
	if cfg.MinTimeBetweenBatteries < 0 {
		return fmt.Errorf("min_time_between_batteries: %w: %d is negative",
			ErrInvalidThreshold, cfg.MinTimeBetweenBatteries)
	}

	if len(cfg.AlgorithmFolders) == 0 {
		return errors.New("algorithm_folders: at least one folder name is required")
	}
	for i, name := range cfg.AlgorithmFolders {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("algorithm_folders[%d]: name is empty", i)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("algorithm_folders[%d]: %q must be a folder name, not a path", i, name)
		}
	}

	if cfg.FileExtension == "" {
		return errors.New("file_extension: extension is required")
	}
	if !strings.HasPrefix(cfg.FileExtension, ".") {
		cfg.FileExtension = "." + cfg.FileExtension
	}

	for i, s := range cfg.ExcludeSubstrings {
		if s == "" {
			return fmt.Errorf("exclude_substrings[%d]: substring is empty", i)
		}
	}

	if cfg.ModelMarker == "" {
		return errors.New("model_marker: marker is required")
	}
	if cfg.VideoMarker == "" {
		return errors.New("video_marker: marker is required")
	}
	if cfg.ModelMarker == cfg.VideoMarker {
		return fmt.Errorf("model_marker and video_marker must differ (both %q)", cfg.ModelMarker)
	}

	if cfg.ErrorPolicy == "" {
		cfg.ErrorPolicy = DefaultErrorPolicy
	}
	policy, err := ParsePolicy(string(cfg.ErrorPolicy))
	if err != nil {
		return fmt.Errorf("error_policy: %w", err)
	}
	cfg.ErrorPolicy = policy

	return nil
}
