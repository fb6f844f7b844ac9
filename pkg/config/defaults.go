package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultMinTimeBetweenBatteries = 30
	DefaultFileExtension           = ".txt"
	DefaultModelMarker             = "Model"
	DefaultVideoMarker             = "Video"
	DefaultErrorPolicy             = PolicyAbsolute
)

// DefaultAlgorithmFolders are the folder names produced by the detection runs.
var DefaultAlgorithmFolders = []string{"bayes", "default"}

// DefaultExcludeSubstrings filters out montage recordings that have no ground truth.
var DefaultExcludeSubstrings = []string{"SSG_montage2"}

// Environment variable names.
const (
	EnvMinTimeBetweenBatteries = "BATTEVAL_MIN_TIME_BETWEEN_BATTERIES"
	EnvErrorPolicy             = "BATTEVAL_ERROR_POLICY"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MinTimeBetweenBatteries: DefaultMinTimeBetweenBatteries,
		AlgorithmFolders:        append([]string(nil), DefaultAlgorithmFolders...),
		FileExtension:           DefaultFileExtension,
		ExcludeSubstrings:       append([]string(nil), DefaultExcludeSubstrings...),
		ModelMarker:             DefaultModelMarker,
		VideoMarker:             DefaultVideoMarker,
		ErrorPolicy:             DefaultErrorPolicy,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvMinTimeBetweenBatteries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMinTimeBetweenBatteries, v, ErrInvalidThreshold)
		}
		c.MinTimeBetweenBatteries = n
	}

	if v := os.Getenv(EnvErrorPolicy); v != "" {
		c.ErrorPolicy = ErrorPolicy(v)
	}

	return nil
}
