package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
min_time_between_batteries: 45
algorithm_folders:
  - bayes
  - default
  - kalman
file_extension: .log
exclude_substrings:
  - SSG_montage2
  - scratch
error_policy: doubled
skip_unreadable: true
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MinTimeBetweenBatteries != 45 {
		t.Errorf("MinTimeBetweenBatteries = %d, want 45", cfg.MinTimeBetweenBatteries)
	}
	if len(cfg.AlgorithmFolders) != 3 {
		t.Errorf("AlgorithmFolders = %d, want 3", len(cfg.AlgorithmFolders))
	}
	if cfg.FileExtension != ".log" {
		t.Errorf("FileExtension = %q, want %q", cfg.FileExtension, ".log")
	}
	if len(cfg.ExcludeSubstrings) != 2 {
		t.Errorf("ExcludeSubstrings = %d, want 2", len(cfg.ExcludeSubstrings))
	}
	if cfg.ErrorPolicy != PolicyDoubled {
		t.Errorf("ErrorPolicy = %q, want %q", cfg.ErrorPolicy, PolicyDoubled)
	}
	if !cfg.SkipUnreadable {
		t.Error("SkipUnreadable = false, want true")
	}
	// Unset fields keep their defaults
	if cfg.ModelMarker != DefaultModelMarker || cfg.VideoMarker != DefaultVideoMarker {
		t.Errorf("markers = %q/%q, want defaults", cfg.ModelMarker, cfg.VideoMarker)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MinTimeBetweenBatteries != DefaultMinTimeBetweenBatteries {
		t.Errorf("MinTimeBetweenBatteries = %d, want %d", cfg.MinTimeBetweenBatteries, DefaultMinTimeBetweenBatteries)
	}
	if cfg.ErrorPolicy != PolicyAbsolute {
		t.Errorf("ErrorPolicy = %q, want %q", cfg.ErrorPolicy, PolicyAbsolute)
	}
	if len(cfg.AlgorithmFolders) != 2 || cfg.AlgorithmFolders[0] != "bayes" || cfg.AlgorithmFolders[1] != "default" {
		t.Errorf("AlgorithmFolders = %v, want [bayes default]", cfg.AlgorithmFolders)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvMinTimeBetweenBatteries, "12")
	t.Setenv(EnvErrorPolicy, "doubled")

	path := writeTempFile(t, "config.yaml", "min_time_between_batteries: 45\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MinTimeBetweenBatteries != 12 {
		t.Errorf("MinTimeBetweenBatteries = %d, want 12", cfg.MinTimeBetweenBatteries)
	}
	if cfg.ErrorPolicy != PolicyDoubled {
		t.Errorf("ErrorPolicy = %q, want %q", cfg.ErrorPolicy, PolicyDoubled)
	}
}

func TestLoad_EnvironmentInvalidThreshold(t *testing.T) {
	t.Setenv(EnvMinTimeBetweenBatteries, "thirty")

	_, err := Load(context.Background(), "")
	if !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("Load() error = %v, want ErrInvalidThreshold", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"zero threshold", func(c *Config) { c.MinTimeBetweenBatteries = 0 }, nil},
		{"negative threshold", func(c *Config) { c.MinTimeBetweenBatteries = -1 }, ErrInvalidThreshold},
		{"unknown policy", func(c *Config) { c.ErrorPolicy = "squared" }, ErrInvalidPolicy},
		{"no folders", func(c *Config) { c.AlgorithmFolders = nil }, errAny},
		{"blank folder", func(c *Config) { c.AlgorithmFolders = []string{" "} }, errAny},
		{"folder path", func(c *Config) { c.AlgorithmFolders = []string{"runs/bayes"} }, errAny},
		{"no extension", func(c *Config) { c.FileExtension = "" }, errAny},
		{"empty exclusion", func(c *Config) { c.ExcludeSubstrings = []string{""} }, errAny},
		{"no model marker", func(c *Config) { c.ModelMarker = "" }, errAny},
		{"no video marker", func(c *Config) { c.VideoMarker = "" }, errAny},
		{"same markers", func(c *Config) { c.VideoMarker = c.ModelMarker }, errAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := Validate(cfg)
			switch {
			case tt.wantErr == nil && err != nil:
				t.Errorf("Validate() error = %v, want nil", err)
			case tt.wantErr == errAny && err == nil:
				t.Error("Validate() expected error")
			case tt.wantErr != nil && tt.wantErr != errAny && !errors.Is(err, tt.wantErr):
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesExtensionAndPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FileExtension = "txt"
	cfg.ErrorPolicy = ""

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.FileExtension != ".txt" {
		t.Errorf("FileExtension = %q, want %q", cfg.FileExtension, ".txt")
	}
	if cfg.ErrorPolicy != PolicyAbsolute {
		t.Errorf("ErrorPolicy = %q, want %q", cfg.ErrorPolicy, PolicyAbsolute)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ErrorPolicy
		wantErr bool
	}{
		{"absolute", PolicyAbsolute, false},
		{"Doubled", PolicyDoubled, false},
		{" absolute ", PolicyAbsolute, false},
		{"", "", true},
		{"abs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_DoesNotShareSlices(t *testing.T) {
	a := DefaultConfig()
	a.AlgorithmFolders[0] = "changed"
	a.ExcludeSubstrings[0] = "changed"

	b := DefaultConfig()
	if b.AlgorithmFolders[0] != "bayes" || b.ExcludeSubstrings[0] != "SSG_montage2" {
		t.Error("DefaultConfig() returned slices shared with a previous config")
	}
}

var errAny = errors.New("any error")

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
