// Package config provides configuration loading and validation for batteval.
package config

// ErrorPolicy selects how a file's model/video difference becomes an error count.
type ErrorPolicy string

const (
	// PolicyAbsolute scores a file as abs(effective model - video).
	PolicyAbsolute ErrorPolicy = "absolute"

	// PolicyDoubled doubles the difference when it is below 1, then takes abs.
	PolicyDoubled ErrorPolicy = "doubled"
)

// Config is the evaluation configuration. It can be loaded from YAML and is
// then overridden by environment variables and command-line flags.
type Config struct {
	// Root is the directory tree to evaluate. Never read from the config file.
	Root string `yaml:"-"`

	// MinTimeBetweenBatteries is the threshold below which two consecutive
	// model events count as a single battery change.
	MinTimeBetweenBatteries int `yaml:"min_time_between_batteries"`

	// AlgorithmFolders lists the directory names treated as algorithm runs.
	AlgorithmFolders []string `yaml:"algorithm_folders"`

	// FileExtension is the extension (with leading dot) of scored files.
	FileExtension string `yaml:"file_extension"`

	// ExcludeSubstrings skips files whose name contains any of these.
	ExcludeSubstrings []string `yaml:"exclude_substrings"`

	// ModelMarker and VideoMarker are the literal substrings counted in each file.
	ModelMarker string `yaml:"model_marker"`
	VideoMarker string `yaml:"video_marker"`

	// ErrorPolicy is absolute (default) or doubled.
	ErrorPolicy ErrorPolicy `yaml:"error_policy"`

	// SkipUnreadable logs and skips unreadable directories and files instead
	// of failing the whole run.
	SkipUnreadable bool `yaml:"skip_unreadable"`
}
