// Package config provides configuration management for GNingest.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Ingest: format, required_fields, drop_invalid, max_source_size,
//     http_timeout
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNINGEST_ prefix with underscores for nesting:
//
//	GNINGEST_INGEST_FORMAT=csv
//	GNINGEST_INGEST_DROP_INVALID=true
//	GNINGEST_LOG_LEVEL=info
//	GNINGEST_JOBS_NUMBER=8
package config

import (
	"runtime"
	"slices"
)

// Config represents the complete GNingest configuration.
type Config struct {
	// Ingest contains settings of the ingestion pipeline.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of sources ingested concurrently by
	// the batch command.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// IngestConfig contains settings of the ingestion pipeline.
type IngestConfig struct {
	// Format is used when a source is given without an explicit format.
	// Valid values: "json", "csv", "xml".
	Format string `mapstructure:"format" yaml:"format"`

	// RequiredFields must be present in a record for it to be valid.
	// Only presence of a field is checked, not its value.
	RequiredFields []string `mapstructure:"required_fields" yaml:"required_fields"`

	// DropInvalid removes records that miss required fields from
	// the result instead of only reporting them.
	DropInvalid bool `mapstructure:"drop_invalid" yaml:"drop_invalid"`

	// MaxSourceSize is the largest source in bytes that will be read
	// from a file, a URL or stdin.
	MaxSourceSize int `mapstructure:"max_source_size" yaml:"max_source_size"`

	// HTTPTimeout is the timeout in seconds for fetching URL sources.
	HTTPTimeout int `mapstructure:"http_timeout" yaml:"http_timeout"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Ingest: IngestConfig{
			Format:         "json",
			RequiredFields: slices.Clone(DefaultRequiredFields),
			MaxSourceSize:  64 << 20,
			HTTPTimeout:    30,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
