package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gningest"

	// DefaultRequiredFields are checked when config does not provide
	// its own list.
	DefaultRequiredFields = []string{"name", "type", "length"}
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gningest by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gningest/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gningest/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file with
// the batch ingestion manifest.
// Returns ~/.config/gningest/sources.yaml by default.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}
