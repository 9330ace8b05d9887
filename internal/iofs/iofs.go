// Package iofs prepares the file system for gningest: it creates config
// and log directories and writes embedded templates on the first run.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/gningest/pkg/config"
)

// ConfigYAML is the template of config.yaml with all settings and their
// default values.
//
//go:embed config.yaml
var ConfigYAML string

// SourcesYAML is the template of the batch manifest.
//
//go:embed sources.yaml
var SourcesYAML string

// SampleData is a small yacht collection ingested when gningest runs
// without a subcommand.
//
//go:embed sample_data.json
var SampleData []byte

// SampleDataName is the source name reported for SampleData.
const SampleDataName = "sample_data.json"

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

func EnsureSourcesFile(homeDir string) error {
	return ensureFile(config.SourcesFilePath(homeDir), SourcesYAML)
}

// ensureFile writes content to path unless the file already exists.
func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}

// ReadFile reads a whole file, wrapping failures into a user-facing error.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// WriteFile writes data into dir/name, creating dir when needed.
func WriteFile(dir, name string, data []byte) (string, error) {
	if err := touchDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", WriteFileError(path, err)
	}
	return path, nil
}
