// Package iosources reads the batch manifest from a YAML file.
package iosources

import (
	"fmt"
	"os"

	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg  *config.Config
	path string
}

// New creates a manifest loader. If path is empty, the manifest is read
// from the config directory.
func New(cfg *config.Config, path string) sources.Sources {
	if path == "" {
		path = config.SourcesFilePath(cfg.HomeDir)
	}
	res := iosources{cfg: cfg, path: path}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	res, err := loadSourcesConfig(s.path)
	if err != nil {
		return nil, SourcesConfigError(s.path, err)
	}

	if len(res.Sources) == 0 {
		return nil, SourcesEmptyError(s.path)
	}

	if err = res.Validate(s.cfg.Ingest.Format); err != nil {
		return nil, SourcesConfigError(s.path, err)
	}
	return res, nil
}

func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var res sources.SourcesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse sources config file: %w", err)
	}
	return &res, nil
}
