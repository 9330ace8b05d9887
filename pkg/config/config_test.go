package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gningest/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gningest"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gningest", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gningest", "config.yaml"),
		},
		{
			msg: "sources file",
			fn:  config.SourcesFilePath,
			res: filepath.Join(tempHome, ".config", "gningest", "sources.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Ingest defaults
		assert.Equal(t, "json", cfg.Ingest.Format)
		assert.Equal(t, []string{"name", "type", "length"}, cfg.Ingest.RequiredFields)
		assert.False(t, cfg.Ingest.DropInvalid)
		assert.Equal(t, 64<<20, cfg.Ingest.MaxSourceSize)
		assert.Equal(t, 30, cfg.Ingest.HTTPTimeout)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})

	t.Run("required fields are not shared", func(t *testing.T) {
		cfg.Ingest.RequiredFields[0] = "hull_id"
		assert.Equal(t, "name", config.New().Ingest.RequiredFields[0])
	})
}

func TestOptionIngestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets csv",
			input:    "csv",
			expected: "csv",
		},
		{
			name:     "sets xml",
			input:    "xml",
			expected: "xml",
		},
		{
			name:     "normalizes to lowercase",
			input:    " XML ",
			expected: "xml",
		},
		{
			name:     "ignores invalid value",
			input:    "yaml",
			expected: "json", // Should keep default
		},
		{
			name:     "ignores empty value",
			input:    "",
			expected: "json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptIngestFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Ingest.Format)
		})
	}
}

func TestOptionIngestRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets fields",
			input:    []string{"hull_id", "name"},
			expected: []string{"hull_id", "name"},
		},
		{
			name:     "trims and drops blanks",
			input:    []string{" hull_id ", "", "  "},
			expected: []string{"hull_id"},
		},
		{
			name:     "ignores empty list",
			input:    nil,
			expected: []string{"name", "type", "length"},
		},
		{
			name:     "ignores list of blanks",
			input:    []string{" "},
			expected: []string{"name", "type", "length"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptIngestRequiredFields(tt.input)})
			assert.Equal(t, tt.expected, cfg.Ingest.RequiredFields)
		})
	}
}

func TestOptionIngestInts(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptIngestMaxSourceSize(1024),
		config.OptIngestHTTPTimeout(5),
		config.OptJobsNumber(3),
	})
	assert.Equal(t, 1024, cfg.Ingest.MaxSourceSize)
	assert.Equal(t, 5, cfg.Ingest.HTTPTimeout)
	assert.Equal(t, 3, cfg.JobsNumber)

	cfg.Update([]config.Option{
		config.OptIngestMaxSourceSize(0),
		config.OptIngestHTTPTimeout(-1),
		config.OptJobsNumber(0),
	})
	assert.Equal(t, 1024, cfg.Ingest.MaxSourceSize, "keeps previous value")
	assert.Equal(t, 5, cfg.Ingest.HTTPTimeout, "keeps previous value")
	assert.Equal(t, 3, cfg.JobsNumber, "keeps previous value")
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - warn",
			input:    "warn",
			expected: "warn",
		},
		{
			name:     "normalizes to lowercase",
			input:    "ERROR",
			expected: "error",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormatAndDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogFormat("tint"),
		config.OptLogDestination("STDERR"),
	})
	assert.Equal(t, "tint", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptLogFormat("xml"),
		config.OptLogDestination("syslog"),
	})
	assert.Equal(t, "tint", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestOptionHomeDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("  /home/sailor ")})
	assert.Equal(t, "/home/sailor", cfg.HomeDir)

	cfg.Update([]config.Option{config.OptHomeDir(" ")})
	assert.Equal(t, "/home/sailor", cfg.HomeDir)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptIngestFormat("csv"),
		config.OptIngestRequiredFields([]string{"hull_id"}),
		config.OptIngestDropInvalid(true),
		config.OptIngestMaxSourceSize(2048),
		config.OptIngestHTTPTimeout(10),
		config.OptLogFormat("text"),
		config.OptLogLevel("debug"),
		config.OptLogDestination("stdout"),
		config.OptJobsNumber(2),
		config.OptHomeDir("/home/sailor"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Ingest, dst.Ingest)
	assert.Equal(t, src.Log, dst.Log)
	assert.Equal(t, src.JobsNumber, dst.JobsNumber)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
