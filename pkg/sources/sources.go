// Package sources provides configuration and validation of the batch
// ingestion manifest.
//
// The manifest (sources.yaml) lists sources to ingest together with their
// formats. A source is a file path, an http(s) URL, or "-" for stdin.
//
//	sources:
//	  - source: /data/fleet.json
//	  - source: https://example.org/charter.xml
//	    format: xml
//	  - source: /data/marina.txt
//	    format: csv
//	    label: marina
package sources

// Sources loads the manifest from its storage.
type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// Sources is the list of sources to ingest, in output order.
	Sources []SourceConfig `yaml:"sources"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Index      int    // 1-based position of the source in the manifest
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// SourceConfig represents configuration for a single source.
type SourceConfig struct {
	// Source is a file path, an http(s) URL or "-" for stdin (required).
	Source string `yaml:"source"`

	// Format is json, csv or xml. When empty it is guessed from the
	// file extension and falls back to the configured default format.
	Format string `yaml:"format,omitempty"`

	// Label is an optional short name used for output file names and
	// progress reports.
	Label string `yaml:"label,omitempty"`
}
