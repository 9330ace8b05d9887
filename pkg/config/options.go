package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptIngestFormat sets the format used when none is given for a source.
// Valid values: "json", "csv", "xml".
func OptIngestFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Ingest.Format", s) {
			c.Ingest.Format = s
		}
	}
}

// OptIngestRequiredFields sets fields that make a record valid.
// Blank names are removed, an empty list is ignored.
func OptIngestRequiredFields(ss []string) Option {
	var fields []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			fields = append(fields, v)
		}
	}
	return func(c *Config) {
		if isValidList("Ingest Required Fields", fields) {
			c.Ingest.RequiredFields = fields
		}
	}
}

// OptIngestDropInvalid sets whether invalid records are removed from
// ingestion results.
func OptIngestDropInvalid(b bool) Option {
	return func(c *Config) {
		c.Ingest.DropInvalid = b
	}
}

// OptIngestMaxSourceSize sets the largest source size in bytes.
func OptIngestMaxSourceSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Max Source Size", i) {
			c.Ingest.MaxSourceSize = i
		}
	}
}

// OptIngestHTTPTimeout sets the timeout in seconds for URL sources.
func OptIngestHTTPTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("HTTP Timeout", i) {
			c.Ingest.HTTPTimeout = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of sources ingested concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
