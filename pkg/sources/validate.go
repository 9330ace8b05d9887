package sources

import (
	"fmt"
	"strings"

	"github.com/gnames/gningest/pkg/decode"
)

// Validate checks the configuration for errors and fills in missing
// formats. The defaultFormat is used when a format cannot be guessed
// from the source name.
func (c *SourcesConfig) Validate(defaultFormat string) error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources specified in configuration")
	}

	var stdin int
	for i := range c.Sources {
		warnings, err := c.Sources[i].Validate(i+1, defaultFormat)
		if err != nil {
			return fmt.Errorf("source %d: %w", i+1, err)
		}
		if c.Sources[i].Source == StdinSource {
			stdin++
		}
		c.Warnings = append(c.Warnings, warnings...)
	}

	if stdin > 1 {
		return fmt.Errorf("stdin ('-') can be used only once, found %d times", stdin)
	}
	return nil
}

// Validate checks a single source and normalizes its format.
// Returns a slice of warnings (non-fatal issues) and an error (fatal issues).
func (s *SourceConfig) Validate(index int, defaultFormat string) ([]ValidationWarning, error) {
	var warnings []ValidationWarning

	s.Source = strings.TrimSpace(s.Source)
	if s.Source == "" {
		return nil, fmt.Errorf("source is required")
	}

	if s.Format == "" {
		if f, ok := FormatFromName(s.Source); ok {
			s.Format = f.String()
		} else {
			warnings = append(warnings, ValidationWarning{
				Index:      index,
				Field:      "format",
				Message:    fmt.Sprintf("cannot guess format of '%s', using '%s'", s.Source, defaultFormat),
				Suggestion: "Set 'format' to json, csv or xml",
			})
			s.Format = defaultFormat
		}
	}

	f, err := decode.NewFormat(s.Format)
	if err != nil {
		return nil, err
	}
	s.Format = f.String()

	label := CleanLabel(s.Label)
	if s.Label != "" && label != s.Label {
		warnings = append(warnings, ValidationWarning{
			Index:      index,
			Field:      "label",
			Message:    fmt.Sprintf("label '%s' is changed to '%s'", s.Label, label),
			Suggestion: "Use only letters, digits, '.', '_' and '-' in labels",
		})
	}
	s.Label = label
	if s.Label == "" {
		s.Label = DefaultLabel(s.Source, index)
	}
	return warnings, nil
}
