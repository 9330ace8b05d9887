package iosources

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/pkg/errcode"
)

// SourcesConfigError creates an error for when sources.yaml
// cannot be loaded.
func SourcesConfigError(path string, err error) error {
	msg := `Cannot load sources manifest

<em>Manifest file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - A source is empty or has an unsupported format

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Use only json, csv or xml formats`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load sources manifest: %w", err),
	}
}

// SourcesEmptyError is returned when the manifest lists no sources.
func SourcesEmptyError(path string) error {
	msg := `No sources found in <em>%s</em>

Add at least one entry under <em>sources:</em>`

	return &gn.Error{
		Code: errcode.SourcesEmptyError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("no sources in %s", path),
	}
}
