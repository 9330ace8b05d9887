package decode

import (
	"errors"
	"fmt"

	"github.com/gnames/gnlib"
)

var (
	errEmptyContent = errors.New("content is empty")
	errNoRoot       = errors.New("document has no root element")
)

// UnsupportedFormatError is returned when a format name is not one of
// json, csv or xml.
type UnsupportedFormatError struct {
	error
	gnlib.MessageBase
	Format string
}

// NewUnsupportedFormatError creates an error for an unknown format name.
func NewUnsupportedFormatError(format string) error {
	msgBase := gnlib.NewMessage(
		`<title>Unsupported Format</title>
<warning>Format '%s' is not supported.</warning>

<em>Supported formats:</em>
  * json
  * csv
  * xml
`,
		[]any{format},
	)

	return &UnsupportedFormatError{
		error:       fmt.Errorf("Unsupported format: %s", format),
		MessageBase: msgBase,
		Format:      format,
	}
}

// DecodeError is returned when content is malformed or does not have the
// structure the format decoder expects.
type DecodeError struct {
	error
	gnlib.MessageBase
	Format Format
	Err    error
}

// NewDecodeError wraps a parsing error of the given format.
func NewDecodeError(f Format, err error) error {
	msgBase := gnlib.NewMessage(
		`<title>Cannot Decode %s Content</title>
<warning>%s</warning>

<em>How to fix:</em>
  1. Check that the source is really in %s format
  2. Use <em>--format</em> to select another format
`,
		[]any{f.String(), err.Error(), f.String()},
	)

	return &DecodeError{
		error:       fmt.Errorf("cannot decode %s content: %w", f, err),
		MessageBase: msgBase,
		Format:      f,
		Err:         err,
	}
}

// Unwrap returns the underlying parser error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
