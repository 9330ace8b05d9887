package ingest

import "fmt"

// SourceError is returned when a resolver cannot turn a source identifier
// into content.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError wraps a resolver error.
func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read source %s: %v", shortSource(e.Source), e.Err)
}

// Unwrap returns the resolver error.
func (e *SourceError) Unwrap() error {
	return e.Err
}
