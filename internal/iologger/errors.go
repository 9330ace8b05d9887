package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/pkg/errcode"
)

// CreateLogFileError is returned when the log file cannot be opened.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

Logs can go to the terminal instead:
  <em>GNINGEST_LOG_DESTINATION=stderr gningest ...</em>`
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open log file %s: %w", path, err),
	}
}
