package ioresolve

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/pkg/errcode"
	"github.com/gnames/gningest/pkg/sources"
)

func SourceFileError(path string, err error) error {
	msg := "Cannot read source file <em>%s</em>"
	return &gn.Error{
		Code: errcode.SourceFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read file %s: %w", path, err),
	}
}

func SourceURLError(url string, err error) error {
	msg := "Cannot fetch source <em>%s</em>"
	return &gn.Error{
		Code: errcode.SourceURLError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("cannot fetch %s: %w", url, err),
	}
}

func SourceHTTPStatusError(url string, status int) error {
	msg := "Source <em>%s</em> returned HTTP status %d"
	return &gn.Error{
		Code: errcode.SourceHTTPStatusError,
		Msg:  msg,
		Vars: []any{url, status},
		Err:  fmt.Errorf("cannot fetch %s: status %d", url, status),
	}
}

func SourceTooLargeError(source string, limit int64) error {
	msg := `Source <em>%s</em> is larger than %d bytes

Increase <em>ingest.max_source_size</em> in config.yaml
or set GNINGEST_INGEST_MAX_SOURCE_SIZE`
	if source == sources.StdinSource {
		source = "stdin"
	}
	return &gn.Error{
		Code: errcode.SourceTooLargeError,
		Msg:  msg,
		Vars: []any{source, limit},
		Err:  fmt.Errorf("source %s exceeds %d bytes", source, limit),
	}
}

func SourceStdinError(err error) error {
	msg := "Cannot read source from stdin"
	return &gn.Error{
		Code: errcode.SourceStdinError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot read stdin: %w", err),
	}
}
