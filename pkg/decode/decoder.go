// Package decode converts raw content in JSON, CSV or XML into ordered
// sequences of flat records.
//
// Decoders are pure: they receive content that is already in hand and
// never perform I/O. Resolving a file path or an endpoint into content is
// done by the caller.
package decode

import "github.com/gnames/gningest/pkg/record"

// Decoder converts content of one format into records.
type Decoder interface {
	// Format returns the format this decoder understands.
	Format() Format

	// Decode returns records in the order they appear in the content.
	// Malformed or structurally invalid content returns DecodeError.
	Decode(content []byte) ([]record.Record, error)
}

// New returns the decoder for the given format.
func New(f Format) (Decoder, error) {
	switch f {
	case JSON:
		return jsonDecoder{}, nil
	case CSV:
		return csvDecoder{}, nil
	case XML:
		return xmlDecoder{}, nil
	default:
		return nil, NewUnsupportedFormatError(f.String())
	}
}

// ForName is a shortcut for NewFormat followed by New.
func ForName(name string) (Decoder, error) {
	f, err := NewFormat(name)
	if err != nil {
		return nil, err
	}
	return New(f)
}
