package ingest

import (
	"github.com/gnames/gnfmt"
	"github.com/gnames/gningest/pkg/record"
	jsoniter "github.com/json-iterator/go"
)

// Envelope is the uniform result of one ingestion call. Exactly one of
// Records (on success) or Error (on failure) is meaningful.
type Envelope struct {
	// Success is true when the content was decoded.
	Success bool

	// Format is the decoder format, empty when the requested format
	// is not supported.
	Format string

	// Source is the source identifier given by the caller.
	Source string

	// Timestamp is the ISO-8601 time of the ingestion.
	Timestamp string

	// RecordsProcessed is the number of records in Records.
	RecordsProcessed int

	// Records are decoded records in source order.
	Records []record.Record

	// Error describes the failure.
	Error string

	err error
}

// Err returns the typed failure behind an unsuccessful envelope, one of
// *decode.UnsupportedFormatError, *decode.DecodeError or *SourceError.
// It is nil for successful envelopes.
func (e Envelope) Err() error {
	return e.err
}

type envelopeJSON struct {
	Success          bool             `json:"success"`
	Format           string           `json:"format,omitempty"`
	Source           string           `json:"source"`
	Timestamp        string           `json:"timestamp"`
	RecordsProcessed int              `json:"records_processed"`
	Records          *[]record.Record `json:"records,omitempty"`
	Error            *string          `json:"error,omitempty"`
}

// MarshalJSON writes records only for successful envelopes and error only
// for failed ones. A success with no records has an empty records array.
func (e Envelope) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(e.output())
}

// Encode serializes the envelope like MarshalJSON, optionally indented.
func (e Envelope) Encode(pretty bool) ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: pretty}
	return enc.Encode(e.output())
}

// EncodeEnvelopes serializes envelopes as a JSON array.
func EncodeEnvelopes(envs []Envelope, pretty bool) ([]byte, error) {
	res := make([]envelopeJSON, len(envs))
	for i := range envs {
		res[i] = envs[i].output()
	}
	enc := gnfmt.GNjson{Pretty: pretty}
	return enc.Encode(res)
}

func (e Envelope) output() envelopeJSON {
	res := envelopeJSON{
		Success:          e.Success,
		Format:           e.Format,
		Source:           e.Source,
		Timestamp:        e.Timestamp,
		RecordsProcessed: e.RecordsProcessed,
	}
	if e.Success {
		recs := e.Records
		if recs == nil {
			recs = []record.Record{}
		}
		res.Records = &recs
	} else {
		msg := e.Error
		res.Error = &msg
	}
	return res
}
