// Package ingest dispatches a source and its declared format to a
// decoder, validates decoded records and wraps the outcome in an
// Envelope.
//
// Ingestion never returns an error to the caller: unsupported formats,
// unreadable sources and malformed content all become unsuccessful
// envelopes. The typed failure is available from Envelope.Err.
package ingest

import (
	"context"
	"log/slog"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/gnames/gningest/pkg/decode"
	"github.com/gnames/gningest/pkg/record"
	"github.com/gnames/gnuuid"
)

// Coordinator ingests sources. It does not change after New and is safe
// for concurrent use if its Resolver is.
type Coordinator struct {
	log         *slog.Logger
	resolver    Resolver
	now         func() time.Time
	required    []string
	dropInvalid bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// OptResolver sets the resolver used by Ingest. Nil is ignored.
func OptResolver(r Resolver) Option {
	return func(c *Coordinator) {
		if r != nil {
			c.resolver = r
		}
	}
}

// OptClock sets the time source for envelope timestamps.
func OptClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// OptRequiredFields replaces the fields checked by Validate. An empty
// slice is ignored.
func OptRequiredFields(fields []string) Option {
	return func(c *Coordinator) {
		if len(fields) > 0 {
			c.required = slices.Clone(fields)
		}
	}
}

// OptDropInvalid removes records that fail validation from successful
// envelopes.
func OptDropInvalid(b bool) Option {
	return func(c *Coordinator) {
		c.dropInvalid = b
	}
}

// New creates a Coordinator that logs to logger. A nil logger discards
// all messages.
func New(logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	res := &Coordinator{
		log:      logger,
		resolver: ContentResolver{},
		now:      time.Now,
		required: slices.Clone(record.RequiredFields),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// RequiredFields returns the fields checked by Validate.
func (c *Coordinator) RequiredFields() []string {
	return slices.Clone(c.required)
}

// Ingest resolves the source and decodes it according to formatType
// (json, csv or xml; empty means json).
func (c *Coordinator) Ingest(
	ctx context.Context,
	source, formatType string,
) Envelope {
	f, err := decode.NewFormat(formatType)
	if err != nil {
		return c.failure(source, "", err)
	}

	c.log.Info("Starting ingestion",
		"source", shortSource(source),
		"source_id", gnuuid.New(source).String(),
		"format", f.String(),
	)

	content, err := c.resolver.Resolve(ctx, source)
	if err != nil {
		return c.failure(source, f.String(), NewSourceError(source, err))
	}

	return c.decode(source, f, content)
}

// IngestContent decodes content that is already in hand. The source is
// used only as the envelope identifier.
func (c *Coordinator) IngestContent(
	source string,
	content []byte,
	formatType string,
) Envelope {
	f, err := decode.NewFormat(formatType)
	if err != nil {
		return c.failure(source, "", err)
	}

	c.log.Info("Starting ingestion",
		"source", shortSource(source),
		"source_id", gnuuid.New(source).String(),
		"format", f.String(),
		"bytes", len(content),
	)

	return c.decode(source, f, content)
}

// Validate returns true if all required fields are present as keys of
// the record. Values are not inspected.
func (c *Coordinator) Validate(rec record.Record) bool {
	return rec.HasFields(c.required)
}

func (c *Coordinator) decode(
	source string,
	f decode.Format,
	content []byte,
) Envelope {
	d, err := decode.New(f)
	if err != nil {
		return c.failure(source, "", err)
	}

	recs, err := d.Decode(content)
	if err != nil {
		return c.failure(source, f.String(), err)
	}

	recs = c.validateAll(source, recs)

	c.log.Info("Ingestion finished",
		"source", shortSource(source),
		"format", f.String(),
		"records", len(recs),
	)

	return Envelope{
		Success:          true,
		Format:           f.String(),
		Source:           source,
		Timestamp:        c.timestamp(),
		RecordsProcessed: len(recs),
		Records:          recs,
	}
}

// validateAll logs records that miss required fields and, if configured,
// drops them.
func (c *Coordinator) validateAll(
	source string,
	recs []record.Record,
) []record.Record {
	res := recs
	if c.dropInvalid {
		res = make([]record.Record, 0, len(recs))
	}

	var invalid int
	for i, rec := range recs {
		missing := rec.Missing(c.required)
		if len(missing) == 0 {
			if c.dropInvalid {
				res = append(res, rec)
			}
			continue
		}
		invalid++
		c.log.Warn("Record misses required fields",
			"source", shortSource(source),
			"index", i,
			"missing", missing,
			"dropped", c.dropInvalid,
		)
	}

	if invalid > 0 {
		c.log.Warn("Invalid records found",
			"source", shortSource(source),
			"invalid", invalid,
			"total", len(recs),
		)
	}
	return res
}

func (c *Coordinator) failure(source, format string, err error) Envelope {
	c.log.Error("Error during ingestion",
		"source", shortSource(source),
		"format", format,
		"error", err,
	)
	return Envelope{
		Success:   false,
		Format:    format,
		Source:    source,
		Timestamp: c.timestamp(),
		Error:     err.Error(),
		err:       err,
	}
}

func (c *Coordinator) timestamp() string {
	return c.now().Format(time.RFC3339Nano)
}

// shortSource keeps log lines readable when the source is inline content.
func shortSource(s string) string {
	const limit = 80
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
