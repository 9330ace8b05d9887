// Package iobatch ingests all sources of a manifest concurrently and
// keeps the resulting envelopes in manifest order.
package iobatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gningest/internal/iofs"
	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/ingest"
	"github.com/gnames/gningest/pkg/sources"
	"github.com/gnames/gnsys"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Batch runs ingestion of many sources.
type Batch struct {
	jobs     int
	coord    *ingest.Coordinator
	log      *slog.Logger
	progress io.Writer
}

// Option modifies Batch.
type Option func(*Batch)

// OptProgress shows a progress bar on w.
func OptProgress(w io.Writer) Option {
	return func(b *Batch) {
		b.progress = w
	}
}

// Item is the outcome of one source.
type Item struct {
	Label    string
	Envelope ingest.Envelope
}

// Result is the outcome of a batch run.
type Result struct {
	// RunID identifies the run in logs.
	RunID    string
	Items    []Item
	Duration time.Duration
}

// New creates a Batch. The number of concurrent ingestions is taken
// from cfg.JobsNumber.
func New(
	cfg *config.Config,
	coord *ingest.Coordinator,
	logger *slog.Logger,
	opts ...Option,
) *Batch {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	res := &Batch{
		jobs:  max(cfg.JobsNumber, 1),
		coord: coord,
		log:   logger,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Run ingests every source of the manifest. Failed sources do not stop
// the run, they are reported by their envelopes. An error is returned
// only if the context is canceled.
func (b *Batch) Run(
	ctx context.Context,
	srcs *sources.SourcesConfig,
) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID: uuid.NewString(),
		Items: make([]Item, len(srcs.Sources)),
	}
	b.log.Info("Starting batch ingestion",
		"run_id", res.RunID,
		"sources", len(srcs.Sources),
		"jobs", b.jobs,
	)
	for _, w := range srcs.Warnings {
		b.log.Warn("Manifest warning",
			"index", w.Index,
			"field", w.Field,
			"message", w.Message,
		)
	}

	bar := newProgressBar(len(srcs.Sources), "sources ", b.progress)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.jobs)
	for i, src := range srcs.Sources {
		g.Go(func() error {
			env := b.coord.Ingest(gCtx, src.Source, src.Format)
			res.Items[i] = Item{Label: src.Label, Envelope: env}
			bar.Increment()
			return nil
		})
	}
	_ = g.Wait()
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	b.log.Info("Batch ingestion complete",
		"run_id", res.RunID,
		"sources", len(res.Items),
		"failed", res.Failed(),
		"records", humanize.Comma(int64(res.RecordsProcessed())),
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

// Envelopes returns envelopes in manifest order.
func (r *Result) Envelopes() []ingest.Envelope {
	res := make([]ingest.Envelope, len(r.Items))
	for i := range r.Items {
		res[i] = r.Items[i].Envelope
	}
	return res
}

// Failed returns the number of unsuccessful envelopes.
func (r *Result) Failed() int {
	var res int
	for i := range r.Items {
		if !r.Items[i].Envelope.Success {
			res++
		}
	}
	return res
}

// RecordsProcessed returns the total of records of all envelopes.
func (r *Result) RecordsProcessed() int {
	var res int
	for i := range r.Items {
		res += r.Items[i].Envelope.RecordsProcessed
	}
	return res
}

// Summary is a one-line human readable report of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"Ingested %s records from %s sources (%s failed) in %s",
		humanize.Comma(int64(r.RecordsProcessed())),
		humanize.Comma(int64(len(r.Items))),
		humanize.Comma(int64(r.Failed())),
		gnfmt.TimeString(r.Duration.Seconds()),
	)
}

// JSON returns all envelopes as an indented JSON array.
func (r *Result) JSON() ([]byte, error) {
	return ingest.EncodeEnvelopes(r.Envelopes(), true)
}

// Write saves every envelope as a separate indented JSON file in dir and
// returns paths of the files. File names come from source labels.
func (r *Result) Write(dir string) ([]string, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return nil, iofs.CreateDirError(dir, err)
	}

	used := make(map[string]struct{}, len(r.Items))
	res := make([]string, 0, len(r.Items))
	for i, v := range r.Items {
		name := sources.CleanLabel(v.Label)
		if name == "" {
			name = "source"
		}
		if _, ok := used[name]; ok {
			name = fmt.Sprintf("%s-%d", name, i+1)
		}
		used[name] = struct{}{}

		data, err := v.Envelope.Encode(true)
		if err != nil {
			return nil, err
		}
		path, err := iofs.WriteFile(dir, name+".json", data)
		if err != nil {
			return nil, err
		}
		res = append(res, path)
	}
	return res, nil
}
