// Package ioresolve turns source identifiers into content. A source is a
// file path, an http(s) URL or "-" for standard input.
package ioresolve

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/ingest"
	"github.com/gnames/gningest/pkg/sources"
)

var errTooLarge = errors.New("source is too large")

type ioresolve struct {
	maxSize int64
	client  *http.Client
	stdin   io.Reader
}

// Option modifies the resolver.
type Option func(*ioresolve)

// OptStdin sets the reader used for the "-" source.
func OptStdin(r io.Reader) Option {
	return func(res *ioresolve) {
		res.stdin = r
	}
}

// OptHTTPClient sets the client used for URL sources.
func OptHTTPClient(c *http.Client) Option {
	return func(r *ioresolve) {
		r.client = c
	}
}

// New creates a resolver limited by the ingest settings of cfg.
func New(cfg *config.Config, opts ...Option) ingest.Resolver {
	res := &ioresolve{
		maxSize: int64(cfg.Ingest.MaxSourceSize),
		client: &http.Client{
			Timeout: time.Duration(cfg.Ingest.HTTPTimeout) * time.Second,
		},
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Resolve reads the whole source.
func (r *ioresolve) Resolve(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case source == sources.StdinSource:
		return r.fromStdin(source)
	case sources.IsURL(source):
		return r.fromURL(ctx, source)
	default:
		return r.fromFile(source)
	}
}

func (r *ioresolve) fromStdin(source string) ([]byte, error) {
	res, err := r.readLimited(r.stdin)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return nil, SourceTooLargeError(source, r.maxSize)
		}
		return nil, SourceStdinError(err)
	}
	return res, nil
}

func (r *ioresolve) fromFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SourceFileError(path, err)
	}
	defer f.Close()

	res, err := r.readLimited(f)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return nil, SourceTooLargeError(path, r.maxSize)
		}
		return nil, SourceFileError(path, err)
	}
	return res, nil
}

func (r *ioresolve) fromURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, SourceURLError(url, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, SourceURLError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, SourceHTTPStatusError(url, resp.StatusCode)
	}

	res, err := r.readLimited(resp.Body)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return nil, SourceTooLargeError(url, r.maxSize)
		}
		return nil, SourceURLError(url, err)
	}
	return res, nil
}

// readLimited reads at most maxSize bytes, a longer input is an error.
// A non-positive maxSize means no limit.
func (r *ioresolve) readLimited(rd io.Reader) ([]byte, error) {
	if r.maxSize <= 0 {
		return io.ReadAll(rd)
	}
	res, err := io.ReadAll(io.LimitReader(rd, r.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(res)) > r.maxSize {
		return nil, errTooLarge
	}
	return res, nil
}
