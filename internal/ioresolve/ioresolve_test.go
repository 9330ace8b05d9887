package ioresolve_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/internal/ioresolve"
	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/errcode"
	"github.com/gnames/gningest/pkg/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fleet = `[{"name":"Serenity","type":"sloop","length":12}]`

func newConfig(opts ...config.Option) *config.Config {
	cfg := config.New()
	cfg.Update(opts)
	return cfg
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.json")
	require.NoError(t, os.WriteFile(path, []byte(fleet), 0644))

	r := ioresolve.New(newConfig())
	res, err := r.Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, fleet, string(res))

	_, err = r.Resolve(context.Background(), path+".missing")
	require.Error(t, err)
	assert.Equal(t, errcode.SourceFileError, errCode(t, err))
}

func TestResolveTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.json")
	require.NoError(t, os.WriteFile(path, []byte(fleet), 0644))

	r := ioresolve.New(newConfig(config.OptIngestMaxSourceSize(10)))
	_, err := r.Resolve(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, errcode.SourceTooLargeError, errCode(t, err))

	r = ioresolve.New(newConfig(config.OptIngestMaxSourceSize(len(fleet))))
	res, err := r.Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, res, len(fleet))
}

func TestResolveStdin(t *testing.T) {
	r := ioresolve.New(newConfig(), ioresolve.OptStdin(strings.NewReader(fleet)))
	res, err := r.Resolve(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, fleet, string(res))

	r = ioresolve.New(
		newConfig(config.OptIngestMaxSourceSize(5)),
		ioresolve.OptStdin(strings.NewReader(fleet)),
	)
	_, err = r.Resolve(context.Background(), "-")
	require.Error(t, err)
	assert.Equal(t, errcode.SourceTooLargeError, errCode(t, err))
}

func TestResolveURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/fleet.json":
				_, _ = w.Write([]byte(fleet))
			case "/slow":
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(fleet))
			default:
				http.NotFound(w, r)
			}
		}))
	defer ts.Close()

	r := ioresolve.New(newConfig(), ioresolve.OptHTTPClient(ts.Client()))

	res, err := r.Resolve(context.Background(), ts.URL+"/fleet.json")
	require.NoError(t, err)
	assert.Equal(t, fleet, string(res))

	_, err = r.Resolve(context.Background(), ts.URL+"/nope.json")
	require.Error(t, err)
	assert.Equal(t, errcode.SourceHTTPStatusError, errCode(t, err))
	assert.Equal(t, http.StatusNotFound, err.(*gn.Error).Vars[1])

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = r.Resolve(ctx, ts.URL+"/slow")
	require.Error(t, err)
	assert.Equal(t, errcode.SourceURLError, errCode(t, err))
}

func TestResolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := ioresolve.New(newConfig())
	_, err := r.Resolve(ctx, "/does/not/matter.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCoordinatorWithResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.csv")
	csv := "name,type,length\nSerenity,sloop,12\nAurora,ketch\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	c := ingest.New(nil, ingest.OptResolver(ioresolve.New(newConfig())))

	env := c.Ingest(context.Background(), path, "csv")
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "cannot decode csv content")

	csv = "name,type,length\nSerenity,sloop,12\nAurora,ketch,18\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))
	env = c.Ingest(context.Background(), path, "csv")
	require.True(t, env.Success)
	assert.Equal(t, 2, env.RecordsProcessed)
	assert.Equal(t, path, env.Source)

	env = c.Ingest(context.Background(), path+".missing", "csv")
	assert.False(t, env.Success)
	var srcErr *ingest.SourceError
	require.ErrorAs(t, env.Err(), &srcErr)
	assert.Equal(t, errcode.SourceFileError, errCode(t, srcErr.Err))
}
