package sources_test

import (
	"testing"

	"github.com/gnames/gningest/pkg/decode"
	"github.com/gnames/gningest/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cfg := sources.SourcesConfig{
		Sources: []sources.SourceConfig{
			{Source: " /data/fleet.json "},
			{Source: "https://example.org/feed/charter.XML?x=1"},
			{Source: "/data/marina.txt", Format: "csv", Label: "marina"},
			{Source: "/data/unknown"},
		},
	}

	err := cfg.Validate("json")
	require.NoError(t, err)

	s := cfg.Sources
	assert.Equal(t, "/data/fleet.json", s[0].Source)
	assert.Equal(t, "json", s[0].Format)
	assert.Equal(t, "001-fleet", s[0].Label)

	assert.Equal(t, "xml", s[1].Format)
	assert.Equal(t, "002-charter", s[1].Label)

	assert.Equal(t, "csv", s[2].Format)
	assert.Equal(t, "marina", s[2].Label)

	assert.Equal(t, "json", s[3].Format)
	require.Len(t, cfg.Warnings, 1)
	assert.Equal(t, 4, cfg.Warnings[0].Index)
	assert.Equal(t, "format", cfg.Warnings[0].Field)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		msg string
		cfg sources.SourcesConfig
	}{
		{
			msg: "no sources",
			cfg: sources.SourcesConfig{},
		},
		{
			msg: "empty source",
			cfg: sources.SourcesConfig{Sources: []sources.SourceConfig{{Source: "  "}}},
		},
		{
			msg: "unsupported format",
			cfg: sources.SourcesConfig{Sources: []sources.SourceConfig{
				{Source: "a.json", Format: "yaml"},
			}},
		},
		{
			msg: "stdin twice",
			cfg: sources.SourcesConfig{Sources: []sources.SourceConfig{
				{Source: "-"}, {Source: "-"},
			}},
		},
	}

	for _, v := range tests {
		assert.Error(t, v.cfg.Validate("json"), v.msg)
	}
}

func TestFormatFromName(t *testing.T) {
	tests := []struct {
		in  string
		res decode.Format
		ok  bool
	}{
		{"fleet.json", decode.JSON, true},
		{"/data/FLEET.CSV", decode.CSV, true},
		{"http://example.org/a/b.xml?page=2", decode.XML, true},
		{"fleet.yaml", decode.UnknownFormat, false},
		{"fleet", decode.UnknownFormat, false},
		{"-", decode.UnknownFormat, false},
	}

	for _, v := range tests {
		f, ok := sources.FormatFromName(v.in)
		assert.Equal(t, v.ok, ok, v.in)
		assert.Equal(t, v.res, f, v.in)
	}
}

func TestDefaultLabel(t *testing.T) {
	assert.Equal(t, "001-stdin", sources.DefaultLabel("-", 1))
	assert.Equal(t, "012-my_fleet", sources.DefaultLabel("/tmp/my fleet.csv", 12))
	assert.Equal(t, "003-source", sources.DefaultLabel("https://example.org/", 3))
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		in, res string
	}{
		{"marina", "marina"},
		{"fleet-2024.v1", "fleet-2024.v1"},
		{"../escaped", ".._escaped"},
		{"/etc/passwd", "_etc_passwd"},
		{`..\win`, ".._win"},
		{"..", ""},
		{" ./ ", ""},
		{"", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, sources.CleanLabel(v.in), v.in)
	}
}

func TestValidateLabels(t *testing.T) {
	cfg := sources.SourcesConfig{
		Sources: []sources.SourceConfig{
			{Source: "/data/fleet.json", Label: "../escaped"},
			{Source: "/data/marina.csv", Label: ".."},
		},
	}
	require.NoError(t, cfg.Validate("json"))
	assert.Equal(t, ".._escaped", cfg.Sources[0].Label)
	assert.Equal(t, "002-marina", cfg.Sources[1].Label)
	require.Len(t, cfg.Warnings, 2)
	assert.Equal(t, "label", cfg.Warnings[0].Field)
}

func TestIsURL(t *testing.T) {
	assert.True(t, sources.IsURL("https://example.org/a.json"))
	assert.True(t, sources.IsURL("http://localhost:8080/a"))
	assert.False(t, sources.IsURL("/data/a.json"))
	assert.False(t, sources.IsURL("ftp://example.org/a.json"))
	assert.False(t, sources.IsURL("http://"))
}
