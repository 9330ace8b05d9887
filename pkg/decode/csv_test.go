package decode_test

import (
	"encoding/csv"
	"errors"
	"testing"

	"github.com/gnames/gningest/pkg/decode"
	"github.com/gnames/gningest/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCSV(t *testing.T, s string) ([]record.Record, error) {
	d, err := decode.New(decode.CSV)
	require.NoError(t, err)
	return d.Decode([]byte(s))
}

func TestCSVDecode(t *testing.T) {
	tests := []struct {
		msg string
		in  string
		res []record.Record
	}{
		{
			msg: "numbers are inferred",
			in:  "name,type,length\nSerenity,sloop,12\nAurora,ketch,15.5\n",
			res: []record.Record{
				{"name": "Serenity", "type": "sloop", "length": int64(12)},
				{"name": "Aurora", "type": "ketch", "length": 15.5},
			},
		},
		{
			msg: "text that only looks numeric stays a string",
			in:  "name,hull,year\nNo 5,12A,1999\n",
			res: []record.Record{
				{"name": "No 5", "hull": "12A", "year": int64(1999)},
			},
		},
		{
			msg: "NaN and Inf are strings",
			in:  "a,b\nNaN,Inf\n",
			res: []record.Record{{"a": "NaN", "b": "Inf"}},
		},
		{
			msg: "empty cell is empty string",
			in:  "name,length\nSerenity,\n",
			res: []record.Record{{"name": "Serenity", "length": ""}},
		},
		{
			msg: "byte order mark and quotes",
			in:  "\xEF\xBB\xBFname, type\n\"Sea, Breeze\", yawl\n",
			res: []record.Record{{"name": "Sea, Breeze", "type": "yawl"}},
		},
		{
			msg: "header only",
			in:  "name,type,length\n",
			res: []record.Record{},
		},
		{
			msg: "empty content",
			in:  "",
			res: []record.Record{},
		},
	}

	for _, v := range tests {
		res, err := decodeCSV(t, v.in)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestCSVDecodeErrors(t *testing.T) {
	tests := []struct {
		msg string
		in  string
	}{
		{"too many cells", "name,type\nSerenity,sloop,12\n"},
		{"too few cells", "name,type,length\nSerenity,sloop\n"},
		{"bare quote", "name,type\nSe\"renity,sloop\n"},
		{"duplicate header", "name,name\na,b\n"},
		{"empty header", "name,,length\na,b,1\n"},
	}

	for _, v := range tests {
		res, err := decodeCSV(t, v.in)
		assert.Nil(t, res, v.msg)
		var decErr *decode.DecodeError
		require.True(t, errors.As(err, &decErr), v.msg)
		assert.Equal(t, decode.CSV, decErr.Format, v.msg)
	}

	_, err := decodeCSV(t, "name,type\nSerenity,sloop,12\n")
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}
