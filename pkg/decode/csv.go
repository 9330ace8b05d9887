package decode

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gningest/pkg/record"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

type csvDecoder struct{}

func (csvDecoder) Format() Format {
	return CSV
}

// Decode reads the header row for field names and turns every following
// row into a record. Every row must have as many cells as the header.
func (csvDecoder) Decode(content []byte) ([]record.Record, error) {
	content = bytes.TrimPrefix(content, byteOrderMark)

	r := csv.NewReader(bytes.NewReader(content))
	r.TrimLeadingSpace = true

	res := make([]record.Record, 0)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return res, nil
	}
	if err != nil {
		return nil, NewDecodeError(CSV, err)
	}

	fields, err := csvHeader(header)
	if err != nil {
		return nil, NewDecodeError(CSV, err)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewDecodeError(CSV, err)
		}

		rec := make(record.Record, len(fields))
		for i, f := range fields {
			rec[f] = inferScalar(row[i])
		}
		res = append(res, rec)
	}
	return res, nil
}

func csvHeader(row []string) ([]string, error) {
	seen := make(map[string]struct{}, len(row))
	res := make([]string, len(row))
	for i, v := range row {
		name := strings.TrimSpace(v)
		if name == "" {
			return nil, fmt.Errorf("header column %d has no name", i+1)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("header column %q is duplicated", name)
		}
		seen[name] = struct{}{}
		res[i] = name
	}
	return res, nil
}
