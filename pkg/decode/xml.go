package decode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gningest/pkg/record"
)

type xmlDecoder struct{}

func (xmlDecoder) Format() Format {
	return XML
}

// Decode makes a record from every direct child of the root element. Tags
// of the child's own elements become field names and their trimmed text
// becomes string values. When a tag repeats, the last value wins.
func (xmlDecoder) Decode(content []byte) ([]record.Record, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var (
		depth   int
		hasRoot bool
		rec     record.Record
		field   string
		text    strings.Builder
		res     = make([]record.Record, 0)
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewDecodeError(XML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if hasRoot {
					err = fmt.Errorf("second root element <%s>", t.Name.Local)
					return nil, NewDecodeError(XML, err)
				}
				hasRoot = true
			case 2:
				rec = record.Record{}
			case 3:
				field = t.Name.Local
				text.Reset()
			default:
				err = fmt.Errorf("field <%s> of record %d has nested elements",
					field, len(res))
				return nil, NewDecodeError(XML, err)
			}
		case xml.EndElement:
			switch depth {
			case 3:
				rec[field] = strings.TrimSpace(text.String())
			case 2:
				res = append(res, rec)
				rec = nil
			}
			depth--
		case xml.CharData:
			if depth == 3 {
				text.Write(t)
			}
		}
	}

	if !hasRoot {
		return nil, NewDecodeError(XML, errNoRoot)
	}
	if depth != 0 {
		return nil, NewDecodeError(XML, io.ErrUnexpectedEOF)
	}
	return res, nil
}
