package decode

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/gnames/gningest/pkg/record"
)

// jsonAPI keeps numbers as json.Number so integers do not lose precision
// on their way to int64.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type jsonDecoder struct{}

func (jsonDecoder) Format() Format {
	return JSON
}

// Decode accepts an array of objects or a single object. A single object
// becomes a one-element sequence.
func (jsonDecoder) Decode(content []byte) ([]record.Record, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, NewDecodeError(JSON, errEmptyContent)
	}

	var raw any
	if err := jsonAPI.Unmarshal(content, &raw); err != nil {
		return nil, NewDecodeError(JSON, err)
	}

	switch v := raw.(type) {
	case map[string]any:
		rec, err := jsonRecord(v)
		if err != nil {
			return nil, NewDecodeError(JSON, err)
		}
		return []record.Record{rec}, nil
	case []any:
		res := make([]record.Record, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				err := fmt.Errorf("element %d is %s, not an object", i, jsonKind(item))
				return nil, NewDecodeError(JSON, err)
			}
			rec, err := jsonRecord(obj)
			if err != nil {
				return nil, NewDecodeError(JSON, fmt.Errorf("element %d: %w", i, err))
			}
			res = append(res, rec)
		}
		return res, nil
	default:
		err := fmt.Errorf("top-level value is %s, expected an array or an object", jsonKind(raw))
		return nil, NewDecodeError(JSON, err)
	}
}

func jsonRecord(obj map[string]any) (record.Record, error) {
	res := make(record.Record, len(obj))
	for k, v := range obj {
		val, err := jsonScalar(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		res[k] = val
	}
	return res, nil
}
