package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// inferScalar turns a text cell into int64 or float64 when it parses
// cleanly as a number, otherwise the text is returned unchanged.
func inferScalar(s string) any {
	v := strings.TrimSpace(s)
	if v == "" {
		return s
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil &&
		!math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}

// jsonScalar normalizes a value produced by a UseNumber JSON decoder.
func jsonScalar(v any) (any, error) {
	switch val := v.(type) {
	case nil, string, bool:
		return val, nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s is out of range", val)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("value is %s, not a scalar", jsonKind(v))
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
