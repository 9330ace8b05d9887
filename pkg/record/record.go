// Package record defines the flat record produced by decoders and the
// field-presence rules used to validate it.
package record

import "slices"

// Record is one decoded logical entity (for example one yacht) as a flat
// mapping from field name to a scalar value. Values are string, int64,
// float64, bool or nil. Numbers written without a fraction or an exponent
// are int64, all other numbers are float64, so an integral float64
// serialized to JSON decodes back as int64.
type Record map[string]any

// RequiredFields are the fields a record must carry to be valid when no
// other set is configured.
var RequiredFields = []string{"name", "type", "length"}

// Missing returns required fields that are absent from the record, in the
// order they were given. Only the presence of a key matters, empty or zero
// values count as present.
func (r Record) Missing(fields []string) []string {
	var res []string
	for _, f := range fields {
		if _, ok := r[f]; !ok {
			res = append(res, f)
		}
	}
	return res
}

// HasFields returns true if every field is present as a key.
func (r Record) HasFields(fields []string) bool {
	return len(r.Missing(fields)) == 0
}

// Keys returns field names of the record sorted alphabetically.
func (r Record) Keys() []string {
	res := make([]string, 0, len(r))
	for k := range r {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
