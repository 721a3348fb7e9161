package records

import (
	"encoding/json"
	"fmt"
)

// Record is a decoded JSON object. Responses are decoded with
// json.Decoder.UseNumber, so numeric fields are json.Number values.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Key returns the canonical string form of the named field for use as a
// lookup key. Steam is inconsistent about whether ids arrive as JSON strings
// or numbers, so both forms of the same id must derive the same key. The
// second return is false when the field is absent or null.
func (r Record) Key(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}

	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
