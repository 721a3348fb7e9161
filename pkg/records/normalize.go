package records

import (
	"sort"
	"strconv"
)

// NormalizeArrayish returns a copy of r with each named field converted from
// Steam's sparse object encoding to a dense list. Steam encodes what are
// semantically lists (descriptions, actions, tags, ...) as key-indexed
// objects when entries are sparse, e.g. {"0": ..., "2": ...} with index 1
// absent. For each field in fields that is present and object-shaped, the
// value is replaced by the ordered sequence of its values, keys discarded.
//
// Fields that are absent or already list-shaped are left untouched, so the
// operation is idempotent. The input record is never modified.
func NormalizeArrayish(r Record, fields ...string) Record {
	out := r.Clone()

	for _, field := range fields {
		obj, ok := out[field].(map[string]any)
		if !ok {
			continue
		}
		out[field] = denseValues(obj)
	}

	return out
}

// denseValues returns the values of obj ordered by key, with integer-like
// keys sorted numerically ahead of any non-numeric keys.
func denseValues(obj map[string]any) []any {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, erri := strconv.Atoi(keys[i])
		nj, errj := strconv.Atoi(keys[j])
		switch {
		case erri == nil && errj == nil:
			return ni < nj
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = obj[k]
	}
	return values
}
