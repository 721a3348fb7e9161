package records

// GroupBy partitions items into groups sharing the same derived key. Within
// each group, items keep their input order. Keys never derived from any item
// are simply absent from the result.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

// IndexBy maps each derived key to the first item that produced it. Later
// items with an already-seen key are silently dropped.
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	out := make(map[K]T)
	for _, item := range items {
		k := key(item)
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = item
	}
	return out
}

// GroupByField groups records by the canonical key of the named field.
// Records lacking the field are omitted.
func GroupByField(items []Record, field string) map[string][]Record {
	out := make(map[string][]Record)
	for _, item := range items {
		k, ok := item.Key(field)
		if !ok {
			continue
		}
		out[k] = append(out[k], item)
	}
	return out
}

// IndexByField indexes records by the canonical key of the named field,
// keeping the first record per key. Records lacking the field are omitted.
func IndexByField(items []Record, field string) map[string]Record {
	out := make(map[string]Record)
	for _, item := range items {
		k, ok := item.Key(field)
		if !ok {
			continue
		}
		if _, exists := out[k]; exists {
			continue
		}
		out[k] = item
	}
	return out
}
