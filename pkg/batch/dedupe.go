package batch

// Dedupe returns a new slice containing the first occurrence of each distinct
// value in items, preserving original relative order. The input is not
// modified.
func Dedupe[T comparable](items []T) []T {
	return DedupeBy(items, func(v T) T { return v })
}

// DedupeBy is Dedupe with an explicit key function: two items are considered
// duplicates when key returns the same value for both. The first item per key
// is kept.
func DedupeBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}
