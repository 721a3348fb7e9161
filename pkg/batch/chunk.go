package batch

import "fmt"

// ErrInvalidChunkSize is returned by Chunk when size is not a positive integer.
var ErrInvalidChunkSize = fmt.Errorf("chunk size must be a positive integer")

// Chunk splits items into consecutive groups of at most size elements. Every
// chunk except possibly the last has exactly size elements, and concatenating
// the chunks reproduces items exactly. Empty input yields no chunks. The
// input slice is not modified; chunks share its backing array.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidChunkSize, size)
	}

	if len(items) == 0 {
		return nil, nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks, nil
}
