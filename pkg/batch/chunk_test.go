package batch

import (
	"errors"
	"reflect"
	"testing"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{
			name:  "exact multiple",
			items: []int{1, 2, 3, 4},
			size:  2,
			want:  [][]int{{1, 2}, {3, 4}},
		},
		{
			name:  "short last chunk",
			items: []int{1, 2, 3, 4, 5},
			size:  2,
			want:  [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:  "size larger than input",
			items: []int{1, 2},
			size:  10,
			want:  [][]int{{1, 2}},
		},
		{
			name:  "empty input yields no chunks",
			items: []int{},
			size:  3,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chunk(tt.items, tt.size)
			if err != nil {
				t.Fatalf("Chunk() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunk() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Chunk([]int{1, 2, 3}, size)
		if !errors.Is(err, ErrInvalidChunkSize) {
			t.Errorf("Chunk(size=%d) error = %v, want ErrInvalidChunkSize", size, err)
		}
	}
}

// TestDedupeChunkPartition verifies the partition property: concatenating
// all chunks of the deduplicated input reproduces exactly the distinct
// elements in first-occurrence order, with every chunk full except possibly
// the last.
func TestDedupeChunkPartition(t *testing.T) {
	input := []string{"d", "a", "c", "a", "b", "d", "e", "f", "c", "g"}
	size := 3

	deduped := Dedupe(input)
	chunks, err := Chunk(deduped, size)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}

	var flattened []string
	for i, chunk := range chunks {
		if len(chunk) > size {
			t.Errorf("chunk %d has length %d, want <= %d", i, len(chunk), size)
		}
		if i < len(chunks)-1 && len(chunk) != size {
			t.Errorf("non-final chunk %d has length %d, want %d", i, len(chunk), size)
		}
		flattened = append(flattened, chunk...)
	}

	want := []string{"d", "a", "c", "b", "e", "f", "g"}
	if !reflect.DeepEqual(flattened, want) {
		t.Errorf("flattened chunks = %v, want %v", flattened, want)
	}
}
