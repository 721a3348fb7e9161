package batch

import (
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{
			name:  "no duplicates",
			items: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "duplicates keep first occurrence order",
			items: []string{"b", "a", "b", "c", "a", "b"},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "all identical",
			items: []string{"x", "x", "x"},
			want:  []string{"x"},
		},
		{
			name:  "empty input",
			items: []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dedupe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDedupe_InputUntouched(t *testing.T) {
	items := []string{"a", "a", "b"}
	Dedupe(items)

	if !reflect.DeepEqual(items, []string{"a", "a", "b"}) {
		t.Errorf("Dedupe modified its input: %v", items)
	}
}

func TestDedupeBy(t *testing.T) {
	type item struct {
		ID    string
		Value int
	}

	items := []item{
		{ID: "x", Value: 1},
		{ID: "y", Value: 2},
		{ID: "x", Value: 3},
	}

	got := DedupeBy(items, func(i item) string { return i.ID })
	want := []item{
		{ID: "x", Value: 1},
		{ID: "y", Value: 2},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeBy() = %v, want %v", got, want)
	}
}
