package stats

import (
	"reflect"
	"testing"

	"github.com/tomhall/dirsummary/internal/models"
)

func TestAggregator(t *testing.T) {
	agg := NewAggregator(3)
	agg.Record(models.FileRecord{RelPath: "a.txt", Size: 100})
	agg.Record(models.FileRecord{RelPath: "b.txt", Size: 2048})

	s := agg.Finalize()

	if s.Found != 3 {
		t.Errorf("Found = %d, want 3", s.Found)
	}
	if s.Processed != 2 {
		t.Errorf("Processed = %d, want 2", s.Processed)
	}
	if s.TotalSize != 2148 {
		t.Errorf("TotalSize = %d, want 2148", s.TotalSize)
	}
	if got := s.Extensions[".txt"]; got != 2 {
		t.Errorf("Extensions[.txt] = %d, want 2", got)
	}
	if !s.HasLargest || s.Largest.RelPath != "b.txt" {
		t.Errorf("Largest = %+v, want b.txt", s.Largest)
	}
	if got := s.Percentage(s.Extensions[".txt"]); got != 100.0 {
		t.Errorf("Percentage = %v, want 100.0", got)
	}
}

func TestAggregatorLargestFirstSeenWinsOnTie(t *testing.T) {
	agg := NewAggregator(2)
	agg.Record(models.FileRecord{RelPath: "first.bin", Size: 500})
	agg.Record(models.FileRecord{RelPath: "second.bin", Size: 500})

	s := agg.Finalize()
	if s.Largest.RelPath != "first.bin" {
		t.Errorf("Largest = %q, want first.bin", s.Largest.RelPath)
	}
}

func TestAggregatorEmpty(t *testing.T) {
	s := NewAggregator(0).Finalize()

	if s.Processed != 0 || s.TotalSize != 0 {
		t.Errorf("empty summary = %+v, want zero counts", s)
	}
	if s.HasLargest {
		t.Error("HasLargest = true for empty aggregation")
	}
	if got := s.Percentage(0); got != 0 {
		t.Errorf("Percentage(0) = %v, want 0", got)
	}
}

func TestSortedExtensions(t *testing.T) {
	agg := NewAggregator(4)
	agg.Record(models.FileRecord{RelPath: "x.py", Size: 1})
	agg.Record(models.FileRecord{RelPath: "y.go", Size: 1})
	agg.Record(models.FileRecord{RelPath: "z.go", Size: 1})
	agg.Record(models.FileRecord{RelPath: "Makefile", Size: 1})

	got := agg.Finalize().SortedExtensions()
	want := []ExtensionCount{
		{Extension: ".go", Count: 2},
		{Extension: ".py", Count: 1},
		{Extension: models.NoExtension, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedExtensions() = %v, want %v", got, want)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.00 KB"},
		{2148, "2.10 KB"},
		{1048575, "1024.00 KB"},
		{1048576, "1.00 MB"},
		{5242880, "5.00 MB"},
		{1073741823, "1024.00 MB"},
		{1073741824, "1.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := HumanSize(tt.n); got != tt.want {
				t.Errorf("HumanSize(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestMegabytes(t *testing.T) {
	if got := Megabytes(2048); got != 0.001953125 {
		t.Errorf("Megabytes(2048) = %v, want 0.001953125", got)
	}
	if got := Megabytes(5242880); got != 5.0 {
		t.Errorf("Megabytes(5242880) = %v, want 5.0", got)
	}
}
