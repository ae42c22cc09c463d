// Package stats accumulates per-file statistics during a scan and
// renders the byte sizes shown in the summary block.
package stats

import (
	"fmt"
	"sort"

	"github.com/tomhall/dirsummary/internal/models"
)

const (
	kilobyte = 1 << 10
	megabyte = 1 << 20
	gigabyte = 1 << 30
)

// Aggregator accumulates running totals as files are accepted. It is
// created once per run and finalized once after the walk completes.
type Aggregator struct {
	found      int
	processed  int
	totalSize  int64
	extensions map[string]int
	largest    models.FileRecord
	hasLargest bool
}

// NewAggregator returns an Aggregator for a walk that enumerated the
// given number of files.
func NewAggregator(found int) *Aggregator {
	return &Aggregator{
		found:      found,
		extensions: make(map[string]int),
	}
}

// Record folds one accepted file into the running totals.
func (a *Aggregator) Record(rec models.FileRecord) {
	a.processed++
	a.totalSize += rec.Size
	a.extensions[rec.Extension()]++

	if !a.hasLargest || rec.Size > a.largest.Size {
		a.largest = rec
		a.hasLargest = true
	}
}

// Finalize returns the completed summary.
func (a *Aggregator) Finalize() Summary {
	return Summary{
		Found:      a.found,
		Processed:  a.processed,
		TotalSize:  a.totalSize,
		Extensions: a.extensions,
		Largest:    a.largest,
		HasLargest: a.hasLargest,
	}
}

// Summary is the read-only result of an aggregation pass.
type Summary struct {
	// Found is the number of regular files enumerated during the walk.
	Found int
	// Processed is the number of files accepted into the report.
	Processed int
	// TotalSize is the combined size in bytes of all processed files.
	TotalSize int64
	// Extensions maps extension keys to file counts.
	Extensions map[string]int
	// Largest is the biggest processed file. Only meaningful when
	// HasLargest is true.
	Largest    models.FileRecord
	HasLargest bool
}

// ExtensionCount pairs an extension key with its file count.
type ExtensionCount struct {
	Extension string
	Count     int
}

// SortedExtensions returns the histogram entries sorted ascending by
// extension key.
func (s Summary) SortedExtensions() []ExtensionCount {
	out := make([]ExtensionCount, 0, len(s.Extensions))
	for ext, count := range s.Extensions {
		out = append(out, ExtensionCount{Extension: ext, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Extension < out[j].Extension
	})
	return out
}

// Percentage returns count as a share of the processed total, in percent.
func (s Summary) Percentage(count int) float64 {
	if s.Processed == 0 {
		return 0
	}
	return float64(count) / float64(s.Processed) * 100
}

// HumanSize renders a byte count with binary thresholds: bytes below
// 1 KiB, then KB, MB, and GB with two decimals.
func HumanSize(n int64) string {
	switch {
	case n < kilobyte:
		return fmt.Sprintf("%d bytes", n)
	case n < megabyte:
		return fmt.Sprintf("%.2f KB", float64(n)/kilobyte)
	case n < gigabyte:
		return fmt.Sprintf("%.2f MB", float64(n)/megabyte)
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/gigabyte)
	}
}

// Megabytes converts a byte count to megabytes. The largest-file line is
// always rendered in MB whatever the file's actual magnitude.
func Megabytes(n int64) float64 {
	return float64(n) / megabyte
}
