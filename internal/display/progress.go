package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages per-file progress display with ANSI colors
type ProgressIndicator struct {
	writer     io.Writer
	totalFiles int
	current    int
	runID      string
	colorize   bool
}

// NewProgressIndicator creates a new progress indicator. runID is a
// short identifier tying the progress lines of one run together; it may
// be empty.
func NewProgressIndicator(w io.Writer, total int, runID string) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalFiles: total,
		current:    0,
		runID:      runID,
		colorize:   isTTY(w),
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	if p.runID != "" {
		fmt.Fprintf(p.writer, "Processing %d files (run %s):\n", p.totalFiles, p.runID)
		return
	}
	fmt.Fprintf(p.writer, "Processing %d files:\n", p.totalFiles)
}

// Step displays progress for the current item: [N/Total] relpath (cyan)
func (p *ProgressIndicator) Step(relPath string) {
	p.current++
	if p.colorize {
		fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalFiles, relPath)
		return
	}
	fmt.Fprintf(p.writer, "  [%d/%d] %s\n", p.current, p.totalFiles, relPath)
}

// Complete displays a success message with green checkmark
func (p *ProgressIndicator) Complete(outputPath string) {
	if p.colorize {
		fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Wrote %d files to %s\n", p.totalFiles, outputPath)
		return
	}
	fmt.Fprintf(p.writer, "Wrote %d files to %s\n", p.totalFiles, outputPath)
}
