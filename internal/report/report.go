// Package report renders the concatenated output: one block per
// accepted file, optionally followed by a delimited statistics summary.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tomhall/dirsummary/internal/models"
	"github.com/tomhall/dirsummary/internal/stats"
)

// ReadErrorPlaceholder is emitted in place of content for files that
// exist but cannot be read. The run continues past them.
const ReadErrorPlaceholder = "[Error reading file content]"

// TimestampFormat is the layout of the generation timestamp in the
// summary block. It is the only part of the report expected to differ
// between two runs over an unchanged tree.
const TimestampFormat = "2006-01-02 15:04:05"

const delimiter = "=================================================="

// Context carries the run parameters echoed in the summary block.
type Context struct {
	// IncludePatterns and ExcludePatterns are the original pattern
	// strings in the order the user gave them.
	IncludePatterns []string
	ExcludePatterns []string
	// IncludeHidden reports whether hidden files were eligible.
	IncludeHidden bool
	// Root is the absolute path of the scanned directory.
	Root string
	// OutputPath is the absolute path of the report artifact, empty
	// when writing to stdout.
	OutputPath string
	// GeneratedAt is the wall-clock time stamped into the block.
	GeneratedAt time.Time
}

// Reporter writes report blocks to a single sink.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// File writes one per-file block: a "# <relpath>" header line, the raw
// content, and a blank-line separator. When readErr is non-nil the
// placeholder text stands in for the content.
func (r *Reporter) File(rec models.FileRecord, content []byte, readErr error) error {
	if _, err := fmt.Fprintf(r.w, "# %s\n", rec.RelPath); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", rec.RelPath, err)
	}

	if readErr != nil {
		if _, err := io.WriteString(r.w, ReadErrorPlaceholder+"\n"); err != nil {
			return fmt.Errorf("failed to write placeholder for %s: %w", rec.RelPath, err)
		}
	} else {
		if _, err := r.w.Write(content); err != nil {
			return fmt.Errorf("failed to write content of %s: %w", rec.RelPath, err)
		}
	}

	if _, err := io.WriteString(r.w, "\n\n"); err != nil {
		return fmt.Errorf("failed to write separator for %s: %w", rec.RelPath, err)
	}
	return nil
}

// Summary writes the delimited statistics block.
func (r *Reporter) Summary(s stats.Summary, ctx Context) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", delimiter)
	fmt.Fprintf(&b, "Summary Statistics\n")
	fmt.Fprintf(&b, "%s\n", delimiter)
	fmt.Fprintf(&b, "Files found:     %d\n", s.Found)
	fmt.Fprintf(&b, "Files processed: %d\n", s.Processed)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "File types:\n")
	for _, ec := range s.SortedExtensions() {
		fmt.Fprintf(&b, "  %s: %d files (%.1f%%)\n", ec.Extension, ec.Count, s.Percentage(ec.Count))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "Total size: %s (%d bytes)\n", stats.HumanSize(s.TotalSize), s.TotalSize)
	if s.HasLargest {
		fmt.Fprintf(&b, "Largest file: %s (%.2f MB)\n", s.Largest.RelPath, stats.Megabytes(s.Largest.Size))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "Applied filters:\n")
	fmt.Fprintf(&b, "  Include patterns: %s\n", patternList(ctx.IncludePatterns))
	fmt.Fprintf(&b, "  Exclude patterns: %s\n", patternList(ctx.ExcludePatterns))
	fmt.Fprintf(&b, "  Hidden files:     %s\n", hiddenLabel(ctx.IncludeHidden))
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "Generated: %s\n", ctx.GeneratedAt.Format(TimestampFormat))
	fmt.Fprintf(&b, "Source directory: %s\n", ctx.Root)
	if ctx.OutputPath != "" {
		fmt.Fprintf(&b, "Output file: %s\n", ctx.OutputPath)
	}
	fmt.Fprintf(&b, "%s\n", delimiter)

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func patternList(patterns []string) string {
	if len(patterns) == 0 {
		return "(none)"
	}
	return strings.Join(patterns, ", ")
}

func hiddenLabel(included bool) string {
	if included {
		return "included"
	}
	return "excluded"
}
