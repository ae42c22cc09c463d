// Package display provides terminal UI utilities for progress lines,
// warnings, and status messages on the side channel.
//
// Report content goes to stdout or the output artifact; everything in
// this package writes to a separate writer (normally stderr) so the two
// streams never mix. ANSI colors are applied only when the writer is a
// terminal.
//
// # Progress Indicators
//
// Use ProgressIndicator in file mode, where stdout is free of report
// content:
//
//	progress := display.NewProgressIndicator(os.Stderr, len(files), runID)
//	progress.Start()
//	for _, rec := range files {
//	    progress.Step(rec.RelPath)
//	    // ... read and emit file ...
//	}
//	progress.Complete(outputPath)
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Large file",
//	    Files:      []string{"data/dump.sql"},
//	    Suggestion: "Consider an exclude pattern for bulk data",
//	}
//	warning.Display(os.Stderr)
//
// Convenience factories cover the recurring cases: large files,
// clipboard fallback, a missing .gitignore, and a stale report artifact
// in the scanned root.
//
// # ANSI Colors
//
// The package uses ANSI escape codes for terminal colors:
//   - Cyan (\x1b[36m) for progress steps
//   - Green (\x1b[32m) for success messages
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability; colors are
// suppressed automatically for non-terminal writers.
package display
