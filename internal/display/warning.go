package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow on terminals
func (w Warning) Display(out io.Writer) {
	var b strings.Builder
	colorize := isTTY(out)

	if colorize {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add files with proper singular/plural and indentation
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	// Add suggestion with 4-space indent if present
	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if colorize {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// WarnLargeFile creates a warning for a file above the size threshold.
// The read still completes; the warning is informational.
func WarnLargeFile(relPath string, sizeMB float64, thresholdMB int) Warning {
	return Warning{
		Title:      fmt.Sprintf("Large file: %s (%.1f MB)", relPath, sizeMB),
		Message:    fmt.Sprintf("File exceeds the %d MB warning threshold and may dominate the report.", thresholdMB),
		Files:      []string{relPath},
		Suggestion: "Add an exclude pattern, or raise --warn-size to silence this warning.",
	}
}

// WarnClipboardFallback creates a warning for a failed clipboard copy.
func WarnClipboardFallback(err error) Warning {
	return Warning{
		Title:   "Clipboard unavailable, printing to stdout instead",
		Message: err.Error(),
	}
}

// WarnMissingGitignore creates a warning for --use-gitignore without a
// .gitignore file in the scanned root.
func WarnMissingGitignore(root string) Warning {
	return Warning{
		Title:   "No .gitignore found",
		Message: fmt.Sprintf("--use-gitignore is set but %s contains no .gitignore file; the flag has no effect.", root),
	}
}

// WarnStaleArtifact creates a warning for a leftover report artifact in
// the scanned root.
func WarnStaleArtifact(path string) Warning {
	return Warning{
		Title:      "Previous report artifact present",
		Message:    "The file is excluded from scanning and will not appear in this report.",
		Files:      []string{path},
		Suggestion: "Delete it or rerun with --output file to overwrite it.",
	}
}
