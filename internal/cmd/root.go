package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tomhall/dirsummary/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for dirsummary
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirsummary <directory>",
		Short: "Concatenate selected files under a directory into one report",
		Long: `Collect every selected file under a directory into a single
concatenated report with one "# <relative path>" header per file,
optionally followed by summary statistics.

By default the report is printed to stdout and hidden files (any path
segment starting with ".") are skipped. Patterns are matched both as
shell globs and as regular expressions, against the path relative to
the scanned root and against the bare filename, so "*.py", ".*\.py$"
and "Makefile" all do what they look like they do.

Configuration is loaded from .dirsummary.yaml inside the scanned
directory if present. CLI flags override configuration file settings.

Examples:
  # Print all non-hidden files to stdout
  dirsummary ./src

  # Only Go and Markdown files, with summary statistics
  dirsummary -i "*.go" -i "*.md" -s ./project

  # Everything except tests and vendored code, into folder_summary.txt
  dirsummary -e "*_test.go" -e "vendor/*" -o file ./project

  # Hidden files too, but keep .git out
  dirsummary -H -e ".git/*" ./dotfiles

  # Respect .gitignore and copy the report to the clipboard
  dirsummary --use-gitignore --clipboard ./notes`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE:    runSummary,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add flags
	cmd.Flags().StringArrayP("include", "i", nil, "Include pattern, glob or regex (repeatable)")
	cmd.Flags().StringArrayP("exclude", "e", nil, "Exclude pattern, glob or regex (repeatable)")
	cmd.Flags().BoolP("include-hidden", "H", false, "Include hidden files and directories")
	cmd.Flags().StringP("output", "o", config.OutputCLI, "Report destination: cli or file")
	cmd.Flags().BoolP("stats", "s", false, "Append summary statistics to the report")
	cmd.Flags().Bool("clipboard", false, "Copy the report to the clipboard instead of printing")
	cmd.Flags().Bool("use-gitignore", false, "Also exclude paths matched by the root's .gitignore")
	cmd.Flags().Int("warn-size", config.DefaultWarnSizeMB, "Large-file warning threshold in MB (0 disables)")
	cmd.Flags().String("config", "", "Path to config file (default: <directory>/.dirsummary.yaml)")
	cmd.Flags().Bool("verbose", false, "Show per-file reject reasons on stderr")

	// Add subcommands
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
