package integration

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomhall/dirsummary/internal/cmd"
	"github.com/tomhall/dirsummary/internal/filter"
	"github.com/tomhall/dirsummary/internal/pattern"
	"github.com/tomhall/dirsummary/internal/scan"
)

func TestScanFixtureTreeDefaults(t *testing.T) {
	root := filepath.Join("fixtures", "sample-tree")

	result, err := scan.Walk(root, scan.Options{
		Policy: filter.Policy{ExcludeHidden: true},
	})
	if err != nil {
		t.Fatalf("Failed to walk fixture tree: %v", err)
	}

	if result.Found != 5 {
		t.Errorf("Expected 5 files found, got %d", result.Found)
	}

	want := []string{"README.md", "lib/data.json", "lib/helpers.go", "main.go"}
	if len(result.Accepted) != len(want) {
		t.Fatalf("Expected %d accepted files, got %d", len(want), len(result.Accepted))
	}
	for i, rec := range result.Accepted {
		if rec.RelPath != want[i] {
			t.Errorf("Accepted[%d] = %s, want %s", i, rec.RelPath, want[i])
		}
	}
}

func TestScanFixtureTreeIncludeGo(t *testing.T) {
	root := filepath.Join("fixtures", "sample-tree")

	include, err := pattern.NewSet([]string{"*.go"})
	if err != nil {
		t.Fatalf("Failed to compile include set: %v", err)
	}

	result, err := scan.Walk(root, scan.Options{
		Policy: filter.Policy{ExcludeHidden: true, Include: include},
	})
	if err != nil {
		t.Fatalf("Failed to walk fixture tree: %v", err)
	}

	want := []string{"lib/helpers.go", "main.go"}
	if len(result.Accepted) != len(want) {
		t.Fatalf("Expected %d accepted files, got %d", len(want), len(result.Accepted))
	}
	for i, rec := range result.Accepted {
		if rec.RelPath != want[i] {
			t.Errorf("Accepted[%d] = %s, want %s", i, rec.RelPath, want[i])
		}
	}
}

func TestEndToEndReport(t *testing.T) {
	root := filepath.Join("fixtures", "sample-tree")

	rootCmd := cmd.NewRootCommand()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"-s", root})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	report := out.String()

	checks := []string{
		"# README.md\n# Sample\n",
		"# lib/data.json\n",
		"# lib/helpers.go\npackage lib\n",
		"# main.go\npackage main\n",
		"Files found:     5",
		"Files processed: 4",
		"  .go: 2 files (50.0%)",
		"Total size: 59 bytes (59 bytes)",
		"Largest file: main.go (0.00 MB)",
	}
	for _, want := range checks {
		if !strings.Contains(report, want) {
			t.Errorf("Report should contain %q", want)
		}
	}

	if strings.Contains(report, ".env") {
		t.Error("Hidden .env file should not appear in the report")
	}
}

func TestEndToEndHiddenInclude(t *testing.T) {
	root := filepath.Join("fixtures", "sample-tree")

	rootCmd := cmd.NewRootCommand()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"-H", root})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	if !strings.Contains(out.String(), "# .env\nSECRET=1\n") {
		t.Error("Report with -H should contain the .env block")
	}
}
