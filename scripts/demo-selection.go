//go:build ignore
// +build ignore

// Demo script to show how pattern selection decides which files enter a report
// Run with: go run scripts/demo-selection.go [directory]
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tomhall/dirsummary/internal/filter"
	"github.com/tomhall/dirsummary/internal/pattern"
	"github.com/tomhall/dirsummary/internal/scan"
	"github.com/tomhall/dirsummary/internal/stats"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("dirsummary Selection Demo")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Root: %s\n\n", root)

	// Demo 1: default policy, hidden files rejected
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 1: Default Selection")
	fmt.Println(strings.Repeat("-", 60))

	result, err := scan.Walk(root, scan.Options{
		Policy: filter.Policy{ExcludeHidden: true},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Walk failed: %v\n", err)
		os.Exit(1)
	}

	agg := stats.NewAggregator(result.Found)
	for _, rec := range result.Accepted {
		agg.Record(rec)
	}
	summary := agg.Finalize()

	fmt.Printf("Found: %d files, accepted: %d, total size: %s\n\n",
		summary.Found, summary.Processed, stats.HumanSize(summary.TotalSize))

	// Demo 2: include patterns restrict, excludes override
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 2: Include *.go, Exclude *_test.go")
	fmt.Println(strings.Repeat("-", 60))

	include, err := pattern.NewSet([]string{"*.go"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Include set failed: %v\n", err)
		os.Exit(1)
	}
	exclude, err := pattern.NewSet([]string{"*_test.go"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Exclude set failed: %v\n", err)
		os.Exit(1)
	}

	policy := filter.Policy{
		ExcludeHidden: true,
		Include:       include,
		Exclude:       exclude,
	}

	result, err = scan.Walk(root, scan.Options{
		Policy: policy,
		OnSkip: func(relPath string, reason filter.Reason) {
			if reason == filter.ReasonExcluded {
				fmt.Printf("  rejected %s (%s)\n", relPath, reason)
			}
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Walk failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	for _, rec := range result.Accepted {
		fmt.Printf("  accepted %s (%s)\n", rec.RelPath, stats.HumanSize(rec.Size))
	}
	fmt.Println()

	// Demo 3: per-path decisions for a few illustrative paths
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("Demo 3: Individual Decisions")
	fmt.Println(strings.Repeat("-", 60))

	samples := []string{"main.go", "main_test.go", "docs/readme.md", ".git/config"}
	for _, rel := range samples {
		decision := policy.Decide(rel)
		if decision.Accept {
			fmt.Printf("  %-16s -> accept\n", rel)
			continue
		}
		fmt.Printf("  %-16s -> reject (%s)\n", rel, decision.Reason)
	}
}
