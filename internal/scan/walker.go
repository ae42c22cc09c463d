// Package scan enumerates the regular files under a root directory and
// applies the selection policy to each one.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tomhall/dirsummary/internal/filter"
	"github.com/tomhall/dirsummary/internal/models"
)

// Options configures a walk.
type Options struct {
	// Policy decides which enumerated files are accepted.
	Policy filter.Policy
	// OnSkip, when set, is called for every enumerated file the policy
	// rejects.
	OnSkip func(relPath string, reason filter.Reason)
}

// Result contains the outcome of a walk.
type Result struct {
	// Found is the number of regular files enumerated under the root,
	// not counting the reserved output artifact or its lock file.
	Found int
	// Accepted holds the records for files the policy accepted, sorted
	// by relative path.
	Accepted []models.FileRecord
	// Errors contains non-fatal errors encountered during the walk.
	Errors []error
}

// Walk enumerates every regular file under root and evaluates it against
// the policy in opts.
//
// Directories are never pruned, not even hidden ones, so an include
// pattern can reach files inside a hidden directory and the Found count
// does not depend on the active filters. A file whose basename equals
// the reserved output artifact name, or its lock sibling, is dropped
// before it is counted. Unreadable entries are collected into
// Result.Errors and the walk continues.
func Walk(root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	result := &Result{
		Accepted: make([]models.FileRecord, 0),
		Errors:   make([]error, 0),
	}

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", p, err))
			return nil // Continue walking
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if d.Name() == models.ReservedOutputName || d.Name() == models.ReservedLockName {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", p, err))
			return nil
		}
		relPath := filepath.ToSlash(rel)

		result.Found++

		decision := opts.Policy.Decide(relPath)
		if !decision.Accept {
			if opts.OnSkip != nil {
				opts.OnSkip(relPath, decision.Reason)
			}
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to stat %s: %w", p, err))
			return nil
		}

		result.Accepted = append(result.Accepted, models.FileRecord{
			RelPath: relPath,
			Size:    fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort for deterministic report order across runs and platforms.
	sort.Slice(result.Accepted, func(i, j int) bool {
		return result.Accepted[i].RelPath < result.Accepted[j].RelPath
	})

	return result, nil
}

// AbsPath resolves a record's relative path back to a filesystem path
// under root.
func AbsPath(root string, rec models.FileRecord) string {
	return filepath.Join(root, filepath.FromSlash(rec.RelPath))
}
