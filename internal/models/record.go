// Package models defines the data structures shared across the dirsummary
// scan, stats, and report packages.
package models

import "path"

// NoExtension is the histogram key used for files whose basename contains
// no dot.
const NoExtension = "no_extension"

// ReservedOutputName is the report artifact filename. Files with this
// basename are never scanned, so repeated runs do not fold an earlier
// report into the next one.
const ReservedOutputName = "folder_summary.txt"

// ReservedLockName is the lock file guarding file-mode runs. It exists
// while a run writes the artifact and is skipped for the same reason.
const ReservedLockName = ReservedOutputName + ".lock"

// FileRecord describes a single accepted file. It is produced once per file
// during the walk and consumed by both the aggregator and the reporter.
type FileRecord struct {
	// RelPath is the file's path relative to the scanned root, using
	// forward slashes regardless of platform.
	RelPath string

	// Size is the file's size in bytes as reported at enumeration time.
	Size int64
}

// Base returns the final path segment of the record's relative path.
func (r FileRecord) Base() string {
	return path.Base(r.RelPath)
}

// Extension returns the histogram key for the record: the basename's suffix
// starting at the last dot (case preserved), or NoExtension when the
// basename has no dot. A dotfile such as ".bashrc" yields ".bashrc".
func (r FileRecord) Extension() string {
	ext := path.Ext(r.Base())
	if ext == "" {
		return NoExtension
	}
	return ext
}
