package display

import (
	"os"
	"path/filepath"

	"github.com/tomhall/dirsummary/internal/models"
)

// FindStaleArtifact reports whether a previous report artifact exists
// directly in root, returning its path when present.
func FindStaleArtifact(root string) (string, bool) {
	path := filepath.Join(root, models.ReservedOutputName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
