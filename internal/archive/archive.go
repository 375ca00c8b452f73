// Package archive moves a finished export directory out of the way so the
// next run starts with an empty one.
package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const archivePrefix = "exports-"

// ArchiveExports renames exportDir to <parent>/archive/exports-<timestamp>
// and returns the new location
func ArchiveExports(exportDir string) (string, error) {
	info, err := os.Stat(exportDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("export directory does not exist: %s", exportDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat export directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("export path is not a directory: %s", exportDir)
	}

	archiveDir := filepath.Join(filepath.Dir(exportDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, archivePrefix+now.Format("20060102-150405"))

	// Two archives within the same second get a microsecond suffix
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, archivePrefix+now.Format("20060102-150405.000000"))
	}

	if err := os.Rename(exportDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive export directory: %w", err)
	}

	slog.Debug("archived export directory", "from", exportDir, "to", archivePath)
	return archivePath, nil
}
