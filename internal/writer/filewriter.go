// Package writer exposes sinks for encoded containers.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// newFilePerm is the mode of files that did not exist before the write.
const newFilePerm os.FileMode = 0o644

// FileWriter writes container bytes to a filesystem path atomically. A
// replaced file keeps its mode.
type FileWriter struct {
	Path string
}

// WriteDocument writes buf to the configured path via temp file + rename, so
// readers never observe a half-written container.
func (w *FileWriter) WriteDocument(buf []byte) error {
	perm := newFilePerm
	if st, err := os.Stat(w.Path); err == nil {
		perm = st.Mode().Perm()
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".pngkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
