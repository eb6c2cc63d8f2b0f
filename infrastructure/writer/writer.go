// Package writer persists configuration records as canonical JSON.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/mcpcatalog/domain"
)

const dirMode = 0o755

// Writer serializes records to the catalog's output directory.
type Writer struct {
	outputDir string
}

// New creates a writer rooted at the given output directory.
func New(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write serializes the record with two-space indentation — map keys
// come out in stable sorted order — and writes it to
// <outputDir>/<serverID>.json, or to override when set. The write goes
// through a temp file in the destination directory followed by a
// rename, so a concurrent reader never observes a torn record; the
// later of two racing writers wins.
func (w *Writer) Write(
	record domain.ServerConfiguration,
	serverID string,
	override string,
) (string, error) {
	dest := override
	if dest == "" {
		dest = filepath.Join(w.outputDir, serverID+".json")
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize configuration: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write configuration: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write configuration: %w", closeErr)
	}

	if renameErr := os.Rename(tmp.Name(), dest); renameErr != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to move configuration into place: %w", renameErr)
	}

	return dest, nil
}
