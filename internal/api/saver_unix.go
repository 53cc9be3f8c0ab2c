//go:build !windows

package api

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"

	"github.com/ytget/nostorage/internal/logger"
)

// writeFileAtomically streams r into path: temp file, fsync, rename.
// A partially written download never appears under its final name.
func writeFileAtomically(path string, r io.Reader) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Log.Debugw("cleanup pending file", "path", path, "error", err)
		}
	}()

	if _, err := io.Copy(pendingFile, r); err != nil {
		return fmt.Errorf("write body: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}
	return nil
}
