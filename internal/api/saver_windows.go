//go:build windows

package api

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileAtomically streams r into a temp file next to path and renames it.
// renameio does not support Windows.
func writeFileAtomically(path string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync pending file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close pending file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename pending file: %w", err)
	}
	committed = true
	return nil
}
