package api

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/nostorage/internal/platform"
)

// maxNameAttempts bounds the search for a free "name (n).ext" file name
const maxNameAttempts = 1000

// Saver persists a downloaded body under the given file name and returns the saved path
type Saver interface {
	Save(name string, body io.Reader) (string, error)
}

// DirSaver saves downloads into a directory. Existing files are never
// overwritten; a " (n)" suffix is added instead.
type DirSaver struct {
	dir string
}

// NewDirSaver creates a saver for the given downloads directory
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

// Dir returns the target directory
func (s *DirSaver) Dir() string {
	return s.dir
}

// Save writes body atomically to a free path derived from name
func (s *DirSaver) Save(name string, body io.Reader) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(s.dir); err != nil {
		return "", fmt.Errorf("create downloads directory: %w", err)
	}

	target, err := freePath(s.dir, platform.SafeFileName(name))
	if err != nil {
		return "", err
	}

	if err := writeFileAtomically(target, body); err != nil {
		return "", fmt.Errorf("save %s: %w", filepath.Base(target), err)
	}

	platform.NotifyMediaScanner(target)
	return target, nil
}

// freePath returns dir/name, or dir/"base (n).ext" if that already exists
func freePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= maxNameAttempts; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}
