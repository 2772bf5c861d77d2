package archive

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirSink writes vault members into a directory tree. Each write is atomic:
// content lands in a temp file next to the target and is renamed into place,
// so a failed run never leaves a half-written entry.
type DirSink struct {
	fs   afero.Fs
	root string
}

// NewDirSink creates a sink rooted at root on the given filesystem.
// Production callers pass afero.NewOsFs(); tests pass afero.NewMemMapFs().
func NewDirSink(fs afero.Fs, root string) *DirSink {
	return &DirSink{fs: fs, root: root}
}

// WriteFile stores one vault member under the sink root.
func (s *DirSink) WriteFile(name string, r io.Reader) error {
	target := filepath.Join(s.root, filepath.FromSlash(name))
	dir := filepath.Dir(target)

	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Temp file in the target directory so the rename stays on one filesystem.
	tmp, err := afero.TempFile(s.fs, dir, ".driftwood-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = s.fs.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", name, err)
	}

	if err := s.fs.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("renaming into %s: %w", name, err)
	}
	return nil
}

// Close is a no-op; directory writes complete file by file.
func (s *DirSink) Close() error {
	return nil
}
