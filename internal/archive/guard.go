package archive

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// EnsureEmptyDir verifies that dir either does not exist yet or is an empty
// directory, so a conversion never silently mixes into existing files.
func EnsureEmptyDir(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s exists and is not a directory", dir)
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("reading output directory %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty", dir)
	}
	return nil
}

// EnsureAbsent verifies that nothing exists at path, so a conversion never
// overwrites an earlier output archive.
func EnsureAbsent(fs afero.Fs, path string) error {
	_, err := fs.Stat(path)
	if err == nil {
		return fmt.Errorf("output file %s already exists", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking output path %s: %w", path, err)
	}
	return nil
}
