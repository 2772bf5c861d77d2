package archive

import (
	"io"
	"path/filepath"
	"strings"
)

// Sink receives converted vault members as (name, content) pairs. Names are
// forward-slash paths relative to the vault root ("entries/...",
// "attachments/..."). Close finalizes the container; no WriteFile may follow.
type Sink interface {
	WriteFile(name string, r io.Reader) error
	Close() error
}

// DefaultVaultDir derives an output directory name from the archive path:
// the archive's base name without its extension, in the working directory.
func DefaultVaultDir(archivePath string) string {
	base := filepath.Base(archivePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return "vault"
	}
	return base
}
