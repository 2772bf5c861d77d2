// Package archive reads Day One export containers and writes converted
// vaults. An export zip holds one or more journal JSON blobs at its root and
// media files under recognized attachment folders; a vault is written through
// a Sink as (name, bytes) pairs.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gorewood/driftwood/internal/dayone"
)

// mediaFolders are the attachment folder names recognized at the archive root.
var mediaFolders = map[string]bool{
	"photos": true,
	"videos": true,
	"audios": true,
	"pdfs":   true,
}

// Journal pairs a decoded journal with the archive member it came from.
type Journal struct {
	Name string
	Data *dayone.Journal
}

// MediaFile is one media member of the archive. Content opens lazily so
// large exports are never loaded into memory at once.
type MediaFile struct {
	Path string // full path inside the archive
	Base string // base filename, the vault-facing name
	open func() (io.ReadCloser, error)
}

// NewMediaFile builds a MediaFile around an open function. Used by the
// reader and by tests that construct exports without a zip.
func NewMediaFile(archivePath string, open func() (io.ReadCloser, error)) MediaFile {
	return MediaFile{
		Path: archivePath,
		Base: path.Base(archivePath),
		open: open,
	}
}

// Open returns a reader over the media file's raw bytes.
func (m *MediaFile) Open() (io.ReadCloser, error) {
	return m.open()
}

// Export is a decoded export archive. Media readers stay valid until Close.
type Export struct {
	Journals []Journal
	Media    []MediaFile

	closer io.Closer
}

// EntryCount returns the total number of entries across all journals.
func (e *Export) EntryCount() int {
	total := 0
	for _, journal := range e.Journals {
		total += len(journal.Data.Entries)
	}
	return total
}

// Close releases the underlying archive handle.
func (e *Export) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// Open reads an export zip. Every root-level *.json member must decode as a
// journal record, and at least one journal must be present; files under the
// recognized media folders are collected as media. Member order is preserved.
func Open(archivePath string) (*Export, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", archivePath, err)
	}

	export := &Export{closer: reader}
	for _, member := range reader.File {
		if member.FileInfo().IsDir() {
			continue
		}

		name := member.Name
		switch {
		case isJournalMember(name):
			journal, err := decodeJournalMember(member)
			if err != nil {
				_ = reader.Close()
				return nil, err
			}
			export.Journals = append(export.Journals, Journal{
				Name: strings.TrimSuffix(path.Base(name), path.Ext(name)),
				Data: journal,
			})
		case isMediaMember(name):
			export.Media = append(export.Media, NewMediaFile(name, member.Open))
		}
	}

	if len(export.Journals) == 0 {
		_ = reader.Close()
		return nil, fmt.Errorf("no journal JSON found in %s", archivePath)
	}

	return export, nil
}

// isJournalMember reports whether an archive member is a root-level journal
// blob. Hidden files (macOS resource forks and the like) are not journals.
func isJournalMember(name string) bool {
	if strings.Contains(name, "/") {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "._") {
		return false
	}
	return strings.EqualFold(path.Ext(name), ".json")
}

// isMediaMember reports whether an archive member lives under a recognized
// attachment folder.
func isMediaMember(name string) bool {
	folder, rest, ok := strings.Cut(name, "/")
	if !ok || rest == "" {
		return false
	}
	if !mediaFolders[folder] {
		return false
	}
	return !strings.HasPrefix(path.Base(name), ".")
}

// decodeJournalMember reads and decodes one journal blob.
func decodeJournalMember(member *zip.File) (*dayone.Journal, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", member.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", member.Name, err)
	}

	journal, err := dayone.DecodeJournal(data)
	if err != nil {
		return nil, fmt.Errorf("journal %s: %w", member.Name, err)
	}
	return journal, nil
}
