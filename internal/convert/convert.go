package convert

import (
	"encoding/hex"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/gorewood/driftwood/internal/archive"
	"github.com/gorewood/driftwood/internal/dayone"
)

// Run converts a decoded export through the sink and returns the run
// report. Entries convert strictly in input order: the media index and the
// filename set mutate entry by entry, and later entries may depend on
// earlier registrations. The export itself is never modified.
func Run(export *archive.Export, sink archive.Sink, opts Options) (*Report, error) {
	s := newSession(opts)
	s.report.Journals = len(export.Journals)

	total := export.EntryCount()
	s.progress(StageRead, fmt.Sprintf("%d journals, %d entries", len(export.Journals), total), 0)

	processed := 0
	for _, journal := range export.Journals {
		for i := range journal.Data.Entries {
			entry := journal.Data.Entries[i] // work on a copy
			processed++
			if err := s.convertEntry(&entry, sink, processed, total); err != nil {
				return nil, err
			}
		}
	}

	if err := s.copyMedia(export.Media, sink); err != nil {
		return nil, err
	}

	s.progress(StageDone, "conversion complete", 1)
	report := s.report
	return &report, nil
}

// convertEntry runs one entry through the gates and pipeline stages. The
// duplicate gate fires before any frontmatter or filename work.
func (s *session) convertEntry(entry *dayone.Entry, sink archive.Sink, processed, total int) error {
	s.report.Entries++

	if s.opts.Filter != nil && !s.opts.Filter(entry) {
		s.report.Filtered++
		return nil
	}
	if s.isDuplicate(entry) {
		s.report.Skipped++
		s.progress(StageEntries, "skipped duplicate "+shortID(entry.UUID), fraction(processed, total))
		return nil
	}
	if entry.UUID == "" {
		entry.UUID = syntheticID()
		s.report.Synthesized++
	}

	s.indexEntryMedia(entry)

	frontmatter, err := renderFrontmatter(buildFrontmatter(entry))
	if err != nil {
		return fmt.Errorf("entry %s: %w", shortID(entry.UUID), err)
	}
	body := s.normalizeBody(entry.Text)
	name := s.resolveFilename(entry, body)

	content := frontmatter + "\n" + body
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := sink.WriteFile(path.Join("entries", name), strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing entry %s: %w", name, err)
	}

	s.report.Converted++
	s.progress(StageEntries, name, fraction(processed, total))
	return nil
}

// copyMedia streams every archive media file into the attachments folder,
// bytes unchanged, under its original base filename.
func (s *session) copyMedia(media []archive.MediaFile, sink archive.Sink) error {
	for i := range media {
		file := &media[i]
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("opening media %s: %w", file.Path, err)
		}
		werr := sink.WriteFile(path.Join("attachments", file.Base), rc)
		cerr := rc.Close()
		if werr != nil {
			return fmt.Errorf("writing media %s: %w", file.Base, werr)
		}
		if cerr != nil {
			return fmt.Errorf("closing media %s: %w", file.Path, cerr)
		}
		s.report.Attachments++
		s.progress(StageAttachments, file.Base, fraction(i+1, len(media)))
	}
	return nil
}

// syntheticID mints a run-local identifier for entries missing one, shaped
// like the export's own 32-character uppercase hex identifiers. Synthesized
// identifiers are never recorded by the duplicate gate, so such entries
// always convert.
func syntheticID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

func fraction(done, total int) float64 {
	if total <= 0 {
		return 1
	}
	return float64(done) / float64(total)
}
