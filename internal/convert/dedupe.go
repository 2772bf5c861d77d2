package convert

import (
	"hash/fnv"

	"github.com/gorewood/driftwood/internal/dayone"
)

// fingerprintBody hashes raw body text for duplicate detection. FNV-1a is
// best-effort: identical content always fingerprints the same, and the
// accepted collision risk never blocks a run.
func fingerprintBody(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// isDuplicate reports whether this entry already converted with an
// identical body earlier in the run, recording first occurrences as it
// goes. Entries without an identifier never count as duplicates, and later
// different content under a known identifier converts normally.
func (s *session) isDuplicate(entry *dayone.Entry) bool {
	if s.opts.AllowDuplicates || entry.UUID == "" {
		return false
	}
	fingerprint := fingerprintBody(entry.Text)
	if previous, ok := s.seen[entry.UUID]; ok {
		return previous == fingerprint
	}
	s.seen[entry.UUID] = fingerprint
	return false
}
