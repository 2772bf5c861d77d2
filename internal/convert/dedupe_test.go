package convert

import (
	"testing"

	"github.com/gorewood/driftwood/internal/dayone"
)

func TestIsDuplicate(t *testing.T) {
	t.Run("identical repeat skips", func(t *testing.T) {
		s := newSession(Options{})
		entry := &dayone.Entry{UUID: "AAAA", Text: "same body"}

		if s.isDuplicate(entry) {
			t.Error("first occurrence flagged as duplicate")
		}
		if !s.isDuplicate(entry) {
			t.Error("identical repeat not flagged")
		}
	})

	t.Run("different body under same identifier converts", func(t *testing.T) {
		s := newSession(Options{})
		if s.isDuplicate(&dayone.Entry{UUID: "AAAA", Text: "first version"}) {
			t.Error("first occurrence flagged as duplicate")
		}
		if s.isDuplicate(&dayone.Entry{UUID: "AAAA", Text: "edited version"}) {
			t.Error("different content flagged as duplicate")
		}
	})

	t.Run("first occurrence stays authoritative", func(t *testing.T) {
		s := newSession(Options{})
		first := &dayone.Entry{UUID: "AAAA", Text: "original"}
		edited := &dayone.Entry{UUID: "AAAA", Text: "edited"}

		s.isDuplicate(first)
		s.isDuplicate(edited)
		if !s.isDuplicate(first) {
			t.Error("repeat of the first body not flagged after an edit passed through")
		}
	})

	t.Run("allow duplicates disables the gate", func(t *testing.T) {
		s := newSession(Options{AllowDuplicates: true})
		entry := &dayone.Entry{UUID: "AAAA", Text: "same body"}

		if s.isDuplicate(entry) || s.isDuplicate(entry) {
			t.Error("gate fired with AllowDuplicates set")
		}
		if len(s.seen) != 0 {
			t.Errorf("fingerprints recorded with AllowDuplicates set: %d", len(s.seen))
		}
	})

	t.Run("missing identifier never a duplicate", func(t *testing.T) {
		s := newSession(Options{})
		entry := &dayone.Entry{Text: "same body"}

		if s.isDuplicate(entry) || s.isDuplicate(entry) {
			t.Error("entry without identifier flagged as duplicate")
		}
		if len(s.seen) != 0 {
			t.Errorf("fingerprint recorded for entry without identifier: %d", len(s.seen))
		}
	})
}

func TestFingerprintBody(t *testing.T) {
	if fingerprintBody("alpha") != fingerprintBody("alpha") {
		t.Error("identical content fingerprints differ")
	}
	if fingerprintBody("alpha") == fingerprintBody("beta") {
		t.Error("distinct content collided; FNV-1a should separate these")
	}
}
