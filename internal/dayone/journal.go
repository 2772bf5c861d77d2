package dayone

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Journal is one decoded journal JSON blob from an export archive.
type Journal struct {
	Metadata Metadata `json:"metadata"`
	Entries  []Entry  `json:"entries"`
}

// Metadata is the export metadata header of a journal blob.
type Metadata struct {
	Version string `json:"version,omitempty"`
}

// DecodeJournal parses one journal JSON blob. A blob without an entries
// array is not a journal record, even if it is valid JSON.
func DecodeJournal(data []byte) (*Journal, error) {
	if len(data) == 0 {
		return nil, errors.New("empty journal data")
	}

	var journal Journal
	if err := json.Unmarshal(data, &journal); err != nil {
		return nil, fmt.Errorf("parsing journal JSON: %w", err)
	}

	if journal.Entries == nil {
		return nil, errors.New("no entries array in journal record")
	}

	return &journal, nil
}
