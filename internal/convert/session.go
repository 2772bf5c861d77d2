package convert

import (
	"github.com/gorewood/driftwood/internal/dayone"
)

// Stage names reported through the progress callback.
const (
	StageRead        = "read"
	StageEntries     = "entries"
	StageAttachments = "attachments"
	StageDone        = "done"
)

// ProgressFunc receives pipeline progress: a stage name, a short message,
// and a completion fraction in [0, 1].
type ProgressFunc func(stage string, message string, fraction float64)

// Options configures one conversion run.
type Options struct {
	// AllowDuplicates disables the duplicate gate entirely. Every entry
	// converts, identical repeats included.
	AllowDuplicates bool

	// Filter, when set, selects the entries to convert. Rejected entries
	// never enter the pipeline and are counted as filtered.
	Filter func(*dayone.Entry) bool

	// OnProgress, when set, receives progress updates. It is a side
	// channel only and never affects the run's outcome.
	OnProgress ProgressFunc
}

// mediaRef locates one registered attachment by the parts of its output
// filename.
type mediaRef struct {
	fingerprint string
	kind        string
}

// file builds the output filename for a registered attachment.
func (ref mediaRef) file() string {
	return ref.fingerprint + "." + ref.kind
}

// session is the run-scoped state of one conversion: the media index, the
// allocated filename set, the duplicate fingerprints, and the running
// report. One session serves exactly one Run call.
type session struct {
	opts      Options
	media     map[string]mediaRef
	filenames map[string]bool
	seen      map[string]uint64
	report    Report
}

func newSession(opts Options) *session {
	return &session{
		opts:      opts,
		media:     make(map[string]mediaRef),
		filenames: make(map[string]bool),
		seen:      make(map[string]uint64),
	}
}

func (s *session) progress(stage, message string, fraction float64) {
	if s.opts.OnProgress != nil {
		s.opts.OnProgress(stage, message, fraction)
	}
}
