package convert

import (
	"github.com/gorewood/driftwood/internal/dayone"
)

// Default attachment kinds per category, used when the export record does
// not name a type.
const (
	kindPhoto = "jpeg"
	kindVideo = "mov"
	kindAudio = "m4a"
	kindPDF   = "pdf"
)

// indexEntryMedia registers every attachment of the entry in the media
// index. It runs before the entry's body is rewritten, so an entry's own
// references always resolve; references to attachments of later entries
// stay unresolved on purpose.
func (s *session) indexEntryMedia(entry *dayone.Entry) {
	s.indexAttachments(entry.Photos, kindPhoto)
	s.indexAttachments(entry.Videos, kindVideo)
	s.indexAttachments(entry.Audios, kindAudio)
	s.indexAttachments(entry.PDFAttachments, kindPDF)
}

func (s *session) indexAttachments(attachments []dayone.Attachment, fallbackKind string) {
	for i := range attachments {
		att := &attachments[i]
		if att.Identifier == "" || att.MD5 == "" {
			// Without both parts there is no output filename to
			// point at. Body references to it surface as missing.
			continue
		}
		s.media[att.Identifier] = mediaRef{
			fingerprint: att.MD5,
			kind:        att.Kind(fallbackKind),
		}
	}
}

// lookupMedia resolves an attachment identifier to its output filename.
func (s *session) lookupMedia(identifier string) (string, bool) {
	ref, ok := s.media[identifier]
	if !ok {
		return "", false
	}
	return ref.file(), true
}
