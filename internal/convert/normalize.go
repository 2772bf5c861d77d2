package convert

import (
	"regexp"
	"strings"
)

// escapedPunctuation is the set of characters the export protects with a
// backslash inside plain text.
const escapedPunctuation = ".-()[]#>_*`~!"

var unescaper = newUnescaper()

func newUnescaper() *strings.Replacer {
	pairs := make([]string, 0, len(escapedPunctuation)*2)
	for _, ch := range escapedPunctuation {
		pairs = append(pairs, `\`+string(ch), string(ch))
	}
	return strings.NewReplacer(pairs...)
}

// Unescape removes the backslash from the export's escaped punctuation set.
// Other backslash sequences pass through untouched.
func Unescape(text string) string {
	return unescaper.Replace(text)
}

// momentPattern matches the export's embedded-media placeholders. The
// identifier is uppercase hex; photo references use a bare double slash
// while video, audio and pdf references carry a category segment.
var momentPattern = regexp.MustCompile(`!\[\]\(dayone-moment:/(?:/|video/|audio/|pdfAttachment/)([0-9A-F]+)\)`)

// rewriteMoments replaces media placeholders with vault embeds, or with an
// HTML comment naming the identifier when no attachment registered it. The
// comment keeps the output valid while leaving the gap discoverable.
func (s *session) rewriteMoments(text string) string {
	return momentPattern.ReplaceAllStringFunc(text, func(match string) string {
		identifier := momentPattern.FindStringSubmatch(match)[1]
		file, ok := s.lookupMedia(identifier)
		if !ok {
			s.report.MissingMedia++
			return "<!-- missing media: " + identifier + " -->"
		}
		return "![[" + file + "]]"
	})
}

// stripZeroWidth removes zero-width spaces, an artifact of the source
// editor.
func stripZeroWidth(text string) string {
	return strings.ReplaceAll(text, "\u200b", "")
}

// normalizeBody runs the full text normalization. Unescaping runs first: it
// only touches punctuation outside the placeholder syntax, and placeholder
// identifiers never contain backslashes.
func (s *session) normalizeBody(text string) string {
	normalized := Unescape(text)
	normalized = s.rewriteMoments(normalized)
	return stripZeroWidth(normalized)
}
