package convert

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gorewood/driftwood/internal/dayone"
)

// maxTitleLength bounds the sanitized title portion of a filename.
const maxTitleLength = 50

// hostileChars replaces characters no common filesystem accepts in names.
var hostileChars = strings.NewReplacer(
	"/", "-",
	`\`, "-",
	":", "-",
	"*", "-",
	"?", "-",
	`"`, "-",
	"<", "-",
	">", "-",
	"|", "-",
)

var (
	headingLine    = regexp.MustCompile(`^#{1,6}[ \t]+(.+)$`)
	leadingMarkers = regexp.MustCompile(`^#+[ \t]*`)
	embedToken     = regexp.MustCompile(`!\[\[[^\]]*\]\]|<!--.*?-->`)
)

// extractTitle pulls a display title from a normalized body. A heading on
// the first content line wins; otherwise that line is demoted to plain
// text. Returns "" when the body yields nothing usable.
func extractTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if match := headingLine.FindStringSubmatch(line); match != nil {
			return strings.TrimSpace(match[1])
		}
		line = leadingMarkers.ReplaceAllString(line, "")
		line = momentPattern.ReplaceAllString(line, "")
		line = embedToken.ReplaceAllString(line, "")
		return strings.TrimSpace(line)
	}
	return ""
}

// sanitizeTitle makes a title safe for a filename: composed Unicode form,
// hostile characters to hyphens, whitespace runs collapsed, truncated.
func sanitizeTitle(title string) string {
	sanitized := norm.NFC.String(title)
	sanitized = hostileChars.Replace(sanitized)
	sanitized = whitespaceRuns.ReplaceAllString(sanitized, " ")
	sanitized = strings.TrimSpace(sanitized)
	if runes := []rune(sanitized); len(runes) > maxTitleLength {
		sanitized = strings.TrimSpace(string(runes[:maxTitleLength]))
	}
	return sanitized
}

// resolveFilename derives the unique vault filename for an entry from its
// creation date and normalized body. Collisions within a run gain an
// identifier suffix; identifier prefixes are assumed run-unique beyond that.
func (s *session) resolveFilename(entry *dayone.Entry, body string) string {
	date := entry.CreationDate.UTC().Format("2006-01-02")

	base := date + " " + shortID(entry.UUID)
	if title := sanitizeTitle(extractTitle(body)); title != "" {
		base = date + " " + title
	}

	name := base + ".md"
	if s.filenames[name] {
		name = base + " (" + shortID(entry.UUID) + ").md"
	}
	s.filenames[name] = true
	return name
}

// shortID is the leading 8 characters of an entry identifier.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
