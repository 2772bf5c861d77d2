package archive

import (
	"slices"
	"strings"
	"time"
)

// Summary describes an export's contents without converting anything.
type Summary struct {
	Journals   []JournalSummary `json:"journals"`
	Entries    int              `json:"entries"`
	MediaFiles int              `json:"media_files"`
	Earliest   *time.Time       `json:"earliest,omitempty"`
	Latest     *time.Time       `json:"latest,omitempty"`
	Photos     int              `json:"photos"`
	Videos     int              `json:"videos"`
	Audios     int              `json:"audios"`
	PDFs       int              `json:"pdfs"`
	TopTags    []TagCount       `json:"top_tags,omitempty"`
}

// JournalSummary is the per-journal slice of a Summary.
type JournalSummary struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
}

// TagCount pairs a tag, as spelled in the export, with its entry count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// topTagLimit caps the tag leaderboard in a summary.
const topTagLimit = 10

// Summarize walks a decoded export and aggregates entry counts, the
// creation date range, attachment counts per kind, and the most used tags.
func Summarize(export *Export) *Summary {
	summary := &Summary{MediaFiles: len(export.Media)}
	tags := make(map[string]int)

	for _, journal := range export.Journals {
		summary.Journals = append(summary.Journals, JournalSummary{
			Name:    journal.Name,
			Entries: len(journal.Data.Entries),
		})
		for i := range journal.Data.Entries {
			entry := &journal.Data.Entries[i]
			summary.Entries++
			summary.Photos += len(entry.Photos)
			summary.Videos += len(entry.Videos)
			summary.Audios += len(entry.Audios)
			summary.PDFs += len(entry.PDFAttachments)

			if !entry.CreationDate.IsZero() {
				created := entry.CreationDate.UTC()
				if summary.Earliest == nil || created.Before(*summary.Earliest) {
					summary.Earliest = &created
				}
				if summary.Latest == nil || created.After(*summary.Latest) {
					summary.Latest = &created
				}
			}

			for _, tag := range entry.Tags {
				if tag != "" {
					tags[tag]++
				}
			}
		}
	}

	summary.TopTags = topTags(tags)
	return summary
}

// topTags ranks tags by count, ties broken alphabetically, capped at
// topTagLimit.
func topTags(counts map[string]int) []TagCount {
	if len(counts) == 0 {
		return nil
	}
	ranked := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	slices.SortFunc(ranked, func(a, b TagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	if len(ranked) > topTagLimit {
		ranked = ranked[:topTagLimit]
	}
	return ranked
}
