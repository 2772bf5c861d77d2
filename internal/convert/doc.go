// Package convert turns a decoded journal export into a Markdown vault.
//
// Run drives the pipeline over an archive.Export and writes results
// through an archive.Sink:
//
//	report, err := convert.Run(export, sink, convert.Options{})
//
// Entries flow through the stages strictly in input order: duplicate gate,
// media registration, frontmatter projection, body normalization, filename
// resolution, write. Ordering matters because the media index and the
// filename set grow entry by entry, and a later entry may reference an
// attachment an earlier entry registered.
//
// Every converted entry lands under entries/ as a frontmatter block plus
// the normalized body; every archive media file is copied unchanged under
// attachments/ where the rewritten embeds point.
//
// All run state lives in a session created by Run and discarded with it.
// Nothing is shared across runs, so callers may convert different archives
// concurrently as long as each run gets its own sink.
package convert
