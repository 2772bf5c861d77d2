// Package main provides the entry point for the driftwood CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/archive"
	"github.com/gorewood/driftwood/internal/output"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Summarize a Day One export without converting it",
		Long: `Summarize a Day One export zip without converting it.

Reports the journals in the archive, entry and media counts, the creation
date range, attachment counts per kind, and the most used tags. Nothing
is written.

Examples:
  driftwood inspect export.zip          # Human-readable summary
  driftwood inspect export.zip --json   # Structured summary for pipelines`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}

	return cmd
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, archivePath string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	export, err := openExport(printer, archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = export.Close() }()

	summary := archive.Summarize(export)

	if printer.IsJSON() {
		return printer.WriteJSON(summary)
	}

	printHumanSummary(printer, summary)
	return nil
}

// printHumanSummary renders the archive summary for terminal use.
func printHumanSummary(printer *output.Printer, summary *archive.Summary) {
	printer.Section("Journals")
	rows := make([][]string, 0, len(summary.Journals))
	for _, journal := range summary.Journals {
		rows = append(rows, []string{journal.Name, strconv.Itoa(journal.Entries)})
	}
	printer.Table([]string{"JOURNAL", "ENTRIES"}, rows)

	printer.Section("Contents")
	printer.KeyValue("Entries", strconv.Itoa(summary.Entries))
	if summary.Earliest != nil && summary.Latest != nil {
		printer.KeyValue("Date range", fmt.Sprintf("%s to %s",
			summary.Earliest.Format("2006-01-02"), summary.Latest.Format("2006-01-02")))
	}
	printer.KeyValue("Media files", strconv.Itoa(summary.MediaFiles))

	printer.Section("Attachments")
	printer.KeyValue("Photos", strconv.Itoa(summary.Photos))
	printer.KeyValue("Videos", strconv.Itoa(summary.Videos))
	printer.KeyValue("Audio", strconv.Itoa(summary.Audios))
	printer.KeyValue("PDFs", strconv.Itoa(summary.PDFs))

	if len(summary.TopTags) > 0 {
		printer.Section("Top tags")
		tagRows := make([][]string, 0, len(summary.TopTags))
		for _, tag := range summary.TopTags {
			tagRows = append(tagRows, []string{tag.Tag, strconv.Itoa(tag.Count)})
		}
		printer.Table([]string{"TAG", "COUNT"}, tagRows)
	}
}
