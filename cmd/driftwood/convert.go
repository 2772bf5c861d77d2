// Package main provides the entry point for the driftwood CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/archive"
	"github.com/gorewood/driftwood/internal/convert"
	"github.com/gorewood/driftwood/internal/output"
)

// convertFlags holds the flag values for the convert command.
type convertFlags struct {
	out             string
	zip             string
	allowDuplicates bool
	since           string
	until           string
	tags            []string
	quiet           bool
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <archive>",
		Short: "Convert a Day One export into a Markdown vault",
		Long: `Convert a Day One export zip into a Markdown vault.

Each entry becomes a Markdown file under entries/ with YAML frontmatter,
and every media file in the archive is copied into attachments/. The
output target must not already hold content.

Examples:
  driftwood convert export.zip                          # Write vault to ./export/
  driftwood convert export.zip --out ~/vaults/journal   # Write vault to a directory
  driftwood convert export.zip --zip vault.zip          # Write vault as a zip
  driftwood convert export.zip --since 7d               # Only the last week of entries
  driftwood convert export.zip --tag travel --tag work  # Only entries with either tag`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.out, "out", "", "Output directory (default: archive name without extension)")
	cmd.Flags().StringVar(&flags.zip, "zip", "", "Write the vault as a zip archive at this path")
	cmd.Flags().BoolVar(&flags.allowDuplicates, "allow-duplicates", false, "Convert repeated identical entries instead of skipping them")
	cmd.Flags().StringVar(&flags.since, "since", "", "Only entries created at or after this time (duration like 7d, date, or RFC 3339)")
	cmd.Flags().StringVar(&flags.until, "until", "", "Only entries created at or before this time")
	cmd.Flags().StringArrayVar(&flags.tags, "tag", nil, "Only entries carrying this tag (repeatable, any match)")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Suppress progress output")

	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, archivePath string, flags convertFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if flags.out != "" && flags.zip != "" {
		err := output.NewUserError("--out and --zip are mutually exclusive")
		printer.Error(err)
		return err
	}

	opts, err := convertOptions(printer, flags)
	if err != nil {
		return err
	}

	export, err := openExport(printer, archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = export.Close() }()

	sink, target, err := openVaultSink(printer, archivePath, flags)
	if err != nil {
		return err
	}

	if !flags.quiet {
		opts.OnProgress = progressReporter(printer)
	}

	report, runErr := convert.Run(export, sink, opts)
	if runErr != nil {
		_ = sink.Close()
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("writing vault: %v", runErr), runErr)
		printer.Error(sysErr)
		return sysErr
	}
	if cerr := sink.Close(); cerr != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("finalizing vault: %v", cerr), cerr)
		printer.Error(sysErr)
		return sysErr
	}

	return printConvertResult(printer, report, target)
}

// convertOptions translates command flags into pipeline options.
func convertOptions(printer *output.Printer, flags convertFlags) (convert.Options, error) {
	spec := convert.FilterSpec{Tags: flags.tags}

	if flags.since != "" {
		since, parseErr := convert.ParseSince(flags.since)
		if parseErr != nil {
			err := output.NewUserError(parseErr.Error())
			printer.Error(err)
			return convert.Options{}, err
		}
		spec.Since = since
	}
	if flags.until != "" {
		until, parseErr := convert.ParseUntil(flags.until)
		if parseErr != nil {
			err := output.NewUserError(parseErr.Error())
			printer.Error(err)
			return convert.Options{}, err
		}
		spec.Until = until
	}

	return convert.Options{
		AllowDuplicates: flags.allowDuplicates,
		Filter:          spec.Filter(),
	}, nil
}

// openExport opens and decodes the archive. Unreadable or malformed
// archives are user errors: the input is the caller's to fix.
func openExport(printer *output.Printer, archivePath string) (*archive.Export, error) {
	export, err := archive.Open(archivePath)
	if err != nil {
		userErr := output.NewUserErrorWithCause(fmt.Sprintf("opening archive: %v", err), err)
		printer.Error(userErr)
		return nil, userErr
	}
	return export, nil
}

// openVaultSink prepares the output target: a fresh directory by default,
// a zip when requested. Guard refusals are conflicts; creation failures
// are system errors.
func openVaultSink(printer *output.Printer, archivePath string, flags convertFlags) (archive.Sink, string, error) {
	fs := afero.NewOsFs()

	if flags.zip != "" {
		if err := archive.EnsureAbsent(fs, flags.zip); err != nil {
			conflict := output.NewConflictError(err.Error())
			printer.Error(conflict)
			return nil, "", conflict
		}
		sink, err := archive.NewZipFileSink(fs, flags.zip)
		if err != nil {
			sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("creating zip: %v", err), err)
			printer.Error(sysErr)
			return nil, "", sysErr
		}
		return sink, flags.zip, nil
	}

	out := flags.out
	if out == "" {
		out = archive.DefaultVaultDir(archivePath)
	}
	if err := archive.EnsureEmptyDir(fs, out); err != nil {
		conflict := output.NewConflictError(err.Error())
		printer.Error(conflict)
		return nil, "", conflict
	}
	return archive.NewDirSink(fs, out), out, nil
}

// progressReporter writes pipeline progress to stderr so stdout stays
// reserved for the result.
func progressReporter(printer *output.Printer) convert.ProgressFunc {
	return func(stage, message string, fraction float64) {
		printer.Stderr("[%3.0f%%] %s: %s\n", fraction*100, stage, message)
	}
}

// printConvertResult renders the run report.
func printConvertResult(printer *output.Printer, report *convert.Report, target string) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"output": target,
			"report": report,
		})
	}

	printer.Section("Conversion complete")
	printer.KeyValue("Output", target)
	printer.KeyValue("Journals", strconv.Itoa(report.Journals))
	printer.KeyValue("Entries", strconv.Itoa(report.Entries))
	printer.KeyValue("Converted", strconv.Itoa(report.Converted))
	if report.Filtered > 0 {
		printer.KeyValue("Filtered out", strconv.Itoa(report.Filtered))
	}
	if report.Skipped > 0 {
		printer.KeyValue("Skipped duplicates", strconv.Itoa(report.Skipped))
	}
	if report.Synthesized > 0 {
		printer.KeyValue("Synthesized ids", strconv.Itoa(report.Synthesized))
	}
	printer.KeyValue("Attachments", strconv.Itoa(report.Attachments))

	if report.MissingMedia > 0 {
		printer.Warn("%d media references could not be resolved", report.MissingMedia)
	}
	return nil
}
