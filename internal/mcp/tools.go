package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"

	"github.com/gorewood/driftwood/internal/archive"
	"github.com/gorewood/driftwood/internal/convert"
)

// --- Inspect tool ---

// InspectInput is the input for the inspect tool.
type InspectInput struct {
	Archive string `json:"archive" jsonschema:"path to the Day One export zip"`
}

// InspectOutput is the output for the inspect tool.
type InspectOutput struct {
	Summary *archive.Summary `json:"summary" jsonschema:"contents of the export"`
}

func handleInspect() mcp.ToolHandlerFor[InspectInput, InspectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
		if input.Archive == "" {
			return nil, InspectOutput{}, errors.New("archive path is required")
		}

		export, err := archive.Open(input.Archive)
		if err != nil {
			return nil, InspectOutput{}, err
		}
		defer export.Close()

		return nil, InspectOutput{Summary: archive.Summarize(export)}, nil
	}
}

// --- Convert tool ---

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Archive         string   `json:"archive"                    jsonschema:"path to the Day One export zip"`
	Out             string   `json:"out,omitempty"              jsonschema:"output directory for the vault (default: archive name without extension)"`
	Zip             string   `json:"zip,omitempty"              jsonschema:"write the vault as a zip at this path instead of a directory"`
	AllowDuplicates bool     `json:"allow_duplicates,omitempty" jsonschema:"convert repeated identical entries instead of skipping them"`
	Since           string   `json:"since,omitempty"            jsonschema:"only entries created at or after this duration (7d) or date (2024-01-15)"`
	Until           string   `json:"until,omitempty"            jsonschema:"only entries created at or before this duration or date"`
	Tags            []string `json:"tags,omitempty"             jsonschema:"only entries carrying at least one of these tags"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	Output string          `json:"output" jsonschema:"path of the written vault"`
	Report *convert.Report `json:"report" jsonschema:"conversion counters"`
}

func handleConvert() mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		if input.Archive == "" {
			return nil, ConvertOutput{}, errors.New("archive path is required")
		}
		if input.Out != "" && input.Zip != "" {
			return nil, ConvertOutput{}, errors.New("out and zip are mutually exclusive")
		}

		opts, err := buildConvertOptions(input)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		export, err := archive.Open(input.Archive)
		if err != nil {
			return nil, ConvertOutput{}, err
		}
		defer export.Close()

		fs := afero.NewOsFs()
		sink, target, err := openSink(fs, input)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		report, err := convert.Run(export, sink, opts)
		if err != nil {
			_ = sink.Close()
			return nil, ConvertOutput{}, err
		}
		if err := sink.Close(); err != nil {
			return nil, ConvertOutput{}, err
		}

		return nil, ConvertOutput{Output: target, Report: report}, nil
	}
}

// buildConvertOptions translates tool input into pipeline options.
func buildConvertOptions(input ConvertInput) (convert.Options, error) {
	spec := convert.FilterSpec{Tags: input.Tags}

	if input.Since != "" {
		since, err := convert.ParseSince(input.Since)
		if err != nil {
			return convert.Options{}, err
		}
		spec.Since = since
	}
	if input.Until != "" {
		until, err := convert.ParseUntil(input.Until)
		if err != nil {
			return convert.Options{}, err
		}
		spec.Until = until
	}

	return convert.Options{
		AllowDuplicates: input.AllowDuplicates,
		Filter:          spec.Filter(),
	}, nil
}

// openSink prepares the output target: a fresh directory sink by default,
// a zip sink when requested. Occupied targets are refused.
func openSink(fs afero.Fs, input ConvertInput) (archive.Sink, string, error) {
	if input.Zip != "" {
		if err := archive.EnsureAbsent(fs, input.Zip); err != nil {
			return nil, "", err
		}
		sink, err := archive.NewZipFileSink(fs, input.Zip)
		if err != nil {
			return nil, "", err
		}
		return sink, input.Zip, nil
	}

	out := input.Out
	if out == "" {
		out = archive.DefaultVaultDir(input.Archive)
	}
	if err := archive.EnsureEmptyDir(fs, out); err != nil {
		return nil, "", err
	}
	return archive.NewDirSink(fs, out), out, nil
}
