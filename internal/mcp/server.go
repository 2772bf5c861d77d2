// Package mcp provides a Model Context Protocol server for driftwood.
// It exposes export inspection and conversion as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all driftwood tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "driftwood",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that create a vault.
// Writes are additive, never destructive: occupied output paths are refused.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all driftwood tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "inspect",
		Description: "Inspect a Day One export zip without converting it. " +
			"Returns journal names, entry and media counts, the creation date range, " +
			"attachment counts per kind, and the most used tags.",
		Annotations: readOnlyAnnotations(),
	}, handleInspect())

	mcp.AddTool(server, &mcp.Tool{
		Name: "convert",
		Description: "Convert a Day One export zip into a Markdown vault: one frontmatter " +
			"Markdown file per entry under entries/, media copied under attachments/. " +
			"Refuses non-empty output directories and existing zip paths.",
		Annotations: writeAnnotations(),
	}, handleConvert())
}
