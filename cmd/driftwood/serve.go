// Package main provides the entry point for the driftwood CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	driftwoodmcp "github.com/gorewood/driftwood/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run driftwood as a Model Context Protocol (MCP) server over stdio.

This exposes driftwood operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "driftwood": {
        "command": "driftwood",
        "args": ["serve"]
      }
    }
  }

Available tools: inspect, convert`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := driftwoodmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
