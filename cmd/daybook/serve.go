package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	daybookmcp "github.com/ledgewood/daybook/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run daybook as a Model Context Protocol (MCP) server over stdio.

This exposes journal operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "daybook": {
        "command": "daybook",
        "args": ["serve"]
      }
    }
  }

Available tools: journal_status, journal_entry, journal_today,
journal_append, journal_aggregate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := resolveStore(cmd)
			if err != nil {
				return err
			}
			server := daybookmcp.NewServer(buildVersion(), st)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
