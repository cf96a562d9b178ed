// Package mcp exposes the journal over the Model Context Protocol.
// Agents get the same operations the CLI offers, plus journal_append
// for adding single items to an entry section, which has no CLI form.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ledgewood/daybook/internal/store"
)

// NewServer builds the MCP server with every journal tool registered.
// The caller picks the transport and runs it.
func NewServer(version string, st *store.Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "daybook",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "journal_status",
		Description: "Show journal statistics: entry counts, days logged, latest entry, current streak, and work-time totals.",
		Annotations: annotate(readerTool),
	}, handleStatus(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "journal_entry",
		Description: "Read a daily entry by date (YYYY-MM-DD). Returns the full markdown content.",
		Annotations: annotate(readerTool),
	}, handleEntry(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "journal_today",
		Description: "Create the daily entry from the template if it does not exist yet. Defaults to today's date.",
		Annotations: annotate(writerTool),
	}, handleToday(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "journal_append",
		Description: "Append an item to one category section of a daily entry, creating the entry from the template if needed. Categories: accomplished, blockers, learned, improve.",
		Annotations: annotate(writerTool),
	}, handleAppend(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "journal_aggregate",
		Description: "Rebuild the aggregated category tables, the README dashboard, and the work-time charts from all daily entries.",
		Annotations: annotate(writerTool),
	}, handleAggregate(st))

	return server
}

type toolKind int

const (
	// readerTool never touches the journal on disk.
	readerTool toolKind = iota
	// writerTool adds to the journal but never removes anything.
	writerTool
)

// annotate maps a tool kind to MCP annotations. Every daybook tool is
// closed-world: nothing reaches beyond the journal directory.
func annotate(kind toolKind) *mcp.ToolAnnotations {
	closed := false
	if kind == readerTool {
		return &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  &closed,
		}
	}
	nonDestructive := false
	return &mcp.ToolAnnotations{
		DestructiveHint: &nonDestructive,
		OpenWorldHint:   &closed,
	}
}
