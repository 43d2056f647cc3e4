// Package mcp provides a Model Context Protocol server for ukato.
// It exposes the note store as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Midas1080/ukato/internal/config"
)

// NewServer creates an MCP server with all ukato tools registered.
func NewServer(version string, cfg config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ukato",
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

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

// writeAnnotations returns annotations for write tools (additive, never overwrites).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, cfg config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List markdown notes in the notes directory with their titles. An optional query fuzzy-filters by file name, best match first.",
		Annotations: readOnlyAnnotations(),
	}, handleListNotes(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the note templates available to create_note.",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_note",
		Description: "Return the most recently modified file in the notes directory.",
		Annotations: readOnlyAnnotations(),
	}, handleRecentNote(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_note",
		Description: "Read the markdown content of a note by name. The .md extension is optional.",
		Annotations: readOnlyAnnotations(),
	}, handleReadNote(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note from a template without opening an editor. Existing notes are left untouched and reported with created=false.",
		Annotations: writeAnnotations(),
	}, handleCreateNote(cfg))
}
