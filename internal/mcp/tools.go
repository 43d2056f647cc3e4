package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Midas1080/ukato/internal/config"
	"github.com/Midas1080/ukato/internal/notes"
	"github.com/Midas1080/ukato/internal/session"
	"github.com/Midas1080/ukato/internal/templates"
)

// NoteSummary describes a note or template file.
type NoteSummary struct {
	Name     string `json:"name"            jsonschema:"file name including extension"`
	Path     string `json:"path"            jsonschema:"absolute file path"`
	Modified string `json:"modified"        jsonschema:"modification time (RFC3339)"`
	Title    string `json:"title,omitempty" jsonschema:"first level-1 heading, if any"`
	IsDir    bool   `json:"is_dir,omitempty" jsonschema:"true for template subdirectories"`
}

func summarize(entry notes.Entry) NoteSummary {
	summary := NoteSummary{
		Name:     entry.Name,
		Path:     entry.Path,
		Modified: entry.ModTime.Format(time.RFC3339),
		IsDir:    entry.IsDir,
	}
	if !entry.IsDir {
		summary.Title = notes.Title(entry.Path)
	}
	return summary
}

func summarizeAll(entries []notes.Entry) []NoteSummary {
	result := make([]NoteSummary, 0, len(entries))
	for _, entry := range entries {
		result = append(result, summarize(entry))
	}
	return result
}

// --- List tools ---

// ListNotesInput is the input for the list_notes tool.
type ListNotesInput struct {
	Query string `json:"query,omitempty" jsonschema:"fuzzy filter applied to file names"`
}

// ListOutput is the output for the list tools.
type ListOutput struct {
	Count int           `json:"count" jsonschema:"number of entries returned"`
	Notes []NoteSummary `json:"notes" jsonschema:"matching entries"`
}

func handleListNotes(cfg config.Config) mcp.ToolHandlerFor[ListNotesInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListNotesInput) (*mcp.CallToolResult, ListOutput, error) {
		entries, err := notes.List(cfg.Directory, notes.FilterNotes)
		if err != nil {
			return nil, ListOutput{}, fmt.Errorf("listing notes: %w", err)
		}
		entries = notes.FuzzyFilter(entries, input.Query)
		return nil, ListOutput{Count: len(entries), Notes: summarizeAll(entries)}, nil
	}
}

// ListTemplatesInput is the input for the list_templates tool (no parameters needed).
type ListTemplatesInput struct{}

func handleListTemplates(cfg config.Config) mcp.ToolHandlerFor[ListTemplatesInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTemplatesInput) (*mcp.CallToolResult, ListOutput, error) {
		entries, err := notes.List(cfg.TemplatesDir(), notes.FilterTemplates)
		if err != nil {
			return nil, ListOutput{}, fmt.Errorf("listing templates: %w", err)
		}
		return nil, ListOutput{Count: len(entries), Notes: summarizeAll(entries)}, nil
	}
}

// --- Recent tool ---

// RecentInput is the input for the recent_note tool (no parameters needed).
type RecentInput struct{}

// RecentOutput is the output for the recent_note tool.
type RecentOutput struct {
	Note NoteSummary `json:"note" jsonschema:"most recently modified file"`
}

func handleRecentNote(cfg config.Config) mcp.ToolHandlerFor[RecentInput, RecentOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ RecentInput) (*mcp.CallToolResult, RecentOutput, error) {
		entry, err := notes.MostRecent(cfg.Directory)
		if errors.Is(err, notes.ErrNoFiles) {
			return nil, RecentOutput{}, errors.New("no notes found")
		}
		if err != nil {
			return nil, RecentOutput{}, fmt.Errorf("finding most recent note: %w", err)
		}
		return nil, RecentOutput{Note: summarize(entry)}, nil
	}
}

// --- Read tool ---

// ReadInput is the input for the read_note tool.
type ReadInput struct {
	Name string `json:"name" jsonschema:"note name, relative to the notes directory"`
}

// ReadOutput is the output for the read_note tool.
type ReadOutput struct {
	Path    string `json:"path"            jsonschema:"absolute file path"`
	Title   string `json:"title,omitempty" jsonschema:"first level-1 heading, if any"`
	Content string `json:"content"         jsonschema:"raw markdown content"`
}

func handleReadNote(cfg config.Config) mcp.ToolHandlerFor[ReadInput, ReadOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
		path, err := notes.Resolve(cfg.Directory, input.Name)
		if err != nil {
			return nil, ReadOutput{}, err
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, ReadOutput{}, fmt.Errorf("note %q not found", input.Name)
		}
		if err != nil {
			return nil, ReadOutput{}, fmt.Errorf("reading note: %w", err)
		}
		return nil, ReadOutput{
			Path:    path,
			Title:   notes.ExtractTitle(data),
			Content: string(data),
		}, nil
	}
}

// --- Create tool ---

// CreateInput is the input for the create_note tool.
type CreateInput struct {
	Name     string `json:"name"               jsonschema:"note name, relative to the notes directory"`
	Template string `json:"template,omitempty" jsonschema:"template name; defaults to basic"`
}

// CreateOutput is the output for the create_note tool.
type CreateOutput struct {
	Path             string `json:"path"                        jsonschema:"absolute file path"`
	Created          bool   `json:"created"                     jsonschema:"false when the note already existed"`
	Template         string `json:"template"                    jsonschema:"template actually used"`
	TemplateFallback bool   `json:"template_fallback,omitempty" jsonschema:"true when the requested template was missing"`
}

func handleCreateNote(cfg config.Config) mcp.ToolHandlerFor[CreateInput, CreateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateOutput, error) {
		path, err := notes.Resolve(cfg.Directory, input.Name)
		if err != nil {
			return nil, CreateOutput{}, err
		}

		content, res, err := templates.Prepare(cfg.TemplatesDir(), input.Template, notes.TitleFor(input.Name), time.Now())
		if err != nil {
			return nil, CreateOutput{}, err
		}

		created, err := session.WriteIfNew(path, content)
		if err != nil {
			return nil, CreateOutput{}, err
		}
		return nil, CreateOutput{
			Path:             path,
			Created:          created,
			Template:         res.Name,
			TemplateFallback: res.FellBack,
		}, nil
	}
}
