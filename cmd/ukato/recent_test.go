package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Midas1080/ukato/internal/output"
)

func TestRecentCommand_JSON(t *testing.T) {
	cfg := setupNotes(t)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	writeTestNote(t, cfg.Directory, "old.md", "", base)
	newest := writeTestNote(t, cfg.Directory, "new.md", "# Latest\n", base.Add(time.Hour))
	writeTestNote(t, cfg.Directory, "middle.md", "", base.Add(time.Minute))
	// the templates directory is newer than every note but is not a file
	later := base.Add(2 * time.Hour)
	if err := os.Chtimes(cfg.TemplatesDir(), later, later); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "recent", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	result := decodeJSON(t, out)
	notes := result["notes"].([]any)
	if len(notes) != 1 {
		t.Fatalf("notes = %v", notes)
	}
	entry := notes[0].(map[string]any)
	if entry["path"] != newest || entry["title"] != "Latest" {
		t.Errorf("entry = %v, want %s", entry, newest)
	}
}

func TestRecentCommand_Opens(t *testing.T) {
	cfg := setupNotes(t)
	path := writeTestNote(t, cfg.Directory, "todo.md", "keep me", time.Now())

	out, err := execute(t, "recent")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Opening existing note "+path) {
		t.Errorf("output = %q", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Errorf("content = %q, note was modified", data)
	}
}

func TestRecentCommand_Empty(t *testing.T) {
	setupNotes(t)

	out, err := execute(t, "recent", "--json")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
	if result := decodeJSON(t, out); !strings.HasPrefix(result["error"].(string), "no notes found") {
		t.Errorf("error = %v", result["error"])
	}
}
