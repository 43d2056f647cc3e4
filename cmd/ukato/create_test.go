package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Midas1080/ukato/internal/config"
	"github.com/Midas1080/ukato/internal/output"
)

func TestCreateCommand(t *testing.T) {
	cfg := setupNotes(t)

	out, err := execute(t, "create", "groceries", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}

	result := decodeJSON(t, out)
	path := filepath.Join(cfg.Directory, "groceries.md")
	if result["path"] != path {
		t.Errorf("path = %v, want %q", result["path"], path)
	}
	if result["created"] != true {
		t.Errorf("created = %v, want true", result["created"])
	}
	if result["template"] != "basic" || result["template_fallback"] != false {
		t.Errorf("template = %v, fallback = %v", result["template"], result["template_fallback"])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading note: %v", err)
	}
	want := "# groceries\n\nCreated: " + time.Now().Format("2006-01-02") + "\n\n"
	if string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
}

func TestCreateCommand_NamedTemplate(t *testing.T) {
	cfg := setupNotes(t)
	custom := filepath.Join(cfg.TemplatesDir(), "weekly.md")
	if err := os.WriteFile(custom, []byte("_TITLE_ (week of _CREATION_DATE_)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "create", "plan", "--template", "weekly", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if result := decodeJSON(t, out); result["template"] != "weekly" {
		t.Errorf("template = %v, want weekly", result["template"])
	}

	data, _ := os.ReadFile(filepath.Join(cfg.Directory, "plan.md"))
	want := "# plan (week of " + time.Now().Format("2006-01-02") + ")\n"
	if string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
}

func TestCreateCommand_TemplateFallback(t *testing.T) {
	setupNotes(t)

	out, err := execute(t, "create", "plan", "--template", "nope", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	result := decodeJSON(t, out)
	if result["template"] != "basic" || result["template_fallback"] != true {
		t.Errorf("template = %v, fallback = %v", result["template"], result["template_fallback"])
	}
}

func TestCreateCommand_TemplateFallbackWarnsHuman(t *testing.T) {
	setupNotes(t)

	out, err := execute(t, "create", "plan", "--template", "nope")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, `template "nope" not found, using "basic"`) {
		t.Errorf("output should warn about the fallback: %q", out)
	}
	if !strings.Contains(out, "Creating") {
		t.Errorf("output should announce the new note: %q", out)
	}
}

func TestCreateCommand_ExistingNoteUntouched(t *testing.T) {
	cfg := setupNotes(t)
	path := filepath.Join(cfg.Directory, "todo.md")
	if err := os.WriteFile(path, []byte("keep me"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "create", "todo.md")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Opening existing note") {
		t.Errorf("output = %q, want existing note message", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Errorf("content = %q, existing note was overwritten", data)
	}
}

func TestCreateCommand_ExistingNoteSkipsFallbackWarning(t *testing.T) {
	cfg := setupNotes(t)
	if err := os.WriteFile(filepath.Join(cfg.Directory, "todo.md"), []byte("keep me"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "create", "todo", "--template", "nope")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("no template is applied to an existing note, got warning: %q", out)
	}

	out, err = execute(t, "create", "todo", "--template", "nope", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	result := decodeJSON(t, out)
	if result["created"] != false {
		t.Errorf("created = %v, want false", result["created"])
	}
	if _, ok := result["template_fallback"]; ok {
		t.Errorf("template_fallback reported for an existing note: %v", result)
	}
}

func TestCreateCommand_TemplateOutsideDirectory(t *testing.T) {
	cfg := setupNotes(t)
	secret := filepath.Join(filepath.Dir(cfg.Directory), "secret.md")
	if err := os.WriteFile(secret, []byte("private"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "create", "leak", "--template", "../../secret", "--json")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d\n%s", code, output.ExitUserError, out)
	}
	if _, err := os.Stat(filepath.Join(cfg.Directory, "leak.md")); !os.IsNotExist(err) {
		t.Errorf("note was created from a template outside the templates directory")
	}
}

func TestCreateCommand_InvalidName(t *testing.T) {
	setupNotes(t)

	_, err := execute(t, "create", "../escape", "--json")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestCreateCommand_EditorFails(t *testing.T) {
	cfg := setupNotes(t)
	t.Setenv(config.EnvEditor, "false")

	out, err := execute(t, "create", "todo", "--json")
	if output.GetExitCode(err) != output.ExitEditorError {
		t.Fatalf("exit code = %d, want %d (err = %v)", output.GetExitCode(err), output.ExitEditorError, err)
	}
	result := decodeJSON(t, out)
	if msg, _ := result["error"].(string); !strings.Contains(msg, "status 1") {
		t.Errorf("error = %q", msg)
	}
	// the note was still written before the editor ran
	if _, statErr := os.Stat(filepath.Join(cfg.Directory, "todo.md")); statErr != nil {
		t.Errorf("note should exist: %v", statErr)
	}
}

func TestCreateCommand_EditorMissing(t *testing.T) {
	setupNotes(t)
	t.Setenv(config.EnvEditor, "ukato-no-such-editor")

	_, err := execute(t, "create", "todo", "--json")
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitSystemError)
	}
}

func TestCreateCommand_RequiresName(t *testing.T) {
	setupNotes(t)
	if _, err := execute(t, "create"); err == nil {
		t.Error("create without a name should fail")
	}
}

func TestTemplateCommand(t *testing.T) {
	cfg := setupNotes(t)

	out, err := execute(t, "template", "weekly", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	path := filepath.Join(cfg.TemplatesDir(), "weekly.md")
	if result := decodeJSON(t, out); result["path"] != path || result["created"] != true {
		t.Errorf("result = %v", result)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}
	// placeholders stay raw in a template
	if !strings.Contains(string(data), "_TITLE_") || !strings.Contains(string(data), "_CREATION_DATE_") {
		t.Errorf("template skeleton = %q", data)
	}
}

func TestTemplateCommand_ExistingUntouched(t *testing.T) {
	cfg := setupNotes(t)
	path := filepath.Join(cfg.TemplatesDir(), "basic.md")
	before, _ := os.ReadFile(path)

	out, err := execute(t, "template", "basic", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if result := decodeJSON(t, out); result["created"] != false {
		t.Errorf("created = %v, want false", result["created"])
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("existing template was modified")
	}
}
