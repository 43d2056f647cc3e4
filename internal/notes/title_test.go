package notes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "atx heading", source: "# Groceries\n\n- milk\n", want: "Groceries"},
		{name: "setext heading", source: "Standup\n=======\n\nnotes\n", want: "Standup"},
		{name: "skips lower levels", source: "## Sub\n\ntext\n\n# Main\n", want: "Main"},
		{name: "inline markup", source: "# *Big* idea\n", want: "Big idea"},
		{name: "first wins", source: "# One\n\n# Two\n", want: "One"},
		{name: "no heading", source: "just text\n", want: ""},
		{name: "empty", source: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle([]byte(tt.source)); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitle_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.md")
	if err := os.WriteFile(path, []byte("# todo\n\nCreated: 2024-01-01\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := Title(path); got != "todo" {
		t.Errorf("Title() = %q, want %q", got, "todo")
	}
	if got := Title(filepath.Join(t.TempDir(), "missing.md")); got != "" {
		t.Errorf("Title(missing) = %q, want empty", got)
	}
}
