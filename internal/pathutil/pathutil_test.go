package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/notes", want: filepath.Join(home, "notes")},
		{name: "nested", in: "~/a/b", want: filepath.Join(home, "a", "b")},
		{name: "absolute untouched", in: "/srv/notes", want: "/srv/notes"},
		{name: "inner tilde untouched", in: "/a/~b", want: "/a/~b"},
		{name: "user form untouched", in: "~bob/notes", want: "~bob/notes"},
		{name: "relative untouched", in: "notes", want: "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnsureDir_CreatesSingleLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// second call is a no-op
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestEnsureDir_MissingParentFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "notes")

	if err := EnsureDir(dir); err == nil {
		t.Fatal("EnsureDir() should fail when the parent does not exist")
	}
}

func TestEnsureDirAll_CreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes", "templates")

	if err := EnsureDirAll(dir); err != nil {
		t.Fatalf("EnsureDirAll() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := EnsureDir(path)
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("EnsureDir() error = %v, want not-a-directory error", err)
	}
}
