package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed starters/*.md
var starterFS embed.FS

const starterDir = "starters"

// Builtins returns the names of the bundled starter templates, sorted.
func Builtins() []string {
	entries, err := starterFS.ReadDir(starterDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), extension))
	}
	sort.Strings(names)
	return names
}

// Builtin returns the raw text of a bundled starter template.
func Builtin(name string) (string, error) {
	data, err := starterFS.ReadFile(starterDir + "/" + strings.TrimSuffix(name, extension) + extension)
	if err != nil {
		return "", fmt.Errorf("reading builtin template %s: %w", name, err)
	}
	return string(data), nil
}

// Skeleton is the unrendered text given to a newly created template file.
func Skeleton() string {
	text, err := Builtin(DefaultName)
	if err != nil {
		return TitleToken + "\n\n"
	}
	return text
}

// Install copies the bundled starter templates into dir. Existing files are
// left alone. It returns the names that were written, sorted.
func Install(dir string) ([]string, error) {
	var installed []string
	for _, name := range Builtins() {
		text, err := Builtin(name)
		if err != nil {
			return installed, err
		}

		path := filepath.Join(dir, name+extension)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return installed, fmt.Errorf("creating template %s: %w", path, err)
		}

		_, writeErr := file.WriteString(text)
		closeErr := file.Close()
		if err := errors.Join(writeErr, closeErr); err != nil {
			return installed, fmt.Errorf("writing template %s: %w", path, err)
		}
		installed = append(installed, name)
	}
	return installed, nil
}
