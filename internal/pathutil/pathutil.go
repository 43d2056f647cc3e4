// Package pathutil expands user-supplied paths and makes sure directories exist.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading "~" with the user's home directory.
// Only "~" on its own or followed by a path separator is expanded;
// "~user" forms and tildes elsewhere in the path are left untouched.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory for %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// EnsureDir creates path as a single directory if it does not exist.
// The parent must already exist. An existing non-directory is an error.
func EnsureDir(path string) error {
	return ensure(path, os.Mkdir)
}

// EnsureDirAll creates path and any missing parents.
func EnsureDirAll(path string) error {
	return ensure(path, os.MkdirAll)
}

func ensure(path string, mkdir func(string, os.FileMode) error) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking directory %s: %w", path, err)
	}

	if err := mkdir(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}
