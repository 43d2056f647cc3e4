package notes

import (
	"errors"
	"path/filepath"
	"strings"
)

// Extension is appended to note names that do not already carry it.
const Extension = ".md"

// ErrInvalidName is returned for names that cannot identify a note inside
// the notes directory.
var ErrInvalidName = errors.New("invalid note name")

// FileName returns name with the markdown extension, without doubling it.
func FileName(name string) string {
	if strings.HasSuffix(name, Extension) {
		return name
	}
	return name + Extension
}

// Resolve returns the full path of the note called name in dir. The name
// may contain subdirectories but must stay inside dir.
func Resolve(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == Extension {
		return "", errors.Join(ErrInvalidName, errors.New("name is empty"))
	}
	if filepath.IsAbs(name) {
		return "", errors.Join(ErrInvalidName, errors.New("name must be relative to the notes directory"))
	}

	clean := filepath.Clean(FileName(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Join(ErrInvalidName, errors.New("name escapes the notes directory"))
	}
	return filepath.Join(dir, clean), nil
}

// TitleFor returns the title substituted into a new note's template: the
// name as given, without surrounding space or the markdown extension.
func TitleFor(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), Extension)
}
