// Package templates turns template files into the initial content of new notes.
//
// A template is a markdown file under <notes>/templates containing the
// literal tokens _TITLE_ and _CREATION_DATE_. Rendering replaces every
// occurrence of each token and nothing else.
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Placeholder tokens recognised in template text.
const (
	TitleToken = "_TITLE_"
	DateToken  = "_CREATION_DATE_"
)

// DefaultName is the template used when none is requested or the requested
// one does not exist.
const DefaultName = "basic"

// DateLayout is the format substituted for DateToken.
const DateLayout = "2006-01-02"

const extension = ".md"

// ErrInvalidName is returned for template names that point outside the
// templates directory.
var ErrInvalidName = errors.New("invalid template name")

// Resolution is the outcome of looking up a template by name.
type Resolution struct {
	// Name is the template actually used, without extension.
	Name string
	// Path is the template file path. It may not exist.
	Path string
	// Requested is the name the caller asked for, if any.
	Requested string
	// FellBack is true when Requested was given but not found.
	FellBack bool
}

// Resolve picks the template file for a note. If name is non-empty and
// <dir>/<name>.md exists it is used; otherwise the default template is
// returned, with FellBack set when a requested name was missing. Absolute
// names and names leaving dir fail with ErrInvalidName.
func Resolve(dir, name string) (Resolution, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), extension)
	if name != "" {
		if err := checkName(name); err != nil {
			return Resolution{Requested: name}, err
		}
		path := Path(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Resolution{Name: name, Path: path, Requested: name}, nil
		}
	}

	return Resolution{
		Name:      DefaultName,
		Path:      Path(dir, DefaultName),
		Requested: name,
		FellBack:  name != "",
	}, nil
}

func checkName(name string) error {
	if filepath.IsAbs(name) {
		return fmt.Errorf("%w: %q is not relative to the templates directory", ErrInvalidName, name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes the templates directory", ErrInvalidName, name)
	}
	return nil
}

// Path returns the file path of the named template in dir.
func Path(dir, name string) string {
	if !strings.HasSuffix(name, extension) {
		name += extension
	}
	return filepath.Join(dir, name)
}

// ReadSource returns the text of the template at path.
// A missing file yields an empty source and no error.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes the placeholders in text. Every TitleToken becomes
// "# " + title and every DateToken becomes date formatted as YYYY-MM-DD.
// Substituted values are not scanned again.
func Render(text, title string, date time.Time) string {
	r := strings.NewReplacer(
		TitleToken, "# "+title,
		DateToken, date.Format(DateLayout),
	)
	return r.Replace(text)
}

// Prepare resolves the requested template in dir and renders it for a note
// titled title. A missing template file renders as empty content.
func Prepare(dir, name, title string, now time.Time) (string, Resolution, error) {
	res, err := Resolve(dir, name)
	if err != nil {
		return "", res, err
	}
	source, err := ReadSource(res.Path)
	if err != nil {
		return "", res, err
	}
	return Render(source, title, now), res, nil
}
