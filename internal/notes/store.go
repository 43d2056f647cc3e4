package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNoFiles is returned by MostRecent when the directory holds no files.
var ErrNoFiles = errors.New("no files found")

// Filter selects which directory entries List returns.
type Filter int

const (
	// FilterNotes keeps regular files ending in .md.
	FilterNotes Filter = iota
	// FilterTemplates keeps directories and .md files.
	FilterTemplates
)

// Entry is a file or directory in the notes tree.
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	ModTime time.Time `json:"modified"`
	IsDir   bool      `json:"is_dir,omitempty"`
}

func (f Filter) keep(info os.FileInfo) bool {
	isMarkdown := info.Mode().IsRegular() && strings.HasSuffix(info.Name(), Extension)
	switch f {
	case FilterTemplates:
		return info.IsDir() || isMarkdown
	default:
		return isMarkdown
	}
}

// List returns the entries of dir accepted by filter, sorted by name.
// Entries that vanish while listing are skipped.
func List(dir string, filter Filter) ([]Entry, error) {
	infos, err := readInfos(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if !filter.keep(info) {
			continue
		}
		entries = append(entries, newEntry(dir, info))
	}
	sortByName(entries)
	return entries, nil
}

// MostRecent returns the regular file in dir with the latest modification
// time. Directories are ignored. When several files share the latest time,
// the one that sorts last by name wins. Returns ErrNoFiles if there are none.
func MostRecent(dir string) (Entry, error) {
	infos, err := readInfos(dir)
	if err != nil {
		return Entry{}, err
	}
	return latest(dir, infos)
}

func latest(dir string, infos []os.FileInfo) (Entry, error) {
	var best os.FileInfo
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		if best == nil || newer(info, best) {
			best = info
		}
	}
	if best == nil {
		return Entry{}, ErrNoFiles
	}
	return newEntry(dir, best), nil
}

// newer orders by modification time, then by name so ties resolve the same
// way whatever order the filesystem lists them in.
func newer(a, b os.FileInfo) bool {
	if !a.ModTime().Equal(b.ModTime()) {
		return a.ModTime().After(b.ModTime())
	}
	return a.Name() > b.Name()
}

func readInfos(dir string) ([]os.FileInfo, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	infos := make([]os.FileInfo, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		info, err := dirEntry.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", filepath.Join(dir, dirEntry.Name()), err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func newEntry(dir string, info os.FileInfo) Entry {
	return Entry{
		Name:    info.Name(),
		Path:    filepath.Join(dir, info.Name()),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}
