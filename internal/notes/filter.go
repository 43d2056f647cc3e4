package notes

import "github.com/sahilm/fuzzy"

// FuzzyFilter keeps the entries whose names fuzzily match query, best match
// first. An empty query returns entries unchanged.
func FuzzyFilter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	matches := fuzzy.Find(query, Names(entries))
	filtered := make([]Entry, len(matches))
	for i, match := range matches {
		filtered[i] = entries[match.Index]
	}
	return filtered
}
