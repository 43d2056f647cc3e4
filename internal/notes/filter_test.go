package notes

import (
	"slices"
	"testing"
)

func entriesNamed(names ...string) []Entry {
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: name, Path: "/notes/" + name}
	}
	return entries
}

func TestFuzzyFilter_EmptyQuery(t *testing.T) {
	entries := entriesNamed("b.md", "a.md")
	got := FuzzyFilter(entries, "")
	if !slices.Equal(Names(got), []string{"b.md", "a.md"}) {
		t.Errorf("FuzzyFilter(\"\") = %v, want input unchanged", Names(got))
	}
}

func TestFuzzyFilter_Matches(t *testing.T) {
	entries := entriesNamed("daily.md", "meeting.md", "todo.md")
	got := FuzzyFilter(entries, "mtg")
	if !slices.Equal(Names(got), []string{"meeting.md"}) {
		t.Errorf("FuzzyFilter(mtg) = %v, want [meeting.md]", Names(got))
	}
	if got[0].Path != "/notes/meeting.md" {
		t.Errorf("Path = %q, entry fields should be kept", got[0].Path)
	}
}

func TestFuzzyFilter_BestFirst(t *testing.T) {
	entries := entriesNamed("team-meeting.md", "meeting.md")
	got := FuzzyFilter(entries, "meeting")
	if len(got) != 2 || got[0].Name != "meeting.md" {
		t.Errorf("FuzzyFilter(meeting) = %v, want meeting.md first", Names(got))
	}
}

func TestFuzzyFilter_NoMatch(t *testing.T) {
	if got := FuzzyFilter(entriesNamed("todo.md"), "zzz"); len(got) != 0 {
		t.Errorf("FuzzyFilter(zzz) = %v, want none", Names(got))
	}
}
