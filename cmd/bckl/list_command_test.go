package main

import (
	"strings"
	"testing"

	"bckl/internal/backlog"
)

func TestRenderEntryTable(t *testing.T) {
	entries := []backlog.Entry{
		{
			Title:       "Add dark mode toggle",
			Difficulty:  2,
			Description: "Need to add dark mode toggle to settings screen.",
			Timestamp:   "2025-06-17T12:00:00Z",
		},
		{
			Title:       "Improve CSV import performance",
			Difficulty:  4,
			Description: strings.Repeat("Profile the importer and cache parsed headers. ", 5),
			Timestamp:   "2025-06-16T09:30:00Z",
		},
	}

	rendered := renderEntryTable(entries)
	for _, want := range []string{"When", "Title", "Diff", "Description", "Add dark mode toggle", "2025-06-16T09:30:00Z"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered table missing %q:\n%s", want, rendered)
		}
	}

	// The long description wraps instead of widening the column.
	for _, line := range strings.Split(rendered, "\n") {
		if len([]rune(line)) > 130 {
			t.Fatalf("line exceeds expected width: %q", line)
		}
	}
}
