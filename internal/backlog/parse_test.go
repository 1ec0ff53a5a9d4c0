package backlog

import (
	"errors"
	"strings"
	"testing"
)

const validPayload = `{"title":"Add dark mode toggle","difficulty":2,"description":"Need to add dark mode toggle to settings screen.","timestamp":"2025-06-17T12:00:00Z"}`

func TestParseEntryValid(t *testing.T) {
	entry, err := ParseEntry(validPayload)
	if err != nil {
		t.Fatalf("ParseEntry returned error: %v", err)
	}
	if entry.Title != "Add dark mode toggle" {
		t.Errorf("unexpected title %q", entry.Title)
	}
	if entry.Difficulty != 2 {
		t.Errorf("unexpected difficulty %d", entry.Difficulty)
	}
	if entry.Description != "Need to add dark mode toggle to settings screen." {
		t.Errorf("unexpected description %q", entry.Description)
	}
	if entry.Timestamp != "2025-06-17T12:00:00Z" {
		t.Errorf("unexpected timestamp %q", entry.Timestamp)
	}
}

func TestParseEntryCodeFence(t *testing.T) {
	raw := "```json\n" + validPayload + "\n```"
	entry, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("ParseEntry returned error: %v", err)
	}
	if entry.Difficulty != 2 {
		t.Errorf("unexpected difficulty %d", entry.Difficulty)
	}
}

func TestParseEntrySurroundingProse(t *testing.T) {
	raw := "Sure, here is the entry you asked for:\n" + validPayload + "\nLet me know if you need anything else."
	if _, err := ParseEntry(raw); err != nil {
		t.Fatalf("ParseEntry returned error: %v", err)
	}
}

func TestParseEntryMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "{\"title\": "} {
		_, err := ParseEntry(raw)
		if !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("ParseEntry(%q) = %v, want ErrMalformedPayload", raw, err)
		}
	}
}

func TestParseEntrySchemaMismatch(t *testing.T) {
	cases := map[string]string{
		"missing difficulty": `{"title":"Add dark mode toggle","description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
		"difficulty 7":       `{"title":"Add dark mode toggle","difficulty":7,"description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
		"difficulty string":  `{"title":"Add dark mode toggle","difficulty":"2","description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
		"difficulty float":   `{"title":"Add dark mode toggle","difficulty":2.5,"description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
		"difficulty bool":    `{"title":"Add dark mode toggle","difficulty":true,"description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
		"bad timestamp":      `{"title":"Add dark mode toggle","difficulty":2,"description":"x","timestamp":"yesterday"}`,
		"empty title":        `{"title":"","difficulty":2,"description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
		"extra field":        `{"title":"Add dark mode toggle","difficulty":2,"description":"x","timestamp":"2025-06-17T12:00:00Z","owner":"me"}`,
		"numeric title":      `{"title":3,"difficulty":2,"description":"x","timestamp":"2025-06-17T12:00:00Z"}`,
	}
	for name, raw := range cases {
		if _, err := ParseEntry(raw); !errors.Is(err, ErrSchemaMismatch) {
			t.Errorf("%s: ParseEntry = %v, want ErrSchemaMismatch", name, err)
		}
	}
}

func TestParseEntryTrimsFields(t *testing.T) {
	raw := `{"title":"  Add dark mode toggle  ","difficulty":2,"description":" x ","timestamp":" 2025-06-17T12:00:00Z "}`
	entry, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("ParseEntry returned error: %v", err)
	}
	if entry.Title != "Add dark mode toggle" || entry.Description != "x" {
		t.Errorf("fields not trimmed: %+v", entry)
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	good := Entry{Title: "Add thing", Difficulty: 3, Description: "do it", Timestamp: "2025-06-17T12:00:00Z"}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	bad := []Entry{
		{Difficulty: 3, Description: "d", Timestamp: "2025-06-17T12:00:00Z"},
		{Title: "t", Difficulty: 0, Description: "d", Timestamp: "2025-06-17T12:00:00Z"},
		{Title: "t", Difficulty: 6, Description: "d", Timestamp: "2025-06-17T12:00:00Z"},
		{Title: "t", Difficulty: 3, Timestamp: "2025-06-17T12:00:00Z"},
		{Title: "t", Difficulty: 3, Description: "d", Timestamp: "June 17"},
	}
	for i, entry := range bad {
		if err := entry.Validate(); err == nil {
			t.Errorf("case %d: expected validation failure for %+v", i, entry)
		}
	}
}

func TestEntryTime(t *testing.T) {
	entry := Entry{Timestamp: "2025-06-17T12:00:00Z"}
	if got := entry.Time(); got.IsZero() || got.Hour() != 12 {
		t.Fatalf("unexpected time %v", got)
	}
	if !strings.Contains(entry.Timestamp, "T") {
		t.Fatal("timestamp lost ISO shape")
	}
}
