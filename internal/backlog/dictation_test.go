package backlog

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeDictation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  need   dark mode\ttoggle \n", "need dark mode toggle"},
		{"", ""},
		{"   \t\n", ""},
		{"please make the button bigger", "Backlog item: please make the button bigger"},
		{"Improve CSV import speed", "Backlog item: Improve CSV import speed"},
		{"fix the login timeout", "fix the login timeout"},
	}
	for _, tc := range cases {
		if got := SanitizeDictation(tc.in); got != tc.want {
			t.Errorf("SanitizeDictation(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateDictationLongInput(t *testing.T) {
	long := strings.Repeat("a", 3000)
	got, truncated := TruncateDictation(long, DefaultMaxDictationBytes)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if len(got) > DefaultMaxDictationBytes {
		t.Fatalf("result is %d bytes, want <= %d", len(got), DefaultMaxDictationBytes)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis marker, got suffix %q", got[len(got)-8:])
	}
}

func TestTruncateDictationShortInput(t *testing.T) {
	got, truncated := TruncateDictation("small task", DefaultMaxDictationBytes)
	if truncated || got != "small task" {
		t.Fatalf("short input altered: %q (truncated=%v)", got, truncated)
	}
}

func TestTruncateDictationRuneBoundary(t *testing.T) {
	// Each rune is multi-byte; a naive byte cut would split one.
	long := strings.Repeat("é", 2000)
	got, truncated := TruncateDictation(long, 302)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation split a rune")
	}
	if len(got) > 302 {
		t.Fatalf("result is %d bytes, want <= 302", len(got))
	}
}

func TestTruncateDictationZeroBoundUsesDefault(t *testing.T) {
	long := strings.Repeat("a", 3000)
	got, truncated := TruncateDictation(long, 0)
	if !truncated || len(got) > DefaultMaxDictationBytes {
		t.Fatalf("default bound not applied: %d bytes", len(got))
	}
}

func TestMarkTruncated(t *testing.T) {
	if got := MarkTruncated("cut description"); got != "cut description..." {
		t.Fatalf("marker not appended: %q", got)
	}
	if got := MarkTruncated("already marked..."); got != "already marked..." {
		t.Fatalf("marker duplicated: %q", got)
	}
}
