package backlog

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDictationBytes bounds how much dictation text is sent to the
// completion service. Longer input is truncated before transmission.
const DefaultMaxDictationBytes = 2048

// ErrEmptyInput reports that no dictation was provided. It is a usage
// error and is raised before any network call.
var ErrEmptyInput = errors.New("empty dictation")

// truncationMarker is appended when dictation is cut at the size bound so
// the persisted description reflects that truncation occurred.
const truncationMarker = "..."

// metaPrefixes flags input that reads like an instruction about the tool
// itself rather than a backlog item.
var metaPrefixes = []string{
	"be more", "make it", "you should", "can you", "please",
	"i want", "we need", "the way you", "your", "improve",
}

// SanitizeDictation trims and whitespace-normalizes a dictation line.
// Input that looks like a meta-instruction is prefixed with "Backlog item:"
// so the model treats it as an item request.
func SanitizeDictation(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, prefix := range metaPrefixes {
		if strings.HasPrefix(lower, prefix) {
			text = "Backlog item: " + text
			break
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// TruncateDictation enforces the byte bound on dictation text. The cut
// lands on a rune boundary and the marker is appended so downstream
// descriptions record that input was shortened. The returned bool reports
// whether truncation happened.
func TruncateDictation(text string, maxBytes int) (string, bool) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDictationBytes
	}
	if len(text) <= maxBytes {
		return text, false
	}
	limit := maxBytes - len(truncationMarker)
	if limit < 0 {
		limit = 0
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimRight(text[:cut], " ") + truncationMarker, true
}

// MarkTruncated appends the truncation marker to a description that does
// not already carry it, so the saved entry records that input was cut.
func MarkTruncated(description string) string {
	if strings.HasSuffix(description, truncationMarker) {
		return description
	}
	return description + truncationMarker
}
