package backlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMalformedPayload reports that a model response was not parseable
	// as a JSON object at all.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrSchemaMismatch reports that the payload parsed but does not match
	// the entry schema: a field missing or mis-typed, difficulty outside
	// 1-5, a non-ISO-8601 timestamp, or extra fields present.
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// entryFields is the exact field set a response payload must carry.
var entryFields = map[string]struct{}{
	"title":       {},
	"difficulty":  {},
	"description": {},
	"timestamp":   {},
}

// ParseEntry validates a raw model payload and returns the typed entry.
// It tolerates common formatting quirks (code fences, prose around the
// JSON object) but is strict about the schema itself. Pure: no I/O.
func ParseEntry(raw string) (Entry, error) {
	var empty Entry

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return empty, fmt.Errorf("%w: empty response", ErrMalformedPayload)
	}

	payload := sanitizeJSONPayload(trimmed)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return empty, fmt.Errorf("%w: %v (payload snippet: %s)", ErrMalformedPayload, err, summarizePayloadSnippet(trimmed))
	}

	for key := range fields {
		if _, ok := entryFields[key]; !ok {
			return empty, fmt.Errorf("%w: unexpected field %q", ErrSchemaMismatch, key)
		}
	}
	for key := range entryFields {
		if _, ok := fields[key]; !ok {
			return empty, fmt.Errorf("%w: missing field %q", ErrSchemaMismatch, key)
		}
	}

	var entry Entry
	if err := decodeString(fields["title"], &entry.Title); err != nil {
		return empty, fmt.Errorf("%w: title: %v", ErrSchemaMismatch, err)
	}
	if err := decodeDifficulty(fields["difficulty"], &entry.Difficulty); err != nil {
		return empty, fmt.Errorf("%w: difficulty: %v", ErrSchemaMismatch, err)
	}
	if err := decodeString(fields["description"], &entry.Description); err != nil {
		return empty, fmt.Errorf("%w: description: %v", ErrSchemaMismatch, err)
	}
	if err := decodeString(fields["timestamp"], &entry.Timestamp); err != nil {
		return empty, fmt.Errorf("%w: timestamp: %v", ErrSchemaMismatch, err)
	}

	entry.Title = strings.TrimSpace(entry.Title)
	entry.Description = strings.TrimSpace(entry.Description)
	entry.Timestamp = strings.TrimSpace(entry.Timestamp)

	if err := entry.Validate(); err != nil {
		return empty, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return entry, nil
}

// NewTimestamp formats the current UTC time the way persisted entries
// carry it.
func NewTimestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}

func decodeString(raw json.RawMessage, target *string) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.New("expected a string")
	}
	return nil
}

func decodeDifficulty(raw json.RawMessage, target *int) error {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return errors.New("expected an integer")
	}
	// Token, not Decode: decoding a json.Number accepts quoted numeric
	// strings, so "2" would slip through as 2.
	num, ok := tok.(json.Number)
	if !ok {
		return errors.New("expected an integer")
	}
	value, err := num.Int64()
	if err != nil {
		return errors.New("expected an integer")
	}
	*target = int(value)
	return nil
}

// sanitizeJSONPayload strips code fences and surrounding prose, keeping
// the outermost JSON object.
func sanitizeJSONPayload(content string) string {
	trimmed := strings.TrimSpace(stripCodeFenceBlock(content))
	if trimmed == "" {
		return ""
	}
	if trimmed[0] == '{' {
		return trimmed
	}
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			return strings.TrimSpace(trimmed[start : end+1])
		}
	}
	return trimmed
}

func stripCodeFenceBlock(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	body := trimmed[3:]
	body = strings.TrimLeft(body, " \t\r\n")
	if len(body) >= 4 && strings.EqualFold(body[:4], "json") {
		body = body[4:]
		body = strings.TrimLeft(body, " \t\r\n")
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

func summarizePayloadSnippet(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "<empty>"
	}
	replacer := strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")
	clean := strings.Join(strings.Fields(replacer.Replace(trimmed)), " ")
	const limit = 160
	runes := []rune(clean)
	if len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
