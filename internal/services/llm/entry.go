package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bckl/internal/backlog"
	"bckl/internal/services"
)

// ObtainEntry sends the dictation to the completion service and returns the
// validated backlog entry. Empty input fails before any network call.
// Over-long input is truncated to the configured bound before transmission.
func (c *Client) ObtainEntry(ctx context.Context, dictation string) (backlog.Entry, error) {
	var empty backlog.Entry

	sanitized := backlog.SanitizeDictation(dictation)
	if sanitized == "" {
		return empty, backlog.ErrEmptyInput
	}
	bounded, truncated := backlog.TruncateDictation(sanitized, c.cfg.MaxDictationBytes)

	cacheKey := c.cfg.Model + "\x00" + bounded
	if entry, ok := c.cache.get(cacheKey); ok {
		return entry, nil
	}

	entry, err := c.requestEntry(ctx, c.cfg.SystemPrompt, bounded, "llm backlog")
	if err != nil {
		return empty, err
	}
	// The saved description must record the cut even when the model does
	// not echo the marker back.
	if truncated {
		entry.Description = backlog.MarkTruncated(entry.Description)
	}
	c.cache.put(cacheKey, entry)
	return entry, nil
}

// Refine reworks an existing entry per free-text edit instructions, running
// the result through the same validation and retry machinery. The refined
// entry is not cached; instructions are one-offs.
func (c *Client) Refine(ctx context.Context, entry backlog.Entry, instructions string) (backlog.Entry, error) {
	var empty backlog.Entry

	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return empty, backlog.ErrEmptyInput
	}
	current, err := json.Marshal(entry)
	if err != nil {
		return empty, fmt.Errorf("llm refine: encode entry: %w", err)
	}
	user := fmt.Sprintf("Current entry:\n%s\n\nEdit instructions: %s", current, instructions)
	return c.requestEntry(ctx, RefinePrompt, user, "llm refine")
}

// requestEntry runs one validated completion: a transient-retry request,
// then exactly one repair re-request if the payload fails validation. The
// repair request gets its own full transient budget; the two loops use
// separate counters.
func (c *Client) requestEntry(ctx context.Context, systemPrompt, userPrompt, op string) (backlog.Entry, error) {
	var empty backlog.Entry

	content, err := c.completionContentWithRetry(ctx, c.entryPayload(systemPrompt, userPrompt), op)
	if err != nil {
		return empty, wrapTransportErr(op, err)
	}

	entry, parseErr := backlog.ParseEntry(content)
	if parseErr == nil {
		return entry, nil
	}

	repair := userPrompt + "\n\nYour previous reply was not valid. Respond with ONLY the JSON object, no other text."
	content, err = c.completionContentWithRetry(ctx, c.entryPayload(systemPrompt, repair), op)
	if err != nil {
		return empty, wrapTransportErr(op, err)
	}
	entry, parseErr = backlog.ParseEntry(content)
	if parseErr != nil {
		return empty, services.Wrap(services.ErrInvalidResponse, "llm", op, parseErr)
	}
	return entry, nil
}

// wrapTransportErr classifies a completion failure. Retries never ran for
// a non-transient status or an api rejection, so those are not an outage.
func wrapTransportErr(op string, err error) error {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) && !transientStatus(statusErr.StatusCode) {
		return services.Wrap(services.ErrRequestRejected, "llm", op, err)
	}
	if errors.Is(err, errAPIRejected) {
		return services.Wrap(services.ErrRequestRejected, "llm", op, err)
	}
	return services.Wrap(services.ErrServiceUnavailable, "llm", op, err)
}

func (c *Client) entryPayload(systemPrompt, userPrompt string) chatCompletionRequest {
	return chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0,
		ResponseFormat: map[string]string{"type": jsonResponseType},
	}
}

// entryCache memoizes completions for identical dictation within a single
// process run. Owned by the client instance so parallel tests do not
// interfere; never persisted.
type entryCache struct {
	mu      sync.Mutex
	entries map[string]backlog.Entry
}

func newEntryCache() *entryCache {
	return &entryCache{entries: make(map[string]backlog.Entry)}
}

func (c *entryCache) get(key string) (backlog.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *entryCache) put(key string, entry backlog.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry
}
