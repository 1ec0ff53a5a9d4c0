package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers used to classify failures at the CLI boundary. Wrap tags
// an error with one of these so callers can map it to an outcome (and exit
// code) with errors.Is.
var (
	// ErrServiceUnavailable marks a transient network or service failure
	// that exhausted its retry budget.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidResponse marks a completion payload that still failed
	// schema validation after the one-shot repair request.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrRequestRejected marks a non-retryable refusal from the service,
	// such as an auth or bad-request failure. Distinct from
	// ErrServiceUnavailable, which is reserved for exhausted transient
	// retries.
	ErrRequestRejected = errors.New("request rejected")

	// ErrConfiguration marks malformed configuration, which fails loudly
	// rather than attempting partial recovery.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while
// tagging it with the provided marker for later classification.
func Wrap(marker error, component, operation string, err error) error {
	detail := buildDetail(component, operation)
	if marker == nil {
		marker = ErrServiceUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation string) string {
	parts := make([]string, 0, 2)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
