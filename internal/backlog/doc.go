// Package backlog defines the backlog entry model, dictation cleanup, and
// the validator that turns raw model payloads into typed entries.
package backlog
