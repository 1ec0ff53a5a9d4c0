// Package store persists backlog entries to a CSV file, most recent first.
//
// Writes never touch the target in place: the new row plus the prior file
// content goes to a temp file in the same directory, which is then renamed
// over the target in one step. A held file lock is detected up front and
// reported as ErrLocked without writing anything, so the caller can keep
// the dictation instead of losing it.
package store
