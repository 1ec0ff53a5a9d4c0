// Package logging constructs the slog logger used across bckl. Output goes
// to stderr in console or JSON format, with an optional copy appended to a
// log file under the configured directory.
package logging
