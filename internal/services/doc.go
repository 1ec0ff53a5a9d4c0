// Package services defines shared error classification for external
// integrations.
//
// Each integration wraps its failures with one of the sentinel markers defined
// here (service unavailable, invalid response, request rejected, configuration
// error) via Wrap,
// so the CLI boundary can map any failure to a user-facing outcome and exit
// code with a single errors.Is check.
package services
