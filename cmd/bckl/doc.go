// Command bckl turns one dictated line into a structured backlog entry and
// prepends it to a local CSV file.
//
// Dictation is read from stdin. With --dry-run the generated entry is
// printed as JSON and nothing is written. On a terminal, the entry can be
// refined interactively before saving: type edit instructions, or press
// Enter on a blank line to accept.
//
// Exit codes: 0 success, 1 usage error, 2 service or file error.
package main
