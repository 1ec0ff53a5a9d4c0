package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bckl/internal/backlog"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

// exitCode maps an error to the CLI exit-code contract: 1 for usage
// errors, 2 for service and file failures.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, backlog.ErrEmptyInput) {
		return exitUsage
	}
	return exitFailure
}
