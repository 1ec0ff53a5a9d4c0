package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"bckl/internal/backlog"
	"bckl/internal/services/llm"
	"bckl/internal/store"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Read one dictation line from stdin and save a backlog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, ctx, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print JSON output but do not write to the backlog file")
	return cmd
}

func runAdd(cmd *cobra.Command, ctx *commandContext, dryRun bool) error {
	if _, err := ctx.ensureConfig(); err != nil {
		return err
	}
	logger := ctx.log()

	dictation, err := readDictation(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(dictation) == "" {
		return fmt.Errorf("%w: dictate or type a line and press Enter", backlog.ErrEmptyInput)
	}

	client, err := ctx.client()
	if err != nil {
		return err
	}

	entry, err := client.ObtainEntry(cmd.Context(), dictation)
	if err != nil {
		logger.Error("obtain entry failed", "error", err)
		return err
	}

	if dryRun {
		logger.Info("dry-run entry", "title", entry.Title)
		return writeJSON(cmd, entry)
	}

	if interactiveSession() {
		entry = refineLoop(cmd, client, entry, logger)
	}

	st, err := ctx.store()
	if err != nil {
		return err
	}
	if err := st.Prepend(entry); err != nil {
		if errors.Is(err, store.ErrLocked) {
			// Surface the dictation and entry so nothing is lost.
			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "Backlog file is locked by another process; entry was not saved.\n")
			fmt.Fprintf(errOut, "Dictation: %s\n", strings.TrimSpace(dictation))
			_ = writeJSONTo(errOut, entry)
		}
		logger.Error("prepend entry failed", "path", st.Path(), "error", err)
		return err
	}

	logger.Info("entry saved", "title", entry.Title, "difficulty", entry.Difficulty, "path", st.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Entry saved: %s (difficulty: %d)\n", entry.Title, entry.Difficulty)
	return nil
}

// readDictation consumes a single line; dictation is one line by contract.
func readDictation(in io.Reader) (string, error) {
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read dictation: %w", err)
	}
	return line, nil
}

// refineLoop shows the entry and applies edit instructions until the user
// accepts with a blank line. A failed refinement keeps the current entry.
func refineLoop(cmd *cobra.Command, client *llm.Client, entry backlog.Entry, logger *slog.Logger) backlog.Entry {
	out := cmd.OutOrStdout()
	stdin := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprintf(out, "\nTitle: %s\nDifficulty: %d\nDescription: %s\n\n", entry.Title, entry.Difficulty, entry.Description)
		fmt.Fprint(out, "> ")

		line, err := stdin.ReadString('\n')
		if err != nil {
			return entry
		}
		instructions := strings.TrimSpace(line)
		if instructions == "" {
			return entry
		}

		refined, err := client.Refine(cmd.Context(), entry, instructions)
		if err != nil {
			logger.Warn("refine failed", "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\nOriginal entry preserved; try different instructions.\n", err)
			continue
		}
		entry = refined
		logger.Info("entry refined", "title", entry.Title)
	}
}

func interactiveSession() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
