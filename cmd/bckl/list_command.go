package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"bckl/internal/backlog"
)

// descriptionColumnWidth caps the description column so one long entry does
// not blow the table past a typical terminal.
const descriptionColumnWidth = 60

func newListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show backlog entries, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.store()
			if err != nil {
				return err
			}
			entries, err := st.Read()
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if jsonOut {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Backlog is empty.")
				return nil
			}

			if isTerminal(os.Stdout.Fd()) {
				fmt.Fprintln(out, renderEntryTable(entries))
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", entry.Timestamp, entry.Title, entry.Difficulty, entry.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many entries (0 = all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit entries as JSON")
	return cmd
}

// renderEntryTable lays entries out in a rounded table: difficulty right
// aligned, descriptions soft-wrapped to the column cap.
func renderEntryTable(entries []backlog.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"When", "Title", "Diff", "Description"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{entry.Timestamp, entry.Title, entry.Difficulty, entry.Description})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: descriptionColumnWidth, WidthMaxEnforcer: text.WrapSoft},
	})
	return tw.Render()
}
