package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dryRun bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "bckl",
		Short:         "Dictation-driven backlog entry tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `bckl` behaves like `bckl add`.
			return runAdd(cmd, ctx, dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print JSON output but do not write to the backlog file")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
