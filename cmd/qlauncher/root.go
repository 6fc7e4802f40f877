package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	dataDir   string
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "qlauncher",
		Short:         "QuantumLauncher",
		Long:          "QuantumLauncher is a lightweight game launcher.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Override the launcher data directory")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newRunCommand(flags))
	rootCmd.AddCommand(newEntriesCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newRunCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the launcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd, flags)
		},
	}
}
