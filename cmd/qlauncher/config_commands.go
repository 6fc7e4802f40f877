package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qlauncher/internal/config"
	"qlauncher/internal/paths"
)

func newConfigCommand(flags *rootFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage launcher configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	configCmd.AddCommand(newConfigShowCommand(flags))
	configCmd.AddCommand(newConfigInitCommand(flags))
	return configCmd
}

func newConfigShowCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(flags)
			if err != nil {
				return err
			}
			cfg, err := config.Load(dataDir)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}

func newConfigInitCommand(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(flags)
			if err != nil {
				return err
			}
			configPath := paths.ConfigFile(dataDir)
			if _, statErr := os.Stat(configPath); statErr == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			}
			if err := paths.Ensure(dataDir); err != nil {
				return err
			}
			if err := config.Default().Save(dataDir); err != nil {
				return err
			}
			cmd.Println("wrote", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
