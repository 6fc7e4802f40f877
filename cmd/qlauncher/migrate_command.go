package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qlauncher/internal/app"
	"qlauncher/internal/migrate"
)

func newMigrateCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the legacy data directory to the new location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !migrate.Supported {
				cmd.Println("migration is not supported on this platform")
				return nil
			}

			dirs := migrate.Resolve()
			if !migrate.ShouldMigrate(dirs) {
				cmd.Println("nothing to migrate")
				return nil
			}
			if check {
				cmd.Printf("would migrate %s -> %s\n", dirs.Legacy, dirs.Target)
				return nil
			}

			if err := migrate.Run(dirs); err != nil {
				if errors.Is(err, migrate.ErrSentinel) {
					cmd.Printf("migrated, but: %v\n", err)
					return nil
				}
				return fmt.Errorf("migration: %w", err)
			}
			cmd.Printf("migrated %s -> %s\n", dirs.Legacy, dirs.Target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Only report whether migration would run")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the launcher version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("qlauncher", app.Version)
		},
	}
}
