package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"qlauncher/internal/entries"
	"qlauncher/internal/paths"
	"qlauncher/internal/state"
)

func newEntriesCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "List launcher entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(flags)
			if err != nil {
				return err
			}

			list, err := entries.List(paths.InstancesDir(dataDir), true)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				cmd.Println("no entries")
				return nil
			}

			var store *state.Store
			if s, openErr := state.Open(dataDir); openErr == nil {
				store = s
				defer store.Close()
			}

			rows := make([][]string, 0, len(list))
			for _, entry := range list {
				rows = append(rows, []string{
					entry.Name,
					entry.Version,
					entry.Loader,
					lastPlayedLabel(cmd, store, entry.Name),
				})
			}

			cmd.Println(renderTable([]string{"NAME", "VERSION", "LOADER", "LAST PLAYED"}, rows))
			cmd.Println(dimIfTTY(fmt.Sprintf("%d entries in %s", len(list), dataDir)))
			return nil
		},
	}
}

func lastPlayedLabel(cmd *cobra.Command, store *state.Store, entry string) string {
	if store == nil {
		return ""
	}
	played, err := store.LastPlayed(cmd.Context(), entry)
	if errors.Is(err, state.ErrNotFound) {
		return "never"
	}
	if err != nil {
		return ""
	}
	return played.Local().Format(time.DateTime)
}

func resolveDataDir(flags *rootFlags) (string, error) {
	if flags.dataDir != "" {
		return flags.dataDir, nil
	}
	return paths.DataDir()
}
