// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies everything from one backend into the other via the export envelope.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/rigbook/internal/storage"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <from> <to>",
	Short: "Migrate data between storage backends",
	Long: `Copy all data from one storage backend to the other.

Backends are "sqlite" and "badger". Both live under the configured
data directory (~/.local/share/rigbook by default). The destination
should be empty; records keep their IDs, so migrating into existing
data causes duplicate errors.

After migrating, set "backend" in ~/.config/rigbook/config.json to the
destination backend.

EXAMPLES:

  rigbook migrate sqlite badger   # Move from SQLite to Badger
  rigbook migrate badger sqlite   # Move back`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"sqlite", "badger"},
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := args[0], args[1]
		if from == to {
			return fmt.Errorf("source and destination backends are the same: %s", from)
		}

		source, err := cfg.OpenBackend(from)
		if err != nil {
			return fmt.Errorf("failed to open source backend %s: %w", from, err)
		}
		defer source.Close()

		destination, err := cfg.OpenBackend(to)
		if err != nil {
			return fmt.Errorf("failed to open destination backend %s: %w", to, err)
		}
		defer destination.Close()

		result, err := storage.MigrateData(source, destination)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s to %s", from, to)
		fmt.Printf("  %d boats\n", result.Boats)
		fmt.Printf("  %d rig templates\n", result.RigTemplates)
		fmt.Printf("  %d rig logs\n", result.RigLogs)
		fmt.Printf("  %d checklist items\n", result.ChecklistItems)
		fmt.Printf("  %d workout templates\n", result.WorkoutTemplates)
		fmt.Printf("  %d sessions\n", result.Sessions)
		fmt.Println()
		fmt.Printf("Set \"backend\": %q in your config to use the new backend.\n", to)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
