// ABOUTME: Root Cobra command for rigbook CLI.
// ABOUTME: Opens the configured storage backend via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/rigbook/internal/config"
	"github.com/harperreed/rigbook/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "rigbook",
	Short: "Rig settings and training log for rowers and sailors",
	Long: `Rigbook tracks rig settings and training sessions per boat.

RIG LOGS:

  Every rig log is a frozen snapshot of your boat's settings. New logs
  start from the latest recorded values, so you only change what moved.

  $ rigbook boat add "Laser 204312" --seed   # Add a boat with defaults
  $ rigbook rig log 1a2b --set Forestay=24   # Log rig, carry the rest forward
  $ rigbook rig score 1a2b                   # Equipment safety score (0-100)
  $ rigbook stats 1a2b Forestay              # History and avg/max/min

CHECKLISTS:

  $ rigbook checklist list 1a2b              # Grouped by category
  $ rigbook checklist check 3f4e             # Tick an item off
  $ rigbook checklist reset 1a2b             # Fresh list for the next outing

TRAINING:

  $ rigbook session add --boat 1a2b --type water --memo "2h technique"
  $ rigbook session add --shared --type ergo --template 2000m
  $ rigbook session summary 5d6c --distance 2000 --seconds 428

  Shared ergo sessions belong to no boat and show up everywhere.

MCP INTEGRATION:

  Run 'rigbook mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants. Add to your client config:

  {
    "mcpServers": {
      "rigbook": { "command": "rigbook", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/rigbook (SQLite by default). Set
  "backend": "badger" in ~/.config/rigbook/config.json to use the
  Badger document store instead; 'rigbook migrate' moves data between
  the two.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
