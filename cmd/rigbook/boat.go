// ABOUTME: CLI commands for managing boats.
// ABOUTME: Covers add, list, rename, and cascade delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/harperreed/rigbook/internal/storage"
	"github.com/spf13/cobra"
)

var (
	boatAddSeed     bool
	boatDeleteForce bool
)

var boatCmd = &cobra.Command{
	Use:     "boat",
	Aliases: []string{"b"},
	Short:   "Manage boats",
}

var boatAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a boat",
	Long: `Add a boat to track rig settings and training for.

With --seed, the boat starts with default rig templates (forestay,
shrouds, spreader angle, backstay, and more) and a basic checklist.

Examples:
  rigbook boat add "Laser 204312"
  rigbook boat add "Club Fours" --seed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := models.NewBoat(args[0])
		if err := repo.CreateBoat(b); err != nil {
			return fmt.Errorf("failed to create boat: %w", err)
		}
		if boatAddSeed {
			if err := storage.SeedBoat(repo, b.ID); err != nil {
				return fmt.Errorf("failed to seed boat: %w", err)
			}
		}

		color.Green("✓ Added boat %s", b.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(b.ID.String()[:8]))
		return nil
	},
}

var boatListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List boats with their safety scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		boats, err := repo.ListBoats()
		if err != nil {
			return fmt.Errorf("failed to list boats: %w", err)
		}
		if len(boats) == 0 {
			fmt.Println("No boats found. Add one with 'rigbook boat add <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, b := range boats {
			latest, err := repo.LatestRigLog(b.ID)
			if err != nil {
				return fmt.Errorf("failed to get latest rig log: %w", err)
			}
			score := rig.SafetyScore(latest)
			scoreStr := colorScore(score)
			lastLogged := "never logged"
			if latest != nil {
				lastLogged = latest.Date.Format("2006-01-02")
			}
			fmt.Printf("%s %s  score %s  %s\n",
				faint.Sprint(b.ID.String()[:8]),
				padRight(b.Name, 24),
				scoreStr,
				faint.Sprint(lastLogged))
		}
		return nil
	},
}

var boatRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a boat",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.RenameBoat(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to rename boat: %w", err)
		}
		color.Green("✓ Renamed boat to %s", args[1])
		return nil
	},
}

var boatDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a boat and all its data",
	Long: `Delete a boat with all its rig logs, templates, checklist items,
and owned training sessions. Shared ergo sessions are not touched.

This cannot be undone. Requires --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !boatDeleteForce {
			return fmt.Errorf("deleting a boat removes all its logs and sessions; re-run with --force")
		}
		if err := repo.DeleteBoat(args[0]); err != nil {
			return fmt.Errorf("failed to delete boat: %w", err)
		}
		color.Green("✓ Deleted boat %s", args[0])
		return nil
	},
}

func colorScore(score int) string {
	switch {
	case score >= 90:
		return color.GreenString("%3d", score)
	case score >= 60:
		return color.YellowString("%3d", score)
	default:
		return color.RedString("%3d", score)
	}
}

func init() {
	boatAddCmd.Flags().BoolVar(&boatAddSeed, "seed", false, "create default rig templates and checklist")
	boatDeleteCmd.Flags().BoolVar(&boatDeleteForce, "force", false, "confirm deletion")

	boatCmd.AddCommand(boatAddCmd)
	boatCmd.AddCommand(boatListCmd)
	boatCmd.AddCommand(boatRenameCmd)
	boatCmd.AddCommand(boatDeleteCmd)
	rootCmd.AddCommand(boatCmd)
}
