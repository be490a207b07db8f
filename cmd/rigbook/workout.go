// ABOUTME: CLI commands for workout templates.
// ABOUTME: Templates define the metrics a logged session starts with.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/rigbook/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutBoat     string
	workoutType     string
	workoutListType string
	workoutCategory string
	workoutMetrics  []string
	workoutForce    bool
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage workout templates",
	Long: `Manage reusable workout templates.

A template names a workout with its session type and the metrics each
logged session should record. Templates created with --boat belong to
that boat; templates without are shared and appear for every boat.
Seed templates (2000m Test and friends) refuse deletion unless forced.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a workout template",
	Long: `Add a workout template. Metrics are name:unit pairs in display order.

Examples:
  rigbook workout add "10x500m" --type ergo --category distance_interval \
      --metric "Avg Pace:sec/500m" --metric "Stroke Rate:spm"
  rigbook workout add "Technique Row" --boat 1a2b --type water`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidSessionType(workoutType) {
			return fmt.Errorf("unknown session type: %s (use ergo or water)", workoutType)
		}
		st := models.SessionType(workoutType)

		var t *models.WorkoutTemplate
		if workoutBoat != "" {
			b, err := repo.GetBoat(workoutBoat)
			if err != nil {
				return fmt.Errorf("boat not found: %s", workoutBoat)
			}
			t = models.NewWorkoutTemplate(b.ID, args[0], st)
		} else {
			t = models.NewSharedWorkoutTemplate(args[0], st)
		}
		if workoutCategory != "" {
			t.WithCategory(models.WorkoutCategory(workoutCategory))
		}
		for _, m := range workoutMetrics {
			name, unit := m, ""
			if i := strings.LastIndex(m, ":"); i > 0 {
				name, unit = m[:i], m[i+1:]
			}
			t.AddMetric(name, unit)
		}

		if err := repo.CreateWorkoutTemplate(t); err != nil {
			return fmt.Errorf("failed to create workout template: %w", err)
		}

		scope := "shared"
		if t.BoatID != nil {
			scope = "boat-owned"
		}
		color.Green("✓ Added %s workout template %s", scope, t.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(t.ID.String()[:8]))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list <boat-id>",
	Aliases: []string{"ls"},
	Short:   "List templates visible to a boat, seed templates first",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		var st *models.SessionType
		if workoutListType != "" {
			if !models.IsValidSessionType(workoutListType) {
				return fmt.Errorf("unknown session type: %s", workoutListType)
			}
			t := models.SessionType(workoutListType)
			st = &t
		}

		templates, err := repo.ListWorkoutTemplates(b.ID, st)
		if err != nil {
			return fmt.Errorf("failed to list workout templates: %w", err)
		}
		if len(templates) == 0 {
			fmt.Println("No workout templates found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			tags := string(t.SessionType)
			if t.Seed {
				tags += ", seed"
			}
			if t.BoatID == nil {
				tags += ", shared"
			}
			metrics := make([]string, 0, len(t.Metrics))
			for _, m := range t.Metrics {
				metrics = append(metrics, m.Name)
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(t.ID.String()[:8]),
				padRight(t.Name, 20),
				faint.Sprintf("(%s) %s", tags, strings.Join(metrics, ", ")))
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout template",
	Long: `Delete a workout template. Sessions logged from it keep their
metrics. Seed templates require --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteWorkoutTemplate(args[0], workoutForce); err != nil {
			return fmt.Errorf("failed to delete workout template: %w", err)
		}
		color.Green("✓ Deleted workout template %s", args[0])
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutBoat, "boat", "", "owning boat ID (omit for a shared template)")
	workoutAddCmd.Flags().StringVarP(&workoutType, "type", "t", "ergo", "session type (ergo or water)")
	workoutAddCmd.Flags().StringVar(&workoutCategory, "category", "", "workout shape (single_distance, single_time, distance_interval, time_interval)")
	workoutAddCmd.Flags().StringArrayVarP(&workoutMetrics, "metric", "m", nil, "metric as name:unit (repeatable)")

	workoutListCmd.Flags().StringVarP(&workoutListType, "type", "t", "", "filter by session type")
	workoutDeleteCmd.Flags().BoolVar(&workoutForce, "force", false, "delete even seed templates")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
