// ABOUTME: CLI command for rig parameter statistics.
// ABOUTME: Charts a parameter's history with average, max, and min.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <boat-id> [parameter]",
	Short: "Show history and statistics for a rig parameter",
	Long: `Show the recorded history of one rig parameter in date order, with
its average, maximum, and minimum. Categorical parameters have no
numeric history and are excluded.

Without a parameter name, lists the parameters that have history.

Examples:
  rigbook stats 1a2b
  rigbook stats 1a2b Forestay`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		logs, err := repo.ListRigLogs(b.ID)
		if err != nil {
			return fmt.Errorf("failed to list rig logs: %w", err)
		}

		if len(args) == 1 {
			names := rig.ParameterNames(logs)
			if len(names) == 0 {
				fmt.Println("No rig history yet.")
				return nil
			}
			fmt.Println("Recorded parameters:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		}

		parameter := args[1]
		points := rig.History(logs, rig.Selector{Name: parameter})
		stats, ok := rig.Compute(points)
		if !ok {
			return fmt.Errorf("no numeric history for %q", parameter)
		}

		faint := color.New(color.Faint)
		color.Cyan("%s (%d entries)", parameter, stats.Count)
		for _, p := range points {
			bar := sparkBar(p.Value, stats.Min, stats.Max)
			fmt.Printf("  %s %8.2f %s\n", faint.Sprint(p.Date.Format("2006-01-02")), p.Value, bar)
		}
		fmt.Println()
		fmt.Printf("  avg %.2f  max %.2f  min %.2f\n", stats.Average, stats.Max, stats.Min)
		return nil
	},
}

// sparkBar renders a value as a bar scaled between min and max.
func sparkBar(v, min, max float64) string {
	const width = 24
	if max <= min {
		return strings.Repeat("▪", width/2)
	}
	n := int((v - min) / (max - min) * float64(width))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("▪", n)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
