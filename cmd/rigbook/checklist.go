// ABOUTME: CLI commands for boat checklists.
// ABOUTME: Items are edited in place; reset unticks a boat or category.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/spf13/cobra"
)

var (
	checkCategory string
	checkPosition int
)

var checklistCmd = &cobra.Command{
	Use:     "checklist",
	Aliases: []string{"check"},
	Short:   "Manage boat checklists",
}

var checklistAddCmd = &cobra.Command{
	Use:   "add <boat-id> <task>",
	Short: "Add a checklist item",
	Long: `Add a task to a boat's checklist.

Examples:
  rigbook checklist add 1a2b "Check hull for damage" --category "Before Sailing"
  rigbook checklist add 1a2b "Rinse with fresh water" -c "After Sailing"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}

		item := models.NewChecklistItem(b.ID, args[1], checkCategory)
		if cmd.Flags().Changed("position") {
			item.WithPosition(checkPosition)
		} else {
			existing, err := repo.ListChecklist(b.ID)
			if err != nil {
				return fmt.Errorf("failed to list checklist: %w", err)
			}
			item.WithPosition(len(existing))
		}

		if err := repo.CreateChecklistItem(item); err != nil {
			return fmt.Errorf("failed to create checklist item: %w", err)
		}
		color.Green("✓ Added checklist item")
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(item.ID.String()[:8]), item.Task)
		return nil
	},
}

var checklistListCmd = &cobra.Command{
	Use:     "list <boat-id>",
	Aliases: []string{"ls"},
	Short:   "List a boat's checklist grouped by category",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		items, err := repo.ListChecklist(b.ID)
		if err != nil {
			return fmt.Errorf("failed to list checklist: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No checklist items found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, group := range rig.GroupChecklist(items, rig.DefaultChecklistOrder) {
			category := group.Category
			if category == "" {
				category = "(uncategorized)"
			}
			color.Cyan("%s", category)
			for _, item := range group.Items {
				mark := "[ ]"
				if item.Done {
					mark = color.GreenString("[✓]")
				}
				fmt.Printf("  %s %s %s\n", mark, faint.Sprint(item.ID.String()[:8]), item.Task)
			}
		}
		return nil
	},
}

var checklistCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Mark a checklist item done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetChecklistDone(args[0], true); err != nil {
			return fmt.Errorf("failed to update checklist item: %w", err)
		}
		color.Green("✓ Checked %s", args[0])
		return nil
	},
}

var checklistUncheckCmd = &cobra.Command{
	Use:   "uncheck <item-id>",
	Short: "Mark a checklist item not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetChecklistDone(args[0], false); err != nil {
			return fmt.Errorf("failed to update checklist item: %w", err)
		}
		color.Green("✓ Unchecked %s", args[0])
		return nil
	},
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset <boat-id>",
	Short: "Untick every item for the next outing",
	Long: `Mark all of a boat's checklist items not done. With --category,
only that category is reset.

Examples:
  rigbook checklist reset 1a2b
  rigbook checklist reset 1a2b --category "Before Sailing"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		n, err := repo.ResetChecklist(b.ID, checkCategory)
		if err != nil {
			return fmt.Errorf("failed to reset checklist: %w", err)
		}
		color.Green("✓ Reset %d items", n)
		return nil
	},
}

var checklistDeleteCmd = &cobra.Command{
	Use:     "delete <item-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a checklist item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteChecklistItem(args[0]); err != nil {
			return fmt.Errorf("failed to delete checklist item: %w", err)
		}
		color.Green("✓ Deleted checklist item %s", args[0])
		return nil
	},
}

func init() {
	checklistAddCmd.Flags().StringVarP(&checkCategory, "category", "c", "", "grouping category")
	checklistAddCmd.Flags().IntVar(&checkPosition, "position", 0, "display position")
	checklistResetCmd.Flags().StringVarP(&checkCategory, "category", "c", "", "reset only this category")

	checklistCmd.AddCommand(checklistAddCmd)
	checklistCmd.AddCommand(checklistListCmd)
	checklistCmd.AddCommand(checklistCheckCmd)
	checklistCmd.AddCommand(checklistUncheckCmd)
	checklistCmd.AddCommand(checklistResetCmd)
	checklistCmd.AddCommand(checklistDeleteCmd)
	rootCmd.AddCommand(checklistCmd)
}
