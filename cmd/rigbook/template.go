// ABOUTME: CLI commands for managing rig item templates.
// ABOUTME: Templates define which parameters each rig log records.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/spf13/cobra"
)

var (
	tplUnit     string
	tplCategory string
	tplOptions  []string
	tplPosition int
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Manage rig item templates",
	Long: `Manage the rig parameters recorded for a boat.

A template names one parameter (forestay tension, spreader angle, oar
length) with its unit and category. Templates with --options record a
choice from a fixed list instead of a number.

Editing or deleting a template never alters past rig logs; items keep
the name, unit, and value they were recorded with.`,
}

var templateAddCmd = &cobra.Command{
	Use:   "add <boat-id> <name>",
	Short: "Add a rig item template",
	Long: `Add a rig parameter to a boat.

Examples:
  rigbook template add 1a2b Forestay --unit % --category Stretcher
  rigbook template add 1a2b "Spreader Angle" --unit deg
  rigbook template add 1a2b "Clutch Setting" --options Low,Mid,High`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}

		t := models.NewRigItemTemplate(b.ID, args[1], tplUnit, tplCategory)
		if len(tplOptions) > 0 {
			t.WithOptions(tplOptions...)
		}
		if cmd.Flags().Changed("position") {
			t.WithPosition(tplPosition)
		} else {
			existing, err := repo.ListRigTemplates(b.ID)
			if err != nil {
				return fmt.Errorf("failed to list rig templates: %w", err)
			}
			t.WithPosition(len(existing))
		}

		if err := repo.CreateRigTemplate(t); err != nil {
			return fmt.Errorf("failed to create rig template: %w", err)
		}

		color.Green("✓ Added template %s", t.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(t.ID.String()[:8]))
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:     "list <boat-id>",
	Aliases: []string{"ls"},
	Short:   "List a boat's rig templates grouped by category",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		templates, err := repo.ListRigTemplates(b.ID)
		if err != nil {
			return fmt.Errorf("failed to list rig templates: %w", err)
		}
		if len(templates) == 0 {
			fmt.Println("No templates found. Add one with 'rigbook template add'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, group := range rig.GroupTemplates(templates, rig.DefaultRigOrder) {
			category := group.Category
			if category == "" {
				category = "(uncategorized)"
			}
			color.Cyan("%s", category)
			for _, t := range group.Templates {
				detail := t.Unit
				if t.IsChoice() {
					detail = strings.Join(t.Options, "|")
				}
				fmt.Printf("  %s %s %s\n",
					faint.Sprint(t.ID.String()[:8]),
					padRight(t.Name, 20),
					faint.Sprint(detail))
			}
		}
		return nil
	},
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a template's name, unit, category, or options",
	Long: `Update a rig template. Only the given flags change; everything else
keeps its current value. Past rig logs are unaffected, and the next
draft picks up old values by name when the template was renamed.

Examples:
  rigbook template update 3f4e --unit mm
  rigbook template update 3f4e --name "Forestay Tension"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := repo.GetRigTemplate(args[0])
		if err != nil {
			return fmt.Errorf("rig template not found: %s", args[0])
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			t.Name = name
		}
		if cmd.Flags().Changed("unit") {
			t.Unit = tplUnit
		}
		if cmd.Flags().Changed("category") {
			t.Category = tplCategory
		}
		if cmd.Flags().Changed("options") {
			t.Options = tplOptions
		}
		if cmd.Flags().Changed("position") {
			t.Position = tplPosition
		}

		if err := repo.UpdateRigTemplate(t); err != nil {
			return fmt.Errorf("failed to update rig template: %w", err)
		}
		color.Green("✓ Updated template %s", t.Name)
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a rig template",
	Long: `Delete a rig template. Items in past logs keep their recorded values;
future drafts simply no longer include the parameter.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteRigTemplate(args[0]); err != nil {
			return fmt.Errorf("failed to delete rig template: %w", err)
		}
		color.Green("✓ Deleted template %s", args[0])
		return nil
	},
}

func init() {
	templateAddCmd.Flags().StringVarP(&tplUnit, "unit", "u", "", "unit of measurement")
	templateAddCmd.Flags().StringVarP(&tplCategory, "category", "c", "", "grouping category")
	templateAddCmd.Flags().StringSliceVar(&tplOptions, "options", nil, "comma-separated choices for a selectable parameter")
	templateAddCmd.Flags().IntVar(&tplPosition, "position", 0, "display position")

	templateUpdateCmd.Flags().String("name", "", "new name")
	templateUpdateCmd.Flags().StringVarP(&tplUnit, "unit", "u", "", "unit of measurement")
	templateUpdateCmd.Flags().StringVarP(&tplCategory, "category", "c", "", "grouping category")
	templateUpdateCmd.Flags().StringSliceVar(&tplOptions, "options", nil, "comma-separated choices")
	templateUpdateCmd.Flags().IntVar(&tplPosition, "position", 0, "display position")

	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateUpdateCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
