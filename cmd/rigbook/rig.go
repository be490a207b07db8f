// ABOUTME: CLI commands for rig logs: draft, log, list, show, edit, delete.
// ABOUTME: New logs carry forward the latest values so only changes are typed.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/spf13/cobra"
)

var (
	rigDate   string
	rigMemo   string
	rigSet    []string
	rigStatus []string
)

var rigCmd = &cobra.Command{
	Use:   "rig",
	Short: "Manage rig logs",
	Long: `Record and browse rig setting snapshots.

Each log is a frozen snapshot: it keeps the parameter names, units, and
values as they were at log time, even if templates are later renamed or
deleted. New logs start from the latest recorded values.`,
}

var rigDraftCmd = &cobra.Command{
	Use:   "draft <boat-id>",
	Short: "Preview the carried-forward values for a new log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		items, err := draftForBoat(b.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No rig templates defined. Add some with 'rigbook template add'.")
			return nil
		}
		printRigItems(items)
		return nil
	},
}

var rigLogCmd = &cobra.Command{
	Use:   "log <boat-id>",
	Short: "Save a rig log, carrying the latest values forward",
	Long: `Save a rig log for a boat. Values start from the most recent log
(or template defaults when there is no history) and --set overrides
apply on top, so you only type what changed.

Examples:
  rigbook rig log 1a2b --set Forestay=24 --set Backstay=620
  rigbook rig log 1a2b --set "Clutch Setting"=Mid --status Forestay=caution
  rigbook rig log 1a2b --date 2026-08-30 --memo "Pre-race, 12kt breeze"`,
	Args: cobra.ExactArgs(1),
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
			return fmt.Errorf("no rig templates defined; add some with 'rigbook template add'")
		}
		history, err := repo.ListRigLogs(b.ID)
		if err != nil {
			return fmt.Errorf("failed to list rig logs: %w", err)
		}

		date := time.Now()
		if rigDate != "" {
			date, err = parseTime(rigDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", rigDate)
			}
		}

		log := models.NewRigLog(b.ID, date, rigMemo)
		items := rig.NewDraft(templates, history)
		if err := applyOverrides(items, templates, rigSet, rigStatus); err != nil {
			return err
		}
		for i := range items {
			items[i].RigLogID = log.ID
		}
		log.Items = items

		if err := repo.CreateRigLog(log); err != nil {
			return fmt.Errorf("failed to create rig log: %w", err)
		}

		color.Green("✓ Saved rig log with %d items", len(log.Items))
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(log.ID.String()[:8]),
			log.Date.Format("2006-01-02"))
		return nil
	},
}

var rigListCmd = &cobra.Command{
	Use:     "list <boat-id>",
	Aliases: []string{"ls"},
	Short:   "List a boat's rig logs, newest first",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		logs, err := repo.ListRigLogs(b.ID)
		if err != nil {
			return fmt.Errorf("failed to list rig logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No rig logs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, log := range logs {
			memo := ""
			if log.Memo != "" {
				memo = faint.Sprintf(" (%s)", truncate(log.Memo, 40))
			}
			warn := ""
			if n := countStatus(log, models.StatusCritical); n > 0 {
				warn = color.RedString(" %d critical", n)
			} else if n := countStatus(log, models.StatusCaution); n > 0 {
				warn = color.YellowString(" %d caution", n)
			}
			fmt.Printf("%s %s  %d items%s%s\n",
				faint.Sprint(log.ID.String()[:8]),
				log.Date.Format("2006-01-02"),
				len(log.Items),
				warn,
				memo)
		}
		return nil
	},
}

var rigShowCmd = &cobra.Command{
	Use:   "show <log-id>",
	Short: "Show a rig log with all its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := repo.GetRigLog(args[0])
		if err != nil {
			return fmt.Errorf("rig log not found: %s", args[0])
		}

		fmt.Printf("%s  %s\n", log.Date.Format("2006-01-02"), color.New(color.Faint).Sprint(log.ID.String()[:8]))
		if log.Memo != "" {
			fmt.Printf("%s\n", log.Memo)
		}
		fmt.Println()
		printRigItems(log.Items)
		fmt.Println()
		fmt.Printf("Safety score: %s\n", colorScore(rig.SafetyScore(log)))
		return nil
	},
}

var rigEditCmd = &cobra.Command{
	Use:   "edit <log-id>",
	Short: "Edit a rig log in place",
	Long: `Edit an existing rig log. --set and --status change item values,
--date and --memo change the log itself. Edits rewrite the log; no new
version is created.

Examples:
  rigbook rig edit 7c8d --set Forestay=25
  rigbook rig edit 7c8d --memo "Corrected after measuring"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := repo.GetRigLog(args[0])
		if err != nil {
			return fmt.Errorf("rig log not found: %s", args[0])
		}
		templates, err := repo.ListRigTemplates(log.BoatID)
		if err != nil {
			return fmt.Errorf("failed to list rig templates: %w", err)
		}

		if rigDate != "" {
			log.Date, err = parseTime(rigDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", rigDate)
			}
		}
		if cmd.Flags().Changed("memo") {
			log.Memo = rigMemo
		}
		if err := applyOverrides(log.Items, templates, rigSet, rigStatus); err != nil {
			return err
		}

		if err := repo.UpdateRigLog(log); err != nil {
			return fmt.Errorf("failed to update rig log: %w", err)
		}
		color.Green("✓ Updated rig log %s", log.ID.String()[:8])
		return nil
	},
}

var rigDeleteCmd = &cobra.Command{
	Use:     "delete <log-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a rig log and its items",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteRigLog(args[0]); err != nil {
			return fmt.Errorf("failed to delete rig log: %w", err)
		}
		color.Green("✓ Deleted rig log %s", args[0])
		return nil
	},
}

var rigScoreCmd = &cobra.Command{
	Use:   "score <boat-id>",
	Short: "Show a boat's equipment safety score",
	Long: `Show the equipment safety score for a boat's latest rig log.

The score starts at 100 and drops 30 per critical item and 10 per
caution item, floored at zero. A boat with no logs scores 100.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		latest, err := repo.LatestRigLog(b.ID)
		if err != nil {
			return fmt.Errorf("failed to get latest rig log: %w", err)
		}

		fmt.Printf("%s: %s/100\n", b.Name, colorScore(rig.SafetyScore(latest)))
		if latest == nil {
			fmt.Println(color.New(color.Faint).Sprint("  no rig logs yet"))
			return nil
		}
		for _, item := range latest.Items {
			switch item.Status {
			case models.StatusCritical:
				color.Red("  ✗ %s", item.Name)
			case models.StatusCaution:
				color.Yellow("  ! %s", item.Name)
			}
		}
		return nil
	},
}

func draftForBoat(boatID uuid.UUID) ([]models.RigItem, error) {
	templates, err := repo.ListRigTemplates(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rig templates: %w", err)
	}
	history, err := repo.ListRigLogs(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rig logs: %w", err)
	}
	return rig.NewDraft(templates, history), nil
}

// applyOverrides applies --set and --status pairs (name=value) to items.
func applyOverrides(items []models.RigItem, templates []*models.RigItemTemplate, sets, statuses []string) error {
	choice := make(map[string]bool, len(templates))
	for _, t := range templates {
		choice[t.Name] = t.IsChoice()
	}

	for _, pair := range sets {
		name, value, ok := splitPair(pair)
		if !ok {
			return fmt.Errorf("invalid --set (want name=value): %s", pair)
		}
		item := findItem(items, name)
		if item == nil {
			return fmt.Errorf("no rig parameter named %q", name)
		}
		if choice[name] || item.StringValue != nil {
			item.StringValue = &value
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %s", name, value)
		}
		item.Value = f
	}

	for _, pair := range statuses {
		name, value, ok := splitPair(pair)
		if !ok {
			return fmt.Errorf("invalid --status (want name=status): %s", pair)
		}
		if !models.IsValidRigItemStatus(value) {
			return fmt.Errorf("unknown status %q (use normal, caution, or critical)", value)
		}
		item := findItem(items, name)
		if item == nil {
			return fmt.Errorf("no rig parameter named %q", name)
		}
		item.Status = models.RigItemStatus(value)
	}
	return nil
}

func splitPair(s string) (name, value string, ok bool) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

func findItem(items []models.RigItem, name string) *models.RigItem {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}

func countStatus(log *models.RigLog, status models.RigItemStatus) int {
	n := 0
	for _, item := range log.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

func printRigItems(items []models.RigItem) {
	faint := color.New(color.Faint)
	for _, item := range items {
		value := fmt.Sprintf("%.2f %s", item.Value, item.Unit)
		if item.StringValue != nil {
			value = *item.StringValue
		}
		statusMark := ""
		switch item.Status {
		case models.StatusCaution:
			statusMark = color.YellowString(" [caution]")
		case models.StatusCritical:
			statusMark = color.RedString(" [critical]")
		}
		orphan := ""
		if item.Orphaned() {
			orphan = faint.Sprint(" (template deleted)")
		}
		fmt.Printf("  %s %s%s%s\n", padRight(item.Name, 20), value, statusMark, orphan)
	}
}

func init() {
	rigLogCmd.Flags().StringVar(&rigDate, "date", "", "log date (YYYY-MM-DD), defaults to now")
	rigLogCmd.Flags().StringVar(&rigMemo, "memo", "", "free-text notes")
	rigLogCmd.Flags().StringArrayVar(&rigSet, "set", nil, "override a value, name=value (repeatable)")
	rigLogCmd.Flags().StringArrayVar(&rigStatus, "status", nil, "set an item status, name=status (repeatable)")

	rigEditCmd.Flags().StringVar(&rigDate, "date", "", "new log date (YYYY-MM-DD)")
	rigEditCmd.Flags().StringVar(&rigMemo, "memo", "", "new memo")
	rigEditCmd.Flags().StringArrayVar(&rigSet, "set", nil, "override a value, name=value (repeatable)")
	rigEditCmd.Flags().StringArrayVar(&rigStatus, "status", nil, "set an item status, name=status (repeatable)")

	rigCmd.AddCommand(rigDraftCmd)
	rigCmd.AddCommand(rigLogCmd)
	rigCmd.AddCommand(rigListCmd)
	rigCmd.AddCommand(rigShowCmd)
	rigCmd.AddCommand(rigEditCmd)
	rigCmd.AddCommand(rigDeleteCmd)
	rigCmd.AddCommand(rigScoreCmd)
	rootCmd.AddCommand(rigCmd)
}
