// ABOUTME: CLI commands for training sessions, summaries, and splits.
// ABOUTME: Sessions belong to one boat or are shared across all of them.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/rigbook/internal/models"
	"github.com/spf13/cobra"
)

var (
	sessionBoat     string
	sessionShared   bool
	sessionType     string
	sessionListType string
	sessionDate     string
	sessionMemo     string
	sessionTemplate string
	sessionSet      []string

	summaryDistance   float64
	summarySeconds    float64
	summaryPace       float64
	summaryStrokeRate float64
	summaryPower      float64
	summaryCategory   string
	summaryTarget     float64
	summaryRest       int
	summarySplits     []string
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage training sessions",
	Long: `Record and browse training sessions.

A session belongs to one boat, or is shared (--shared) and appears in
every boat's training view. Shared sessions are for ergo work that
isn't tied to a hull. Logging from a workout template pre-fills the
session's metrics in template order.`,
}

var sessionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a training session",
	Long: `Log a training session for a boat, or shared across all boats.

Examples:
  rigbook session add --boat 1a2b --type water --memo "2h technique"
  rigbook session add --shared --type ergo --template 2000
  rigbook session add --boat 1a2b --type ergo --set "Stroke Rate"=28`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sessionShared == (sessionBoat != "") {
			return fmt.Errorf("give exactly one of --boat or --shared")
		}
		if !models.IsValidSessionType(sessionType) {
			return fmt.Errorf("unknown session type: %s (use ergo or water)", sessionType)
		}
		st := models.SessionType(sessionType)

		date := time.Now()
		if sessionDate != "" {
			var err error
			date, err = parseTime(sessionDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", sessionDate)
			}
		}

		var sess *models.TrainingSession
		if sessionShared {
			sess = models.NewSharedTrainingSession(date, st)
		} else {
			b, err := repo.GetBoat(sessionBoat)
			if err != nil {
				return fmt.Errorf("boat not found: %s", sessionBoat)
			}
			sess = models.NewTrainingSession(b.ID, date, st)
		}
		if sessionMemo != "" {
			sess.WithMemo(sessionMemo)
		}
		if sessionTemplate != "" {
			tmpl, err := repo.GetWorkoutTemplate(sessionTemplate)
			if err != nil {
				return fmt.Errorf("workout template not found: %s", sessionTemplate)
			}
			sess.WithWorkoutTemplate(tmpl)
		}
		if err := applyMetricOverrides(sess, sessionSet); err != nil {
			return err
		}

		if err := repo.CreateTrainingSession(sess); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		color.Green("✓ Logged %s session", sessionType)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(sess.ID.String()[:8]),
			sess.Date.Format("2006-01-02"))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list <boat-id>",
	Aliases: []string{"ls"},
	Short:   "List a boat's sessions including shared ergo sessions",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := repo.GetBoat(args[0])
		if err != nil {
			return fmt.Errorf("boat not found: %s", args[0])
		}
		var st *models.SessionType
		if sessionListType != "" {
			if !models.IsValidSessionType(sessionListType) {
				return fmt.Errorf("unknown session type: %s", sessionListType)
			}
			t := models.SessionType(sessionListType)
			st = &t
		}

		sessions, err := repo.ListTrainingSessions(b.ID, st)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, sess := range sessions {
			tags := string(sess.SessionType)
			if sess.Shared {
				tags += ", shared"
			}
			memo := ""
			if sess.Memo != "" {
				memo = faint.Sprintf(" (%s)", truncate(sess.Memo, 40))
			}
			fmt.Printf("%s %s  %s%s\n",
				faint.Sprint(sess.ID.String()[:8]),
				sess.Date.Format("2006-01-02"),
				tags,
				memo)
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session with metrics, summary, and splits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := repo.GetTrainingSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		scope := "shared"
		if sess.BoatID != nil {
			scope = "boat " + sess.BoatID.String()[:8]
		}
		fmt.Printf("%s  %s %s (%s)\n",
			sess.Date.Format("2006-01-02"),
			faint.Sprint(sess.ID.String()[:8]),
			sess.SessionType,
			scope)
		if sess.Memo != "" {
			fmt.Printf("%s\n", sess.Memo)
		}
		if len(sess.Image) > 0 {
			fmt.Printf("%s\n", faint.Sprintf("attachment: %d bytes", len(sess.Image)))
		}

		if len(sess.Metrics) > 0 {
			fmt.Println()
			for _, m := range sess.Metrics {
				fmt.Printf("  %s %.2f %s\n", padRight(m.Name, 20), m.Value, m.Unit)
			}
		}

		if ws := sess.Summary; ws != nil {
			fmt.Println()
			color.Cyan("Summary")
			fmt.Printf("  %.0fm in %s", ws.TotalDistance, formatSeconds(ws.TotalSeconds))
			if ws.AvgPace > 0 {
				fmt.Printf("  @ %s/500m", formatSeconds(ws.AvgPace))
			}
			if ws.AvgStrokeRate > 0 {
				fmt.Printf("  %.0fspm", ws.AvgStrokeRate)
			}
			if ws.AvgPower > 0 {
				fmt.Printf("  %.0fW", ws.AvgPower)
			}
			fmt.Println()
			for _, split := range ws.Splits {
				fmt.Printf("  %d) %.0fm  %s  %s/500m  %.0fspm\n",
					split.Position, split.Distance,
					formatSeconds(split.Seconds), formatSeconds(split.Pace),
					split.StrokeRate)
			}
		}
		return nil
	},
}

var sessionEditCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit a session in place",
	Long: `Edit an existing session. --date and --memo change the session,
--set name=value changes metric values. Edits rewrite the session; no
new version is created.

Examples:
  rigbook session edit 5d6c --set "Stroke Rate"=30
  rigbook session edit 5d6c --memo "Felt heavy, headwind"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := repo.GetTrainingSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		if sessionDate != "" {
			sess.Date, err = parseTime(sessionDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", sessionDate)
			}
		}
		if cmd.Flags().Changed("memo") {
			sess.Memo = sessionMemo
		}
		if err := applyMetricOverrides(sess, sessionSet); err != nil {
			return err
		}

		if err := repo.UpdateTrainingSession(sess); err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		color.Green("✓ Updated session %s", sess.ID.String()[:8])
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <session-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session with its metrics and summary",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteTrainingSession(args[0]); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		color.Green("✓ Deleted session %s", args[0])
		return nil
	},
}

var sessionAttachCmd = &cobra.Command{
	Use:   "attach <session-id> <file>",
	Short: "Attach an image to a session",
	Long: `Attach an image (ergo screen photo, rig photo) to a session.
Replaces any existing attachment.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		if err := repo.AttachSessionImage(args[0], data); err != nil {
			return fmt.Errorf("failed to attach image: %w", err)
		}
		color.Green("✓ Attached %s (%d bytes)", args[1], len(data))
		return nil
	},
}

var sessionSummaryCmd = &cobra.Command{
	Use:   "summary <session-id>",
	Short: "Record a workout summary with splits",
	Long: `Record the aggregate result of a session, replacing any existing
summary. Splits are distance,seconds,pace,strokeRate,power tuples and
are numbered in the order given.

Examples:
  rigbook session summary 5d6c --distance 2000 --seconds 428 --pace 107
  rigbook session summary 5d6c --distance 2000 --seconds 428 \
      --split 500,105,105,30,310 --split 500,107,107,29,300 \
      --split 500,108,108,29,295 --split 500,108,108,31,305`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := repo.GetTrainingSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		ws := models.NewWorkoutSummary(sess.ID)
		ws.TotalDistance = summaryDistance
		ws.TotalSeconds = summarySeconds
		ws.AvgPace = summaryPace
		ws.AvgStrokeRate = summaryStrokeRate
		ws.AvgPower = summaryPower
		ws.Category = summaryCategory
		ws.TargetValue = summaryTarget
		if cmd.Flags().Changed("rest") {
			rest := summaryRest
			ws.RestSeconds = &rest
		}

		for _, s := range summarySplits {
			parts := strings.Split(s, ",")
			if len(parts) != 5 {
				return fmt.Errorf("invalid --split (want distance,seconds,pace,strokeRate,power): %s", s)
			}
			vals := make([]float64, 5)
			for i, p := range parts {
				v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
				if err != nil {
					return fmt.Errorf("invalid split value %q in %s", p, s)
				}
				vals[i] = v
			}
			ws.AddSplit(vals[0], vals[1], vals[2], vals[3], vals[4])
		}

		if err := repo.SaveWorkoutSummary(ws); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		color.Green("✓ Saved summary with %d splits", len(ws.Splits))
		return nil
	},
}

var sessionSplitDeleteCmd = &cobra.Command{
	Use:   "split-delete <session-id> <position>",
	Short: "Delete one split and renumber the rest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := repo.GetTrainingSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}
		if sess.Summary == nil {
			return fmt.Errorf("session has no summary")
		}
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[1])
		}
		if err := repo.DeleteSplit(sess.Summary.ID, position); err != nil {
			return fmt.Errorf("failed to delete split: %w", err)
		}
		color.Green("✓ Deleted split %d", position)
		return nil
	},
}

// applyMetricOverrides applies --set name=value pairs to session metrics.
func applyMetricOverrides(sess *models.TrainingSession, sets []string) error {
	for _, pair := range sets {
		name, value, ok := splitPair(pair)
		if !ok {
			return fmt.Errorf("invalid --set (want name=value): %s", pair)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %s", name, value)
		}
		found := false
		for i := range sess.Metrics {
			if sess.Metrics[i].Name == name {
				sess.Metrics[i].Value = f
				found = true
				break
			}
		}
		if !found {
			sess.Metrics = append(sess.Metrics, models.TrainingMetric{
				ID:        uuid.New(),
				SessionID: sess.ID,
				Name:      name,
				Value:     f,
				Position:  len(sess.Metrics),
			})
		}
	}
	return nil
}

func formatSeconds(s float64) string {
	total := int(s)
	return fmt.Sprintf("%d:%04.1f", total/60, s-float64(total/60*60))
}

func init() {
	sessionAddCmd.Flags().StringVar(&sessionBoat, "boat", "", "owning boat ID")
	sessionAddCmd.Flags().BoolVar(&sessionShared, "shared", false, "shared session, visible from every boat")
	sessionAddCmd.Flags().StringVarP(&sessionType, "type", "t", "", "session type (ergo or water)")
	sessionAddCmd.Flags().StringVar(&sessionDate, "date", "", "session date (YYYY-MM-DD), defaults to now")
	sessionAddCmd.Flags().StringVar(&sessionMemo, "memo", "", "free-text notes")
	sessionAddCmd.Flags().StringVar(&sessionTemplate, "template", "", "workout template ID to pre-fill metrics from")
	sessionAddCmd.Flags().StringArrayVar(&sessionSet, "set", nil, "metric value, name=value (repeatable)")

	sessionListCmd.Flags().StringVarP(&sessionListType, "type", "t", "", "filter by session type")

	sessionEditCmd.Flags().StringVar(&sessionDate, "date", "", "new session date")
	sessionEditCmd.Flags().StringVar(&sessionMemo, "memo", "", "new memo")
	sessionEditCmd.Flags().StringArrayVar(&sessionSet, "set", nil, "metric value, name=value (repeatable)")

	sessionSummaryCmd.Flags().Float64Var(&summaryDistance, "distance", 0, "total distance in meters")
	sessionSummaryCmd.Flags().Float64Var(&summarySeconds, "seconds", 0, "total elapsed seconds")
	sessionSummaryCmd.Flags().Float64Var(&summaryPace, "pace", 0, "average pace in seconds per 500m")
	sessionSummaryCmd.Flags().Float64Var(&summaryStrokeRate, "stroke-rate", 0, "average strokes per minute")
	sessionSummaryCmd.Flags().Float64Var(&summaryPower, "power", 0, "average watts")
	sessionSummaryCmd.Flags().StringVar(&summaryCategory, "category", "", "workout shape (single_distance, single_time, distance_interval, time_interval)")
	sessionSummaryCmd.Flags().Float64Var(&summaryTarget, "target", 0, "interval target (meters or seconds)")
	sessionSummaryCmd.Flags().IntVar(&summaryRest, "rest", 0, "rest seconds between intervals")
	sessionSummaryCmd.Flags().StringArrayVar(&summarySplits, "split", nil, "split as distance,seconds,pace,strokeRate,power (repeatable)")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionEditCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	sessionCmd.AddCommand(sessionAttachCmd)
	sessionCmd.AddCommand(sessionSummaryCmd)
	sessionCmd.AddCommand(sessionSplitDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
