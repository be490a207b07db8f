// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseTime, truncate, padRight, and command flags.
package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2026-08-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-08-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-08-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2026-08-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-08-2026",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	result, err := parseTime("2026-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2026 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short string: got %q", got)
	}
	if got := truncate("a very long memo about rigging", 10); got != "a very ..." {
		t.Errorf("truncate long string: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight: got %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight overflow: got %q", got)
	}
}

func TestBoatCmdStructure(t *testing.T) {
	if boatCmd.Aliases[0] != "b" {
		t.Errorf("Expected boat alias 'b', got %v", boatCmd.Aliases)
	}
	if boatAddCmd.Flags().Lookup("seed") == nil {
		t.Error("Expected --seed flag on boat add")
	}
	if boatDeleteCmd.Flags().Lookup("force") == nil {
		t.Error("Expected --force flag on boat delete")
	}
}

func TestRigLogCmdFlags(t *testing.T) {
	for _, flag := range []string{"set", "status", "date", "memo"} {
		if rigLogCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected --%s flag on rig log", flag)
		}
	}
}

func TestSessionAddCmdFlags(t *testing.T) {
	for _, flag := range []string{"boat", "shared", "type", "date", "memo", "template", "set"} {
		if sessionAddCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected --%s flag on session add", flag)
		}
	}
}

func TestSummaryCmdFlags(t *testing.T) {
	for _, flag := range []string{"distance", "seconds", "pace", "stroke-rate", "power", "category", "target", "rest", "split"} {
		if sessionSummaryCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected --%s flag on session summary", flag)
		}
	}
}

func TestCmdAliases(t *testing.T) {
	if templateCmd.Aliases[0] != "tpl" {
		t.Errorf("Expected template alias 'tpl', got %v", templateCmd.Aliases)
	}
	if checklistCmd.Aliases[0] != "check" {
		t.Errorf("Expected checklist alias 'check', got %v", checklistCmd.Aliases)
	}
}

func TestLongDescriptions(t *testing.T) {
	for _, cmd := range []struct {
		name string
		long string
	}{
		{"root", rootCmd.Long},
		{"rig", rigCmd.Long},
		{"template", templateCmd.Long},
		{"workout", workoutCmd.Long},
		{"session", sessionCmd.Long},
	} {
		if cmd.long == "" {
			t.Errorf("Expected long description on %s command", cmd.name)
		}
	}
}

// setupTestCLI redirects config and data to a temp directory and
// pre-opens the database for direct assertions.
func setupTestCLI(t *testing.T) (*storage.DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "rigbook-cli-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	originalData := os.Getenv("XDG_DATA_HOME")
	originalConfig := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_DATA_HOME", tmpDir)
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	dbPath := filepath.Join(tmpDir, "rigbook", "rigbook.db")
	testDB, err := storage.Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
		t.Fatalf("Failed to open database: %v", err)
	}

	cleanup := func() {
		testDB.Close()
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
	}

	return testDB, cleanup
}

func TestBoatAddCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	boatAddSeed = false

	rootCmd.SetArgs([]string{"boat", "add", "Thunderbird"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("boat add failed: %v", err)
	}

	boats, err := testDB.ListBoats()
	if err != nil {
		t.Fatalf("ListBoats failed: %v", err)
	}
	if len(boats) != 1 || boats[0].Name != "Thunderbird" {
		t.Errorf("Expected boat Thunderbird, got %+v", boats)
	}
}

func TestBoatAddCmdWithSeed(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	boatAddSeed = false

	rootCmd.SetArgs([]string{"boat", "add", "Seeded", "--seed"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("boat add --seed failed: %v", err)
	}

	boats, err := testDB.ListBoats()
	if err != nil {
		t.Fatalf("ListBoats failed: %v", err)
	}
	if len(boats) != 1 {
		t.Fatalf("Expected 1 boat, got %d", len(boats))
	}
	templates, err := testDB.ListRigTemplates(boats[0].ID)
	if err != nil {
		t.Fatalf("ListRigTemplates failed: %v", err)
	}
	if len(templates) != 8 {
		t.Errorf("Expected 8 seeded templates, got %d", len(templates))
	}
}

func TestRigLogCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	b := models.NewBoat("Rigged")
	if err := testDB.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	tpl := models.NewRigItemTemplate(b.ID, "Forestay", "%", "Stretcher")
	if err := testDB.CreateRigTemplate(tpl); err != nil {
		t.Fatalf("CreateRigTemplate failed: %v", err)
	}

	rigDate = ""
	rigMemo = ""
	rigSet = nil
	rigStatus = nil

	rootCmd.SetArgs([]string{"rig", "log", b.ID.String()[:8], "--set", "Forestay=24.5"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("rig log failed: %v", err)
	}

	latest, err := testDB.LatestRigLog(b.ID)
	if err != nil {
		t.Fatalf("LatestRigLog failed: %v", err)
	}
	if latest == nil {
		t.Fatal("Expected a rig log")
	}
	if len(latest.Items) != 1 || latest.Items[0].Value != 24.5 {
		t.Errorf("Expected Forestay=24.5, got %+v", latest.Items)
	}
}

func TestRigLogCmdCarriesForward(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	b := models.NewBoat("Carried")
	if err := testDB.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	forestay := models.NewRigItemTemplate(b.ID, "Forestay", "%", "Stretcher")
	backstay := models.NewRigItemTemplate(b.ID, "Backstay", "lbs", "Stretcher").WithPosition(1)
	for _, tpl := range []*models.RigItemTemplate{forestay, backstay} {
		if err := testDB.CreateRigTemplate(tpl); err != nil {
			t.Fatalf("CreateRigTemplate failed: %v", err)
		}
	}

	first := models.NewRigLog(b.ID, time.Now().Add(-24*time.Hour), "")
	first.Items = []models.RigItem{
		*models.NewRigItem(forestay, 24, models.StatusNormal),
		*models.NewRigItem(backstay, 610, models.StatusNormal),
	}
	if err := testDB.CreateRigLog(first); err != nil {
		t.Fatalf("CreateRigLog failed: %v", err)
	}

	rigDate = ""
	rigMemo = ""
	rigSet = nil
	rigStatus = nil

	// Only change the forestay; the backstay value carries forward.
	rootCmd.SetArgs([]string{"rig", "log", b.ID.String()[:8], "--set", "Forestay=25"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("rig log failed: %v", err)
	}

	latest, err := testDB.LatestRigLog(b.ID)
	if err != nil {
		t.Fatalf("LatestRigLog failed: %v", err)
	}
	if latest == nil || latest.ID == first.ID {
		t.Fatal("Expected a new rig log")
	}
	values := map[string]float64{}
	for _, item := range latest.Items {
		values[item.Name] = item.Value
	}
	if values["Forestay"] != 25 {
		t.Errorf("Forestay: got %v, want 25", values["Forestay"])
	}
	if values["Backstay"] != 610 {
		t.Errorf("Backstay should carry forward: got %v, want 610", values["Backstay"])
	}
}

func TestChecklistCheckCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	b := models.NewBoat("Listed")
	if err := testDB.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	item := models.NewChecklistItem(b.ID, "Check forestay tension", "Before Sailing")
	if err := testDB.CreateChecklistItem(item); err != nil {
		t.Fatalf("CreateChecklistItem failed: %v", err)
	}

	rootCmd.SetArgs([]string{"checklist", "check", item.ID.String()[:8]})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("checklist check failed: %v", err)
	}

	items, err := testDB.ListChecklist(b.ID)
	if err != nil {
		t.Fatalf("ListChecklist failed: %v", err)
	}
	if len(items) != 1 || !items[0].Done {
		t.Errorf("Expected item checked, got %+v", items)
	}
}

func TestSessionAddSharedCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	sessionBoat = ""
	sessionShared = false
	sessionType = ""
	sessionDate = ""
	sessionMemo = ""
	sessionTemplate = ""
	sessionSet = nil

	rootCmd.SetArgs([]string{"session", "add", "--shared", "--type", "ergo", "--memo", "2k test"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("session add failed: %v", err)
	}

	sessions, err := testDB.ListTrainingSessions(models.NewBoat("any").ID, nil)
	if err != nil {
		t.Fatalf("ListTrainingSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session visible from any boat, got %d", len(sessions))
	}
	if !sessions[0].Shared || sessions[0].Memo != "2k test" {
		t.Errorf("Session mismatch: %+v", sessions[0])
	}
}

func TestSessionAddRequiresOwner(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	sessionBoat = ""
	sessionShared = false
	sessionType = ""
	sessionDate = ""
	sessionMemo = ""
	sessionTemplate = ""
	sessionSet = nil

	rootCmd.SetArgs([]string{"session", "add", "--type", "ergo"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for session without --boat or --shared")
	}
}

func TestWorkoutAddCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	workoutBoat = ""
	workoutType = "ergo"
	workoutCategory = ""
	workoutMetrics = nil

	rootCmd.SetArgs([]string{"workout", "add", "Steady State", "--metric", "Distance:m", "--metric", "Avg HR:bpm"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("workout add failed: %v", err)
	}

	templates, err := testDB.ListWorkoutTemplates(models.NewBoat("any").ID, nil)
	if err != nil {
		t.Fatalf("ListWorkoutTemplates failed: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("Expected 1 shared template, got %d", len(templates))
	}
	if len(templates[0].Metrics) != 2 {
		t.Errorf("Expected 2 metrics, got %d", len(templates[0].Metrics))
	}
}

func TestExportCmdToFile(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	if err := testDB.CreateBoat(models.NewBoat("Exported")); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}

	tmpFile := filepath.Join(os.TempDir(), "rigbook-export-test.json")
	defer os.Remove(tmpFile)

	exportOutput = ""
	rootCmd.SetArgs([]string{"export", "json", "-o", tmpFile})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("export failed: %v", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if len(data) == 0 {
		t.Error("Export file is empty")
	}
}
