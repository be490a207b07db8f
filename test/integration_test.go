// ABOUTME: Integration tests for rigbook CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	rigbookBinary := filepath.Join(projectRoot, "rigbook")

	buildCmd := exec.Command("go", "build", "-o", rigbookBinary, "./cmd/rigbook")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(rigbookBinary)

	// Point config and data at temp dirs so the test never touches real data
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"NO_COLOR=1",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(rigbookBinary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Add a boat with seeded defaults
	output, err := run("boat", "add", "Thunderbird", "--seed")
	if err != nil {
		t.Fatalf("Failed to add boat: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added boat Thunderbird") {
		t.Errorf("Expected 'Added boat Thunderbird' in output, got: %s", output)
	}

	output, err = run("boat", "list")
	if err != nil {
		t.Fatalf("Failed to list boats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Thunderbird") {
		t.Errorf("Expected boat name in list, got: %s", output)
	}
	boatID := firstField(output)
	if boatID == "" {
		t.Fatalf("Could not extract boat ID from list output: %s", output)
	}

	// Seeded templates show up in the template list
	output, err = run("template", "list", boatID)
	if err != nil {
		t.Fatalf("Failed to list templates: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Forestay") {
		t.Errorf("Expected seeded Forestay template, got: %s", output)
	}

	// Log a rig snapshot; unset parameters carry defaults
	output, err = run("rig", "log", boatID, "--set", "Forestay=24")
	if err != nil {
		t.Fatalf("Failed to log rig: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Saved rig log") {
		t.Errorf("Expected 'Saved rig log' in output, got: %s", output)
	}

	output, err = run("rig", "score", boatID)
	if err != nil {
		t.Fatalf("Failed to score rig: %v\n%s", err, output)
	}
	if !strings.Contains(output, "100") {
		t.Errorf("Expected perfect score for all-normal rig, got: %s", output)
	}

	// Stats over the logged parameter
	output, err = run("stats", boatID, "Forestay")
	if err != nil {
		t.Fatalf("Failed to get stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "24") {
		t.Errorf("Expected logged value in stats, got: %s", output)
	}

	// Checklist comes seeded and grouped
	output, err = run("checklist", "list", boatID)
	if err != nil {
		t.Fatalf("Failed to list checklist: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Before Sailing") {
		t.Errorf("Expected seeded checklist categories, got: %s", output)
	}

	// Shared ergo session
	output, err = run("session", "add", "--shared", "--type", "ergo", "--memo", "2k test")
	if err != nil {
		t.Fatalf("Failed to add session: %v\n%s", err, output)
	}

	output, err = run("session", "list", boatID)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v\n%s", err, output)
	}
	if !strings.Contains(output, "ergo") {
		t.Errorf("Expected shared ergo session visible from boat, got: %s", output)
	}

	// Export round trip
	exportPath := filepath.Join(tmpDir, "export.json")
	output, err = run("export", "json", "-o", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}
	if !strings.Contains(string(data), "Thunderbird") {
		t.Errorf("Export file missing boat name")
	}
}

// firstField returns the first whitespace-delimited token of the first
// non-empty output line, which the list commands print as the ID prefix.
func firstField(output string) string {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
