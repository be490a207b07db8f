// ABOUTME: Tests for export/import round-trips and backend migration.
// ABOUTME: Verifies IDs and relationships survive a full data transfer.
package storage

import (
	"bytes"
	"testing"
	"time"

	"github.com/harperreed/rigbook/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)

	b := models.NewBoat("Exported")
	if err := src.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	if err := SeedBoat(src, b.ID); err != nil {
		t.Fatalf("SeedBoat failed: %v", err)
	}
	if err := SeedWorkoutTemplates(src); err != nil {
		t.Fatalf("SeedWorkoutTemplates failed: %v", err)
	}

	templates, err := src.ListRigTemplates(b.ID)
	if err != nil {
		t.Fatalf("ListRigTemplates failed: %v", err)
	}
	log := models.NewRigLog(b.ID, time.Now(), "pre-race setup")
	log.Items = []models.RigItem{*models.NewRigItem(templates[0], 24.5, models.StatusCaution)}
	if err := src.CreateRigLog(log); err != nil {
		t.Fatalf("CreateRigLog failed: %v", err)
	}

	sess := models.NewTrainingSession(b.ID, time.Now(), models.SessionErgo).WithMemo("test piece")
	if err := src.CreateTrainingSession(sess); err != nil {
		t.Fatalf("CreateTrainingSession failed: %v", err)
	}
	ws := models.NewWorkoutSummary(sess.ID).AddSplit(500, 95, 95, 28, 210)
	ws.TotalDistance = 2000
	if err := src.SaveWorkoutSummary(ws); err != nil {
		t.Fatalf("SaveWorkoutSummary failed: %v", err)
	}

	data, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(data.Boats) != 1 {
		t.Errorf("Expected 1 boat in export, got %d", len(data.Boats))
	}
	if len(data.WorkoutTemplates) != 3 {
		t.Errorf("Expected 3 workout templates in export, got %d", len(data.WorkoutTemplates))
	}

	dst := setupTestDB(t)
	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	gotBoat, err := dst.GetBoat(b.ID.String())
	if err != nil {
		t.Fatalf("GetBoat after import failed: %v", err)
	}
	if gotBoat.ID != b.ID || gotBoat.Name != "Exported" {
		t.Errorf("Boat ID not preserved: got %+v", gotBoat)
	}

	gotLog, err := dst.GetRigLog(log.ID.String())
	if err != nil {
		t.Fatalf("GetRigLog after import failed: %v", err)
	}
	if len(gotLog.Items) != 1 || gotLog.Items[0].Value != 24.5 {
		t.Errorf("Rig items not imported: %+v", gotLog.Items)
	}

	gotSess, err := dst.GetTrainingSession(sess.ID.String())
	if err != nil {
		t.Fatalf("GetTrainingSession after import failed: %v", err)
	}
	if gotSess.Summary == nil || gotSess.Summary.TotalDistance != 2000 {
		t.Errorf("Summary not imported: %+v", gotSess.Summary)
	}
	if len(gotSess.Summary.Splits) != 1 {
		t.Errorf("Splits not imported: %+v", gotSess.Summary.Splits)
	}
}

func TestWriteAndReadJSON(t *testing.T) {
	db := setupTestDB(t)

	b := models.NewBoat("Serialized")
	if err := db.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	parsed, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if len(parsed.Boats) != 1 || parsed.Boats[0].ID != b.ID {
		t.Errorf("JSON round trip lost the boat: %+v", parsed.Boats)
	}
}

func TestWriteYAML(t *testing.T) {
	db := setupTestDB(t)

	b := models.NewBoat("Yacht Markup")
	if err := db.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, data); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Yacht Markup")) {
		t.Error("YAML output missing boat name")
	}
}

func TestMigrateData(t *testing.T) {
	src := setupTestDB(t)
	dst := setupTestDB(t)

	b := models.NewBoat("Migrated")
	if err := src.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	if err := SeedBoat(src, b.ID); err != nil {
		t.Fatalf("SeedBoat failed: %v", err)
	}
	sess := models.NewSharedTrainingSession(time.Now(), models.SessionErgo)
	if err := src.CreateTrainingSession(sess); err != nil {
		t.Fatalf("CreateTrainingSession failed: %v", err)
	}

	result, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if result.Boats != 1 {
		t.Errorf("Expected 1 boat migrated, got %d", result.Boats)
	}
	if result.RigTemplates != 8 {
		t.Errorf("Expected 8 rig templates migrated, got %d", result.RigTemplates)
	}
	if result.ChecklistItems != 7 {
		t.Errorf("Expected 7 checklist items migrated, got %d", result.ChecklistItems)
	}
	if result.Sessions != 1 {
		t.Errorf("Expected 1 session migrated, got %d", result.Sessions)
	}

	if _, err := dst.GetBoat(b.ID.String()); err != nil {
		t.Fatalf("GetBoat in destination failed: %v", err)
	}
	if _, err := dst.GetTrainingSession(sess.ID.String()); err != nil {
		t.Fatalf("GetTrainingSession in destination failed: %v", err)
	}
}
