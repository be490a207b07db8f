// ABOUTME: Tests for the Badger document store backend.
// ABOUTME: Exercises the same Repository contract as the SQLite store.
package kvstore

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/storage"
)

func TestBoatRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	b := models.NewBoat("Thunderbird")
	if err := store.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}

	got, err := store.GetBoat(b.ID.String())
	if err != nil {
		t.Fatalf("GetBoat failed: %v", err)
	}
	if got.ID != b.ID || got.Name != "Thunderbird" {
		t.Errorf("Boat mismatch: got %+v", got)
	}

	byPrefix, err := store.GetBoat(b.ID.String()[:8])
	if err != nil {
		t.Fatalf("GetBoat by prefix failed: %v", err)
	}
	if byPrefix.ID != b.ID {
		t.Errorf("Prefix lookup mismatch: got %v", byPrefix.ID)
	}

	boats, err := store.ListBoats()
	if err != nil {
		t.Fatalf("ListBoats failed: %v", err)
	}
	if len(boats) != 1 {
		t.Errorf("Expected 1 boat, got %d", len(boats))
	}
}

func TestDeleteBoatCascades(t *testing.T) {
	store := setupTestStore(t)

	b := models.NewBoat("Cascade")
	if err := store.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	if err := storage.SeedBoat(store, b.ID); err != nil {
		t.Fatalf("SeedBoat failed: %v", err)
	}
	sess := models.NewTrainingSession(b.ID, time.Now(), models.SessionOnWater)
	if err := store.CreateTrainingSession(sess); err != nil {
		t.Fatalf("CreateTrainingSession failed: %v", err)
	}
	shared := models.NewSharedTrainingSession(time.Now(), models.SessionErgo)
	if err := store.CreateTrainingSession(shared); err != nil {
		t.Fatalf("CreateTrainingSession failed: %v", err)
	}

	if err := store.DeleteBoat(b.ID.String()); err != nil {
		t.Fatalf("DeleteBoat failed: %v", err)
	}

	if _, err := store.GetBoat(b.ID.String()); err == nil {
		t.Error("Expected error getting deleted boat")
	}
	templates, err := store.ListRigTemplates(b.ID)
	if err != nil {
		t.Fatalf("ListRigTemplates failed: %v", err)
	}
	if len(templates) != 0 {
		t.Errorf("Expected templates deleted with boat, got %d", len(templates))
	}
	checklist, err := store.ListChecklist(b.ID)
	if err != nil {
		t.Fatalf("ListChecklist failed: %v", err)
	}
	if len(checklist) != 0 {
		t.Errorf("Expected checklist deleted with boat, got %d", len(checklist))
	}
	if _, err := store.GetTrainingSession(sess.ID.String()); err == nil {
		t.Error("Expected owned session deleted with boat")
	}
	// Shared sessions survive boat deletion.
	if _, err := store.GetTrainingSession(shared.ID.String()); err != nil {
		t.Errorf("Shared session should survive boat deletion: %v", err)
	}
}

func TestLatestRigLog(t *testing.T) {
	store := setupTestStore(t)

	b := models.NewBoat("Latest")
	if err := store.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}

	latest, err := store.LatestRigLog(b.ID)
	if err != nil {
		t.Fatalf("LatestRigLog failed: %v", err)
	}
	if latest != nil {
		t.Errorf("Expected nil log for empty history")
	}

	tpl := models.NewRigItemTemplate(b.ID, "Forestay", "%", "Stretcher")
	if err := store.CreateRigTemplate(tpl); err != nil {
		t.Fatalf("CreateRigTemplate failed: %v", err)
	}

	older := models.NewRigLog(b.ID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), "older")
	newer := models.NewRigLog(b.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "newer")
	newer.Items = []models.RigItem{*models.NewRigItem(tpl, 26, models.StatusNormal)}
	for _, l := range []*models.RigLog{older, newer} {
		if err := store.CreateRigLog(l); err != nil {
			t.Fatalf("CreateRigLog failed: %v", err)
		}
	}

	latest, err = store.LatestRigLog(b.ID)
	if err != nil {
		t.Fatalf("LatestRigLog failed: %v", err)
	}
	if latest == nil || latest.ID != newer.ID {
		t.Errorf("Expected newest log first")
	}
	if len(latest.Items) != 1 || latest.Items[0].Value != 26 {
		t.Errorf("Items not loaded with log: %+v", latest.Items)
	}
}

func TestChecklistResetCounts(t *testing.T) {
	store := setupTestStore(t)

	b := models.NewBoat("Checklist")
	if err := store.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}

	a := models.NewChecklistItem(b.ID, "Check forestay tension", "Before Sailing")
	c := models.NewChecklistItem(b.ID, "Wipe down hull", "After Sailing")
	for _, item := range []*models.ChecklistItem{a, c} {
		if err := store.CreateChecklistItem(item); err != nil {
			t.Fatalf("CreateChecklistItem failed: %v", err)
		}
		if err := store.SetChecklistDone(item.ID.String(), true); err != nil {
			t.Fatalf("SetChecklistDone failed: %v", err)
		}
	}

	count, err := store.ResetChecklist(b.ID, "Before Sailing")
	if err != nil {
		t.Fatalf("ResetChecklist failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 item reset, got %d", count)
	}

	count, err = store.ResetChecklist(b.ID, "")
	if err != nil {
		t.Fatalf("ResetChecklist failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 remaining item reset, got %d", count)
	}
}

func TestSeedTemplateProtection(t *testing.T) {
	store := setupTestStore(t)

	if err := storage.SeedWorkoutTemplates(store); err != nil {
		t.Fatalf("SeedWorkoutTemplates failed: %v", err)
	}

	templates, err := store.ListWorkoutTemplates(uuid.New(), nil)
	if err != nil {
		t.Fatalf("ListWorkoutTemplates failed: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("Expected 3 shared seed templates, got %d", len(templates))
	}

	err = store.DeleteWorkoutTemplate(templates[0].ID.String(), false)
	var seedErr *storage.ErrSeedTemplate
	if !errors.As(err, &seedErr) {
		t.Fatalf("Expected ErrSeedTemplate, got %v", err)
	}
	if err := store.DeleteWorkoutTemplate(templates[0].ID.String(), true); err != nil {
		t.Fatalf("Forced delete failed: %v", err)
	}
}

func TestSharedSessionVisibility(t *testing.T) {
	store := setupTestStore(t)

	b1 := models.NewBoat("First")
	b2 := models.NewBoat("Second")
	for _, b := range []*models.Boat{b1, b2} {
		if err := store.CreateBoat(b); err != nil {
			t.Fatalf("CreateBoat failed: %v", err)
		}
	}

	owned := models.NewTrainingSession(b1.ID, time.Now(), models.SessionOnWater)
	shared := models.NewSharedTrainingSession(time.Now(), models.SessionErgo)
	for _, s := range []*models.TrainingSession{owned, shared} {
		if err := store.CreateTrainingSession(s); err != nil {
			t.Fatalf("CreateTrainingSession failed: %v", err)
		}
	}

	forFirst, err := store.ListTrainingSessions(b1.ID, nil)
	if err != nil {
		t.Fatalf("ListTrainingSessions failed: %v", err)
	}
	if len(forFirst) != 2 {
		t.Errorf("First boat should see 2 sessions, got %d", len(forFirst))
	}
	forSecond, err := store.ListTrainingSessions(b2.ID, nil)
	if err != nil {
		t.Fatalf("ListTrainingSessions failed: %v", err)
	}
	if len(forSecond) != 1 || forSecond[0].ID != shared.ID {
		t.Errorf("Second boat should only see the shared session")
	}
}

func TestDeleteSplitRenumbers(t *testing.T) {
	store := setupTestStore(t)

	b := models.NewBoat("Splits")
	if err := store.CreateBoat(b); err != nil {
		t.Fatalf("CreateBoat failed: %v", err)
	}
	sess := models.NewTrainingSession(b.ID, time.Now(), models.SessionErgo)
	if err := store.CreateTrainingSession(sess); err != nil {
		t.Fatalf("CreateTrainingSession failed: %v", err)
	}

	ws := models.NewWorkoutSummary(sess.ID).
		AddSplit(500, 95, 95, 28, 210).
		AddSplit(500, 96, 96, 27, 205).
		AddSplit(500, 97, 97, 26, 200)
	if err := store.SaveWorkoutSummary(ws); err != nil {
		t.Fatalf("SaveWorkoutSummary failed: %v", err)
	}

	if err := store.DeleteSplit(ws.ID, 2); err != nil {
		t.Fatalf("DeleteSplit failed: %v", err)
	}

	got, err := store.GetTrainingSession(sess.ID.String())
	if err != nil {
		t.Fatalf("GetTrainingSession failed: %v", err)
	}
	splits := got.Summary.Splits
	if len(splits) != 2 {
		t.Fatalf("Expected 2 splits after delete, got %d", len(splits))
	}
	if splits[0].Position != 1 || splits[1].Position != 2 {
		t.Errorf("Splits not renumbered: %d, %d", splits[0].Position, splits[1].Position)
	}
	if splits[1].Seconds != 97 {
		t.Errorf("Expected third split renumbered to position 2, got seconds %v", splits[1].Seconds)
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "rigbook-kvtest-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	store, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}
