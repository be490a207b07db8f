// ABOUTME: Tests for training models: metric materialization, ownership
// ABOUTME: validation, and split positioning.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMetricsFromTemplatesOrder(t *testing.T) {
	sessionID := uuid.New()
	templates := []MetricTemplate{
		{ID: uuid.New(), Name: "Stroke Rate", Unit: "spm", Position: 2},
		{ID: uuid.New(), Name: "Distance", Unit: "m", Position: 0},
		{ID: uuid.New(), Name: "Time", Unit: "s", Position: 1},
	}

	metrics := MetricsFromTemplates(sessionID, templates)
	if len(metrics) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(metrics))
	}
	want := []string{"Distance", "Time", "Stroke Rate"}
	for i, name := range want {
		m := metrics[i]
		if m.Name != name {
			t.Errorf("metric %d: got %s, want %s", i, m.Name, name)
		}
		if m.Position != i {
			t.Errorf("metric %d: position %d, want %d", i, m.Position, i)
		}
		if m.Value != 0 {
			t.Errorf("metric %d: value should start at zero, got %v", i, m.Value)
		}
		if m.SessionID != sessionID {
			t.Errorf("metric %d: wrong session id", i)
		}
	}
}

func TestWithWorkoutTemplateMaterializesMetrics(t *testing.T) {
	tpl := NewSharedWorkoutTemplate("2000m Test", SessionErgo).
		WithCategory(CategorySingleDistance).
		AddMetric("Time", "s").
		AddMetric("Avg Pace", "s/500m")

	sess := NewSharedTrainingSession(time.Now(), SessionErgo).WithWorkoutTemplate(tpl)
	if sess.WorkoutTemplateID == nil || *sess.WorkoutTemplateID != tpl.ID {
		t.Error("session should record the source template id")
	}
	if len(sess.Metrics) != 2 {
		t.Fatalf("expected 2 materialized metrics, got %d", len(sess.Metrics))
	}
	if sess.Metrics[0].Name != "Time" || sess.Metrics[1].Name != "Avg Pace" {
		t.Errorf("metrics out of order: %s, %s", sess.Metrics[0].Name, sess.Metrics[1].Name)
	}
}

func TestSessionValidate(t *testing.T) {
	boatID := uuid.New()

	owned := NewTrainingSession(boatID, time.Now(), SessionOnWater)
	if err := owned.Validate(); err != nil {
		t.Errorf("owned session should validate: %v", err)
	}

	shared := NewSharedTrainingSession(time.Now(), SessionErgo)
	if err := shared.Validate(); err != nil {
		t.Errorf("shared session should validate: %v", err)
	}

	shared.BoatID = &boatID
	if err := shared.Validate(); err == nil {
		t.Error("shared session with an owning boat should fail validation")
	}

	owned.BoatID = nil
	if err := owned.Validate(); err == nil {
		t.Error("unshared session without a boat should fail validation")
	}
}

func TestAddSplitPositions(t *testing.T) {
	ws := NewWorkoutSummary(uuid.New()).
		AddSplit(500, 95.2, 95.2, 28, 210).
		AddSplit(500, 96.1, 96.1, 27, 205).
		AddSplit(500, 94.8, 94.8, 29, 215)

	if len(ws.Splits) != 3 {
		t.Fatalf("expected 3 splits, got %d", len(ws.Splits))
	}
	for i, split := range ws.Splits {
		if split.Position != i+1 {
			t.Errorf("split %d: position %d, want %d", i, split.Position, i+1)
		}
		if split.SummaryID != ws.ID {
			t.Errorf("split %d: wrong summary id", i)
		}
	}
}

func TestIsValidSessionType(t *testing.T) {
	if !IsValidSessionType("ergo") || !IsValidSessionType("water") {
		t.Error("ergo and water should be valid session types")
	}
	if IsValidSessionType("swim") {
		t.Error("swim should not be a valid session type")
	}
}
