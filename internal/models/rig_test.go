// ABOUTME: Tests for rig models: choice templates, item snapshots, and
// ABOUTME: orphan detection.
package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestChoiceTemplate(t *testing.T) {
	boatID := uuid.New()

	numeric := NewRigItemTemplate(boatID, "Forestay", "%", "Stretcher")
	if numeric.IsChoice() {
		t.Error("template without options should not be a choice field")
	}
	if numeric.DefaultOption() != "" {
		t.Errorf("numeric template has no default option, got %q", numeric.DefaultOption())
	}

	choice := NewRigItemTemplate(boatID, "Clutch Setting", "", "Clutch").WithOptions("Low", "Mid", "High")
	if !choice.IsChoice() {
		t.Error("template with options should be a choice field")
	}
	if choice.DefaultOption() != "Low" {
		t.Errorf("default option: got %q, want Low", choice.DefaultOption())
	}
}

func TestRigItemSnapshot(t *testing.T) {
	boatID := uuid.New()
	tpl := NewRigItemTemplate(boatID, "Backstay", "lbs", "Stretcher").WithPosition(4)

	item := NewRigItem(tpl, 620, StatusCaution)
	if item.Name != "Backstay" || item.Unit != "lbs" {
		t.Errorf("item should copy template name and unit, got %s %s", item.Name, item.Unit)
	}
	if item.TemplateID == nil || *item.TemplateID != tpl.ID {
		t.Error("item should reference its template")
	}
	if item.Position != 4 {
		t.Errorf("item position: got %d, want 4", item.Position)
	}
	if item.Orphaned() {
		t.Error("item with a live template reference is not orphaned")
	}
	if !item.IsNumeric() {
		t.Error("item without a string value is numeric")
	}

	item.TemplateID = nil
	if !item.Orphaned() {
		t.Error("item without a template reference is orphaned")
	}
	if item.Name != "Backstay" {
		t.Error("orphaned item keeps its frozen name")
	}

	choice := NewRigItem(tpl, 0, StatusNormal).WithStringValue("High")
	if choice.IsNumeric() {
		t.Error("item with a string value is not numeric")
	}
}

func TestIsValidRigItemStatus(t *testing.T) {
	for _, s := range []string{"normal", "caution", "critical"} {
		if !IsValidRigItemStatus(s) {
			t.Errorf("%s should be a valid status", s)
		}
	}
	if IsValidRigItemStatus("broken") {
		t.Error("broken should not be a valid status")
	}
}
