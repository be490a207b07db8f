// ABOUTME: Tests for category grouping of checklists and rig templates.
// ABOUTME: Verifies preferred ordering, unknown categories, and within-group order.
package rig

import (
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

func TestCategoryOrderLess(t *testing.T) {
	order := DefaultChecklistOrder

	if !order.Less("Before Sailing", "After Sailing") {
		t.Error("Before Sailing should sort before After Sailing")
	}
	if !order.Less("Gear", "Maintenance") {
		t.Error("known categories should sort before unknown ones")
	}
	if !order.Less("Apparel", "Maintenance") {
		t.Error("unknown categories should sort alphabetically")
	}
	if order.Less("Gear", "Gear") {
		t.Error("a category should not sort before itself")
	}
}

func TestGroupChecklistOrdering(t *testing.T) {
	boatID := uuid.New()
	newItem := func(task, category string, position int) *models.ChecklistItem {
		item := models.NewChecklistItem(boatID, task, category)
		item.Position = position
		return item
	}

	items := []*models.ChecklistItem{
		newItem("Wipe down hull", "After Sailing", 0),
		newItem("Check forestay tension", "Before Sailing", 1),
		newItem("Inspect blades", "Maintenance", 0),
		newItem("Attach oarlocks", "Before Sailing", 0),
	}

	groups := GroupChecklist(items, DefaultChecklistOrder)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Category != "Before Sailing" || groups[1].Category != "After Sailing" {
		t.Errorf("known categories out of order: %s, %s", groups[0].Category, groups[1].Category)
	}
	if groups[2].Category != "Maintenance" {
		t.Errorf("unknown category should sort last, got %s", groups[2].Category)
	}
	if groups[0].Items[0].Task != "Attach oarlocks" || groups[0].Items[1].Task != "Check forestay tension" {
		t.Errorf("within-group items not ordered by position")
	}
}

func TestGroupChecklistTiesByTask(t *testing.T) {
	boatID := uuid.New()
	a := models.NewChecklistItem(boatID, "Zip cover", "Gear")
	b := models.NewChecklistItem(boatID, "Air out cover", "Gear")

	groups := GroupChecklist([]*models.ChecklistItem{a, b}, DefaultChecklistOrder)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Items[0].Task != "Air out cover" {
		t.Errorf("equal positions should fall back to task order, got %s first", groups[0].Items[0].Task)
	}
}

func TestGroupTemplatesOrdering(t *testing.T) {
	boatID := uuid.New()
	templates := []*models.RigItemTemplate{
		models.NewRigItemTemplate(boatID, "Oar Length", "cm", "Oar").WithPosition(6),
		models.NewRigItemTemplate(boatID, "Forestay", "%", "Stretcher").WithPosition(0),
		models.NewRigItemTemplate(boatID, "Clutch Height", "mm", "Clutch").WithPosition(5),
		models.NewRigItemTemplate(boatID, "Backstay", "lbs", "Stretcher").WithPosition(4),
	}

	groups := GroupTemplates(templates, DefaultRigOrder)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	want := []string{"Clutch", "Stretcher", "Oar"}
	for i, category := range want {
		if groups[i].Category != category {
			t.Errorf("group %d: got %s, want %s", i, groups[i].Category, category)
		}
	}
	stretcher := groups[1].Templates
	if stretcher[0].Name != "Forestay" || stretcher[1].Name != "Backstay" {
		t.Errorf("stretcher templates not ordered by position: %s, %s", stretcher[0].Name, stretcher[1].Name)
	}
}
