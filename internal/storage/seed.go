// ABOUTME: Default rig templates, checklist items, and workout templates.
// ABOUTME: Seeding a new boat gives it a usable starting configuration.
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// SeedBoat creates the default rig templates and checklist items for a
// newly added boat.
func SeedBoat(repo Repository, boatID uuid.UUID) error {
	type seedTemplate struct {
		name     string
		unit     string
		category string
		options  []string
	}
	rigSeeds := []seedTemplate{
		{name: "Forestay", unit: "%", category: "Stretcher"},
		{name: "D1 Shroud", unit: "%", category: "Stretcher"},
		{name: "V2 Shroud", unit: "%", category: "Stretcher"},
		{name: "Spreader Angle", unit: "deg", category: "Stretcher"},
		{name: "Backstay", unit: "lbs", category: "Stretcher"},
		{name: "Clutch Height", unit: "mm", category: "Clutch"},
		{name: "Oar Length", unit: "cm", category: "Oar"},
		{name: "Blade Pitch", unit: "deg", category: "Oar"},
	}
	for i, s := range rigSeeds {
		t := models.NewRigItemTemplate(boatID, s.name, s.unit, s.category).WithPosition(i)
		if len(s.options) > 0 {
			t = t.WithOptions(s.options...)
		}
		if err := repo.CreateRigTemplate(t); err != nil {
			return fmt.Errorf("seed rig template %s: %w", s.name, err)
		}
	}

	type seedCheck struct {
		task     string
		category string
	}
	checkSeeds := []seedCheck{
		{task: "Check hull for damage", category: "Before Sailing"},
		{task: "Tighten rigging to target", category: "Before Sailing"},
		{task: "Check drain plugs", category: "Before Sailing"},
		{task: "Rinse boat with fresh water", category: "After Sailing"},
		{task: "Loosen rig tension", category: "After Sailing"},
		{task: "Confirm race rig numbers", category: "Pre-race"},
		{task: "Pack spare parts kit", category: "Gear"},
	}
	for i, c := range checkSeeds {
		item := models.NewChecklistItem(boatID, c.task, c.category).WithPosition(i)
		if err := repo.CreateChecklistItem(item); err != nil {
			return fmt.Errorf("seed checklist item %s: %w", c.task, err)
		}
	}
	return nil
}

// SeedWorkoutTemplates creates the shared ergo workout templates that
// every boat can log against. Safe to call once per store.
func SeedWorkoutTemplates(repo Repository) error {
	singleDistance := models.CategorySingleDistance
	singleTime := models.CategorySingleTime

	seeds := []*models.WorkoutTemplate{
		models.NewSharedWorkoutTemplate("2000m Test", models.SessionErgo).
			WithCategory(singleDistance).AsSeed().
			AddMetric("Time", "sec").AddMetric("Avg Pace", "sec/500m").AddMetric("Stroke Rate", "spm"),
		models.NewSharedWorkoutTemplate("5000m Steady", models.SessionErgo).
			WithCategory(singleDistance).AsSeed().
			AddMetric("Time", "sec").AddMetric("Avg Pace", "sec/500m").AddMetric("Avg Power", "W"),
		models.NewSharedWorkoutTemplate("30min Row", models.SessionErgo).
			WithCategory(singleTime).AsSeed().
			AddMetric("Distance", "m").AddMetric("Avg Pace", "sec/500m").AddMetric("Stroke Rate", "spm"),
	}
	for _, t := range seeds {
		if err := repo.CreateWorkoutTemplate(t); err != nil {
			return fmt.Errorf("seed workout template %s: %w", t.Name, err)
		}
	}
	return nil
}
