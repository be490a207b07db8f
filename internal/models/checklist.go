// ABOUTME: ChecklistItem model for pre/post-activity checklists.
// ABOUTME: Completion state is edited in place and never versioned.
package models

import (
	"github.com/google/uuid"
)

// ChecklistItem is one task on a boat's checklist. Category is an open
// string set so users can add their own groupings.
type ChecklistItem struct {
	ID       uuid.UUID
	BoatID   uuid.UUID
	Task     string
	Done     bool
	Category string
	Position int
}

// NewChecklistItem creates a new unchecked checklist item.
func NewChecklistItem(boatID uuid.UUID, task, category string) *ChecklistItem {
	return &ChecklistItem{
		ID:       uuid.New(),
		BoatID:   boatID,
		Task:     task,
		Category: category,
	}
}

// WithPosition sets the display order within the category.
func (c *ChecklistItem) WithPosition(p int) *ChecklistItem {
	c.Position = p
	return c
}
