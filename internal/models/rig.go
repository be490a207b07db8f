// ABOUTME: Rig log models: templates, logs, items, and item status.
// ABOUTME: Rig items are frozen snapshots; template references may go stale.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RigItemStatus reflects the condition of one rig setting at log time.
type RigItemStatus string

const (
	StatusNormal   RigItemStatus = "normal"
	StatusCaution  RigItemStatus = "caution"
	StatusCritical RigItemStatus = "critical"
)

// AllRigItemStatuses returns all valid rig item statuses.
var AllRigItemStatuses = []RigItemStatus{StatusNormal, StatusCaution, StatusCritical}

// IsValidRigItemStatus checks if a string is a valid rig item status.
func IsValidRigItemStatus(s string) bool {
	for _, st := range AllRigItemStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// RigItemTemplate defines the shape of one rig parameter: its name, unit,
// and grouping category. Templates are mutable independently of the
// historical logs that were created from them.
type RigItemTemplate struct {
	ID       uuid.UUID
	BoatID   uuid.UUID
	Name     string
	Unit     string
	Category string
	// Options, when non-empty, marks this template as a selectable-option
	// field; recorded values use StringValue instead of Value. Options[0]
	// is the default when no history exists.
	Options   []string
	Position  int
	CreatedAt time.Time
}

// NewRigItemTemplate creates a new template with generated UUID.
func NewRigItemTemplate(boatID uuid.UUID, name, unit, category string) *RigItemTemplate {
	return &RigItemTemplate{
		ID:        uuid.New(),
		BoatID:    boatID,
		Name:      name,
		Unit:      unit,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

// WithOptions marks the template as a selectable-option field.
func (t *RigItemTemplate) WithOptions(options ...string) *RigItemTemplate {
	t.Options = options
	return t
}

// WithPosition sets the display order.
func (t *RigItemTemplate) WithPosition(p int) *RigItemTemplate {
	t.Position = p
	return t
}

// IsChoice reports whether this template records a categorical value.
func (t *RigItemTemplate) IsChoice() bool {
	return len(t.Options) > 0
}

// DefaultOption returns the designated default for a choice template.
func (t *RigItemTemplate) DefaultOption() string {
	if len(t.Options) == 0 {
		return ""
	}
	return t.Options[0]
}

// RigLog is one timestamped snapshot of rig settings for a boat.
type RigLog struct {
	ID        uuid.UUID
	BoatID    uuid.UUID
	Date      time.Time
	Memo      string
	Items     []RigItem
	CreatedAt time.Time
}

// NewRigLog creates a new RigLog with generated UUID.
func NewRigLog(boatID uuid.UUID, date time.Time, memo string) *RigLog {
	return &RigLog{
		ID:        uuid.New(),
		BoatID:    boatID,
		Date:      date,
		Memo:      memo,
		CreatedAt: time.Now(),
	}
}

// RigItem is one recorded rig setting within a log. Name and Unit are
// copied from the template at creation time so the historical record
// survives template renames and deletions. TemplateID is a weak reference:
// nil means the template has been deleted and the item is orphaned.
type RigItem struct {
	ID          uuid.UUID
	RigLogID    uuid.UUID
	TemplateID  *uuid.UUID
	Name        string
	Unit        string
	Value       float64
	StringValue *string
	Status      RigItemStatus
	Position    int
}

// NewRigItem creates a rig item snapshot from a template.
func NewRigItem(template *RigItemTemplate, value float64, status RigItemStatus) *RigItem {
	tid := template.ID
	return &RigItem{
		ID:         uuid.New(),
		TemplateID: &tid,
		Name:       template.Name,
		Unit:       template.Unit,
		Value:      value,
		Status:     status,
		Position:   template.Position,
	}
}

// WithStringValue records a categorical value instead of a numeric one.
func (i *RigItem) WithStringValue(v string) *RigItem {
	i.StringValue = &v
	return i
}

// Orphaned reports whether the item's template no longer exists.
func (i *RigItem) Orphaned() bool {
	return i.TemplateID == nil
}

// IsNumeric reports whether the item carries a numeric value usable for
// statistics. Categorical items are excluded from charting.
func (i *RigItem) IsNumeric() bool {
	return i.StringValue == nil
}
