// ABOUTME: Checklist item operations for the Badger store.
// ABOUTME: Items are flat documents filtered by boat client-side.
package kvstore

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateChecklistItem stores a checklist item.
func (s *Store) CreateChecklistItem(c *models.ChecklistItem) error {
	data, err := marshalJSON(c)
	if err != nil {
		return fmt.Errorf("marshal checklist item: %w", err)
	}
	return s.set(ChecklistPrefix+c.ID.String(), data)
}

// ListChecklist returns a boat's checklist items ordered by position.
func (s *Store) ListChecklist(boatID uuid.UUID) ([]*models.ChecklistItem, error) {
	allData, err := s.listByPrefix(ChecklistPrefix)
	if err != nil {
		return nil, fmt.Errorf("list checklist: %w", err)
	}

	var items []*models.ChecklistItem
	for _, data := range allData {
		item, err := unmarshalJSON[models.ChecklistItem](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if item.BoatID != boatID {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].Task < items[j].Task
	})
	return items, nil
}

// SetChecklistDone marks an item done or not done.
func (s *Store) SetChecklistDone(idOrPrefix string, done bool) error {
	data, err := s.getByIDPrefix(ChecklistPrefix, idOrPrefix)
	if err != nil {
		return fmt.Errorf("get checklist item: %w", err)
	}
	item, err := unmarshalJSON[models.ChecklistItem](data)
	if err != nil {
		return fmt.Errorf("unmarshal checklist item: %w", err)
	}
	item.Done = done
	return s.CreateChecklistItem(item)
}

// ResetChecklist marks all of a boat's items not done, optionally
// limited to one category. Returns the number of items touched.
func (s *Store) ResetChecklist(boatID uuid.UUID, category string) (int, error) {
	items, err := s.ListChecklist(boatID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if !item.Done {
			count++
			continue
		}
		item.Done = false
		if err := s.CreateChecklistItem(item); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// DeleteChecklistItem removes a checklist item.
func (s *Store) DeleteChecklistItem(idOrPrefix string) error {
	if err := s.deleteByIDPrefix(ChecklistPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete checklist item: %w", err)
	}
	return nil
}
