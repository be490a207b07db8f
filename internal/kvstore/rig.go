// ABOUTME: Rig template and rig log operations for the Badger store.
// ABOUTME: Rig logs are whole documents with their items embedded.
package kvstore

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateRigTemplate stores a rig item template.
func (s *Store) CreateRigTemplate(t *models.RigItemTemplate) error {
	data, err := marshalJSON(t)
	if err != nil {
		return fmt.Errorf("marshal rig template: %w", err)
	}
	return s.set(RigTemplatePrefix+t.ID.String(), data)
}

// GetRigTemplate retrieves a rig template by ID or ID prefix.
func (s *Store) GetRigTemplate(idOrPrefix string) (*models.RigItemTemplate, error) {
	data, err := s.getByIDPrefix(RigTemplatePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get rig template: %w", err)
	}
	return unmarshalJSON[models.RigItemTemplate](data)
}

// ListRigTemplates returns a boat's rig templates ordered by position.
func (s *Store) ListRigTemplates(boatID uuid.UUID) ([]*models.RigItemTemplate, error) {
	allData, err := s.listByPrefix(RigTemplatePrefix)
	if err != nil {
		return nil, fmt.Errorf("list rig templates: %w", err)
	}

	var templates []*models.RigItemTemplate
	for _, data := range allData {
		t, err := unmarshalJSON[models.RigItemTemplate](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if t.BoatID != boatID {
			continue
		}
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Position != templates[j].Position {
			return templates[i].Position < templates[j].Position
		}
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

// UpdateRigTemplate replaces a stored template document.
func (s *Store) UpdateRigTemplate(t *models.RigItemTemplate) error {
	if _, err := s.getByIDPrefix(RigTemplatePrefix, t.ID.String()); err != nil {
		return fmt.Errorf("rig template not found: %s", t.ID)
	}
	return s.CreateRigTemplate(t)
}

// DeleteRigTemplate removes a template. Items in past logs keep their
// recorded names and values; their template references simply stop
// resolving.
func (s *Store) DeleteRigTemplate(idOrPrefix string) error {
	if err := s.deleteByIDPrefix(RigTemplatePrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete rig template: %w", err)
	}
	return nil
}

// CreateRigLog stores a rig log with its items.
func (s *Store) CreateRigLog(l *models.RigLog) error {
	data, err := marshalJSON(l)
	if err != nil {
		return fmt.Errorf("marshal rig log: %w", err)
	}
	return s.set(RigLogPrefix+l.ID.String(), data)
}

// GetRigLog retrieves a rig log by ID or ID prefix.
func (s *Store) GetRigLog(idOrPrefix string) (*models.RigLog, error) {
	data, err := s.getByIDPrefix(RigLogPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get rig log: %w", err)
	}
	return unmarshalJSON[models.RigLog](data)
}

// ListRigLogs returns a boat's rig logs, newest first. Ties on date fall
// back to creation time then ID so the order is deterministic.
func (s *Store) ListRigLogs(boatID uuid.UUID) ([]*models.RigLog, error) {
	allData, err := s.listByPrefix(RigLogPrefix)
	if err != nil {
		return nil, fmt.Errorf("list rig logs: %w", err)
	}

	var logs []*models.RigLog
	for _, data := range allData {
		l, err := unmarshalJSON[models.RigLog](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if l.BoatID != boatID {
			continue
		}
		logs = append(logs, l)
	}
	sort.Slice(logs, func(i, j int) bool {
		return rigLogAfter(logs[i], logs[j])
	})
	return logs, nil
}

// LatestRigLog returns the most recent log for a boat, or nil when the
// boat has no logs.
func (s *Store) LatestRigLog(boatID uuid.UUID) (*models.RigLog, error) {
	logs, err := s.ListRigLogs(boatID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return logs[0], nil
}

// UpdateRigLog replaces a stored rig log document.
func (s *Store) UpdateRigLog(l *models.RigLog) error {
	if _, err := s.getByIDPrefix(RigLogPrefix, l.ID.String()); err != nil {
		return fmt.Errorf("rig log not found: %s", l.ID)
	}
	return s.CreateRigLog(l)
}

// DeleteRigLog removes a rig log and its embedded items.
func (s *Store) DeleteRigLog(idOrPrefix string) error {
	if err := s.deleteByIDPrefix(RigLogPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete rig log: %w", err)
	}
	return nil
}

func rigLogAfter(a, b *models.RigLog) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}
