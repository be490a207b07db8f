// ABOUTME: Boat operations for the Badger document store.
// ABOUTME: Boat deletion sweeps every owned document type in one batch.
package kvstore

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateBoat stores a new boat.
func (s *Store) CreateBoat(b *models.Boat) error {
	data, err := marshalJSON(b)
	if err != nil {
		return fmt.Errorf("marshal boat: %w", err)
	}
	return s.set(BoatPrefix+b.ID.String(), data)
}

// GetBoat retrieves a boat by ID or ID prefix.
func (s *Store) GetBoat(idOrPrefix string) (*models.Boat, error) {
	data, err := s.getByIDPrefix(BoatPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get boat: %w", err)
	}
	return unmarshalJSON[models.Boat](data)
}

// ListBoats returns all boats sorted by name.
func (s *Store) ListBoats() ([]*models.Boat, error) {
	allData, err := s.listByPrefix(BoatPrefix)
	if err != nil {
		return nil, fmt.Errorf("list boats: %w", err)
	}

	var boats []*models.Boat
	for _, data := range allData {
		b, err := unmarshalJSON[models.Boat](data)
		if err != nil {
			continue // Skip invalid entries
		}
		boats = append(boats, b)
	}
	sort.Slice(boats, func(i, j int) bool {
		return boats[i].Name < boats[j].Name
	})
	return boats, nil
}

// RenameBoat updates a boat's name.
func (s *Store) RenameBoat(idOrPrefix, name string) error {
	b, err := s.GetBoat(idOrPrefix)
	if err != nil {
		return err
	}
	b.Name = name
	data, err := marshalJSON(b)
	if err != nil {
		return fmt.Errorf("marshal boat: %w", err)
	}
	return s.set(BoatPrefix+b.ID.String(), data)
}

// DeleteBoat removes a boat and every document it owns: rig templates,
// rig logs, checklist items, its workout templates, and its sessions.
// Shared templates and sessions are untouched.
func (s *Store) DeleteBoat(idOrPrefix string) error {
	b, err := s.GetBoat(idOrPrefix)
	if err != nil {
		return err
	}

	keys := []string{BoatPrefix + b.ID.String()}

	collect := func(prefix string, owned func([]byte) (uuid.UUID, *uuid.UUID, bool)) error {
		allData, err := s.listByPrefix(prefix)
		if err != nil {
			return err
		}
		for _, data := range allData {
			id, boatID, ok := owned(data)
			if !ok {
				continue
			}
			if boatID != nil && *boatID == b.ID {
				keys = append(keys, prefix+id.String())
			}
		}
		return nil
	}

	owners := []struct {
		prefix string
		owned  func([]byte) (uuid.UUID, *uuid.UUID, bool)
	}{
		{RigTemplatePrefix, func(data []byte) (uuid.UUID, *uuid.UUID, bool) {
			t, err := unmarshalJSON[models.RigItemTemplate](data)
			if err != nil {
				return uuid.Nil, nil, false
			}
			return t.ID, &t.BoatID, true
		}},
		{RigLogPrefix, func(data []byte) (uuid.UUID, *uuid.UUID, bool) {
			l, err := unmarshalJSON[models.RigLog](data)
			if err != nil {
				return uuid.Nil, nil, false
			}
			return l.ID, &l.BoatID, true
		}},
		{ChecklistPrefix, func(data []byte) (uuid.UUID, *uuid.UUID, bool) {
			c, err := unmarshalJSON[models.ChecklistItem](data)
			if err != nil {
				return uuid.Nil, nil, false
			}
			return c.ID, &c.BoatID, true
		}},
		{WorkoutTemplatePrefix, func(data []byte) (uuid.UUID, *uuid.UUID, bool) {
			w, err := unmarshalJSON[models.WorkoutTemplate](data)
			if err != nil {
				return uuid.Nil, nil, false
			}
			return w.ID, w.BoatID, true
		}},
		{SessionPrefix, func(data []byte) (uuid.UUID, *uuid.UUID, bool) {
			sess, err := unmarshalJSON[models.TrainingSession](data)
			if err != nil {
				return uuid.Nil, nil, false
			}
			return sess.ID, sess.BoatID, true
		}},
	}
	for _, o := range owners {
		if err := collect(o.prefix, o.owned); err != nil {
			return fmt.Errorf("collect cascade for boat %s: %w", b.Name, err)
		}
	}

	if err := s.deleteKeys(keys); err != nil {
		return fmt.Errorf("delete boat %s: %w", b.Name, err)
	}
	return nil
}
