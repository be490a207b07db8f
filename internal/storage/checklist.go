// ABOUTME: Checklist item CRUD operations for SQLite storage.
// ABOUTME: Reset flips done back to false across a boat or one category.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateChecklistItem inserts a checklist item.
func (d *DB) CreateChecklistItem(item *models.ChecklistItem) error {
	_, err := d.db.Exec(
		`INSERT INTO checklist_items (id, boat_id, task, done, category, position)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID.String(), item.BoatID.String(), item.Task, item.Done, item.Category, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert checklist item: %w", err)
	}
	return nil
}

// ListChecklist returns a boat's checklist items ordered by position.
func (d *DB) ListChecklist(boatID uuid.UUID) ([]*models.ChecklistItem, error) {
	rows, err := d.db.Query(
		`SELECT id, boat_id, task, done, category, position
		 FROM checklist_items WHERE boat_id = ? ORDER BY position, task`,
		boatID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query checklist: %w", err)
	}
	defer rows.Close()

	var items []*models.ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetChecklistDone marks an item done or not done.
func (d *DB) SetChecklistDone(idOrPrefix string, done bool) error {
	id, err := d.resolveID("checklist_items", idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`UPDATE checklist_items SET done = ? WHERE id = ?`, done, id)
	if err != nil {
		return fmt.Errorf("update checklist item: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("checklist item not found: %s", idOrPrefix)
	}
	return nil
}

// ResetChecklist marks all of a boat's items not done. When category is
// non-empty only that category is reset. Returns the number of items touched.
func (d *DB) ResetChecklist(boatID uuid.UUID, category string) (int, error) {
	var result sql.Result
	var err error
	if category == "" {
		result, err = d.db.Exec(
			`UPDATE checklist_items SET done = 0 WHERE boat_id = ?`, boatID.String(),
		)
	} else {
		result, err = d.db.Exec(
			`UPDATE checklist_items SET done = 0 WHERE boat_id = ? AND category = ?`,
			boatID.String(), category,
		)
	}
	if err != nil {
		return 0, fmt.Errorf("reset checklist: %w", err)
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}

// DeleteChecklistItem removes a checklist item.
func (d *DB) DeleteChecklistItem(idOrPrefix string) error {
	id, err := d.resolveID("checklist_items", idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`DELETE FROM checklist_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete checklist item: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("checklist item not found: %s", idOrPrefix)
	}
	return nil
}

func scanChecklistItem(row rowScanner) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	var id, boatID string
	if err := row.Scan(&id, &boatID, &item.Task, &item.Done, &item.Category, &item.Position); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checklist item not found")
		}
		return nil, fmt.Errorf("scan checklist item: %w", err)
	}
	item.ID, _ = uuid.Parse(id)
	item.BoatID, _ = uuid.Parse(boatID)
	return &item, nil
}
