// ABOUTME: Rig item template CRUD operations for SQLite storage.
// ABOUTME: Options are stored as a JSON array in a TEXT column.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateRigTemplate inserts a rig item template.
func (d *DB) CreateRigTemplate(t *models.RigItemTemplate) error {
	options, err := json.Marshal(t.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO rig_templates (id, boat_id, name, unit, category, options, position, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.BoatID.String(), t.Name, t.Unit, t.Category,
		string(options), t.Position, t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert rig template: %w", err)
	}
	return nil
}

// GetRigTemplate retrieves a rig template by full ID or unique prefix.
func (d *DB) GetRigTemplate(idOrPrefix string) (*models.RigItemTemplate, error) {
	id, err := d.resolveID("rig_templates", idOrPrefix)
	if err != nil {
		return nil, err
	}
	row := d.db.QueryRow(
		`SELECT id, boat_id, name, unit, category, options, position, created_at
		 FROM rig_templates WHERE id = ?`, id,
	)
	return scanRigTemplate(row)
}

// ListRigTemplates returns a boat's rig templates ordered by position.
func (d *DB) ListRigTemplates(boatID uuid.UUID) ([]*models.RigItemTemplate, error) {
	rows, err := d.db.Query(
		`SELECT id, boat_id, name, unit, category, options, position, created_at
		 FROM rig_templates WHERE boat_id = ? ORDER BY position, name`,
		boatID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query rig templates: %w", err)
	}
	defer rows.Close()
	return scanRigTemplates(rows)
}

// UpdateRigTemplate updates a template's name, unit, category, options,
// and position. Past log entries keep the values they recorded.
func (d *DB) UpdateRigTemplate(t *models.RigItemTemplate) error {
	options, err := json.Marshal(t.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	result, err := d.db.Exec(
		`UPDATE rig_templates SET name = ?, unit = ?, category = ?, options = ?, position = ?
		 WHERE id = ?`,
		t.Name, t.Unit, t.Category, string(options), t.Position, t.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update rig template: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("rig template not found: %s", t.ID)
	}
	return nil
}

// DeleteRigTemplate removes a template. Log items that referenced it
// keep their recorded name and values with the link set to NULL.
func (d *DB) DeleteRigTemplate(idOrPrefix string) error {
	id, err := d.resolveID("rig_templates", idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`DELETE FROM rig_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete rig template: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("rig template not found: %s", idOrPrefix)
	}
	return nil
}

func scanRigTemplate(row rowScanner) (*models.RigItemTemplate, error) {
	var t models.RigItemTemplate
	var id, boatID, options, createdAt string
	if err := row.Scan(&id, &boatID, &t.Name, &t.Unit, &t.Category, &options, &t.Position, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("rig template not found")
		}
		return nil, fmt.Errorf("scan rig template: %w", err)
	}
	t.ID, _ = uuid.Parse(id)
	t.BoatID, _ = uuid.Parse(boatID)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if err := json.Unmarshal([]byte(options), &t.Options); err != nil {
		return nil, fmt.Errorf("unmarshal options: %w", err)
	}
	return &t, nil
}

func scanRigTemplates(rows *sql.Rows) ([]*models.RigItemTemplate, error) {
	var templates []*models.RigItemTemplate
	for rows.Next() {
		t, err := scanRigTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
