// ABOUTME: Boat CRUD operations for SQLite storage.
// ABOUTME: Deleting a boat cascades to all owned rig and training data.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateBoat inserts a new boat.
func (d *DB) CreateBoat(b *models.Boat) error {
	_, err := d.db.Exec(
		`INSERT INTO boats (id, name, created_at) VALUES (?, ?, ?)`,
		b.ID.String(), b.Name, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert boat: %w", err)
	}
	return nil
}

// GetBoat retrieves a boat by full ID or unique prefix.
func (d *DB) GetBoat(idOrPrefix string) (*models.Boat, error) {
	id, err := d.resolveBoatID(idOrPrefix)
	if err != nil {
		return nil, err
	}
	row := d.db.QueryRow(`SELECT id, name, created_at FROM boats WHERE id = ?`, id)
	return scanBoat(row)
}

// ListBoats returns all boats ordered by name.
func (d *DB) ListBoats() ([]*models.Boat, error) {
	rows, err := d.db.Query(`SELECT id, name, created_at FROM boats ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query boats: %w", err)
	}
	defer rows.Close()
	return scanBoats(rows)
}

// RenameBoat updates a boat's name.
func (d *DB) RenameBoat(idOrPrefix, name string) error {
	id, err := d.resolveBoatID(idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`UPDATE boats SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename boat: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("boat not found: %s", idOrPrefix)
	}
	return nil
}

// DeleteBoat removes a boat and all its rig logs, templates, checklist
// items, and training sessions via foreign key cascade.
func (d *DB) DeleteBoat(idOrPrefix string) error {
	id, err := d.resolveBoatID(idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`DELETE FROM boats WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete boat: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("boat not found: %s", idOrPrefix)
	}
	return nil
}

// resolveBoatID resolves a full UUID or unique prefix to a boat ID.
func (d *DB) resolveBoatID(idOrPrefix string) (string, error) {
	return d.resolveID("boats", idOrPrefix)
}

// resolveID resolves a full UUID or unique prefix against a table's id column.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	// Full UUID fast path
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(
		fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ?`, table), idOrPrefix+"%",
	)
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan id: %w", err)
		}
		matches = append(matches, id)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no match for id %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous id %q matches %d records", idOrPrefix, len(matches))
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBoat(row rowScanner) (*models.Boat, error) {
	var b models.Boat
	var id, createdAt string
	if err := row.Scan(&id, &b.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("boat not found")
		}
		return nil, fmt.Errorf("scan boat: %w", err)
	}
	b.ID, _ = uuid.Parse(id)
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &b, nil
}

func scanBoats(rows *sql.Rows) ([]*models.Boat, error) {
	var boats []*models.Boat
	for rows.Next() {
		b, err := scanBoat(rows)
		if err != nil {
			return nil, err
		}
		boats = append(boats, b)
	}
	return boats, rows.Err()
}
