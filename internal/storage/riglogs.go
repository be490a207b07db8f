// ABOUTME: Rig log CRUD operations for SQLite storage.
// ABOUTME: Logs and their items are written together in one transaction.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateRigLog inserts a rig log and its items atomically.
func (d *DB) CreateRigLog(log *models.RigLog) error {
	return d.inTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO rig_logs (id, boat_id, date, memo, created_at) VALUES (?, ?, ?, ?, ?)`,
			log.ID.String(), log.BoatID.String(),
			log.Date.Format(time.RFC3339), log.Memo, log.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert rig log: %w", err)
		}
		return insertRigItems(tx, log.ID, log.Items)
	})
}

// GetRigLog retrieves a rig log with its items by full ID or unique prefix.
func (d *DB) GetRigLog(idOrPrefix string) (*models.RigLog, error) {
	id, err := d.resolveID("rig_logs", idOrPrefix)
	if err != nil {
		return nil, err
	}
	row := d.db.QueryRow(
		`SELECT id, boat_id, date, memo, created_at FROM rig_logs WHERE id = ?`, id,
	)
	log, err := scanRigLog(row)
	if err != nil {
		return nil, err
	}
	log.Items, err = d.rigItemsForLog(log.ID)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// ListRigLogs returns a boat's rig logs with items, newest first.
// Ties on date fall back to created_at then id so ordering is stable.
func (d *DB) ListRigLogs(boatID uuid.UUID) ([]*models.RigLog, error) {
	rows, err := d.db.Query(
		`SELECT id, boat_id, date, memo, created_at FROM rig_logs
		 WHERE boat_id = ? ORDER BY date DESC, created_at DESC, id DESC`,
		boatID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query rig logs: %w", err)
	}
	defer rows.Close()

	logs, err := scanRigLogs(rows)
	if err != nil {
		return nil, err
	}
	for _, log := range logs {
		log.Items, err = d.rigItemsForLog(log.ID)
		if err != nil {
			return nil, err
		}
	}
	return logs, nil
}

// LatestRigLog returns the most recent rig log for a boat, or nil when
// the boat has no logs yet.
func (d *DB) LatestRigLog(boatID uuid.UUID) (*models.RigLog, error) {
	row := d.db.QueryRow(
		`SELECT id, boat_id, date, memo, created_at FROM rig_logs
		 WHERE boat_id = ? ORDER BY date DESC, created_at DESC, id DESC LIMIT 1`,
		boatID.String(),
	)
	log, err := scanRigLog(row)
	if err != nil {
		if err == errRigLogNotFound {
			return nil, nil
		}
		return nil, err
	}
	log.Items, err = d.rigItemsForLog(log.ID)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// UpdateRigLog replaces a log's date, memo, and items atomically.
func (d *DB) UpdateRigLog(log *models.RigLog) error {
	return d.inTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(
			`UPDATE rig_logs SET date = ?, memo = ? WHERE id = ?`,
			log.Date.Format(time.RFC3339), log.Memo, log.ID.String(),
		)
		if err != nil {
			return fmt.Errorf("update rig log: %w", err)
		}
		n, _ := result.RowsAffected()
		if n == 0 {
			return fmt.Errorf("rig log not found: %s", log.ID)
		}
		if _, err := tx.Exec(`DELETE FROM rig_items WHERE rig_log_id = ?`, log.ID.String()); err != nil {
			return fmt.Errorf("clear rig items: %w", err)
		}
		return insertRigItems(tx, log.ID, log.Items)
	})
}

// DeleteRigLog removes a log and its items via cascade.
func (d *DB) DeleteRigLog(idOrPrefix string) error {
	id, err := d.resolveID("rig_logs", idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`DELETE FROM rig_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete rig log: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("rig log not found: %s", idOrPrefix)
	}
	return nil
}

func insertRigItems(tx *sql.Tx, logID uuid.UUID, items []models.RigItem) error {
	for _, item := range items {
		var templateID interface{}
		if item.TemplateID != nil {
			templateID = item.TemplateID.String()
		}
		_, err := tx.Exec(
			`INSERT INTO rig_items (id, rig_log_id, template_id, name, unit, value, string_value, status, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID.String(), logID.String(), templateID,
			item.Name, item.Unit, item.Value, item.StringValue, string(item.Status), item.Position,
		)
		if err != nil {
			return fmt.Errorf("insert rig item %q: %w", item.Name, err)
		}
	}
	return nil
}

func (d *DB) rigItemsForLog(logID uuid.UUID) ([]models.RigItem, error) {
	rows, err := d.db.Query(
		`SELECT id, rig_log_id, template_id, name, unit, value, string_value, status, position
		 FROM rig_items WHERE rig_log_id = ? ORDER BY position, name`,
		logID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query rig items: %w", err)
	}
	defer rows.Close()

	var items []models.RigItem
	for rows.Next() {
		var item models.RigItem
		var id, itemLogID, status string
		var templateID sql.NullString
		if err := rows.Scan(&id, &itemLogID, &templateID, &item.Name, &item.Unit,
			&item.Value, &item.StringValue, &status, &item.Position); err != nil {
			return nil, fmt.Errorf("scan rig item: %w", err)
		}
		item.ID, _ = uuid.Parse(id)
		item.RigLogID, _ = uuid.Parse(itemLogID)
		if templateID.Valid {
			tid, err := uuid.Parse(templateID.String)
			if err == nil {
				item.TemplateID = &tid
			}
		}
		item.Status = models.RigItemStatus(status)
		items = append(items, item)
	}
	return items, rows.Err()
}

var errRigLogNotFound = fmt.Errorf("rig log not found")

func scanRigLog(row rowScanner) (*models.RigLog, error) {
	var log models.RigLog
	var id, boatID, date, createdAt string
	if err := row.Scan(&id, &boatID, &date, &log.Memo, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, errRigLogNotFound
		}
		return nil, fmt.Errorf("scan rig log: %w", err)
	}
	log.ID, _ = uuid.Parse(id)
	log.BoatID, _ = uuid.Parse(boatID)
	log.Date, _ = time.Parse(time.RFC3339, date)
	log.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &log, nil
}

func scanRigLogs(rows *sql.Rows) ([]*models.RigLog, error) {
	var logs []*models.RigLog
	for rows.Next() {
		log, err := scanRigLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
