// ABOUTME: Workout template and metric template operations for SQLite storage.
// ABOUTME: Shared ergo templates have a NULL boat_id; seed templates sort first.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateWorkoutTemplate inserts a workout template and its metric templates.
func (d *DB) CreateWorkoutTemplate(t *models.WorkoutTemplate) error {
	return d.inTx(func(tx *sql.Tx) error {
		var boatID interface{}
		if t.BoatID != nil {
			boatID = t.BoatID.String()
		}
		var category interface{}
		if t.Category != nil {
			category = string(*t.Category)
		}
		_, err := tx.Exec(
			`INSERT INTO workout_templates (id, boat_id, name, session_type, category, seed, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID.String(), boatID, t.Name, string(t.SessionType), category, t.Seed,
			t.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert workout template: %w", err)
		}
		for _, m := range t.Metrics {
			_, err := tx.Exec(
				`INSERT INTO metric_templates (id, workout_template_id, name, unit, position)
				 VALUES (?, ?, ?, ?, ?)`,
				m.ID.String(), t.ID.String(), m.Name, m.Unit, m.Position,
			)
			if err != nil {
				return fmt.Errorf("insert metric template %q: %w", m.Name, err)
			}
		}
		return nil
	})
}

// GetWorkoutTemplate retrieves a workout template with its metric
// templates by full ID or unique prefix.
func (d *DB) GetWorkoutTemplate(idOrPrefix string) (*models.WorkoutTemplate, error) {
	id, err := d.resolveID("workout_templates", idOrPrefix)
	if err != nil {
		return nil, err
	}
	row := d.db.QueryRow(
		`SELECT id, boat_id, name, session_type, category, seed, created_at
		 FROM workout_templates WHERE id = ?`, id,
	)
	t, err := scanWorkoutTemplate(row)
	if err != nil {
		return nil, err
	}
	t.Metrics, err = d.metricTemplatesFor(t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListWorkoutTemplates returns the templates visible to a boat: its own
// plus shared ergo templates. Seed templates sort before user templates,
// then alphabetically. Pass a session type to filter.
func (d *DB) ListWorkoutTemplates(boatID uuid.UUID, sessionType *models.SessionType) ([]*models.WorkoutTemplate, error) {
	query := `SELECT id, boat_id, name, session_type, category, seed, created_at
		 FROM workout_templates WHERE (boat_id = ? OR boat_id IS NULL)`
	args := []interface{}{boatID.String()}
	if sessionType != nil {
		query += ` AND session_type = ?`
		args = append(args, string(*sessionType))
	}
	query += ` ORDER BY seed DESC, name`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.WorkoutTemplate
	for rows.Next() {
		t, err := scanWorkoutTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range templates {
		t.Metrics, err = d.metricTemplatesFor(t.ID)
		if err != nil {
			return nil, err
		}
	}
	return templates, nil
}

// DeleteWorkoutTemplate removes a template and its metric templates.
// Seed templates are protected unless force is set. Sessions logged from
// the template keep their metrics with the link set to NULL.
func (d *DB) DeleteWorkoutTemplate(idOrPrefix string, force bool) error {
	t, err := d.GetWorkoutTemplate(idOrPrefix)
	if err != nil {
		return err
	}
	if t.Seed && !force {
		return &ErrSeedTemplate{Name: t.Name}
	}
	if _, err := d.db.Exec(`DELETE FROM workout_templates WHERE id = ?`, t.ID.String()); err != nil {
		return fmt.Errorf("delete workout template: %w", err)
	}
	return nil
}

func (d *DB) metricTemplatesFor(templateID uuid.UUID) ([]models.MetricTemplate, error) {
	rows, err := d.db.Query(
		`SELECT id, workout_template_id, name, unit, position
		 FROM metric_templates WHERE workout_template_id = ? ORDER BY position, name`,
		templateID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query metric templates: %w", err)
	}
	defer rows.Close()

	var metrics []models.MetricTemplate
	for rows.Next() {
		var m models.MetricTemplate
		var id, wtID string
		if err := rows.Scan(&id, &wtID, &m.Name, &m.Unit, &m.Position); err != nil {
			return nil, fmt.Errorf("scan metric template: %w", err)
		}
		m.ID, _ = uuid.Parse(id)
		m.WorkoutTemplateID, _ = uuid.Parse(wtID)
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func scanWorkoutTemplate(row rowScanner) (*models.WorkoutTemplate, error) {
	var t models.WorkoutTemplate
	var id, sessionType, createdAt string
	var boatID, category sql.NullString
	if err := row.Scan(&id, &boatID, &t.Name, &sessionType, &category, &t.Seed, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout template not found")
		}
		return nil, fmt.Errorf("scan workout template: %w", err)
	}
	t.ID, _ = uuid.Parse(id)
	if boatID.Valid {
		bid, err := uuid.Parse(boatID.String)
		if err == nil {
			t.BoatID = &bid
		}
	}
	t.SessionType = models.SessionType(sessionType)
	if category.Valid {
		c := models.WorkoutCategory(category.String)
		t.Category = &c
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &t, nil
}
