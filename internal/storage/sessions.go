// ABOUTME: Training session and metric operations for SQLite storage.
// ABOUTME: Shared ergo sessions (NULL boat_id) are visible from every boat.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// CreateTrainingSession inserts a session and its metrics atomically.
func (d *DB) CreateTrainingSession(s *models.TrainingSession) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return d.inTx(func(tx *sql.Tx) error {
		var boatID interface{}
		if s.BoatID != nil {
			boatID = s.BoatID.String()
		}
		var templateID interface{}
		if s.WorkoutTemplateID != nil {
			templateID = s.WorkoutTemplateID.String()
		}
		_, err := tx.Exec(
			`INSERT INTO training_sessions (id, boat_id, shared, date, session_type, memo, workout_template_id, image, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID.String(), boatID, s.Shared, s.Date.Format(time.RFC3339),
			string(s.SessionType), s.Memo, templateID, s.Image,
			s.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert training session: %w", err)
		}
		return insertTrainingMetrics(tx, s.ID, s.Metrics)
	})
}

// GetTrainingSession retrieves a session with metrics and summary by
// full ID or unique prefix.
func (d *DB) GetTrainingSession(idOrPrefix string) (*models.TrainingSession, error) {
	id, err := d.resolveID("training_sessions", idOrPrefix)
	if err != nil {
		return nil, err
	}
	row := d.db.QueryRow(
		`SELECT id, boat_id, shared, date, session_type, memo, workout_template_id, image, created_at
		 FROM training_sessions WHERE id = ?`, id,
	)
	s, err := scanTrainingSession(row)
	if err != nil {
		return nil, err
	}
	if err := d.loadSessionDetails(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListTrainingSessions returns a boat's sessions plus shared ergo
// sessions, newest first. Pass a session type to filter.
func (d *DB) ListTrainingSessions(boatID uuid.UUID, sessionType *models.SessionType) ([]*models.TrainingSession, error) {
	query := `SELECT id, boat_id, shared, date, session_type, memo, workout_template_id, image, created_at
		 FROM training_sessions WHERE (boat_id = ? OR shared = 1)`
	args := []interface{}{boatID.String()}
	if sessionType != nil {
		query += ` AND session_type = ?`
		args = append(args, string(*sessionType))
	}
	query += ` ORDER BY date DESC, created_at DESC, id DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query training sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.TrainingSession
	for rows.Next() {
		s, err := scanTrainingSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if err := d.loadSessionDetails(s); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// UpdateTrainingSession replaces a session's date, memo, and metric
// values atomically.
func (d *DB) UpdateTrainingSession(s *models.TrainingSession) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return d.inTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(
			`UPDATE training_sessions SET date = ?, memo = ? WHERE id = ?`,
			s.Date.Format(time.RFC3339), s.Memo, s.ID.String(),
		)
		if err != nil {
			return fmt.Errorf("update training session: %w", err)
		}
		n, _ := result.RowsAffected()
		if n == 0 {
			return fmt.Errorf("training session not found: %s", s.ID)
		}
		if _, err := tx.Exec(`DELETE FROM training_metrics WHERE session_id = ?`, s.ID.String()); err != nil {
			return fmt.Errorf("clear training metrics: %w", err)
		}
		return insertTrainingMetrics(tx, s.ID, s.Metrics)
	})
}

// DeleteTrainingSession removes a session, its metrics, and its summary
// via cascade.
func (d *DB) DeleteTrainingSession(idOrPrefix string) error {
	id, err := d.resolveID("training_sessions", idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`DELETE FROM training_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete training session: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("training session not found: %s", idOrPrefix)
	}
	return nil
}

// AttachSessionImage stores image bytes on a session, replacing any
// existing attachment.
func (d *DB) AttachSessionImage(idOrPrefix string, image []byte) error {
	id, err := d.resolveID("training_sessions", idOrPrefix)
	if err != nil {
		return err
	}
	result, err := d.db.Exec(`UPDATE training_sessions SET image = ? WHERE id = ?`, image, id)
	if err != nil {
		return fmt.Errorf("attach session image: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("training session not found: %s", idOrPrefix)
	}
	return nil
}

func (d *DB) loadSessionDetails(s *models.TrainingSession) error {
	metrics, err := d.trainingMetricsFor(s.ID)
	if err != nil {
		return err
	}
	s.Metrics = metrics
	summary, err := d.summaryForSession(s.ID)
	if err != nil {
		return err
	}
	s.Summary = summary
	return nil
}

func insertTrainingMetrics(tx *sql.Tx, sessionID uuid.UUID, metrics []models.TrainingMetric) error {
	for _, m := range metrics {
		_, err := tx.Exec(
			`INSERT INTO training_metrics (id, session_id, name, unit, value, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID.String(), sessionID.String(), m.Name, m.Unit, m.Value, m.Position,
		)
		if err != nil {
			return fmt.Errorf("insert training metric %q: %w", m.Name, err)
		}
	}
	return nil
}

func (d *DB) trainingMetricsFor(sessionID uuid.UUID) ([]models.TrainingMetric, error) {
	rows, err := d.db.Query(
		`SELECT id, session_id, name, unit, value, position
		 FROM training_metrics WHERE session_id = ? ORDER BY position, name`,
		sessionID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query training metrics: %w", err)
	}
	defer rows.Close()

	var metrics []models.TrainingMetric
	for rows.Next() {
		var m models.TrainingMetric
		var id, sid string
		if err := rows.Scan(&id, &sid, &m.Name, &m.Unit, &m.Value, &m.Position); err != nil {
			return nil, fmt.Errorf("scan training metric: %w", err)
		}
		m.ID, _ = uuid.Parse(id)
		m.SessionID, _ = uuid.Parse(sid)
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func scanTrainingSession(row rowScanner) (*models.TrainingSession, error) {
	var s models.TrainingSession
	var id, date, sessionType, createdAt string
	var boatID, templateID sql.NullString
	if err := row.Scan(&id, &boatID, &s.Shared, &date, &sessionType, &s.Memo,
		&templateID, &s.Image, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("training session not found")
		}
		return nil, fmt.Errorf("scan training session: %w", err)
	}
	s.ID, _ = uuid.Parse(id)
	if boatID.Valid {
		bid, err := uuid.Parse(boatID.String)
		if err == nil {
			s.BoatID = &bid
		}
	}
	s.Date, _ = time.Parse(time.RFC3339, date)
	s.SessionType = models.SessionType(sessionType)
	if templateID.Valid {
		tid, err := uuid.Parse(templateID.String)
		if err == nil {
			s.WorkoutTemplateID = &tid
		}
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}
