// ABOUTME: Workout summary and split operations for SQLite storage.
// ABOUTME: Deleting a split renumbers the rest so positions stay contiguous.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

// SaveWorkoutSummary upserts a session's summary and replaces its splits
// atomically. A session has at most one summary.
func (d *DB) SaveWorkoutSummary(ws *models.WorkoutSummary) error {
	return d.inTx(func(tx *sql.Tx) error {
		// Replace any existing summary for the session
		if _, err := tx.Exec(
			`DELETE FROM workout_summaries WHERE session_id = ?`, ws.SessionID.String(),
		); err != nil {
			return fmt.Errorf("clear workout summary: %w", err)
		}
		_, err := tx.Exec(
			`INSERT INTO workout_summaries (id, session_id, total_distance, total_seconds, avg_pace, avg_stroke_rate, avg_power, category, target_value, rest_seconds)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ws.ID.String(), ws.SessionID.String(), ws.TotalDistance, ws.TotalSeconds,
			ws.AvgPace, ws.AvgStrokeRate, ws.AvgPower, ws.Category, ws.TargetValue, ws.RestSeconds,
		)
		if err != nil {
			return fmt.Errorf("insert workout summary: %w", err)
		}
		for _, split := range ws.Splits {
			_, err := tx.Exec(
				`INSERT INTO splits (id, summary_id, position, distance, seconds, pace, stroke_rate, power)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				split.ID.String(), ws.ID.String(), split.Position,
				split.Distance, split.Seconds, split.Pace, split.StrokeRate, split.Power,
			)
			if err != nil {
				return fmt.Errorf("insert split %d: %w", split.Position, err)
			}
		}
		return nil
	})
}

// DeleteSplit removes the split at the given position and shifts later
// splits down one so positions remain 1..N with no gaps.
func (d *DB) DeleteSplit(summaryID uuid.UUID, position int) error {
	return d.inTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(
			`DELETE FROM splits WHERE summary_id = ? AND position = ?`,
			summaryID.String(), position,
		)
		if err != nil {
			return fmt.Errorf("delete split: %w", err)
		}
		n, _ := result.RowsAffected()
		if n == 0 {
			return fmt.Errorf("no split at position %d", position)
		}
		_, err = tx.Exec(
			`UPDATE splits SET position = position - 1 WHERE summary_id = ? AND position > ?`,
			summaryID.String(), position,
		)
		if err != nil {
			return fmt.Errorf("renumber splits: %w", err)
		}
		return nil
	})
}

func (d *DB) summaryForSession(sessionID uuid.UUID) (*models.WorkoutSummary, error) {
	row := d.db.QueryRow(
		`SELECT id, session_id, total_distance, total_seconds, avg_pace, avg_stroke_rate, avg_power, category, target_value, rest_seconds
		 FROM workout_summaries WHERE session_id = ?`, sessionID.String(),
	)
	var ws models.WorkoutSummary
	var id, sid string
	var category sql.NullString
	var restSeconds sql.NullInt64
	if err := row.Scan(&id, &sid, &ws.TotalDistance, &ws.TotalSeconds, &ws.AvgPace,
		&ws.AvgStrokeRate, &ws.AvgPower, &category, &ws.TargetValue, &restSeconds); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan workout summary: %w", err)
	}
	ws.ID, _ = uuid.Parse(id)
	ws.SessionID, _ = uuid.Parse(sid)
	ws.Category = category.String
	if restSeconds.Valid {
		r := int(restSeconds.Int64)
		ws.RestSeconds = &r
	}

	splits, err := d.splitsForSummary(ws.ID)
	if err != nil {
		return nil, err
	}
	ws.Splits = splits
	return &ws, nil
}

func (d *DB) splitsForSummary(summaryID uuid.UUID) ([]models.SplitData, error) {
	rows, err := d.db.Query(
		`SELECT id, summary_id, position, distance, seconds, pace, stroke_rate, power
		 FROM splits WHERE summary_id = ? ORDER BY position`,
		summaryID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query splits: %w", err)
	}
	defer rows.Close()

	var splits []models.SplitData
	for rows.Next() {
		var s models.SplitData
		var id, sid string
		if err := rows.Scan(&id, &sid, &s.Position, &s.Distance, &s.Seconds,
			&s.Pace, &s.StrokeRate, &s.Power); err != nil {
			return nil, fmt.Errorf("scan split: %w", err)
		}
		s.ID, _ = uuid.Parse(id)
		s.SummaryID, _ = uuid.Parse(sid)
		splits = append(splits, s)
	}
	return splits, rows.Err()
}
