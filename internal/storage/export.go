// ABOUTME: Full-database export and import for backup and migration.
// ABOUTME: Supports JSON and YAML serialization of the export envelope.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/rigbook/internal/models"
)

// ExportData bundles every record in the store for backup or migration.
type ExportData struct {
	ExportedAt       time.Time                 `json:"exported_at" yaml:"exported_at"`
	Boats            []*models.Boat            `json:"boats" yaml:"boats"`
	RigTemplates     []*models.RigItemTemplate `json:"rig_templates" yaml:"rig_templates"`
	RigLogs          []*models.RigLog          `json:"rig_logs" yaml:"rig_logs"`
	ChecklistItems   []*models.ChecklistItem   `json:"checklist_items" yaml:"checklist_items"`
	WorkoutTemplates []*models.WorkoutTemplate `json:"workout_templates" yaml:"workout_templates"`
	Sessions         []*models.TrainingSession `json:"sessions" yaml:"sessions"`
}

// GetAllData reads every record into an export envelope.
func (d *DB) GetAllData() (*ExportData, error) {
	data := &ExportData{ExportedAt: time.Now()}

	boats, err := d.ListBoats()
	if err != nil {
		return nil, fmt.Errorf("export boats: %w", err)
	}
	data.Boats = boats

	for _, boat := range boats {
		templates, err := d.ListRigTemplates(boat.ID)
		if err != nil {
			return nil, fmt.Errorf("export rig templates for %s: %w", boat.Name, err)
		}
		data.RigTemplates = append(data.RigTemplates, templates...)

		logs, err := d.ListRigLogs(boat.ID)
		if err != nil {
			return nil, fmt.Errorf("export rig logs for %s: %w", boat.Name, err)
		}
		data.RigLogs = append(data.RigLogs, logs...)

		items, err := d.ListChecklist(boat.ID)
		if err != nil {
			return nil, fmt.Errorf("export checklist for %s: %w", boat.Name, err)
		}
		data.ChecklistItems = append(data.ChecklistItems, items...)
	}

	workouts, err := d.allWorkoutTemplates()
	if err != nil {
		return nil, fmt.Errorf("export workout templates: %w", err)
	}
	data.WorkoutTemplates = workouts

	sessions, err := d.allTrainingSessions()
	if err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}
	data.Sessions = sessions

	return data, nil
}

// ImportData writes an export envelope into the store. Records keep
// their original IDs so repeated imports are idempotent failures, not
// silent duplicates.
func (d *DB) ImportData(data *ExportData) error {
	for _, b := range data.Boats {
		if err := d.CreateBoat(b); err != nil {
			return fmt.Errorf("import boat %s: %w", b.Name, err)
		}
	}
	for _, t := range data.RigTemplates {
		if err := d.CreateRigTemplate(t); err != nil {
			return fmt.Errorf("import rig template %s: %w", t.Name, err)
		}
	}
	for _, log := range data.RigLogs {
		if err := d.CreateRigLog(log); err != nil {
			return fmt.Errorf("import rig log %s: %w", log.ID, err)
		}
	}
	for _, item := range data.ChecklistItems {
		if err := d.CreateChecklistItem(item); err != nil {
			return fmt.Errorf("import checklist item %s: %w", item.Task, err)
		}
	}
	for _, t := range data.WorkoutTemplates {
		if err := d.CreateWorkoutTemplate(t); err != nil {
			return fmt.Errorf("import workout template %s: %w", t.Name, err)
		}
	}
	for _, s := range data.Sessions {
		if err := d.CreateTrainingSession(s); err != nil {
			return fmt.Errorf("import session %s: %w", s.ID, err)
		}
		if s.Summary != nil {
			if err := d.SaveWorkoutSummary(s.Summary); err != nil {
				return fmt.Errorf("import summary for session %s: %w", s.ID, err)
			}
		}
	}
	return nil
}

// WriteJSON serializes an export envelope as indented JSON.
func WriteJSON(w io.Writer, data *ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// WriteYAML serializes an export envelope as YAML.
func WriteYAML(w io.Writer, data *ExportData) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return nil
}

// ReadJSON parses an export envelope from JSON.
func ReadJSON(r io.Reader) (*ExportData, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return &data, nil
}

func (d *DB) allWorkoutTemplates() ([]*models.WorkoutTemplate, error) {
	rows, err := d.db.Query(
		`SELECT id, boat_id, name, session_type, category, seed, created_at
		 FROM workout_templates ORDER BY seed DESC, name`,
	)
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

func (d *DB) allTrainingSessions() ([]*models.TrainingSession, error) {
	rows, err := d.db.Query(
		`SELECT id, boat_id, shared, date, session_type, memo, workout_template_id, image, created_at
		 FROM training_sessions ORDER BY date DESC, created_at DESC, id DESC`,
	)
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
