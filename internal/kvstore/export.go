// ABOUTME: Export and import for the Badger store.
// ABOUTME: Produces the same envelope as the SQLite backend for migration.
package kvstore

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/storage"
)

// GetAllData reads every record into an export envelope.
func (s *Store) GetAllData() (*storage.ExportData, error) {
	data := &storage.ExportData{ExportedAt: time.Now()}

	boats, err := s.ListBoats()
	if err != nil {
		return nil, fmt.Errorf("export boats: %w", err)
	}
	data.Boats = boats

	for _, boat := range boats {
		templates, err := s.ListRigTemplates(boat.ID)
		if err != nil {
			return nil, fmt.Errorf("export rig templates for %s: %w", boat.Name, err)
		}
		data.RigTemplates = append(data.RigTemplates, templates...)

		logs, err := s.ListRigLogs(boat.ID)
		if err != nil {
			return nil, fmt.Errorf("export rig logs for %s: %w", boat.Name, err)
		}
		data.RigLogs = append(data.RigLogs, logs...)

		items, err := s.ListChecklist(boat.ID)
		if err != nil {
			return nil, fmt.Errorf("export checklist for %s: %w", boat.Name, err)
		}
		data.ChecklistItems = append(data.ChecklistItems, items...)
	}

	workouts, err := s.allWorkoutTemplates()
	if err != nil {
		return nil, fmt.Errorf("export workout templates: %w", err)
	}
	data.WorkoutTemplates = workouts

	sessions, err := s.allTrainingSessions()
	if err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}
	data.Sessions = sessions

	return data, nil
}

// ImportData writes an export envelope into the store.
func (s *Store) ImportData(data *storage.ExportData) error {
	for _, b := range data.Boats {
		if err := s.CreateBoat(b); err != nil {
			return fmt.Errorf("import boat %s: %w", b.Name, err)
		}
	}
	for _, t := range data.RigTemplates {
		if err := s.CreateRigTemplate(t); err != nil {
			return fmt.Errorf("import rig template %s: %w", t.Name, err)
		}
	}
	for _, l := range data.RigLogs {
		if err := s.CreateRigLog(l); err != nil {
			return fmt.Errorf("import rig log %s: %w", l.ID, err)
		}
	}
	for _, item := range data.ChecklistItems {
		if err := s.CreateChecklistItem(item); err != nil {
			return fmt.Errorf("import checklist item %s: %w", item.Task, err)
		}
	}
	for _, w := range data.WorkoutTemplates {
		if err := s.CreateWorkoutTemplate(w); err != nil {
			return fmt.Errorf("import workout template %s: %w", w.Name, err)
		}
	}
	for _, sess := range data.Sessions {
		if err := s.CreateTrainingSession(sess); err != nil {
			return fmt.Errorf("import session %s: %w", sess.ID, err)
		}
	}
	return nil
}

func (s *Store) allWorkoutTemplates() ([]*models.WorkoutTemplate, error) {
	allData, err := s.listByPrefix(WorkoutTemplatePrefix)
	if err != nil {
		return nil, err
	}
	var templates []*models.WorkoutTemplate
	for _, data := range allData {
		w, err := unmarshalJSON[models.WorkoutTemplate](data)
		if err != nil {
			continue
		}
		templates = append(templates, w)
	}
	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Seed != templates[j].Seed {
			return templates[i].Seed
		}
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

func (s *Store) allTrainingSessions() ([]*models.TrainingSession, error) {
	allData, err := s.listByPrefix(SessionPrefix)
	if err != nil {
		return nil, err
	}
	var sessions []*models.TrainingSession
	for _, data := range allData {
		sess, err := unmarshalJSON[models.TrainingSession](data)
		if err != nil {
			continue
		}
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	return sessions, nil
}
