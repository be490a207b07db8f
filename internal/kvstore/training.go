// ABOUTME: Workout template and training session operations for Badger.
// ABOUTME: Sessions embed metrics and summary; splits live inside the summary.
package kvstore

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/storage"
)

// CreateWorkoutTemplate stores a workout template with its metric templates.
func (s *Store) CreateWorkoutTemplate(w *models.WorkoutTemplate) error {
	data, err := marshalJSON(w)
	if err != nil {
		return fmt.Errorf("marshal workout template: %w", err)
	}
	return s.set(WorkoutTemplatePrefix+w.ID.String(), data)
}

// GetWorkoutTemplate retrieves a workout template by ID or ID prefix.
func (s *Store) GetWorkoutTemplate(idOrPrefix string) (*models.WorkoutTemplate, error) {
	data, err := s.getByIDPrefix(WorkoutTemplatePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get workout template: %w", err)
	}
	return unmarshalJSON[models.WorkoutTemplate](data)
}

// ListWorkoutTemplates returns the templates visible to a boat: its own
// plus shared ones. Seed templates sort first, then alphabetically.
func (s *Store) ListWorkoutTemplates(boatID uuid.UUID, sessionType *models.SessionType) ([]*models.WorkoutTemplate, error) {
	allData, err := s.listByPrefix(WorkoutTemplatePrefix)
	if err != nil {
		return nil, fmt.Errorf("list workout templates: %w", err)
	}

	var templates []*models.WorkoutTemplate
	for _, data := range allData {
		w, err := unmarshalJSON[models.WorkoutTemplate](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if w.BoatID != nil && *w.BoatID != boatID {
			continue
		}
		if sessionType != nil && w.SessionType != *sessionType {
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

// DeleteWorkoutTemplate removes a template. Seed templates are protected
// unless force is set.
func (s *Store) DeleteWorkoutTemplate(idOrPrefix string, force bool) error {
	w, err := s.GetWorkoutTemplate(idOrPrefix)
	if err != nil {
		return err
	}
	if w.Seed && !force {
		return &storage.ErrSeedTemplate{Name: w.Name}
	}
	return s.delete(WorkoutTemplatePrefix + w.ID.String())
}

// CreateTrainingSession stores a session with its metrics.
func (s *Store) CreateTrainingSession(sess *models.TrainingSession) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	data, err := marshalJSON(sess)
	if err != nil {
		return fmt.Errorf("marshal training session: %w", err)
	}
	return s.set(SessionPrefix+sess.ID.String(), data)
}

// GetTrainingSession retrieves a session by ID or ID prefix.
func (s *Store) GetTrainingSession(idOrPrefix string) (*models.TrainingSession, error) {
	data, err := s.getByIDPrefix(SessionPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get training session: %w", err)
	}
	return unmarshalJSON[models.TrainingSession](data)
}

// ListTrainingSessions returns a boat's sessions plus shared ones,
// newest first.
func (s *Store) ListTrainingSessions(boatID uuid.UUID, sessionType *models.SessionType) ([]*models.TrainingSession, error) {
	allData, err := s.listByPrefix(SessionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}

	var sessions []*models.TrainingSession
	for _, data := range allData {
		sess, err := unmarshalJSON[models.TrainingSession](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if !sess.Shared && (sess.BoatID == nil || *sess.BoatID != boatID) {
			continue
		}
		if sessionType != nil && sess.SessionType != *sessionType {
			continue
		}
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})
	return sessions, nil
}

// UpdateTrainingSession replaces a stored session document.
func (s *Store) UpdateTrainingSession(sess *models.TrainingSession) error {
	if _, err := s.getByIDPrefix(SessionPrefix, sess.ID.String()); err != nil {
		return fmt.Errorf("training session not found: %s", sess.ID)
	}
	return s.CreateTrainingSession(sess)
}

// DeleteTrainingSession removes a session with its metrics and summary.
func (s *Store) DeleteTrainingSession(idOrPrefix string) error {
	if err := s.deleteByIDPrefix(SessionPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete training session: %w", err)
	}
	return nil
}

// AttachSessionImage stores image bytes on a session.
func (s *Store) AttachSessionImage(idOrPrefix string, image []byte) error {
	sess, err := s.GetTrainingSession(idOrPrefix)
	if err != nil {
		return err
	}
	sess.Image = image
	return s.saveSession(sess)
}

// SaveWorkoutSummary attaches a summary to its session, replacing any
// existing one.
func (s *Store) SaveWorkoutSummary(ws *models.WorkoutSummary) error {
	sess, err := s.GetTrainingSession(ws.SessionID.String())
	if err != nil {
		return fmt.Errorf("session for summary: %w", err)
	}
	sess.Summary = ws
	return s.saveSession(sess)
}

// DeleteSplit removes the split at the given position and renumbers the
// rest so positions stay 1..N.
func (s *Store) DeleteSplit(summaryID uuid.UUID, position int) error {
	sess, err := s.sessionBySummaryID(summaryID)
	if err != nil {
		return err
	}
	splits := sess.Summary.Splits
	idx := -1
	for i, split := range splits {
		if split.Position == position {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no split at position %d", position)
	}
	splits = append(splits[:idx], splits[idx+1:]...)
	for i := range splits {
		splits[i].Position = i + 1
	}
	sess.Summary.Splits = splits
	return s.saveSession(sess)
}

func (s *Store) saveSession(sess *models.TrainingSession) error {
	data, err := marshalJSON(sess)
	if err != nil {
		return fmt.Errorf("marshal training session: %w", err)
	}
	return s.set(SessionPrefix+sess.ID.String(), data)
}

func (s *Store) sessionBySummaryID(summaryID uuid.UUID) (*models.TrainingSession, error) {
	allData, err := s.listByPrefix(SessionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	for _, data := range allData {
		sess, err := unmarshalJSON[models.TrainingSession](data)
		if err != nil {
			continue
		}
		if sess.Summary != nil && sess.Summary.ID == summaryID {
			return sess, nil
		}
	}
	return nil, fmt.Errorf("no summary with id %s", summaryID)
}
