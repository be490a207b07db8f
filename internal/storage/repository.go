// ABOUTME: Repository interface for the rig and training data store.
// ABOUTME: Defines the contract shared by the SQLite and Badger backends.
package storage

import (
	"github.com/google/uuid"
	"github.com/harperreed/rigbook/internal/models"
)

// Repository defines the storage interface for rigbook data.
// Two implementations exist: the SQLite store in this package and the
// Badger document store in internal/kvstore.
type Repository interface {
	// Boat operations
	CreateBoat(b *models.Boat) error
	GetBoat(idOrPrefix string) (*models.Boat, error)
	ListBoats() ([]*models.Boat, error)
	RenameBoat(idOrPrefix, name string) error
	DeleteBoat(idOrPrefix string) error

	// Rig item template operations
	CreateRigTemplate(t *models.RigItemTemplate) error
	GetRigTemplate(idOrPrefix string) (*models.RigItemTemplate, error)
	ListRigTemplates(boatID uuid.UUID) ([]*models.RigItemTemplate, error)
	UpdateRigTemplate(t *models.RigItemTemplate) error
	DeleteRigTemplate(idOrPrefix string) error

	// Rig log operations
	CreateRigLog(l *models.RigLog) error
	GetRigLog(idOrPrefix string) (*models.RigLog, error)
	ListRigLogs(boatID uuid.UUID) ([]*models.RigLog, error)
	LatestRigLog(boatID uuid.UUID) (*models.RigLog, error)
	UpdateRigLog(l *models.RigLog) error
	DeleteRigLog(idOrPrefix string) error

	// Checklist operations
	CreateChecklistItem(c *models.ChecklistItem) error
	ListChecklist(boatID uuid.UUID) ([]*models.ChecklistItem, error)
	SetChecklistDone(idOrPrefix string, done bool) error
	ResetChecklist(boatID uuid.UUID, category string) (int, error)
	DeleteChecklistItem(idOrPrefix string) error

	// Workout template operations
	CreateWorkoutTemplate(w *models.WorkoutTemplate) error
	GetWorkoutTemplate(idOrPrefix string) (*models.WorkoutTemplate, error)
	ListWorkoutTemplates(boatID uuid.UUID, sessionType *models.SessionType) ([]*models.WorkoutTemplate, error)
	DeleteWorkoutTemplate(idOrPrefix string, force bool) error

	// Training session operations
	CreateTrainingSession(s *models.TrainingSession) error
	GetTrainingSession(idOrPrefix string) (*models.TrainingSession, error)
	ListTrainingSessions(boatID uuid.UUID, sessionType *models.SessionType) ([]*models.TrainingSession, error)
	UpdateTrainingSession(s *models.TrainingSession) error
	DeleteTrainingSession(idOrPrefix string) error
	AttachSessionImage(idOrPrefix string, image []byte) error

	// Workout summary operations
	SaveWorkoutSummary(ws *models.WorkoutSummary) error
	DeleteSplit(summaryID uuid.UUID, position int) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// ErrSeedTemplate is returned when deleting a seed workout template
// without force.
type ErrSeedTemplate struct {
	Name string
}

func (e *ErrSeedTemplate) Error() string {
	return "seed template " + e.Name + " is protected; use force to delete"
}
