// ABOUTME: Backend-to-backend data migration via the export envelope.
// ABOUTME: Works across any pair of Repository implementations.
package storage

import "fmt"

// MigrationResult reports record counts moved in a migration.
type MigrationResult struct {
	Boats            int
	RigTemplates     int
	RigLogs          int
	ChecklistItems   int
	WorkoutTemplates int
	Sessions         int
}

// MigrateData copies all data from source to destination. The
// destination should be empty; records keep their IDs.
func MigrateData(source, destination Repository) (*MigrationResult, error) {
	data, err := source.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if err := destination.ImportData(data); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}
	return &MigrationResult{
		Boats:            len(data.Boats),
		RigTemplates:     len(data.RigTemplates),
		RigLogs:          len(data.RigLogs),
		ChecklistItems:   len(data.ChecklistItems),
		WorkoutTemplates: len(data.WorkoutTemplates),
		Sessions:         len(data.Sessions),
	}, nil
}
