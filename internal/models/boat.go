// ABOUTME: Boat model, the root aggregate for all rig and training data.
// ABOUTME: Deleting a boat cascades to everything it owns.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Boat is the top-level aggregate. Rig logs, rig item templates, checklist
// items, workout templates, and training sessions are all scoped to a boat
// and are destroyed with it.
type Boat struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewBoat creates a new Boat with generated UUID and current timestamp.
func NewBoat(name string) *Boat {
	return &Boat{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}
