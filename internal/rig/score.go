// ABOUTME: Safety score derived from the most recent rig log's statuses.
// ABOUTME: Pure function, recomputed on every read, never stored.
package rig

import (
	"github.com/harperreed/rigbook/internal/models"
)

// Penalty per flagged item status.
const (
	CriticalPenalty = 30
	CautionPenalty  = 10
)

// SafetyScore derives a 0-100 score from a rig log's item statuses.
// A nil log (no history yet) scores a full 100.
func SafetyScore(latest *models.RigLog) int {
	if latest == nil {
		return 100
	}

	score := 100
	for _, item := range latest.Items {
		switch item.Status {
		case models.StatusCritical:
			score -= CriticalPenalty
		case models.StatusCaution:
			score -= CautionPenalty
		}
	}

	if score < 0 {
		return 0
	}
	return score
}
