// ABOUTME: Tests for the equipment safety score.
// ABOUTME: Covers the no-history default, penalties, and the zero floor.
package rig

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/rigbook/internal/models"
)

func logWithStatuses(statuses ...models.RigItemStatus) *models.RigLog {
	boatID := uuid.New()
	log := models.NewRigLog(boatID, time.Now(), "")
	for i, st := range statuses {
		tpl := models.NewRigItemTemplate(boatID, "Item", "", "").WithPosition(i)
		log.Items = append(log.Items, *models.NewRigItem(tpl, 0, st))
	}
	return log
}

func TestSafetyScoreNoHistory(t *testing.T) {
	if got := SafetyScore(nil); got != 100 {
		t.Errorf("nil log should score 100, got %d", got)
	}
}

func TestSafetyScoreAllNormal(t *testing.T) {
	log := logWithStatuses(models.StatusNormal, models.StatusNormal, models.StatusNormal)
	if got := SafetyScore(log); got != 100 {
		t.Errorf("all-normal log should score 100, got %d", got)
	}
}

func TestSafetyScorePenalties(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.RigItemStatus
		want     int
	}{
		{"one caution", []models.RigItemStatus{models.StatusCaution}, 90},
		{"one critical", []models.RigItemStatus{models.StatusCritical}, 70},
		{"mixed", []models.RigItemStatus{models.StatusCritical, models.StatusCaution, models.StatusNormal}, 60},
		{"two critical two caution", []models.RigItemStatus{
			models.StatusCritical, models.StatusCritical,
			models.StatusCaution, models.StatusCaution,
		}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafetyScore(logWithStatuses(tt.statuses...)); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSafetyScoreFloorsAtZero(t *testing.T) {
	log := logWithStatuses(
		models.StatusCritical, models.StatusCritical,
		models.StatusCritical, models.StatusCritical,
	)
	if got := SafetyScore(log); got != 0 {
		t.Errorf("score should floor at 0, got %d", got)
	}
}
