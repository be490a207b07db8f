// ABOUTME: Training models: workout templates, sessions, summaries, splits.
// ABOUTME: Session metrics are materialized copies, not live template refs.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionType distinguishes ergometer from on-water training.
type SessionType string

const (
	SessionErgo    SessionType = "ergo"
	SessionOnWater SessionType = "water"
)

// AllSessionTypes returns all valid session types.
var AllSessionTypes = []SessionType{SessionErgo, SessionOnWater}

// IsValidSessionType checks if a string is a valid session type.
func IsValidSessionType(s string) bool {
	for _, st := range AllSessionTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// WorkoutCategory is the structural shape of a workout.
type WorkoutCategory string

const (
	CategorySingleDistance   WorkoutCategory = "single_distance"
	CategorySingleTime       WorkoutCategory = "single_time"
	CategoryDistanceInterval WorkoutCategory = "distance_interval"
	CategoryTimeInterval     WorkoutCategory = "time_interval"
)

// WorkoutTemplate defines a reusable workout with its ordered metrics.
// A nil BoatID means the template is shared across all boats. Seed
// templates are created at onboarding and refuse deletion by default.
type WorkoutTemplate struct {
	ID          uuid.UUID
	BoatID      *uuid.UUID
	Name        string
	SessionType SessionType
	Category    *WorkoutCategory
	Seed        bool
	Metrics     []MetricTemplate
	CreatedAt   time.Time
}

// NewWorkoutTemplate creates a workout template owned by one boat.
func NewWorkoutTemplate(boatID uuid.UUID, name string, st SessionType) *WorkoutTemplate {
	return &WorkoutTemplate{
		ID:          uuid.New(),
		BoatID:      &boatID,
		Name:        name,
		SessionType: st,
		CreatedAt:   time.Now(),
	}
}

// NewSharedWorkoutTemplate creates a template visible from every boat.
func NewSharedWorkoutTemplate(name string, st SessionType) *WorkoutTemplate {
	return &WorkoutTemplate{
		ID:          uuid.New(),
		Name:        name,
		SessionType: st,
		CreatedAt:   time.Now(),
	}
}

// WithCategory sets the structural workout category.
func (w *WorkoutTemplate) WithCategory(c WorkoutCategory) *WorkoutTemplate {
	w.Category = &c
	return w
}

// AsSeed marks the template as a seed template.
func (w *WorkoutTemplate) AsSeed() *WorkoutTemplate {
	w.Seed = true
	return w
}

// AddMetric appends a metric template at the next position.
func (w *WorkoutTemplate) AddMetric(name, unit string) *WorkoutTemplate {
	w.Metrics = append(w.Metrics, MetricTemplate{
		ID:                uuid.New(),
		WorkoutTemplateID: w.ID,
		Name:              name,
		Unit:              unit,
		Position:          len(w.Metrics),
	})
	return w
}

// MetricTemplate defines one named measurement captured for a workout.
// Position defines both presentation order and the order in which the
// default metric values are generated for a new session.
type MetricTemplate struct {
	ID                uuid.UUID
	WorkoutTemplateID uuid.UUID
	Name              string
	Unit              string
	Position          int
}

// TrainingSession is one recorded training activity. Shared sessions are
// owned by no boat and appear in every boat's training view.
type TrainingSession struct {
	ID                uuid.UUID
	BoatID            *uuid.UUID
	Shared            bool
	Date              time.Time
	SessionType       SessionType
	Memo              string
	WorkoutTemplateID *uuid.UUID
	Image             []byte
	Metrics           []TrainingMetric
	Summary           *WorkoutSummary
	CreatedAt         time.Time
}

// NewTrainingSession creates a session owned by one boat.
func NewTrainingSession(boatID uuid.UUID, date time.Time, st SessionType) *TrainingSession {
	return &TrainingSession{
		ID:          uuid.New(),
		BoatID:      &boatID,
		Date:        date,
		SessionType: st,
		CreatedAt:   time.Now(),
	}
}

// NewSharedTrainingSession creates an unowned session visible everywhere.
func NewSharedTrainingSession(date time.Time, st SessionType) *TrainingSession {
	return &TrainingSession{
		ID:          uuid.New(),
		Shared:      true,
		Date:        date,
		SessionType: st,
		CreatedAt:   time.Now(),
	}
}

// WithMemo sets free-text notes on the session.
func (s *TrainingSession) WithMemo(memo string) *TrainingSession {
	s.Memo = memo
	return s
}

// WithWorkoutTemplate records which template the session was logged from
// and materializes zero-valued metrics from it.
func (s *TrainingSession) WithWorkoutTemplate(w *WorkoutTemplate) *TrainingSession {
	tid := w.ID
	s.WorkoutTemplateID = &tid
	s.Metrics = MetricsFromTemplates(s.ID, w.Metrics)
	return s
}

// Validate enforces the ownership invariant: a session is shared if and
// only if it has no owning boat.
func (s *TrainingSession) Validate() error {
	if s.Shared && s.BoatID != nil {
		return fmt.Errorf("shared session must not have an owning boat")
	}
	if !s.Shared && s.BoatID == nil {
		return fmt.Errorf("unshared session requires an owning boat")
	}
	return nil
}

// TrainingMetric is one recorded measurement within a session. It is a
// copy of the metric template at creation time; later template edits do
// not alter history.
type TrainingMetric struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Name      string
	Unit      string
	Value     float64
	Position  int
}

// MetricsFromTemplates materializes one zero-valued TrainingMetric per
// metric template, in template position order.
func MetricsFromTemplates(sessionID uuid.UUID, templates []MetricTemplate) []TrainingMetric {
	ordered := make([]MetricTemplate, len(templates))
	copy(ordered, templates)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1].Position > ordered[j].Position; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}

	metrics := make([]TrainingMetric, 0, len(ordered))
	for i, mt := range ordered {
		metrics = append(metrics, TrainingMetric{
			ID:        uuid.New(),
			SessionID: sessionID,
			Name:      mt.Name,
			Unit:      mt.Unit,
			Position:  i,
		})
	}
	return metrics
}

// WorkoutSummary holds the aggregate result of one session, with its
// ordered splits. One summary per session.
type WorkoutSummary struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
	TotalDistance float64 // meters
	TotalSeconds  float64
	AvgPace       float64 // seconds per 500m
	AvgStrokeRate float64 // strokes per minute
	AvgPower      float64 // watts
	Category      string
	TargetValue   float64
	RestSeconds   *int
	Splits        []SplitData
}

// NewWorkoutSummary creates a summary for a session.
func NewWorkoutSummary(sessionID uuid.UUID) *WorkoutSummary {
	return &WorkoutSummary{
		ID:        uuid.New(),
		SessionID: sessionID,
	}
}

// AddSplit appends a split at the next 1-based position.
func (ws *WorkoutSummary) AddSplit(distance, seconds, pace, strokeRate, power float64) *WorkoutSummary {
	ws.Splits = append(ws.Splits, SplitData{
		ID:         uuid.New(),
		SummaryID:  ws.ID,
		Position:   len(ws.Splits) + 1,
		Distance:   distance,
		Seconds:    seconds,
		Pace:       pace,
		StrokeRate: strokeRate,
		Power:      power,
	})
	return ws
}

// SplitData is one sub-segment's measurements. Positions are 1-based and
// contiguous within a summary; deleting a split renumbers the remainder.
type SplitData struct {
	ID         uuid.UUID
	SummaryID  uuid.UUID
	Position   int
	Distance   float64
	Seconds    float64
	Pace       float64
	StrokeRate float64
	Power      float64
}
