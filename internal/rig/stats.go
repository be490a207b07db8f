// ABOUTME: History series and statistics for one rig parameter over time.
// ABOUTME: Recomputed per selection; categorical items are excluded.
package rig

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/rigbook/internal/models"
)

// Selector identifies which rig parameter to chart. When TemplateID is
// set it takes precedence; Name matches the frozen item snapshots, which
// also covers orphaned items whose template is gone.
type Selector struct {
	TemplateID *uuid.UUID
	Name       string
}

// Matches reports whether an item belongs to the selected parameter.
func (s Selector) Matches(item *models.RigItem) bool {
	if s.TemplateID != nil && item.TemplateID != nil {
		return *item.TemplateID == *s.TemplateID
	}
	return item.Name == s.Name
}

// HistoryPoint is one charted (date, value) observation.
type HistoryPoint struct {
	Date  time.Time
	Value float64
}

// History extracts the (date, value) series for one parameter across a
// boat's rig logs, sorted ascending by date (stable for equal dates).
// Items without a numeric value are skipped, not coerced to zero.
func History(logs []*models.RigLog, sel Selector) []HistoryPoint {
	var points []HistoryPoint
	for _, l := range logs {
		for i := range l.Items {
			item := &l.Items[i]
			if !sel.Matches(item) || !item.IsNumeric() {
				continue
			}
			points = append(points, HistoryPoint{Date: l.Date, Value: item.Value})
			break
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// Stats are summary statistics over one parameter's history.
type Stats struct {
	Average float64
	Max     float64
	Min     float64
	Count   int
}

// Compute returns statistics over a series. ok is false for an empty
// series; callers must not read the zero Stats in that case.
func Compute(points []HistoryPoint) (stats Stats, ok bool) {
	if len(points) == 0 {
		return Stats{}, false
	}

	sum := 0.0
	stats.Max = points[0].Value
	stats.Min = points[0].Value
	for _, p := range points {
		sum += p.Value
		if p.Value > stats.Max {
			stats.Max = p.Value
		}
		if p.Value < stats.Min {
			stats.Min = p.Value
		}
	}
	stats.Average = sum / float64(len(points))
	stats.Count = len(points)
	return stats, true
}

// ParameterNames lists every distinct item name across a boat's logs,
// sorted, for parameter pickers.
func ParameterNames(logs []*models.RigLog) []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range logs {
		for i := range l.Items {
			if name := l.Items[i].Name; !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
