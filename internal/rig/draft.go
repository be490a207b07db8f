// ABOUTME: Carry-forward draft generation for new rig logs.
// ABOUTME: Re-maps the most recent log's values onto the current templates.
package rig

import (
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/rigbook/internal/models"
)

// NewDraft pre-populates the items for a new rig log. With no usable
// history it produces one zero/default item per template; otherwise it
// carries the most recent log's values forward, re-mapped onto the
// current template set. Every template yields exactly one draft item, in
// template display order. Matching prefers the template reference each
// historical item carried; items whose reference went stale fall back to
// a (name, unit) match so renumbered or re-created templates still pick
// up their history.
func NewDraft(templates []*models.RigItemTemplate, history []*models.RigLog) []models.RigItem {
	ordered := sortedTemplates(templates)

	latest := LatestLog(history)
	if latest == nil || len(latest.Items) == 0 {
		drafts := make([]models.RigItem, 0, len(ordered))
		for _, t := range ordered {
			drafts = append(drafts, defaultItem(t))
		}
		return drafts
	}

	byTemplate := make(map[uuid.UUID]*models.RigItem, len(latest.Items))
	for i := range latest.Items {
		item := &latest.Items[i]
		if item.TemplateID != nil {
			byTemplate[*item.TemplateID] = item
		}
	}

	drafts := make([]models.RigItem, 0, len(ordered))
	for _, t := range ordered {
		prior := byTemplate[t.ID]
		if prior == nil {
			prior = matchByNameUnit(latest.Items, t.Name, t.Unit)
		}
		if prior == nil {
			drafts = append(drafts, defaultItem(t))
			continue
		}

		draft := models.NewRigItem(t, prior.Value, prior.Status)
		if t.IsChoice() {
			sv := t.DefaultOption()
			if prior.StringValue != nil {
				sv = *prior.StringValue
			}
			draft.WithStringValue(sv)
		}
		drafts = append(drafts, *draft)
	}
	return drafts
}

// LatestLog returns the most recent log by date. Ties are broken by
// creation time, then ID, so the choice is deterministic. Returns nil
// for empty history.
func LatestLog(history []*models.RigLog) *models.RigLog {
	var latest *models.RigLog
	for _, l := range history {
		if latest == nil || after(l, latest) {
			latest = l
		}
	}
	return latest
}

func after(a, b *models.RigLog) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}

func defaultItem(t *models.RigItemTemplate) models.RigItem {
	item := models.NewRigItem(t, 0, models.StatusNormal)
	if t.IsChoice() {
		item.WithStringValue(t.DefaultOption())
	}
	return *item
}

func matchByNameUnit(items []models.RigItem, name, unit string) *models.RigItem {
	for i := range items {
		if items[i].Name == name && items[i].Unit == unit {
			return &items[i]
		}
	}
	return nil
}

func sortedTemplates(templates []*models.RigItemTemplate) []*models.RigItemTemplate {
	ordered := make([]*models.RigItemTemplate, len(templates))
	copy(ordered, templates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	return ordered
}
