// ABOUTME: Category grouping and ordering for checklists and rig templates.
// ABOUTME: Preferred categories sort first, unknown ones alphabetically after.
package rig

import (
	"sort"

	"github.com/harperreed/rigbook/internal/models"
)

// CategoryOrder is a preferred ordering of category names. Categories in
// the list sort by their list position; anything else sorts alphabetically
// after every known category.
type CategoryOrder []string

// DefaultChecklistOrder is the preferred order for checklist categories.
var DefaultChecklistOrder = CategoryOrder{"Before Sailing", "After Sailing", "Pre-race", "Gear"}

// DefaultRigOrder is the preferred order for rig template categories.
var DefaultRigOrder = CategoryOrder{"Clutch", "Stretcher", "Oar"}

// Less orders two category names per the table.
func (o CategoryOrder) Less(a, b string) bool {
	ia, ib := o.index(a), o.index(b)
	if ia != ib {
		return ia < ib
	}
	if ia == len(o) {
		// Both unknown: alphabetical.
		return a < b
	}
	return false
}

func (o CategoryOrder) index(category string) int {
	for i, c := range o {
		if c == category {
			return i
		}
	}
	return len(o)
}

// Sort orders a set of category names in place per the table.
func (o CategoryOrder) Sort(categories []string) {
	sort.SliceStable(categories, func(i, j int) bool {
		return o.Less(categories[i], categories[j])
	})
}

// ChecklistGroup is one checklist category with its ordered items.
type ChecklistGroup struct {
	Category string
	Items    []*models.ChecklistItem
}

// GroupChecklist partitions checklist items by category and orders the
// groups per the table. Within a group, items order by position then task.
func GroupChecklist(items []*models.ChecklistItem, order CategoryOrder) []ChecklistGroup {
	byCategory := make(map[string][]*models.ChecklistItem)
	var categories []string
	for _, item := range items {
		if _, ok := byCategory[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	order.Sort(categories)

	groups := make([]ChecklistGroup, 0, len(categories))
	for _, c := range categories {
		members := byCategory[c]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].Position != members[j].Position {
				return members[i].Position < members[j].Position
			}
			return members[i].Task < members[j].Task
		})
		groups = append(groups, ChecklistGroup{Category: c, Items: members})
	}
	return groups
}

// TemplateGroup is one rig template category with its ordered templates.
type TemplateGroup struct {
	Category  string
	Templates []*models.RigItemTemplate
}

// GroupTemplates partitions rig item templates by category and orders the
// groups per the table. Within a group, templates order by position then
// name.
func GroupTemplates(templates []*models.RigItemTemplate, order CategoryOrder) []TemplateGroup {
	byCategory := make(map[string][]*models.RigItemTemplate)
	var categories []string
	for _, t := range templates {
		if _, ok := byCategory[t.Category]; !ok {
			categories = append(categories, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	order.Sort(categories)

	groups := make([]TemplateGroup, 0, len(categories))
	for _, c := range categories {
		members := byCategory[c]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].Position != members[j].Position {
				return members[i].Position < members[j].Position
			}
			return members[i].Name < members[j].Name
		})
		groups = append(groups, TemplateGroup{Category: c, Templates: members})
	}
	return groups
}
