package usecase

import (
	"sort"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"
)

// ChecklistGate is the checklist completion gate.
type ChecklistGate struct{}

var _ interfaces.IChecklistGate = ChecklistGate{}

func NewChecklistGate() ChecklistGate { return ChecklistGate{} }

// IsComplete reports whether every required template item has an answer holding one typed value.
// Missing titles follow the template order.
func (ChecklistGate) IsComplete(c entities.Checklist) entities.ChecklistCompletion {
	answered := answeredItems(c)
	var missing []string
	for _, item := range orderedItems(c.Template.Items) {
		if item.IsRequired && !answered[item.ID] {
			missing = append(missing, item.Title)
		}
	}
	return entities.ChecklistCompletion{OK: len(missing) == 0, MissingTitles: missing}
}

func (ChecklistGate) Progress(c entities.Checklist) entities.ChecklistProgress {
	answered := answeredItems(c)
	p := entities.ChecklistProgress{TotalItems: len(c.Template.Items)}
	for _, item := range c.Template.Items {
		if item.IsRequired {
			p.RequiredItems++
		}
		if answered[item.ID] {
			p.AnsweredItems++
		}
	}
	return p
}

func answeredItems(c entities.Checklist) map[string]bool {
	out := make(map[string]bool, len(c.Answers))
	for _, a := range c.Answers {
		if a.Value.Set() {
			out[a.TemplateItemID] = true
		}
	}
	return out
}

func orderedItems(items []entities.ChecklistTemplateItem) []entities.ChecklistTemplateItem {
	out := make([]entities.ChecklistTemplateItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}
