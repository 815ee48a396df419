package usecase

import (
	"reflect"
	"testing"
	"time"

	"fieldflow/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestChecklistGate_IsComplete(t *testing.T) {
	items := []entities.ChecklistTemplateItem{
		{ID: "i3", Title: "Photos", Type: entities.ChecklistItemText, IsRequired: true, Position: 3},
		{ID: "i1", Title: "Power off", Type: entities.ChecklistItemBoolean, IsRequired: true, Position: 1},
		{ID: "i2", Title: "Notes", Type: entities.ChecklistItemText, IsRequired: false, Position: 2},
	}
	yes := true
	num := 4.5
	now := time.Now()

	cases := []struct {
		name    string
		answers []entities.ChecklistAnswer
		ok      bool
		missing []string
	}{
		{name: "nothing answered", ok: false, missing: []string{"Power off", "Photos"}},
		{
			name:    "only optional answered",
			answers: []entities.ChecklistAnswer{{TemplateItemID: "i2", Value: entities.AnswerValue{Text: strPtr("ok")}}},
			ok:      false,
			missing: []string{"Power off", "Photos"},
		},
		{
			name: "empty value does not count",
			answers: []entities.ChecklistAnswer{
				{TemplateItemID: "i1", Value: entities.AnswerValue{}},
				{TemplateItemID: "i3", Value: entities.AnswerValue{Text: strPtr("x")}},
			},
			ok:      false,
			missing: []string{"Power off"},
		},
		{
			name: "two values do not count",
			answers: []entities.ChecklistAnswer{
				{TemplateItemID: "i1", Value: entities.AnswerValue{Boolean: &yes, Number: &num}},
				{TemplateItemID: "i3", Value: entities.AnswerValue{Date: &now}},
			},
			ok:      false,
			missing: []string{"Power off"},
		},
		{
			name: "all required answered",
			answers: []entities.ChecklistAnswer{
				{TemplateItemID: "i1", Value: entities.AnswerValue{Boolean: &yes}},
				{TemplateItemID: "i3", Value: entities.AnswerValue{Option: strPtr("front")}},
			},
			ok: true,
		},
	}

	gate := NewChecklistGate()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := entities.Checklist{Template: entities.ChecklistTemplate{Items: items}, Answers: tc.answers}
			res := gate.IsComplete(c)
			if res.OK != tc.ok {
				t.Fatalf("expected ok=%t, got %t", tc.ok, res.OK)
			}
			if !reflect.DeepEqual(res.MissingTitles, tc.missing) {
				t.Fatalf("expected missing %v, got %v", tc.missing, res.MissingTitles)
			}
		})
	}
}

func TestChecklistGate_NoRequiredItems(t *testing.T) {
	c := entities.Checklist{Template: entities.ChecklistTemplate{Items: []entities.ChecklistTemplateItem{
		{ID: "i1", Title: "Notes", IsRequired: false},
	}}}
	if !NewChecklistGate().IsComplete(c).OK {
		t.Fatalf("expected checklist without required items to be complete")
	}
}

func TestChecklistGate_Progress(t *testing.T) {
	yes := true
	c := entities.Checklist{
		Template: entities.ChecklistTemplate{Items: []entities.ChecklistTemplateItem{
			{ID: "i1", IsRequired: true},
			{ID: "i2", IsRequired: true},
			{ID: "i3"},
		}},
		Answers: []entities.ChecklistAnswer{
			{TemplateItemID: "i1", Value: entities.AnswerValue{Boolean: &yes}},
			{TemplateItemID: "i3", Value: entities.AnswerValue{Text: strPtr("done")}},
		},
	}
	got := NewChecklistGate().Progress(c)
	want := entities.ChecklistProgress{TotalItems: 3, RequiredItems: 2, AnsweredItems: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
