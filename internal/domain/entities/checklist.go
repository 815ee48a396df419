package entities

import "time"

type ChecklistItemType string

const (
	ChecklistItemText    ChecklistItemType = "TEXT"
	ChecklistItemNumber  ChecklistItemType = "NUMBER"
	ChecklistItemBoolean ChecklistItemType = "BOOLEAN"
	ChecklistItemDate    ChecklistItemType = "DATE"
	ChecklistItemOption  ChecklistItemType = "OPTION"
)

type ChecklistTemplateItem struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Type       ChecklistItemType `json:"type"`
	IsRequired bool              `json:"is_required"`
	Position   int               `json:"position"`
}

type ChecklistTemplate struct {
	ID      string                  `json:"id"`
	OwnerID string                  `json:"owner_id"`
	Name    string                  `json:"name"`
	Items   []ChecklistTemplateItem `json:"items"`
}

// AnswerValue holds the typed value of an answer. A well-formed value sets exactly one field.
type AnswerValue struct {
	Text    *string    `json:"text,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
	Option  *string    `json:"option,omitempty"`
}

func (v AnswerValue) count() int {
	n := 0
	if v.Text != nil {
		n++
	}
	if v.Number != nil {
		n++
	}
	if v.Boolean != nil {
		n++
	}
	if v.Date != nil {
		n++
	}
	if v.Option != nil {
		n++
	}
	return n
}

// Set reports whether exactly one typed value is present.
func (v AnswerValue) Set() bool { return v.count() == 1 }

type ChecklistAnswer struct {
	ID             string      `json:"id"`
	TemplateItemID string      `json:"template_item_id"`
	Value          AnswerValue `json:"value"`
	AnsweredAt     time.Time   `json:"answered_at"`
}

// Checklist is a template instance attached to a work order.
//
// Title is a snapshot of the template name taken when the checklist was attached.
// Template and Answers are hydrated by the store.
type Checklist struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	WorkOrderID string            `json:"work_order_id"`
	TemplateID  string            `json:"template_id"`
	Title       string            `json:"title"`
	Template    ChecklistTemplate `json:"template"`
	Answers     []ChecklistAnswer `json:"answers"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (c Checklist) GetID() string      { return c.ID }
func (c Checklist) GetOwnerID() string { return c.OwnerID }

// ChecklistCompletion is the verdict of the completion gate.
type ChecklistCompletion struct {
	OK            bool
	MissingTitles []string
}

type ChecklistProgress struct {
	TotalItems    int
	RequiredItems int
	AnsweredItems int
}
