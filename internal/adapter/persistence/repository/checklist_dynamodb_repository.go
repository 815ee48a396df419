package repository

import (
	"context"
	"fmt"
	"sort"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const checklistsWorkOrderIDIndex = "work_order_id-index"

type answerValueItem struct {
	Text    *string  `dynamodbav:"text,omitempty"`
	Number  *float64 `dynamodbav:"number,omitempty"`
	Boolean *bool    `dynamodbav:"boolean,omitempty"`
	Date    string   `dynamodbav:"date,omitempty"`
	Option  *string  `dynamodbav:"option,omitempty"`
}

type checklistAnswerItem struct {
	ID             string          `dynamodbav:"id"`
	TemplateItemID string          `dynamodbav:"template_item_id"`
	Value          answerValueItem `dynamodbav:"value"`
	AnsweredAt     string          `dynamodbav:"answered_at"`
}

type checklistItem struct {
	ID          string                `dynamodbav:"id"`
	OwnerID     string                `dynamodbav:"owner_id"`
	WorkOrderID string                `dynamodbav:"work_order_id"`
	TemplateID  string                `dynamodbav:"template_id"`
	Title       string                `dynamodbav:"title"`
	Answers     []checklistAnswerItem `dynamodbav:"answers,omitempty"`
	CreatedAt   string                `dynamodbav:"created_at"`
}

type templateQuestionItem struct {
	ID         string `dynamodbav:"id"`
	Title      string `dynamodbav:"title"`
	Type       string `dynamodbav:"type"`
	IsRequired bool   `dynamodbav:"is_required"`
	Position   int    `dynamodbav:"position"`
}

type checklistTemplateItem struct {
	ID      string                 `dynamodbav:"id"`
	OwnerID string                 `dynamodbav:"owner_id"`
	Name    string                 `dynamodbav:"name"`
	Items   []templateQuestionItem `dynamodbav:"items,omitempty"`
}

// ChecklistDynamoRepository reads checklists with their answers embedded and hydrates the
// template items from the templates table.
//
// Table requirements:
//   - checklists: PK id, GSI work_order_id-index (PK: work_order_id)
//   - checklist_templates: PK id
type ChecklistDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	templatesTable string
}

var _ interfaces.IChecklistRepository = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb DynamoAPI, tableName, templatesTable string) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{ddb: ddb, tableName: tableName, templatesTable: templatesTable}
}

func (r *ChecklistDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Checklist, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, checklistsWorkOrderIDIndex, "work_order_id", workOrderID, func(raw itemMap) (checklistItem, error) {
		var it checklistItem
		err := attributevalue.UnmarshalMap(raw, &it)
		return it, err
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	templates, err := r.templates(ctx, items)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Checklist, 0, len(items))
	for _, it := range items {
		tpl, ok := templates[it.TemplateID]
		if !ok {
			return nil, fmt.Errorf("%w: checklist_id=%s template_id=%q", interfaces.ErrChecklistTemplateNotFound, it.ID, it.TemplateID)
		}
		out = append(out, fromChecklistItem(it, tpl))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ChecklistDynamoRepository) templates(ctx context.Context, items []checklistItem) (map[string]entities.ChecklistTemplate, error) {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.TemplateID == "" {
			continue
		}
		if _, ok := seen[it.TemplateID]; ok {
			continue
		}
		seen[it.TemplateID] = struct{}{}
		ids = append(ids, it.TemplateID)
	}

	raws, err := batchGet(ctx, r.ddb, r.templatesTable, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entities.ChecklistTemplate, len(raws))
	for _, raw := range raws {
		var it checklistTemplateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out[it.ID] = fromChecklistTemplateItem(it)
	}
	return out, nil
}

func fromChecklistItem(it checklistItem, tpl entities.ChecklistTemplate) entities.Checklist {
	answers := make([]entities.ChecklistAnswer, 0, len(it.Answers))
	for _, a := range it.Answers {
		answers = append(answers, entities.ChecklistAnswer{
			ID:             a.ID,
			TemplateItemID: a.TemplateItemID,
			Value: entities.AnswerValue{
				Text:    a.Value.Text,
				Number:  a.Value.Number,
				Boolean: a.Value.Boolean,
				Date:    parseTimePtr(a.Value.Date),
				Option:  a.Value.Option,
			},
			AnsweredAt: parseTime(a.AnsweredAt),
		})
	}
	return entities.Checklist{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		WorkOrderID: it.WorkOrderID,
		TemplateID:  it.TemplateID,
		Title:       it.Title,
		Template:    tpl,
		Answers:     answers,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

func fromChecklistTemplateItem(it checklistTemplateItem) entities.ChecklistTemplate {
	items := make([]entities.ChecklistTemplateItem, 0, len(it.Items))
	for _, q := range it.Items {
		items = append(items, entities.ChecklistTemplateItem{
			ID:         q.ID,
			Title:      q.Title,
			Type:       entities.ChecklistItemType(q.Type),
			IsRequired: q.IsRequired,
			Position:   q.Position,
		})
	}
	return entities.ChecklistTemplate{ID: it.ID, OwnerID: it.OwnerID, Name: it.Name, Items: items}
}
