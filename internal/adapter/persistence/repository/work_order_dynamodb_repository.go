package repository

import (
	"context"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	workOrdersClientIDIndex = "client_id-index"
	workOrdersQuoteIDIndex  = "quote_id-index"
)

type workOrderItem struct {
	ID             string   `dynamodbav:"id"`
	OwnerID        string   `dynamodbav:"owner_id"`
	ClientID       string   `dynamodbav:"client_id"`
	QuoteID        string   `dynamodbav:"quote_id,omitempty"`
	EquipmentIDs   []string `dynamodbav:"equipment_ids,omitempty"`
	Status         string   `dynamodbav:"status"`
	Title          string   `dynamodbav:"title"`
	Description    string   `dynamodbav:"description,omitempty"`
	ScheduledDate  string   `dynamodbav:"scheduled_date,omitempty"`
	ExecutionStart string   `dynamodbav:"execution_start,omitempty"`
	ExecutionEnd   string   `dynamodbav:"execution_end,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: quote_id-index (PK: quote_id)
//
// A work order created from a quote also writes the work_order_quote#<quoteID> guard in the
// same transaction, so a quote converts at most once even under concurrent requests.
type WorkOrderDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	guardsTable string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI, tableName, guardsTable string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName, guardsTable: guardsTable}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if wo.QuoteID == "" {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return entities.WorkOrder{}, asConflict(err)
		}
		return wo, nil
	}

	guard, err := guardPut(r.guardsTable, quoteGuardID(wo.QuoteID), wo.OwnerID, wo.ID, wo.CreatedAt)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			putIfAbsent(r.tableName, av),
			guard,
		},
	})
	if err != nil {
		return entities.WorkOrder{}, asConflict(err)
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(raw) == 0 {
		return entities.WorkOrder{}, nil
	}
	return decodeWorkOrder(raw)
}

func (r *WorkOrderDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.WorkOrder, error) {
	found, err := queryIndex(ctx, r.ddb, r.tableName, workOrdersQuoteIDIndex, "quote_id", quoteID, decodeWorkOrder)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(found) == 0 {
		return entities.WorkOrder{}, nil
	}
	return found[0], nil
}

func (r *WorkOrderDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.WorkOrder, error) {
	return queryIndex(ctx, r.ddb, r.tableName, workOrdersClientIDIndex, "client_id", clientID, decodeWorkOrder)
}

// MarkDone sets DONE and the execution end unless the work order is already DONE or CANCELED.
func (r *WorkOrderDynamoRepository) MarkDone(ctx context.Context, id string, executionEnd time.Time) (entities.WorkOrder, error) {
	cond := "NOT #status IN (:done, :canceled)"
	attrs, err := updateItem(ctx, r.ddb, r.tableName, id, cond, func(now string) (string, itemMap, map[string]string) {
		expr := "SET #status = :done, #execution_end = :execution_end, #updated_at = :updated_at"
		vals := itemMap{
			":done":          &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusDone)},
			":canceled":      &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusCanceled)},
			":execution_end": &types.AttributeValueMemberS{Value: formatTime(executionEnd)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":        "status",
			"#execution_end": "execution_end",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(attrs) == 0 {
		return entities.WorkOrder{}, nil
	}
	return decodeWorkOrder(attrs)
}

func decodeWorkOrder(raw itemMap) (entities.WorkOrder, error) {
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:             wo.ID,
		OwnerID:        wo.OwnerID,
		ClientID:       wo.ClientID,
		QuoteID:        wo.QuoteID,
		EquipmentIDs:   wo.EquipmentIDs,
		Status:         string(wo.Status),
		Title:          wo.Title,
		Description:    wo.Description,
		ScheduledDate:  formatTimePtr(wo.ScheduledDate),
		ExecutionStart: formatTimePtr(wo.ExecutionStart),
		ExecutionEnd:   formatTimePtr(wo.ExecutionEnd),
		CreatedAt:      formatTime(wo.CreatedAt),
		UpdatedAt:      formatTime(wo.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:             it.ID,
		OwnerID:        it.OwnerID,
		ClientID:       it.ClientID,
		QuoteID:        it.QuoteID,
		EquipmentIDs:   it.EquipmentIDs,
		Status:         entities.WorkOrderStatus(it.Status),
		Title:          it.Title,
		Description:    it.Description,
		ScheduledDate:  parseTimePtr(it.ScheduledDate),
		ExecutionStart: parseTimePtr(it.ExecutionStart),
		ExecutionEnd:   parseTimePtr(it.ExecutionEnd),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
