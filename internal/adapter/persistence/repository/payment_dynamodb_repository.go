package repository

import (
	"context"
	"encoding/json"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	paymentsWorkOrderIDIndex = "work_order_id-index"
	paymentsClientIDIndex    = "client_id-index"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	OwnerID            string                 `dynamodbav:"owner_id"`
	ClientID           string                 `dynamodbav:"client_id"`
	WorkOrderID        string                 `dynamodbav:"work_order_id,omitempty"`
	QuoteID            string                 `dynamodbav:"quote_id,omitempty"`
	Value              string                 `dynamodbav:"value"`
	BillingType        string                 `dynamodbav:"billing_type"`
	Status             string                 `dynamodbav:"status"`
	DueDate            string                 `dynamodbav:"due_date"`
	PaidAt             string                 `dynamodbav:"paid_at,omitempty"`
	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string                 `dynamodbav:"provider_status,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string                 `dynamodbav:"created_at"`
	UpdatedAt          string                 `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//   - GSI: client_id-index (PK: client_id)
//
// A PENDING payment of a work order holds the pending_payment#<workOrderID> guard. The guard is
// written with the payment and deleted in the same transaction that moves it out of PENDING.
type PaymentDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	guardsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName, guardsTable string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName, guardsTable: guardsTable}
}

func holdsPendingGuard(p entities.Payment) bool {
	return p.Status == entities.PaymentStatusPending && p.WorkOrderID != ""
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	if !holdsPendingGuard(p) {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return entities.Payment{}, asConflict(err)
		}
		return p, nil
	}

	guard, err := guardPut(r.guardsTable, pendingPaymentGuardID(p.WorkOrderID), p.OwnerID, p.ID, p.CreatedAt)
	if err != nil {
		return entities.Payment{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			putIfAbsent(r.tableName, av),
			guard,
		},
	})
	if err != nil {
		return entities.Payment{}, asConflict(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(raw) == 0 {
		return entities.Payment{}, nil
	}
	return decodePayment(raw)
}

func (r *PaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	return queryIndex(ctx, r.ddb, r.tableName, paymentsWorkOrderIDIndex, "work_order_id", workOrderID, decodePayment)
}

func (r *PaymentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Payment, error) {
	return queryIndex(ctx, r.ddb, r.tableName, paymentsClientIDIndex, "client_id", clientID, decodePayment)
}

func (r *PaymentDynamoRepository) UpdateProviderResult(ctx context.Context, id, providerPaymentID, providerStatus string, payload json.RawMessage) (entities.Payment, error) {
	attrs, err := updateItem(ctx, r.ddb, r.tableName, id, "", func(now string) (string, itemMap, map[string]string) {
		expr := "SET #ppid = :ppid, #pstatus = :pstatus, #raw = :raw, #updated_at = :updated_at"
		vals := itemMap{
			":ppid":       &types.AttributeValueMemberS{Value: providerPaymentID},
			":pstatus":    &types.AttributeValueMemberS{Value: providerStatus},
			":raw":        &types.AttributeValueMemberS{Value: string(payload)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#ppid":       "provider_payment_id",
			"#pstatus":    "provider_status",
			"#raw":        "provider_payload_raw",
			"#updated_at": "updated_at",
		}
		if doc := payloadDocument(payload); doc != nil {
			if av, err := attributevalue.Marshal(doc); err == nil {
				expr += ", #payload = :payload"
				vals[":payload"] = av
				names["#payload"] = "provider_payload"
			}
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(attrs) == 0 {
		return entities.Payment{}, nil
	}
	return decodePayment(attrs)
}

// UpdateStatus moves p to status if its stored status still equals p.Status. Leaving PENDING
// releases the pending guard in the same transaction.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, p entities.Payment, status entities.PaymentStatus, paidAt *time.Time) (entities.Payment, error) {
	now := formatTime(time.Now())
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := itemMap{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":from":       &types.AttributeValueMemberS{Value: string(p.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if paidAt != nil {
		expr += ", #paid_at = :paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: formatTime(*paidAt)}
		names["#paid_at"] = "paid_at"
	}
	cond := "attribute_exists(#id) AND #status = :from"

	if !holdsPendingGuard(p) || status == entities.PaymentStatusPending {
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.tableName),
			Key:                       idKey(p.ID),
			ConditionExpression:       aws.String(cond),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeValues: vals,
			ExpressionAttributeNames:  names,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			return entities.Payment{}, asConflict(err)
		}
		return decodePayment(out.Attributes)
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       idKey(p.ID),
					ConditionExpression:       aws.String(cond),
					UpdateExpression:          aws.String(expr),
					ExpressionAttributeValues: vals,
					ExpressionAttributeNames:  names,
				},
			},
			guardDelete(r.guardsTable, pendingPaymentGuardID(p.WorkOrderID), p.ID),
		},
	})
	if err != nil {
		return entities.Payment{}, asConflict(err)
	}
	return r.GetByID(ctx, p.ID)
}

func payloadDocument(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}

func decodePayment(raw itemMap) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		ClientID:           p.ClientID,
		WorkOrderID:        p.WorkOrderID,
		QuoteID:            p.QuoteID,
		Value:              p.Value.String(),
		BillingType:        string(p.BillingType),
		Status:             string(p.Status),
		DueDate:            formatTime(p.DueDate),
		PaidAt:             formatTimePtr(p.PaidAt),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayload:    payloadDocument(p.ProviderPayloadRaw),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	var raw json.RawMessage
	if it.ProviderPayloadRaw != "" {
		raw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.Payment{
		ID:                 it.ID,
		OwnerID:            it.OwnerID,
		ClientID:           it.ClientID,
		WorkOrderID:        it.WorkOrderID,
		QuoteID:            it.QuoteID,
		Value:              parseDecimal(it.Value),
		BillingType:        entities.BillingType(it.BillingType),
		Status:             entities.PaymentStatus(it.Status),
		DueDate:            parseTime(it.DueDate),
		PaidAt:             parseTimePtr(it.PaidAt),
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderStatus:     it.ProviderStatus,
		ProviderPayloadRaw: raw,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
