package repository

import (
	"context"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotesClientIDIndex = "client_id-index"

type quoteLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
	Position    int    `dynamodbav:"position"`
}

type quoteItem struct {
	ID            string          `dynamodbav:"id"`
	OwnerID       string          `dynamodbav:"owner_id"`
	ClientID      string          `dynamodbav:"client_id"`
	Status        string          `dynamodbav:"status"`
	TotalValue    string          `dynamodbav:"total_value"`
	DiscountValue string          `dynamodbav:"discount_value,omitempty"`
	Items         []quoteLineItem `dynamodbav:"items,omitempty"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Line items are embedded in the quote item. Amounts are stored as decimal strings.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if len(raw) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuote(raw)
}

func (r *QuoteDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error) {
	return queryIndex(ctx, r.ddb, r.tableName, quotesClientIDIndex, "client_id", clientID, decodeQuote)
}

// UpdateStatus moves a quote from one status to another. It fails with ErrConflict when the
// stored status is no longer from.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	attrs, err := updateItem(ctx, r.ddb, r.tableName, id, "#status = :from", func(now string) (string, itemMap, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := itemMap{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(attrs) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuote(attrs)
}

func decodeQuote(raw itemMap) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuoteItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    parseDecimal(li.Quantity),
			UnitPrice:   parseDecimal(li.UnitPrice),
			Total:       parseDecimal(li.Total),
			Position:    li.Position,
		})
	}
	return entities.Quote{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		ClientID:      it.ClientID,
		Status:        entities.QuoteStatus(it.Status),
		TotalValue:    parseDecimal(it.TotalValue),
		DiscountValue: parseDecimal(it.DiscountValue),
		Items:         items,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
