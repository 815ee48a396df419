package repository

import (
	"context"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type clientItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Document  string `dynamodbav:"document,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// ClientDynamoRepository reads clients from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Client{}, err
	}
	if len(raw) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Document:  it.Document,
		CreatedAt: parseTime(it.CreatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
}
