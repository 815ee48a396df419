package repository

import (
	"context"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type equipmentItem struct {
	ID           string `dynamodbav:"id"`
	OwnerID      string `dynamodbav:"owner_id"`
	ClientID     string `dynamodbav:"client_id"`
	Name         string `dynamodbav:"name"`
	Type         string `dynamodbav:"type,omitempty"`
	Brand        string `dynamodbav:"brand,omitempty"`
	Model        string `dynamodbav:"model,omitempty"`
	SerialNumber string `dynamodbav:"serial_number,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	DeletedAt    string `dynamodbav:"deleted_at,omitempty"`
}

type EquipmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb DynamoAPI, tableName string) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EquipmentDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raws, err := batchGet(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Equipment, 0, len(raws))
	for _, raw := range raws {
		var it equipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromEquipmentItem(it))
	}
	return out, nil
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	return entities.Equipment{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		ClientID:     it.ClientID,
		Name:         it.Name,
		Type:         it.Type,
		Brand:        it.Brand,
		Model:        it.Model,
		SerialNumber: it.SerialNumber,
		CreatedAt:    parseTime(it.CreatedAt),
		DeletedAt:    parseTimePtr(it.DeletedAt),
	}
}
