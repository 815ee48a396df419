package interfaces

import (
	"context"

	"fieldflow/internal/domain/entities"
)

// IEquipmentRepository resolves equipment by id. Ids that do not exist are simply absent
// from the result; callers compare lengths.
type IEquipmentRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]entities.Equipment, error)
}
