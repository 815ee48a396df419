package interfaces

import (
	"context"

	"fieldflow/internal/domain/entities"
)

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
}
