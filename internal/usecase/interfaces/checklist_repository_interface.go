package interfaces

import (
	"context"

	"fieldflow/internal/domain/entities"
)

// IChecklistRepository lists the checklists attached to a work order with their
// template items and answers already hydrated.
type IChecklistRepository interface {
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Checklist, error)
}
