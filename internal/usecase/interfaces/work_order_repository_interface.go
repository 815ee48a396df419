package interfaces

import (
	"context"
	"time"

	"fieldflow/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
//   - Create writes the work order and the quote guard atomically; a second work order for
//     the same quote fails with ErrConflict.
//   - MarkDone only applies from a non-terminal status, otherwise ErrConflict.
type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.WorkOrder, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.WorkOrder, error)
	MarkDone(ctx context.Context, id string, executionEnd time.Time) (entities.WorkOrder, error)
}
