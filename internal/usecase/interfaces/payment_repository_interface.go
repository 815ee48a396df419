package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"fieldflow/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Create reserves the "one PENDING payment per work order" guard in the same write;
// UpdateStatus releases it when the payment leaves PENDING. Both return ErrConflict
// when the guard or the expected status does not hold.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Payment, error)
	UpdateProviderResult(ctx context.Context, id, providerPaymentID, providerStatus string, payload json.RawMessage) (entities.Payment, error)
	UpdateStatus(ctx context.Context, p entities.Payment, status entities.PaymentStatus, paidAt *time.Time) (entities.Payment, error)
}
