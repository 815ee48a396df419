package interfaces

import (
	"context"

	"fieldflow/internal/domain/entities"
)

// IChecklistGate decides whether every required item of a checklist is answered.
type IChecklistGate interface {
	IsComplete(c entities.Checklist) entities.ChecklistCompletion
	Progress(c entities.Checklist) entities.ChecklistProgress
}

// IPaymentIssuer creates a payment record and owns the gateway interaction.
type IPaymentIssuer interface {
	Issue(ctx context.Context, ownerID string, req entities.PaymentIssueRequest) (entities.Payment, error)
}
