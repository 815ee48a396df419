package interfaces

import (
	"context"

	"fieldflow/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quote creation belongs to the quoting flow; this service reads quotes and moves their status.
type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
}
