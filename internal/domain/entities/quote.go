package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote sent to a client.
//
// Domain notes:
//   - Quotes are created and sent by the quoting flow; this service only approves/rejects them
//     and reads the status when converting.
//   - A quote never stores a reference to its work order. The link lives on WorkOrder.QuoteID.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusApproved QuoteStatus = "APPROVED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

type QuoteItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Position    int             `json:"position"`
}

// Quote is a priced proposal to a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_id-index): client_id
//
// Monetary representation:
//   - TotalValue already has DiscountValue applied.
type Quote struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	ClientID      string          `json:"client_id"`
	Status        QuoteStatus     `json:"status"`
	TotalValue    decimal.Decimal `json:"total_value"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Items         []QuoteItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (q Quote) GetID() string      { return q.ID }
func (q Quote) GetOwnerID() string { return q.OwnerID }
