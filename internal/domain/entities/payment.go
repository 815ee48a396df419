package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the billing state of a payment.
//
// Only the issuer writes PENDING. Later transitions come from the gateway confirmation.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusReceived PaymentStatus = "RECEIVED"
	PaymentStatusOverdue  PaymentStatus = "OVERDUE"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

type BillingType string

const (
	BillingTypePix        BillingType = "PIX"
	BillingTypeBoleto     BillingType = "BOLETO"
	BillingTypeCreditCard BillingType = "CREDIT_CARD"
	BillingTypeUndefined  BillingType = "UNDEFINED"
)

func (b BillingType) Valid() bool {
	switch b {
	case BillingTypePix, BillingTypeBoleto, BillingTypeCreditCard, BillingTypeUndefined:
		return true
	}
	return false
}

// Payment is a billing record generated against a completed work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (work_order_id-index): work_order_id
//   - GSI (client_id-index): client_id
//
// Gateway payload:
//   - ProviderPayloadRaw keeps the Mercado Pago response for traceability/audit.
type Payment struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	ClientID    string          `json:"client_id"`
	WorkOrderID string          `json:"work_order_id,omitempty"`
	QuoteID     string          `json:"quote_id,omitempty"`
	Value       decimal.Decimal `json:"value"`
	BillingType BillingType     `json:"billing_type"`
	Status      PaymentStatus   `json:"status"`
	DueDate     time.Time       `json:"due_date"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Payment) GetID() string      { return p.ID }
func (p Payment) GetOwnerID() string { return p.OwnerID }

// PaymentIssueRequest carries the billing parameters handed to the payment issuer.
type PaymentIssueRequest struct {
	ClientID    string
	WorkOrderID string
	QuoteID     string
	BillingType BillingType
	Value       decimal.Decimal
	DueDate     time.Time
}
