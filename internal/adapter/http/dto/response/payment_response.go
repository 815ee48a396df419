package response

import (
	"encoding/json"
	"time"

	"fieldflow/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	WorkOrderID       string          `json:"work_order_id,omitempty"`
	QuoteID           string          `json:"quote_id,omitempty"`
	Value             float64         `json:"value"`
	BillingType       string          `json:"billing_type"`
	Status            string          `json:"status"`
	DueDate           string          `json:"due_date"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderStatus    string          `json:"provider_status,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		ClientID:          p.ClientID,
		WorkOrderID:       p.WorkOrderID,
		QuoteID:           p.QuoteID,
		Value:             p.Value.InexactFloat64(),
		BillingType:       string(p.BillingType),
		Status:            string(p.Status),
		DueDate:           p.DueDate.Format(time.DateOnly),
		PaidAt:            p.PaidAt,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		ProviderPayload:   p.ProviderPayloadRaw,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
