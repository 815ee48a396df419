package response

import (
	"time"

	"fieldflow/internal/domain/entities"
)

type QuoteItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Position    int     `json:"position"`
}

type QuoteResponse struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id"`
	Status        string              `json:"status"`
	TotalValue    float64             `json:"total_value"`
	DiscountValue float64             `json:"discount_value"`
	Items         []QuoteItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.InexactFloat64(),
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Total:       it.Total.InexactFloat64(),
			Position:    it.Position,
		})
	}
	return QuoteResponse{
		ID:            q.ID,
		ClientID:      q.ClientID,
		Status:        string(q.Status),
		TotalValue:    q.TotalValue.InexactFloat64(),
		DiscountValue: q.DiscountValue.InexactFloat64(),
		Items:         items,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
