package response

import (
	"time"

	"fieldflow/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"client_id"`
	QuoteID        string     `json:"quote_id,omitempty"`
	EquipmentIDs   []string   `json:"equipment_ids"`
	Status         string     `json:"status"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	ExecutionStart *time.Time `json:"execution_start,omitempty"`
	ExecutionEnd   *time.Time `json:"execution_end,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"`
}

type QuoteSummaryResponse struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	TotalValue float64 `json:"total_value"`
}

type EquipmentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// WorkOrderDetailsResponse is the body returned when a quote becomes a work order.
type WorkOrderDetailsResponse struct {
	WorkOrderResponse
	Client     ClientResponse        `json:"client"`
	Quote      *QuoteSummaryResponse `json:"quote,omitempty"`
	Equipments []EquipmentResponse   `json:"equipments"`
}

type PaymentSuggestionResponse struct {
	CanGeneratePayment bool     `json:"can_generate_payment"`
	SuggestedValue     *float64 `json:"suggested_value,omitempty"`
	Reason             string   `json:"reason,omitempty"`
}

type CompletedWorkOrderResponse struct {
	WorkOrderResponse
	PaymentSuggestion PaymentSuggestionResponse `json:"payment_suggestion"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	ids := wo.EquipmentIDs
	if ids == nil {
		ids = []string{}
	}
	return WorkOrderResponse{
		ID:             wo.ID,
		ClientID:       wo.ClientID,
		QuoteID:        wo.QuoteID,
		EquipmentIDs:   ids,
		Status:         string(wo.Status),
		Title:          wo.Title,
		Description:    wo.Description,
		ScheduledDate:  wo.ScheduledDate,
		ExecutionStart: wo.ExecutionStart,
		ExecutionEnd:   wo.ExecutionEnd,
		CreatedAt:      wo.CreatedAt,
		UpdatedAt:      wo.UpdatedAt,
	}
}

func FromEquipments(eqs []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(eqs))
	for _, e := range eqs {
		out = append(out, EquipmentResponse{
			ID:           e.ID,
			Name:         e.Name,
			Type:         e.Type,
			Brand:        e.Brand,
			Model:        e.Model,
			SerialNumber: e.SerialNumber,
		})
	}
	return out
}

func FromWorkOrderDetails(d entities.WorkOrderDetails) WorkOrderDetailsResponse {
	res := WorkOrderDetailsResponse{
		WorkOrderResponse: FromWorkOrder(d.WorkOrder),
		Client: ClientResponse{
			ID:       d.Client.ID,
			Name:     d.Client.Name,
			Email:    d.Client.Email,
			Phone:    d.Client.Phone,
			Document: d.Client.Document,
		},
		Equipments: FromEquipments(d.Equipments),
	}
	if d.Quote != nil {
		res.Quote = &QuoteSummaryResponse{ID: d.Quote.ID, Status: string(d.Quote.Status), TotalValue: d.Quote.TotalValue}
	}
	return res
}

func FromCompletedWorkOrder(c entities.CompletedWorkOrder) CompletedWorkOrderResponse {
	return CompletedWorkOrderResponse{
		WorkOrderResponse: FromWorkOrder(c.WorkOrder),
		PaymentSuggestion: PaymentSuggestionResponse{
			CanGeneratePayment: c.PaymentSuggestion.CanGeneratePayment,
			SuggestedValue:     c.PaymentSuggestion.SuggestedValue,
			Reason:             c.PaymentSuggestion.Reason,
		},
	}
}
