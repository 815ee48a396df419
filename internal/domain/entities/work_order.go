package entities

import "time"

// WorkOrderStatus represents the execution lifecycle of a work order.
//
// DONE and CANCELED are terminal: no transition leaves them.
type WorkOrderStatus string

const (
	WorkOrderStatusScheduled  WorkOrderStatus = "SCHEDULED"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusDone       WorkOrderStatus = "DONE"
	WorkOrderStatusCanceled   WorkOrderStatus = "CANCELED"
)

func (s WorkOrderStatus) Terminal() bool {
	return s == WorkOrderStatusDone || s == WorkOrderStatusCanceled
}

// WorkOrder is a schedulable unit of field work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_id-index): client_id
//   - GSI (quote_id-index): quote_id
//
// ExecutionEnd is only ever written together with Status=DONE.
type WorkOrder struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	ClientID       string          `json:"client_id"`
	QuoteID        string          `json:"quote_id,omitempty"`
	EquipmentIDs   []string        `json:"equipment_ids,omitempty"`
	Status         WorkOrderStatus `json:"status"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ScheduledDate  *time.Time      `json:"scheduled_date,omitempty"`
	ExecutionStart *time.Time      `json:"execution_start,omitempty"`
	ExecutionEnd   *time.Time      `json:"execution_end,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (w WorkOrder) GetID() string      { return w.ID }
func (w WorkOrder) GetOwnerID() string { return w.OwnerID }

// QuoteSummary is the slice of a quote returned alongside a work order.
type QuoteSummary struct {
	ID         string
	Status     QuoteStatus
	TotalValue float64
}

// WorkOrderDetails is a work order enriched with its client, quote and equipment.
type WorkOrderDetails struct {
	WorkOrder  WorkOrder
	Client     Client
	Quote      *QuoteSummary
	Equipments []Equipment
}

// PaymentSuggestion is advisory output of a completion; it never creates a payment.
type PaymentSuggestion struct {
	CanGeneratePayment bool
	SuggestedValue     *float64
	Reason             string
}

type CompletedWorkOrder struct {
	WorkOrder         WorkOrder
	PaymentSuggestion PaymentSuggestion
}
