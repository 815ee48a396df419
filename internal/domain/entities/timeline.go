package entities

import "time"

type TimelineEventType string

const (
	TimelineQuoteCreated       TimelineEventType = "QUOTE_CREATED"
	TimelineQuoteApproved      TimelineEventType = "QUOTE_APPROVED"
	TimelineQuoteRejected      TimelineEventType = "QUOTE_REJECTED"
	TimelineWorkOrderCreated   TimelineEventType = "WORK_ORDER_CREATED"
	TimelineWorkOrderStarted   TimelineEventType = "WORK_ORDER_STARTED"
	TimelineWorkOrderCompleted TimelineEventType = "WORK_ORDER_COMPLETED"
	TimelineChecklistCreated   TimelineEventType = "CHECKLIST_CREATED"
	TimelinePaymentCreated     TimelineEventType = "PAYMENT_CREATED"
	TimelinePaymentConfirmed   TimelineEventType = "PAYMENT_CONFIRMED"
)

// TimelineEvent is a closed union: only the event structs in this file implement it.
// The struct itself is the event payload; its date is excluded from the payload.
type TimelineEvent interface {
	Date() time.Time
	Type() TimelineEventType
	EntityID() string
	timelineEvent()
}

type QuoteCreatedEvent struct {
	QuoteID    string      `json:"quote_id"`
	Status     QuoteStatus `json:"status"`
	TotalValue float64     `json:"total_value"`
	At         time.Time   `json:"-"`
}

type QuoteApprovedEvent struct {
	QuoteID    string    `json:"quote_id"`
	TotalValue float64   `json:"total_value"`
	At         time.Time `json:"-"`
}

type QuoteRejectedEvent struct {
	QuoteID    string    `json:"quote_id"`
	TotalValue float64   `json:"total_value"`
	At         time.Time `json:"-"`
}

type WorkOrderCreatedEvent struct {
	WorkOrderID   string     `json:"work_order_id"`
	Title         string     `json:"title"`
	QuoteID       string     `json:"quote_id,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	At            time.Time  `json:"-"`
}

type WorkOrderStartedEvent struct {
	WorkOrderID string    `json:"work_order_id"`
	Title       string    `json:"title"`
	At          time.Time `json:"-"`
}

type WorkOrderCompletedEvent struct {
	WorkOrderID string    `json:"work_order_id"`
	Title       string    `json:"title"`
	At          time.Time `json:"-"`
}

type ChecklistCreatedEvent struct {
	ChecklistID string    `json:"checklist_id"`
	WorkOrderID string    `json:"work_order_id"`
	Title       string    `json:"title"`
	At          time.Time `json:"-"`
}

type PaymentCreatedEvent struct {
	PaymentID   string        `json:"payment_id"`
	WorkOrderID string        `json:"work_order_id,omitempty"`
	Value       float64       `json:"value"`
	BillingType BillingType   `json:"billing_type"`
	Status      PaymentStatus `json:"status"`
	DueDate     time.Time     `json:"due_date"`
	At          time.Time     `json:"-"`
}

type PaymentConfirmedEvent struct {
	PaymentID   string      `json:"payment_id"`
	WorkOrderID string      `json:"work_order_id,omitempty"`
	Value       float64     `json:"value"`
	BillingType BillingType `json:"billing_type"`
	At          time.Time   `json:"-"`
}

func (e QuoteCreatedEvent) Date() time.Time         { return e.At }
func (e QuoteCreatedEvent) Type() TimelineEventType { return TimelineQuoteCreated }
func (e QuoteCreatedEvent) EntityID() string        { return e.QuoteID }
func (QuoteCreatedEvent) timelineEvent()            {}

func (e QuoteApprovedEvent) Date() time.Time         { return e.At }
func (e QuoteApprovedEvent) Type() TimelineEventType { return TimelineQuoteApproved }
func (e QuoteApprovedEvent) EntityID() string        { return e.QuoteID }
func (QuoteApprovedEvent) timelineEvent()            {}

func (e QuoteRejectedEvent) Date() time.Time         { return e.At }
func (e QuoteRejectedEvent) Type() TimelineEventType { return TimelineQuoteRejected }
func (e QuoteRejectedEvent) EntityID() string        { return e.QuoteID }
func (QuoteRejectedEvent) timelineEvent()            {}

func (e WorkOrderCreatedEvent) Date() time.Time         { return e.At }
func (e WorkOrderCreatedEvent) Type() TimelineEventType { return TimelineWorkOrderCreated }
func (e WorkOrderCreatedEvent) EntityID() string        { return e.WorkOrderID }
func (WorkOrderCreatedEvent) timelineEvent()            {}

func (e WorkOrderStartedEvent) Date() time.Time         { return e.At }
func (e WorkOrderStartedEvent) Type() TimelineEventType { return TimelineWorkOrderStarted }
func (e WorkOrderStartedEvent) EntityID() string        { return e.WorkOrderID }
func (WorkOrderStartedEvent) timelineEvent()            {}

func (e WorkOrderCompletedEvent) Date() time.Time         { return e.At }
func (e WorkOrderCompletedEvent) Type() TimelineEventType { return TimelineWorkOrderCompleted }
func (e WorkOrderCompletedEvent) EntityID() string        { return e.WorkOrderID }
func (WorkOrderCompletedEvent) timelineEvent()            {}

func (e ChecklistCreatedEvent) Date() time.Time         { return e.At }
func (e ChecklistCreatedEvent) Type() TimelineEventType { return TimelineChecklistCreated }
func (e ChecklistCreatedEvent) EntityID() string        { return e.ChecklistID }
func (ChecklistCreatedEvent) timelineEvent()            {}

func (e PaymentCreatedEvent) Date() time.Time         { return e.At }
func (e PaymentCreatedEvent) Type() TimelineEventType { return TimelinePaymentCreated }
func (e PaymentCreatedEvent) EntityID() string        { return e.PaymentID }
func (PaymentCreatedEvent) timelineEvent()            {}

func (e PaymentConfirmedEvent) Date() time.Time         { return e.At }
func (e PaymentConfirmedEvent) Type() TimelineEventType { return TimelinePaymentConfirmed }
func (e PaymentConfirmedEvent) EntityID() string        { return e.PaymentID }
func (PaymentConfirmedEvent) timelineEvent()            {}
