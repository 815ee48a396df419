package usecase

import (
	"context"
	"log"
	"sort"

	"fieldflow/internal/domain/entities"
)

// timelineRank orders events sharing a timestamp: later lifecycle stages come first.
var timelineRank = map[entities.TimelineEventType]int{
	entities.TimelineQuoteCreated:       0,
	entities.TimelineQuoteApproved:      1,
	entities.TimelineQuoteRejected:      1,
	entities.TimelineWorkOrderCreated:   2,
	entities.TimelineChecklistCreated:   3,
	entities.TimelineWorkOrderStarted:   4,
	entities.TimelineWorkOrderCompleted: 5,
	entities.TimelinePaymentCreated:     6,
	entities.TimelinePaymentConfirmed:   7,
}

func (u *ServiceFlowUseCase) GetClientTimeline(ctx context.Context, ownerID, clientID string) ([]entities.TimelineEvent, error) {
	log.Printf("[flow][usecase] timeline start owner_id=%s client_id=%s", ownerID, clientID)

	client, err := requireOwned(ctx, ownerID, clientID, u.clients.GetByID, ErrClientNotFound)
	if err != nil {
		log.Printf("[flow][usecase] timeline client lookup failed client_id=%s err=%v", clientID, err)
		return nil, err
	}

	quotes, err := u.quotes.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	workOrders, err := u.workOrders.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	quotes = ownedOnly(ownerID, quotes)
	workOrders = ownedOnly(ownerID, workOrders)
	payments = ownedOnly(ownerID, payments)

	checklists := make(map[string][]entities.Checklist, len(workOrders))
	for _, wo := range workOrders {
		cs, err := u.listChecklists(ctx, wo.ID)
		if err != nil {
			return nil, err
		}
		checklists[wo.ID] = cs
	}

	events := BuildTimeline(quotes, workOrders, checklists, payments)
	log.Printf("[flow][usecase] timeline success client_id=%s events=%d", client.ID, len(events))
	return events, nil
}

// BuildTimeline projects every source entity into its events and merges them, most recent first.
// Every event date is a timestamp already present on its source entity.
func BuildTimeline(quotes []entities.Quote, workOrders []entities.WorkOrder, checklists map[string][]entities.Checklist, payments []entities.Payment) []entities.TimelineEvent {
	var events []entities.TimelineEvent
	for _, q := range quotes {
		events = append(events, quoteEvents(q)...)
	}
	for _, wo := range workOrders {
		events = append(events, workOrderEvents(wo)...)
		for _, c := range checklists[wo.ID] {
			events = append(events, entities.ChecklistCreatedEvent{
				ChecklistID: c.ID,
				WorkOrderID: wo.ID,
				Title:       c.Title,
				At:          c.CreatedAt,
			})
		}
	}
	for _, p := range payments {
		events = append(events, paymentEvents(p)...)
	}

	sortTimeline(events)
	return events
}

func quoteEvents(q entities.Quote) []entities.TimelineEvent {
	total := toAmount(q.TotalValue)
	out := []entities.TimelineEvent{
		entities.QuoteCreatedEvent{QuoteID: q.ID, Status: q.Status, TotalValue: total, At: q.CreatedAt},
	}
	switch q.Status {
	case entities.QuoteStatusApproved:
		out = append(out, entities.QuoteApprovedEvent{QuoteID: q.ID, TotalValue: total, At: q.UpdatedAt})
	case entities.QuoteStatusRejected:
		out = append(out, entities.QuoteRejectedEvent{QuoteID: q.ID, TotalValue: total, At: q.UpdatedAt})
	}
	return out
}

func workOrderEvents(wo entities.WorkOrder) []entities.TimelineEvent {
	out := []entities.TimelineEvent{
		entities.WorkOrderCreatedEvent{
			WorkOrderID:   wo.ID,
			Title:         wo.Title,
			QuoteID:       wo.QuoteID,
			ScheduledDate: wo.ScheduledDate,
			At:            wo.CreatedAt,
		},
	}
	if wo.ExecutionStart != nil {
		out = append(out, entities.WorkOrderStartedEvent{WorkOrderID: wo.ID, Title: wo.Title, At: *wo.ExecutionStart})
	}
	if wo.ExecutionEnd != nil {
		out = append(out, entities.WorkOrderCompletedEvent{WorkOrderID: wo.ID, Title: wo.Title, At: *wo.ExecutionEnd})
	}
	return out
}

func paymentEvents(p entities.Payment) []entities.TimelineEvent {
	value := toAmount(p.Value)
	out := []entities.TimelineEvent{
		entities.PaymentCreatedEvent{
			PaymentID:   p.ID,
			WorkOrderID: p.WorkOrderID,
			Value:       value,
			BillingType: p.BillingType,
			Status:      p.Status,
			DueDate:     p.DueDate,
			At:          p.CreatedAt,
		},
	}
	// No confirmation is back-dated when paidAt is missing.
	if p.Status == entities.PaymentStatusReceived && p.PaidAt != nil {
		out = append(out, entities.PaymentConfirmedEvent{
			PaymentID:   p.ID,
			WorkOrderID: p.WorkOrderID,
			Value:       value,
			BillingType: p.BillingType,
			At:          *p.PaidAt,
		})
	}
	return out
}

func sortTimeline(events []entities.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date().Equal(b.Date()) {
			return a.Date().After(b.Date())
		}
		ra, rb := timelineRank[a.Type()], timelineRank[b.Type()]
		if ra != rb {
			return ra > rb
		}
		return a.EntityID() < b.EntityID()
	})
}

func ownedOnly[T ownedRecord](ownerID string, records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.GetOwnerID() == ownerID {
			out = append(out, r)
		}
	}
	return out
}
