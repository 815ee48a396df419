package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldflow/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func eventTypes(events []entities.TimelineEvent) []entities.TimelineEventType {
	out := make([]entities.TimelineEventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type())
	}
	return out
}

func TestBuildTimeline_EventRules(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return t0.Add(time.Duration(h) * time.Hour) }
	start, end, paid := at(5), at(6), at(9)

	quotes := []entities.Quote{
		{ID: "q1", Status: entities.QuoteStatusApproved, TotalValue: decimal.NewFromInt(100), CreatedAt: at(0), UpdatedAt: at(1)},
		{ID: "q2", Status: entities.QuoteStatusSent, CreatedAt: at(2), UpdatedAt: at(3)},
	}
	workOrders := []entities.WorkOrder{
		{ID: "wo1", QuoteID: "q1", CreatedAt: at(4), ExecutionStart: &start, ExecutionEnd: &end},
	}
	checklists := map[string][]entities.Checklist{
		"wo1": {{ID: "cl1", Title: "Safety", CreatedAt: at(4)}},
	}
	payments := []entities.Payment{
		{ID: "p1", WorkOrderID: "wo1", Status: entities.PaymentStatusReceived, PaidAt: &paid, Value: decimal.NewFromInt(100), CreatedAt: at(7)},
		{ID: "p2", WorkOrderID: "wo1", Status: entities.PaymentStatusReceived, Value: decimal.NewFromInt(5), CreatedAt: at(8)},
		{ID: "p3", WorkOrderID: "wo1", Status: entities.PaymentStatusPending, Value: decimal.NewFromInt(5), CreatedAt: at(8)},
	}

	events := BuildTimeline(quotes, workOrders, checklists, payments)

	want := []entities.TimelineEventType{
		entities.TimelinePaymentConfirmed, // p1 at 9
		entities.TimelinePaymentCreated,   // p2 at 8
		entities.TimelinePaymentCreated,   // p3 at 8
		entities.TimelinePaymentCreated,   // p1 at 7
		entities.TimelineWorkOrderCompleted,
		entities.TimelineWorkOrderStarted,
		entities.TimelineChecklistCreated, // same instant as the work order, later stage first
		entities.TimelineWorkOrderCreated,
		entities.TimelineQuoteCreated, // q2
		entities.TimelineQuoteApproved,
		entities.TimelineQuoteCreated, // q1
	}
	got := eventTypes(events)
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s (all: %v)", i, want[i], got[i], got)
		}
	}
	if events[1].EntityID() != "p2" || events[2].EntityID() != "p3" {
		t.Fatalf("expected ties broken by entity id, got %s then %s", events[1].EntityID(), events[2].EntityID())
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date().After(events[i-1].Date()) {
			t.Fatalf("events not in descending date order at %d", i)
		}
	}
}

func TestBuildTimeline_RejectedQuoteAndScheduledOrder(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	quotes := []entities.Quote{{ID: "q1", Status: entities.QuoteStatusRejected, CreatedAt: t0, UpdatedAt: t0.Add(time.Hour)}}
	workOrders := []entities.WorkOrder{{ID: "wo1", CreatedAt: t0.Add(2 * time.Hour)}}

	got := eventTypes(BuildTimeline(quotes, workOrders, nil, nil))
	want := []entities.TimelineEventType{
		entities.TimelineWorkOrderCreated,
		entities.TimelineQuoteRejected,
		entities.TimelineQuoteCreated,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestServiceFlowUseCase_GetClientTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("client of another owner reads as not found", func(t *testing.T) {
		uc, m := newFlow(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", OwnerID: "owner-2"}, nil)

		_, err := uc.GetClientTimeline(ctx, "owner-1", "c1")
		assertKind(t, err, ErrNotFound, ErrClientNotFound)
	})

	t.Run("deleted client", func(t *testing.T) {
		uc, m := newFlow(t)
		deleted := fixedNow
		c := testClient()
		c.DeletedAt = &deleted
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)

		_, err := uc.GetClientTimeline(ctx, "owner-1", "c1")
		assertKind(t, err, ErrNotFound, ErrClientNotFound)
	})

	t.Run("list error", func(t *testing.T) {
		uc, m := newFlow(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(testClient(), nil)
		m.quotes.EXPECT().ListByClientID(gomock.Any(), "c1").Return(nil, errors.New("db"))

		_, err := uc.GetClientTimeline(ctx, "owner-1", "c1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("records of other owners are ignored", func(t *testing.T) {
		uc, m := newFlow(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(testClient(), nil)
		m.quotes.EXPECT().ListByClientID(gomock.Any(), "c1").Return([]entities.Quote{
			{ID: "q1", OwnerID: "owner-1", CreatedAt: fixedNow},
			{ID: "q2", OwnerID: "owner-2", CreatedAt: fixedNow},
		}, nil)
		m.workOrders.EXPECT().ListByClientID(gomock.Any(), "c1").Return([]entities.WorkOrder{
			{ID: "wo9", OwnerID: "owner-2", CreatedAt: fixedNow},
		}, nil)
		m.payments.EXPECT().ListByClientID(gomock.Any(), "c1").Return(nil, nil)

		events, err := uc.GetClientTimeline(ctx, "owner-1", "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].EntityID() != "q1" {
			t.Fatalf("expected only q1 event, got %v", eventTypes(events))
		}
	})
}
