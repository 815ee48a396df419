package usecase

import (
	"context"
	"log"

	"fieldflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func (u *ServiceFlowUseCase) GetWorkOrderExtract(ctx context.Context, ownerID, workOrderID string) (entities.WorkOrderExtract, error) {
	log.Printf("[flow][usecase] extract start owner_id=%s work_order_id=%s", ownerID, workOrderID)

	wo, err := requireOwned(ctx, ownerID, workOrderID, u.workOrders.GetByID, ErrWorkOrderNotFound)
	if err != nil {
		log.Printf("[flow][usecase] extract lookup failed work_order_id=%s err=%v", workOrderID, err)
		return entities.WorkOrderExtract{}, err
	}

	client, err := u.clients.GetByID(ctx, wo.ClientID)
	if err != nil {
		return entities.WorkOrderExtract{}, err
	}
	quote, err := u.linkedQuote(ctx, ownerID, wo)
	if err != nil {
		return entities.WorkOrderExtract{}, err
	}
	payments, err := u.payments.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return entities.WorkOrderExtract{}, err
	}
	payments = ownedOnly(ownerID, payments)

	checklists, err := u.listChecklists(ctx, wo.ID)
	if err != nil {
		return entities.WorkOrderExtract{}, err
	}
	summaries := make([]entities.ChecklistSummary, 0, len(checklists))
	for _, c := range checklists {
		summaries = append(summaries, entities.ChecklistSummary{
			ID:         c.ID,
			TemplateID: c.TemplateID,
			Title:      c.Title,
			Progress:   u.gate.Progress(c),
			Complete:   u.gate.IsComplete(c).OK,
		})
	}

	var equipments []entities.Equipment
	if len(wo.EquipmentIDs) > 0 {
		found, err := u.equipments.GetByIDs(ctx, wo.EquipmentIDs)
		if err != nil {
			return entities.WorkOrderExtract{}, err
		}
		equipments = ownedOnly(ownerID, found)
	}

	extract := entities.WorkOrderExtract{
		WorkOrder:  wo,
		Client:     clientSummary(client),
		Quote:      quote,
		Payments:   payments,
		Checklists: summaries,
		Equipments: equipments,
		Financial:  BuildFinancialSummary(quote, payments),
	}
	log.Printf("[flow][usecase] extract success work_order_id=%s payments=%d checklists=%d", wo.ID, len(payments), len(summaries))
	return extract, nil
}

// BuildFinancialSummary sums payments in decimal and normalises the totals to float64.
// Balance is derived from the normalised totals so it always equals TotalQuoted - TotalPaid.
func BuildFinancialSummary(quote *entities.Quote, payments []entities.Payment) entities.FinancialSummary {
	quoted := decimal.Zero
	if quote != nil {
		quoted = quote.TotalValue
	}
	paid, pending := decimal.Zero, decimal.Zero
	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusReceived:
			paid = paid.Add(p.Value)
		case entities.PaymentStatusPending:
			pending = pending.Add(p.Value)
		}
	}

	s := entities.FinancialSummary{
		TotalQuoted:  toAmount(quoted),
		TotalPaid:    toAmount(paid),
		TotalPending: toAmount(pending),
	}
	s.Balance = s.TotalQuoted - s.TotalPaid
	return s
}

func clientSummary(c entities.Client) entities.ClientSummary {
	return entities.ClientSummary{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Document: c.Document,
	}
}
