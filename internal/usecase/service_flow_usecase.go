package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConvertQuoteInput struct {
	Title         string
	Description   string
	ScheduledDate *time.Time
	EquipmentIDs  []string
}

type CompleteOptions struct {
	SkipChecklistValidation bool
}

type GeneratePaymentInput struct {
	BillingType entities.BillingType
	DueDate     time.Time
	// Value overrides the linked quote total when set.
	Value *decimal.Decimal
}

// IServiceFlowUseCase drives a quote through its work order to a payment and
// exposes the read models built on top of that flow.
type IServiceFlowUseCase interface {
	ConvertQuote(ctx context.Context, ownerID, quoteID string, in ConvertQuoteInput) (entities.WorkOrderDetails, error)
	CompleteWorkOrder(ctx context.Context, ownerID, workOrderID string, opts CompleteOptions) (entities.CompletedWorkOrder, error)
	GeneratePayment(ctx context.Context, ownerID, workOrderID string, in GeneratePaymentInput) (entities.Payment, error)
	GetClientTimeline(ctx context.Context, ownerID, clientID string) ([]entities.TimelineEvent, error)
	GetWorkOrderExtract(ctx context.Context, ownerID, workOrderID string) (entities.WorkOrderExtract, error)
}

type ServiceFlowDeps struct {
	Clients    interfaces.IClientRepository
	Quotes     interfaces.IQuoteRepository
	WorkOrders interfaces.IWorkOrderRepository
	Equipments interfaces.IEquipmentRepository
	Checklists interfaces.IChecklistRepository
	Payments   interfaces.IPaymentRepository
	Gate       interfaces.IChecklistGate
	Issuer     interfaces.IPaymentIssuer
	Now        func() time.Time
}

type ServiceFlowUseCase struct {
	clients    interfaces.IClientRepository
	quotes     interfaces.IQuoteRepository
	workOrders interfaces.IWorkOrderRepository
	equipments interfaces.IEquipmentRepository
	checklists interfaces.IChecklistRepository
	payments   interfaces.IPaymentRepository
	gate       interfaces.IChecklistGate
	issuer     interfaces.IPaymentIssuer
	now        func() time.Time
}

var _ IServiceFlowUseCase = (*ServiceFlowUseCase)(nil)

func NewServiceFlowUseCase(d ServiceFlowDeps) *ServiceFlowUseCase {
	now := d.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	gate := d.Gate
	if gate == nil {
		gate = NewChecklistGate()
	}
	return &ServiceFlowUseCase{
		clients:    d.Clients,
		quotes:     d.Quotes,
		workOrders: d.WorkOrders,
		equipments: d.Equipments,
		checklists: d.Checklists,
		payments:   d.Payments,
		gate:       gate,
		issuer:     d.Issuer,
		now:        now,
	}
}

func (u *ServiceFlowUseCase) ConvertQuote(ctx context.Context, ownerID, quoteID string, in ConvertQuoteInput) (entities.WorkOrderDetails, error) {
	log.Printf("[flow][usecase] convert start owner_id=%s quote_id=%s equipments=%d", ownerID, quoteID, len(in.EquipmentIDs))

	quote, err := requireOwned(ctx, ownerID, quoteID, u.quotes.GetByID, ErrQuoteNotFound)
	if err != nil {
		log.Printf("[flow][usecase] convert quote lookup failed quote_id=%s err=%v", quoteID, err)
		return entities.WorkOrderDetails{}, err
	}
	if quote.Status != entities.QuoteStatusApproved {
		log.Printf("[flow][usecase] convert quote not approved quote_id=%s status=%s", quote.ID, quote.Status)
		return entities.WorkOrderDetails{}, ErrQuoteNotApproved
	}

	existing, err := u.workOrders.GetByQuoteID(ctx, quote.ID)
	if err != nil {
		return entities.WorkOrderDetails{}, err
	}
	if existing.ID != "" {
		log.Printf("[flow][usecase] convert quote already converted quote_id=%s work_order_id=%s", quote.ID, existing.ID)
		return entities.WorkOrderDetails{}, ErrQuoteAlreadyConverted
	}

	equipments, err := u.resolveEquipments(ctx, ownerID, quote.ClientID, in.EquipmentIDs)
	if err != nil {
		log.Printf("[flow][usecase] convert equipment resolution failed quote_id=%s err=%v", quote.ID, err)
		return entities.WorkOrderDetails{}, err
	}

	client, err := requireOwned(ctx, ownerID, quote.ClientID, u.clients.GetByID, ErrClientNotFound)
	if err != nil {
		log.Printf("[flow][usecase] convert client lookup failed client_id=%s err=%v", quote.ClientID, err)
		return entities.WorkOrderDetails{}, err
	}

	now := u.now()
	wo := entities.WorkOrder{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		ClientID:      quote.ClientID,
		QuoteID:       quote.ID,
		EquipmentIDs:  equipmentIDs(equipments),
		Status:        entities.WorkOrderStatusScheduled,
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		ScheduledDate: in.ScheduledDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.workOrders.Create(ctx, wo)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			log.Printf("[flow][usecase] convert lost quote guard quote_id=%s", quote.ID)
			return entities.WorkOrderDetails{}, ErrQuoteAlreadyConverted
		}
		log.Printf("[flow][usecase] convert create failed quote_id=%s err=%v", quote.ID, err)
		return entities.WorkOrderDetails{}, err
	}
	log.Printf("[flow][usecase] convert success quote_id=%s work_order_id=%s", quote.ID, created.ID)

	return entities.WorkOrderDetails{
		WorkOrder:  created,
		Client:     client,
		Quote:      &entities.QuoteSummary{ID: quote.ID, Status: quote.Status, TotalValue: toAmount(quote.TotalValue)},
		Equipments: equipments,
	}, nil
}

// resolveEquipments is all-or-nothing: every distinct id must be a live equipment of the
// caller that belongs to clientID. Result keeps the requested order.
func (u *ServiceFlowUseCase) resolveEquipments(ctx context.Context, ownerID, clientID string, ids []string) ([]entities.Equipment, error) {
	wanted := uniqueIDs(ids)
	if len(wanted) == 0 {
		return nil, nil
	}

	found, err := u.equipments.GetByIDs(ctx, wanted)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Equipment, len(found))
	for _, e := range found {
		if e.OwnerID != ownerID || e.ClientID != clientID || e.IsDeleted() {
			continue
		}
		byID[e.ID] = e
	}

	out := make([]entities.Equipment, 0, len(wanted))
	for _, id := range wanted {
		e, ok := byID[id]
		if !ok {
			return nil, ErrEquipmentNotFound
		}
		out = append(out, e)
	}
	return out, nil
}

func (u *ServiceFlowUseCase) CompleteWorkOrder(ctx context.Context, ownerID, workOrderID string, opts CompleteOptions) (entities.CompletedWorkOrder, error) {
	log.Printf("[flow][usecase] complete start owner_id=%s work_order_id=%s skip_checklists=%t", ownerID, workOrderID, opts.SkipChecklistValidation)

	wo, err := requireOwned(ctx, ownerID, workOrderID, u.workOrders.GetByID, ErrWorkOrderNotFound)
	if err != nil {
		log.Printf("[flow][usecase] complete lookup failed work_order_id=%s err=%v", workOrderID, err)
		return entities.CompletedWorkOrder{}, err
	}
	if err := completableStatus(wo.Status); err != nil {
		log.Printf("[flow][usecase] complete refused work_order_id=%s status=%s", wo.ID, wo.Status)
		return entities.CompletedWorkOrder{}, err
	}

	if !opts.SkipChecklistValidation {
		checklists, err := u.listChecklists(ctx, wo.ID)
		if err != nil {
			log.Printf("[flow][usecase] complete checklist lookup failed work_order_id=%s err=%v", wo.ID, err)
			return entities.CompletedWorkOrder{}, err
		}
		for _, c := range checklists {
			res := u.gate.IsComplete(c)
			if !res.OK {
				log.Printf("[flow][usecase] complete checklist incomplete work_order_id=%s checklist_id=%s missing=%d", wo.ID, c.ID, len(res.MissingTitles))
				return entities.CompletedWorkOrder{}, checklistIncomplete(c.Title, len(res.MissingTitles))
			}
		}
	}

	updated, err := u.workOrders.MarkDone(ctx, wo.ID, u.now())
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.CompletedWorkOrder{}, u.completionConflict(ctx, wo.ID)
		}
		log.Printf("[flow][usecase] complete update failed work_order_id=%s err=%v", wo.ID, err)
		return entities.CompletedWorkOrder{}, err
	}

	// DONE is already stored; a failed read only degrades the suggestion.
	suggestion, err := u.suggestPayment(ctx, ownerID, updated)
	if err != nil {
		log.Printf("[flow][usecase] complete suggestion unavailable work_order_id=%s err=%v", updated.ID, err)
		suggestion.CanGeneratePayment = false
		suggestion.Reason = paymentSuggestionUnavailable
	}
	log.Printf("[flow][usecase] complete success work_order_id=%s can_generate_payment=%t", updated.ID, suggestion.CanGeneratePayment)

	return entities.CompletedWorkOrder{WorkOrder: updated, PaymentSuggestion: suggestion}, nil
}

func completableStatus(s entities.WorkOrderStatus) error {
	switch s {
	case entities.WorkOrderStatusDone:
		return ErrWorkOrderAlreadyComplete
	case entities.WorkOrderStatusCanceled:
		return ErrWorkOrderCanceled
	}
	return nil
}

// completionConflict re-reads a work order whose conditional completion failed to report
// which terminal status won the race.
func (u *ServiceFlowUseCase) completionConflict(ctx context.Context, id string) error {
	latest, err := u.workOrders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if latest.ID == "" {
		return ErrWorkOrderNotFound
	}
	if latest.Status == entities.WorkOrderStatusCanceled {
		return ErrWorkOrderCanceled
	}
	return ErrWorkOrderAlreadyComplete
}

func (u *ServiceFlowUseCase) suggestPayment(ctx context.Context, ownerID string, wo entities.WorkOrder) (entities.PaymentSuggestion, error) {
	var s entities.PaymentSuggestion

	quote, err := u.linkedQuote(ctx, ownerID, wo)
	if err != nil {
		return s, err
	}
	if quote != nil {
		v := toAmount(quote.TotalValue)
		s.SuggestedValue = &v
	}

	payments, err := u.payments.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return s, err
	}
	if hasPending(payments) {
		s.Reason = ErrPendingPaymentExists.Error()
		return s, nil
	}
	s.CanGeneratePayment = true
	return s, nil
}

func (u *ServiceFlowUseCase) GeneratePayment(ctx context.Context, ownerID, workOrderID string, in GeneratePaymentInput) (entities.Payment, error) {
	log.Printf("[flow][usecase] generate-payment start owner_id=%s work_order_id=%s billing_type=%s", ownerID, workOrderID, in.BillingType)
	if !in.BillingType.Valid() {
		return entities.Payment{}, ErrInvalidBillingType
	}
	if in.DueDate.IsZero() {
		return entities.Payment{}, ErrInvalidDueDate
	}
	if in.Value != nil && !in.Value.IsPositive() {
		return entities.Payment{}, ErrInvalidValue
	}

	wo, err := requireOwned(ctx, ownerID, workOrderID, u.workOrders.GetByID, ErrWorkOrderNotFound)
	if err != nil {
		log.Printf("[flow][usecase] generate-payment lookup failed work_order_id=%s err=%v", workOrderID, err)
		return entities.Payment{}, err
	}
	if wo.Status != entities.WorkOrderStatusDone {
		log.Printf("[flow][usecase] generate-payment work order not done work_order_id=%s status=%s", wo.ID, wo.Status)
		return entities.Payment{}, ErrWorkOrderNotDone
	}

	value, err := u.resolvePaymentValue(ctx, ownerID, wo, in.Value)
	if err != nil {
		log.Printf("[flow][usecase] generate-payment value unresolved work_order_id=%s", wo.ID)
		return entities.Payment{}, err
	}

	existing, err := u.payments.ListByWorkOrderID(ctx, wo.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if hasPending(existing) {
		log.Printf("[flow][usecase] generate-payment pending payment exists work_order_id=%s", wo.ID)
		return entities.Payment{}, ErrPendingPaymentExists
	}

	p, err := u.issuer.Issue(ctx, ownerID, entities.PaymentIssueRequest{
		ClientID:    wo.ClientID,
		WorkOrderID: wo.ID,
		QuoteID:     wo.QuoteID,
		BillingType: in.BillingType,
		Value:       value,
		DueDate:     in.DueDate,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			log.Printf("[flow][usecase] generate-payment lost pending guard work_order_id=%s", wo.ID)
			return entities.Payment{}, ErrPendingPaymentExists
		}
		log.Printf("[flow][usecase] generate-payment issue failed work_order_id=%s err=%v", wo.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[flow][usecase] generate-payment success work_order_id=%s payment_id=%s value=%s", wo.ID, p.ID, p.Value)
	return p, nil
}

// resolvePaymentValue prefers the explicit value over the linked quote total.
func (u *ServiceFlowUseCase) resolvePaymentValue(ctx context.Context, ownerID string, wo entities.WorkOrder, explicit *decimal.Decimal) (decimal.Decimal, error) {
	if explicit != nil {
		return *explicit, nil
	}
	quote, err := u.linkedQuote(ctx, ownerID, wo)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if quote == nil || !quote.TotalValue.IsPositive() {
		return decimal.Decimal{}, ErrPaymentValueRequired
	}
	return quote.TotalValue, nil
}

func (u *ServiceFlowUseCase) linkedQuote(ctx context.Context, ownerID string, wo entities.WorkOrder) (*entities.Quote, error) {
	if wo.QuoteID == "" {
		return nil, nil
	}
	res, err := lookupOwned(ctx, ownerID, wo.QuoteID, u.quotes.GetByID)
	if err != nil {
		return nil, err
	}
	if res.State != OwnershipFound {
		return nil, nil
	}
	return &res.Record, nil
}

// listChecklists reports a checklist whose template cannot be resolved as a failed
// precondition: without its items the gate cannot tell what is required.
func (u *ServiceFlowUseCase) listChecklists(ctx context.Context, workOrderID string) ([]entities.Checklist, error) {
	checklists, err := u.checklists.ListByWorkOrderID(ctx, workOrderID)
	if errors.Is(err, interfaces.ErrChecklistTemplateNotFound) {
		return nil, ErrChecklistTemplateNotFound
	}
	return checklists, err
}

func hasPending(payments []entities.Payment) bool {
	for _, p := range payments {
		if p.Status == entities.PaymentStatusPending {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func equipmentIDs(eqs []entities.Equipment) []string {
	if len(eqs) == 0 {
		return nil
	}
	out := make([]string, 0, len(eqs))
	for _, e := range eqs {
		out = append(out, e.ID)
	}
	return out
}

func toAmount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
