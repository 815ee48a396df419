package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const defaultPayerEmailDomain = "clients.fieldflow.local"

// IPaymentUseCase exposes payment issuing plus the owner-scoped reads and the
// confirmation used when the gateway reports a payment as received.
type IPaymentUseCase interface {
	interfaces.IPaymentIssuer
	GetByID(ctx context.Context, ownerID, id string) (entities.Payment, error)
	Confirm(ctx context.Context, ownerID, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	clients interfaces.IClientRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, clients interfaces.IClientRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{
		repo:    repo,
		clients: clients,
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Issue reserves a PENDING payment, registers the charge with the gateway and stores the
// provider result. A gateway failure cancels the reserved payment.
func (u *PaymentUseCase) Issue(ctx context.Context, ownerID string, req entities.PaymentIssueRequest) (entities.Payment, error) {
	log.Printf("[payment][usecase] issue start owner_id=%s client_id=%s work_order_id=%s value=%s", ownerID, req.ClientID, req.WorkOrderID, req.Value)
	if !req.Value.IsPositive() {
		return entities.Payment{}, ErrInvalidValue
	}
	if !req.BillingType.Valid() {
		return entities.Payment{}, ErrInvalidBillingType
	}
	if req.DueDate.IsZero() {
		return entities.Payment{}, ErrInvalidDueDate
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured work_order_id=%s", req.WorkOrderID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	client, err := requireOwned(ctx, ownerID, req.ClientID, u.clients.GetByID, ErrClientNotFound)
	if err != nil {
		log.Printf("[payment][usecase] client lookup failed client_id=%s err=%v", req.ClientID, err)
		return entities.Payment{}, err
	}

	now := u.now()
	reserved, err := u.repo.Create(ctx, entities.Payment{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		ClientID:    client.ID,
		WorkOrderID: req.WorkOrderID,
		QuoteID:     req.QuoteID,
		Value:       req.Value,
		BillingType: req.BillingType,
		Status:      entities.PaymentStatusPending,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed work_order_id=%s err=%v", req.WorkOrderID, err)
		return entities.Payment{}, err
	}

	payload, err := buildGatewayPayload(reserved, client)
	if err != nil {
		u.cancelReserved(ctx, reserved)
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway payment_id=%s", reserved.ID)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed payment_id=%s err=%v", reserved.ID, err)
		u.cancelReserved(ctx, reserved)
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success payment_id=%s provider_payment_id=%s provider_status=%s", reserved.ID, providerID, providerStatus)

	updated, err := u.repo.UpdateProviderResult(ctx, reserved.ID, providerID, providerStatus, providerResp)
	if err != nil {
		// The provider already holds the charge, so the reservation is not canceled.
		log.Printf("[payment][usecase] provider result not stored payment_id=%s provider_payment_id=%s provider_status=%s err=%v", reserved.ID, providerID, providerStatus, err)
		return entities.Payment{}, fmt.Errorf("store provider result payment_id=%s provider_payment_id=%s: %w", reserved.ID, providerID, err)
	}

	if status := mapProviderStatus(providerStatus); status != entities.PaymentStatusPending {
		var paidAt *time.Time
		if status == entities.PaymentStatusReceived {
			t := u.now()
			paidAt = &t
		}
		updated, err = u.repo.UpdateStatus(ctx, updated, status, paidAt)
		if err != nil {
			return entities.Payment{}, err
		}
	}

	log.Printf("[payment][usecase] issue success payment_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *PaymentUseCase) cancelReserved(ctx context.Context, p entities.Payment) {
	if _, err := u.repo.UpdateStatus(ctx, p, entities.PaymentStatusCanceled, nil); err != nil {
		log.Printf("[payment][usecase] failed to cancel reserved payment payment_id=%s err=%v", p.ID, err)
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.Payment, error) {
	return requireOwned(ctx, ownerID, id, u.repo.GetByID, ErrPaymentNotFound)
}

// Confirm marks a PENDING or OVERDUE payment as RECEIVED now.
func (u *PaymentUseCase) Confirm(ctx context.Context, ownerID, id string) (entities.Payment, error) {
	p, err := requireOwned(ctx, ownerID, id, u.repo.GetByID, ErrPaymentNotFound)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPending && p.Status != entities.PaymentStatusOverdue {
		return entities.Payment{}, ErrPaymentNotConfirmable
	}

	paidAt := u.now()
	updated, err := u.repo.UpdateStatus(ctx, p, entities.PaymentStatusReceived, &paidAt)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Payment{}, ErrPaymentNotConfirmable
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] confirm success payment_id=%s", updated.ID)
	return updated, nil
}

var paymentMethodByBillingType = map[entities.BillingType]string{
	entities.BillingTypePix:        "pix",
	entities.BillingTypeBoleto:     "bolbradesco",
	entities.BillingTypeCreditCard: "credit_card",
	entities.BillingTypeUndefined:  "account_money",
}

// buildGatewayPayload renders the Mercado Pago create-payment body.
// The amount always comes from the stored payment.
func buildGatewayPayload(p entities.Payment, client entities.Client) (json.RawMessage, error) {
	dueEnd := time.Date(p.DueDate.Year(), p.DueDate.Month(), p.DueDate.Day(), 23, 59, 59, 0, time.UTC)
	body := map[string]any{
		"transaction_amount": p.Value.InexactFloat64(),
		"payment_method_id":  paymentMethodByBillingType[p.BillingType],
		"description":        fmt.Sprintf("Work order %s", p.WorkOrderID),
		"external_reference": p.ID,
		"date_of_expiration": dueEnd.Format(time.RFC3339),
		"metadata": map[string]any{
			"work_order_id": p.WorkOrderID,
			"quote_id":      p.QuoteID,
			"client_id":     p.ClientID,
		},
		"payer": map[string]any{
			"email":      strings.TrimSpace(client.Email),
			"first_name": client.Name,
		},
	}
	ensurePayerDefaults(body, client.ID)
	return json.Marshal(body)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func ensurePayerDefaults(m map[string]any, clientID string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
		return
	}
	domain := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL_DOMAIN"))
	if domain == "" {
		domain = defaultPayerEmailDomain
	}
	payer["email"] = fmt.Sprintf("client-%s@%s", clientID, domain)
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusReceived
	case "rejected", "cancelled", "canceled":
		return entities.PaymentStatusCanceled
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
