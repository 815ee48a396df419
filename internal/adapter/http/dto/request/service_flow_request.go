package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDueDate = errors.New("invalid due_date")

// ConvertQuoteRequest is the body of POST /quotes/{quote_id}/work-order.
type ConvertQuoteRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	EquipmentIDs  []string   `json:"equipment_ids" binding:"omitempty,dive,required"`
}

// CompleteWorkOrderRequest is the optional body of POST /work-orders/{work_order_id}/complete.
type CompleteWorkOrderRequest struct {
	SkipChecklistValidation bool `json:"skip_checklist_validation"`
}

// GeneratePaymentRequest is the body of POST /work-orders/{work_order_id}/payments.
//
// due_date accepts a calendar date (2025-01-20) or an RFC 3339 timestamp. value is optional;
// without it the linked quote total is charged.
type GeneratePaymentRequest struct {
	BillingType string           `json:"billing_type" binding:"required,billing_type"`
	DueDate     string           `json:"due_date" binding:"required"`
	Value       *decimal.Decimal `json:"value"`
}

func (r GeneratePaymentRequest) ResolveDueDate() (time.Time, error) {
	s := strings.TrimSpace(r.DueDate)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDueDate
}
