package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every business error returned by this package wraps exactly one of them.
var (
	ErrNotFound           = errors.New("not found")
	// ErrForbidden is reserved for operations that reveal a record to a caller who may not
	// act on it. Ownership lookups report foreign records as not found instead.
	ErrForbidden          = errors.New("forbidden")
	ErrPreconditionFailed = errors.New("precondition failed")
)

// flowError carries a caller-facing message verbatim and unwraps to its kind.
type flowError struct {
	kind error
	msg  string
}

func (e *flowError) Error() string { return e.msg }
func (e *flowError) Unwrap() error { return e.kind }

func notFound(msg string) error           { return &flowError{kind: ErrNotFound, msg: msg} }
func preconditionFailed(msg string) error { return &flowError{kind: ErrPreconditionFailed, msg: msg} }

func preconditionFailedf(format string, args ...any) error {
	return preconditionFailed(fmt.Sprintf(format, args...))
}

var (
	ErrClientNotFound    = notFound("Client not found")
	ErrQuoteNotFound     = notFound("Quote not found")
	ErrWorkOrderNotFound = notFound("Work order not found")
	ErrPaymentNotFound   = notFound("Payment not found")

	ErrQuoteNotApproved          = preconditionFailed("Quote must be APPROVED")
	ErrQuoteAlreadyConverted     = preconditionFailed("Quote already has a work order")
	ErrEquipmentNotFound         = preconditionFailed("One or more equipments not found")
	ErrWorkOrderAlreadyComplete  = preconditionFailed("Work order already completed")
	ErrWorkOrderCanceled         = preconditionFailed("Cannot complete a canceled work order")
	ErrWorkOrderNotDone          = preconditionFailed("Work order must be DONE")
	ErrPaymentValueRequired      = preconditionFailed("Value is required")
	ErrPendingPaymentExists      = preconditionFailed("Work order already has a pending payment")
	ErrInvalidQuoteTransition    = preconditionFailed("Quote status does not allow this transition")
	ErrPaymentNotConfirmable     = preconditionFailed("Only PENDING or OVERDUE payments can be confirmed")
	ErrChecklistTemplateNotFound = preconditionFailed("Checklist template not found")

	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidBillingType = errors.New("invalid billing type")
	ErrInvalidDueDate     = errors.New("invalid due date")
	ErrInvalidValue       = errors.New("invalid value")
)

const paymentSuggestionUnavailable = "Payment suggestion unavailable"

func checklistIncomplete(title string, missing int) error {
	return preconditionFailedf("Checklist %q has %d unanswered required items", title, missing)
}
