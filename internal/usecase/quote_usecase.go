package usecase

import (
	"context"
	"errors"
	"log"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"
)

// IQuoteUseCase exposes the client decision on a quote.
//
// Approval is what unlocks ConvertQuote; rejection is final.
type IQuoteUseCase interface {
	GetByID(ctx context.Context, ownerID, id string) (entities.Quote, error)
	Approve(ctx context.Context, ownerID, id string) (entities.Quote, error)
	Reject(ctx context.Context, ownerID, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

var quoteTransitions = map[entities.QuoteStatus][]entities.QuoteStatus{
	entities.QuoteStatusDraft: {entities.QuoteStatusApproved, entities.QuoteStatusRejected},
	entities.QuoteStatusSent:  {entities.QuoteStatusApproved, entities.QuoteStatusRejected},
}

// ValidQuoteTransition reports whether a quote may move from one status to another.
func ValidQuoteTransition(from, to entities.QuoteStatus) bool {
	for _, s := range quoteTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (u *QuoteUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.Quote, error) {
	return requireOwned(ctx, ownerID, id, u.repo.GetByID, ErrQuoteNotFound)
}

func (u *QuoteUseCase) Approve(ctx context.Context, ownerID, id string) (entities.Quote, error) {
	return u.transition(ctx, ownerID, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, ownerID, id string) (entities.Quote, error) {
	return u.transition(ctx, ownerID, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) transition(ctx context.Context, ownerID, id string, to entities.QuoteStatus) (entities.Quote, error) {
	q, err := requireOwned(ctx, ownerID, id, u.repo.GetByID, ErrQuoteNotFound)
	if err != nil {
		return entities.Quote{}, err
	}
	if !ValidQuoteTransition(q.Status, to) {
		log.Printf("[quote][usecase] transition refused quote_id=%s from=%s to=%s", q.ID, q.Status, to)
		return entities.Quote{}, ErrInvalidQuoteTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, q.Status, to)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Quote{}, ErrInvalidQuoteTransition
		}
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] transition success quote_id=%s to=%s", updated.ID, updated.Status)
	return updated, nil
}
