package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase/interfaces"
	mock_interfaces "fieldflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestValidQuoteTransition(t *testing.T) {
	cases := []struct {
		from, to entities.QuoteStatus
		ok       bool
	}{
		{entities.QuoteStatusDraft, entities.QuoteStatusApproved, true},
		{entities.QuoteStatusSent, entities.QuoteStatusRejected, true},
		{entities.QuoteStatusApproved, entities.QuoteStatusRejected, false},
		{entities.QuoteStatusRejected, entities.QuoteStatusApproved, false},
		{entities.QuoteStatusExpired, entities.QuoteStatusApproved, false},
	}
	for _, tc := range cases {
		if got := ValidQuoteTransition(tc.from, tc.to); got != tc.ok {
			t.Fatalf("ValidQuoteTransition(%s, %s) = %t, want %t", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestQuoteUseCase_Transitions(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, ownerID, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "approve", call: (*QuoteUseCase).Approve, status: entities.QuoteStatusApproved},
		{name: "reject", call: (*QuoteUseCase).Reject, status: entities.QuoteStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{}, nil)

			_, err := tc.call(uc, ctx, "owner-1", "q1")
			assertKind(t, err, ErrNotFound, ErrQuoteNotFound)
		})

		t.Run(tc.name+" from terminal status", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", OwnerID: "owner-1", Status: entities.QuoteStatusExpired}, nil)

			_, err := tc.call(uc, ctx, "owner-1", "q1")
			assertKind(t, err, ErrPreconditionFailed, ErrInvalidQuoteTransition)
		})

		t.Run(tc.name+" conflict", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", OwnerID: "owner-1", Status: entities.QuoteStatusSent}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusSent, tc.status).Return(entities.Quote{}, interfaces.ErrConflict)

			_, err := tc.call(uc, ctx, "owner-1", "q1")
			assertKind(t, err, ErrPreconditionFailed, ErrInvalidQuoteTransition)
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", OwnerID: "owner-1", Status: entities.QuoteStatusSent}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusSent, tc.status).Return(entities.Quote{}, errors.New("db"))

			_, err := tc.call(uc, ctx, "owner-1", "q1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(repo)
			repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", OwnerID: "owner-1", Status: entities.QuoteStatusDraft}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusDraft, tc.status).Return(entities.Quote{ID: "q1", OwnerID: "owner-1", Status: tc.status}, nil)

			res, err := tc.call(uc, ctx, "owner-1", "q1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, res.Status)
			}
		})
	}
}
