package handlers

import (
	"net/http"
	"testing"

	"fieldflow/internal/adapter/http/handlers/mocks"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r, v1 := newTestRouter()
		v1.PATCH("/quotes/:quote_id/approve", NewQuoteHandler(uc).ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "owner-1", "q1").Return(entities.Quote{
			ID: "q1", Status: entities.QuoteStatusApproved, TotalValue: decimal.NewFromInt(1500),
		}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r, v1 := newTestRouter()
		v1.PATCH("/quotes/:quote_id/reject", NewQuoteHandler(uc).RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "owner-1", "q1").Return(entities.Quote{}, usecase.ErrInvalidQuoteTransition)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q1/reject", "")
		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r, v1 := newTestRouter()
		v1.GET("/quotes/:quote_id", NewQuoteHandler(uc).GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "q9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
