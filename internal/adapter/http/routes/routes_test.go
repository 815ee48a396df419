package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldflow/internal/adapter/http/handlers"
	"fieldflow/internal/adapter/http/handlers/mocks"
	"fieldflow/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceFlowRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	scoped := v1.Group("")
	scoped.Use(middleware.RequireOwner())
	addServiceFlowRoutes(scoped,
		handlers.NewServiceFlowHandler(mocks.NewMockIServiceFlowUseCase(ctrl)),
		handlers.NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl)),
		handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)),
	)

	t.Run("ping needs no owner", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	want := map[string]bool{
		"GET /v1/quotes/:quote_id":                     true,
		"PATCH /v1/quotes/:quote_id/approve":           true,
		"PATCH /v1/quotes/:quote_id/reject":            true,
		"POST /v1/quotes/:quote_id/work-order":         true,
		"POST /v1/work-orders/:work_order_id/complete": true,
		"POST /v1/work-orders/:work_order_id/payments": true,
		"GET /v1/work-orders/:work_order_id/extract":   true,
		"GET /v1/clients/:client_id/timeline":          true,
		"GET /v1/payments/:payment_id":                 true,
		"PATCH /v1/payments/:payment_id/confirm":       true,
	}
	for _, route := range r.Routes() {
		delete(want, route.Method+" "+route.Path)
	}
	if len(want) != 0 {
		t.Fatalf("routes not registered: %v", want)
	}

	t.Run("scoped routes require owner", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clients/c1/timeline", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
