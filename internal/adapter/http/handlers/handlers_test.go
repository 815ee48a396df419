package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	request "fieldflow/internal/adapter/http/dto/request"
	"fieldflow/internal/adapter/http/middleware"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
	os.Exit(m.Run())
}

func newTestRouter() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	v1 := r.Group("/v1")
	v1.Use(middleware.RequireOwner())
	return r, v1
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.HeaderOwnerID, "owner-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestMapFlowError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "not found", err: usecase.ErrQuoteNotFound, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "precondition", err: usecase.ErrQuoteNotApproved, status: http.StatusPreconditionFailed, code: "PRECONDITION_FAILED"},
		{name: "forbidden", err: usecase.ErrForbidden, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "invalid billing type", err: usecase.ErrInvalidBillingType, status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "invalid due date", err: request.ErrInvalidDueDate, status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "gateway not configured", err: usecase.ErrPaymentGatewayNotConfigured, status: http.StatusServiceUnavailable, code: "PAYMENT_PROVIDER_UNAVAILABLE"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := mapFlowError(tt.err)
			if appErr.HTTPStatus != tt.status || appErr.Code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}

	t.Run("business message is kept", func(t *testing.T) {
		appErr := mapFlowError(usecase.ErrPendingPaymentExists)
		if appErr.Message != "Work order already has a pending payment" {
			t.Fatalf("unexpected message %q", appErr.Message)
		}
	})
}

func samplePayment() entities.Payment {
	return entities.Payment{
		ID:          "pay-1",
		OwnerID:     "owner-1",
		ClientID:    "c1",
		WorkOrderID: "wo1",
		Value:       decimal.NewFromInt(1500),
		BillingType: entities.BillingTypePix,
		Status:      entities.PaymentStatusPending,
		DueDate:     time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}
}
