package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_MOCK", "yes")
		t.Setenv("PAYMENT_GATEWAY_MOCK_STATUS", "")

		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode || g.mockStatus != defaultMockStatus {
			t.Fatalf("unexpected gateway: %+v", g)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	cases := []struct {
		status string
		detail string
	}{
		{status: "pending", detail: "pending_waiting_payment"},
		{status: "approved", detail: "accredited"},
	}
	for _, tc := range cases {
		t.Run("mock "+tc.status, func(t *testing.T) {
			g := &MercadoPagoGateway{mockMode: true, mockStatus: tc.status}

			id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"p1","transaction_amount":10}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id == "" || status != tc.status {
				t.Fatalf("unexpected result id=%q status=%q", id, status)
			}
			var resp map[string]any
			if err := json.Unmarshal(raw, &resp); err != nil {
				t.Fatalf("invalid response: %v", err)
			}
			if resp["external_reference"] != "p1" || resp["status_detail"] != tc.detail {
				t.Fatalf("unexpected response: %v", resp)
			}
		})
	}
}
