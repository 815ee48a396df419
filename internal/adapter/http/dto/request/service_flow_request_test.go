package request

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestGeneratePaymentRequest_ResolveDueDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		err  error
	}{
		{in: "2025-01-20", want: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		{in: " 2025-01-20T10:00:00-03:00 ", want: time.Date(2025, 1, 20, 13, 0, 0, 0, time.UTC)},
		{in: "20/01/2025", err: ErrInvalidDueDate},
		{in: "", err: ErrInvalidDueDate},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := GeneratePaymentRequest{DueDate: tc.in}.ResolveDueDate()
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if tc.err == nil && !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestBillingTypeRule(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterRules(v); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, ok := range []string{"PIX", "BOLETO", "CREDIT_CARD", "UNDEFINED"} {
		if err := v.Var(ok, "billing_type"); err != nil {
			t.Fatalf("expected %s to be valid, got %v", ok, err)
		}
	}
	for _, bad := range []string{"pix", "CASH", ""} {
		if err := v.Var(bad, "billing_type"); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
