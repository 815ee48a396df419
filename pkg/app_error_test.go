package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Quote not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Quote not found" {
			t.Fatalf("unexpected error string %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "NOT_FOUND" || body.Message != "Quote not found" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
	})
}
