package pkg

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", 400)
		if e.HTTPStatus != 400 {
			t.Fatalf("expected 400, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body["code"] != "INVALID_REQUEST" || body["message"] != "Invalid request" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 500)
		if !errors.Is(e, cause) {
			t.Fatalf("expected Unwrap to reach cause")
		}
		if !strings.Contains(e.Error(), "boom") {
			t.Fatalf("expected cause in message, got %q", e.Error())
		}
	})
}

func TestErrorTaxonomyIsDistinguishable(t *testing.T) {
	var (
		cfgErr error = NewConfigurationError("PAYMENT_API", "unknown gateway")
		valErr error = NewValidationError("amount must be positive")
		gwErr  error = NewGatewayError("10486", "declined", json.RawMessage(`ACK=Failure`))
	)

	var ce *ConfigurationError
	var ve *ValidationError
	var ge *GatewayError

	if !errors.As(cfgErr, &ce) || errors.As(cfgErr, &ve) || errors.As(cfgErr, &ge) {
		t.Fatalf("configuration error not distinguishable")
	}
	if !errors.As(valErr, &ve) || errors.As(valErr, &ce) || errors.As(valErr, &ge) {
		t.Fatalf("validation error not distinguishable")
	}
	if !errors.As(gwErr, &ge) || errors.As(gwErr, &ce) || errors.As(gwErr, &ve) {
		t.Fatalf("gateway error not distinguishable")
	}
	if string(ge.Raw) != "ACK=Failure" {
		t.Fatalf("gateway error lost raw response: %q", ge.Raw)
	}
}

func TestWrapGatewayError(t *testing.T) {
	cause := errors.New("connection refused")
	e := WrapGatewayError("nvp call failed", cause)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if !strings.Contains(e.Error(), "connection refused") {
		t.Fatalf("unexpected message: %q", e.Error())
	}
}
