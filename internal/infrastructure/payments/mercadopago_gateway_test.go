package payments

import (
	"context"
	"errors"
	"testing"

	"payflow/internal/domain/entities"
	"payflow/pkg"
)

func TestNewMercadoPagoGateway_ConfigValidation(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")

	_, err := NewMercadoPagoGateway(MercadoPagoConfig{})
	var ce *pkg.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if ce.Key != "MERCADOPAGO_ACCESS_TOKEN" {
		t.Fatalf("expected the missing field named, got %q", ce.Key)
	}
}

func TestMercadoPagoConfigFromEnv_TestingDetection(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-abc")
	if cfg := MercadoPagoConfigFromEnv(); !cfg.Testing {
		t.Fatalf("expected TEST- token to imply testing")
	}

	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP_USR-abc")
	if cfg := MercadoPagoConfigFromEnv(); cfg.Testing {
		t.Fatalf("expected production token to not imply testing")
	}
}

func newMockMercadoPago(t *testing.T) *MercadoPagoGateway {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	g, err := NewMercadoPagoGateway(MercadoPagoConfig{})
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return g
}

func TestMercadoPagoGateway_SetupRedirect(t *testing.T) {
	g := newMockMercadoPago(t)

	t.Run("express attaches preference token and init point", func(t *testing.T) {
		out, err := g.SetupRedirect(context.Background(), entities.Transaction{
			ID: "tx-1", Type: entities.TransactionTypeExpress, Amount: 10.00,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" || out.RedirectURL == "" {
			t.Fatalf("expected redirect fields, got %+v", out)
		}
		if out.Authorised {
			t.Fatalf("setup-redirect must not authorise")
		}
	})

	t.Run("direct is rejected", func(t *testing.T) {
		_, err := g.SetupRedirect(context.Background(), entities.Transaction{
			Type: entities.TransactionTypeDirect, Amount: 10.00,
		})
		var ve *pkg.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_Authorise(t *testing.T) {
	g := newMockMercadoPago(t)

	t.Run("direct succeeds", func(t *testing.T) {
		out, err := g.Authorise(context.Background(), entities.Transaction{
			ID: "tx-1", Type: entities.TransactionTypeDirect, Amount: 10.00,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Authorised || out.ProviderTransactionID == "" {
			t.Fatalf("expected authorised transaction, got %+v", out)
		}
	})

	t.Run("express capture is an explicit unsupported operation", func(t *testing.T) {
		_, err := g.Authorise(context.Background(), entities.Transaction{
			Type: entities.TransactionTypeExpress, Amount: 10.00, Token: "PREF-1", PayerID: "PAYER1",
		})
		var ve *pkg.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := g.Authorise(context.Background(), entities.Transaction{Type: "Unknown", Amount: 10.00})
		var ve *pkg.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_TransactionDetails(t *testing.T) {
	g := newMockMercadoPago(t)

	if _, err := g.TransactionDetails(context.Background(), entities.Transaction{}); err == nil {
		t.Fatalf("expected error without a provider transaction id")
	}

	out, err := g.TransactionDetails(context.Background(), entities.Transaction{ProviderTransactionID: "123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ProviderStatus != "approved" {
		t.Fatalf("expected approved, got %q", out.ProviderStatus)
	}
}
