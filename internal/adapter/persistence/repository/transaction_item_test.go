package repository

import (
	"testing"
	"time"

	"payflow/internal/domain/entities"
)

func TestTransactionItemMapping(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	in := entities.Transaction{
		ID:                    "tx-1",
		Type:                  entities.TransactionTypeExpress,
		Amount:                10.00,
		Currency:              "USD",
		PayerID:               "PAYER1",
		Metadata:              map[string]string{"invoice_num": "INV-1"},
		Authorised:            true,
		Token:                 "EC-123",
		RedirectURL:           "https://redirect.example",
		ProviderTransactionID: "9B123",
		ProviderStatus:        "Completed",
		RawResponse:           []byte("ACK=Success"),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	out := fromTransactionItem(toTransactionItem(in))

	if out.ID != in.ID || out.Type != in.Type || out.Amount != in.Amount {
		t.Fatalf("identity fields lost: %+v", out)
	}
	if !out.Authorised || out.Token != "EC-123" || out.ProviderTransactionID != "9B123" {
		t.Fatalf("gateway fields lost: %+v", out)
	}
	if string(out.RawResponse) != "ACK=Success" {
		t.Fatalf("raw response lost: %q", out.RawResponse)
	}
	if !out.CreatedAt.Equal(now) || !out.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps lost: %+v", out)
	}
	if out.Card != nil {
		t.Fatalf("card data must never round-trip through storage")
	}
}
