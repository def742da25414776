package request

import (
	"strings"

	"payflow/internal/domain/entities"
)

type CardRequest struct {
	Number      string `json:"number" binding:"required"`
	ExpireMonth string `json:"expire_month" binding:"required"`
	ExpireYear  string `json:"expire_year" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
	HolderName  string `json:"holder_name"`
}

// PaymentRequest is the payload for the redirect-setup and direct-payment
// routes. Everything beyond type and amount is passed through opaque to the
// bound gateway.
type PaymentRequest struct {
	Type        string            `json:"type" binding:"required"`
	Amount      float64           `json:"amount" binding:"required"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	PayerEmail  string            `json:"payer_email"`
	Card        *CardRequest      `json:"card"`
	Metadata    map[string]string `json:"metadata"`
}

func (r PaymentRequest) ToTransaction() entities.Transaction {
	trans := entities.Transaction{
		Type:        entities.TransactionType(strings.TrimSpace(r.Type)),
		Amount:      r.Amount,
		Currency:    strings.TrimSpace(r.Currency),
		Description: r.Description,
		PayerEmail:  strings.TrimSpace(r.PayerEmail),
		Metadata:    r.Metadata,
	}
	if r.Card != nil {
		trans.Card = &entities.Card{
			Number:      strings.TrimSpace(r.Card.Number),
			ExpireMonth: strings.TrimSpace(r.Card.ExpireMonth),
			ExpireYear:  strings.TrimSpace(r.Card.ExpireYear),
			CVV:         strings.TrimSpace(r.Card.CVV),
			HolderName:  strings.TrimSpace(r.Card.HolderName),
		}
	}
	return trans
}

// AuthoriseRequest carries the payer identifier brought back from the
// processor's redirect return.
type AuthoriseRequest struct {
	PayerID string `json:"payer_id" binding:"required"`
}

func (r AuthoriseRequest) ResolvePayerID() string {
	return strings.TrimSpace(r.PayerID)
}
