package response

import (
	"time"

	"payflow/internal/domain/entities"
)

// PaymentResponse is the transaction projection returned to clients. The raw
// processor response stays server-side.
type PaymentResponse struct {
	ID                    string            `json:"id"`
	Type                  string            `json:"type"`
	Amount                float64           `json:"amount"`
	Currency              string            `json:"currency,omitempty"`
	Description           string            `json:"description,omitempty"`
	Authorised            bool              `json:"authorised"`
	Token                 string            `json:"token,omitempty"`
	RedirectURL           string            `json:"redirect_url,omitempty"`
	ProviderTransactionID string            `json:"provider_transaction_id,omitempty"`
	ProviderStatus        string            `json:"provider_status,omitempty"`
	Metadata              map[string]string `json:"metadata,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) PaymentResponse {
	return PaymentResponse{
		ID:                    t.ID,
		Type:                  string(t.Type),
		Amount:                t.Amount,
		Currency:              t.Currency,
		Description:           t.Description,
		Authorised:            t.Authorised,
		Token:                 t.Token,
		RedirectURL:           t.RedirectURL,
		ProviderTransactionID: t.ProviderTransactionID,
		ProviderStatus:        t.ProviderStatus,
		Metadata:              t.Metadata,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}
