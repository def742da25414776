package entities

import (
	"encoding/json"
	"strings"
	"time"

	"payflow/pkg"
)

// TransactionType selects the payment flow a transaction goes through.
//
// Flow notes:
//   - Express: redirect flow. The payer is sent to the processor to approve
//     the payment (SetupRedirect), then the transaction is finalized with the
//     payer identifier (Authorise).
//   - Direct: card-present flow, authorised in a single call.

type TransactionType string

const (
	TransactionTypeExpress TransactionType = "Express"
	TransactionTypeDirect  TransactionType = "Direct"
)

// Card holds the card fields required by the Direct flow.
type Card struct {
	Number      string `json:"number"`
	ExpireMonth string `json:"expire_month"`
	ExpireYear  string `json:"expire_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

// Transaction is the payment request value object accumulated across the flow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (token-index): token
//
// Field ownership:
//   - ID, Type, Amount, Currency, Description, PayerEmail, PayerID, Card and
//     Metadata are caller-supplied.
//   - Token, RedirectURL, ProviderTransactionID, ProviderStatus and
//     RawResponse are assigned by the bound gateway and are opaque to the
//     generic layer; only the gateway that wrote them reads them back.
//   - Authorised is set true only by a successful gateway authorise call.

type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
	PayerEmail  string          `json:"payer_email,omitempty"`
	PayerID     string          `json:"payer_id,omitempty"`
	Card        *Card           `json:"card,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`

	Authorised            bool            `json:"authorised"`
	Token                 string          `json:"token,omitempty"`
	RedirectURL           string          `json:"redirect_url,omitempty"`
	ProviderTransactionID string          `json:"provider_transaction_id,omitempty"`
	ProviderStatus        string          `json:"provider_status,omitempty"`
	RawResponse           json.RawMessage `json:"raw_response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate runs the generic, gateway-independent checks. It must pass before
// any gateway sees the transaction, so gateway implementations may assume the
// fields checked here are well-formed. It only reads the transaction.
func (t Transaction) Validate() error {
	switch t.Type {
	case TransactionTypeExpress:
		// No extra required fields beyond the common ones.
	case TransactionTypeDirect:
		if t.Card == nil {
			return pkg.NewValidationError("card details are required for Direct transactions")
		}
		if strings.TrimSpace(t.Card.Number) == "" ||
			strings.TrimSpace(t.Card.ExpireMonth) == "" ||
			strings.TrimSpace(t.Card.ExpireYear) == "" ||
			strings.TrimSpace(t.Card.CVV) == "" {
			return pkg.NewValidationError("incomplete card details for Direct transaction")
		}
	case "":
		return pkg.NewValidationError("transaction type is required")
	default:
		return pkg.NewValidationError("unknown transaction type " + string(t.Type))
	}

	if t.Amount <= 0 {
		return pkg.NewValidationError("amount must be a positive value")
	}
	return nil
}
