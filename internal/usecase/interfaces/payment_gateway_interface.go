package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

// IPaymentGateway abstracts one payment processor (PayPal, Mercado Pago, ...).
//
// Implementations take the transaction by value and return the mutated copy,
// so a single gateway instance is safe for concurrent calls: all per-call
// state lives in the transaction and gateway configuration is read-only after
// construction.
//
// Contract:
//   - SetupRedirect attaches Token and RedirectURL for redirect-flow types
//     and returns a ValidationError for types it does not redirect.
//   - Authorise finalizes the payment and is the only place the Authorised
//     flag may become true. A type the gateway cannot authorise is a
//     ValidationError, never a silent no-op.
//   - Processor declines, malformed responses and transport failures surface
//     as GatewayError carrying the raw processor response.
type IPaymentGateway interface {
	SetupRedirect(ctx context.Context, trans entities.Transaction) (entities.Transaction, error)
	Authorise(ctx context.Context, trans entities.Transaction) (entities.Transaction, error)
	TransactionDetails(ctx context.Context, trans entities.Transaction) (entities.Transaction, error)
}
