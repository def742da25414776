package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

//go:generate mockgen -source=transaction_repository_interface.go -destination=mocks/mock_transaction_repository.go -package=mock_interfaces

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// The redirect flow spans a browser round trip, so the transaction created by
// SetupRedirect must be retrievable later, by id (return leg with the payment
// id in the path) or by gateway token (return leg with only the processor
// token).

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	GetByToken(ctx context.Context, token string) (entities.Transaction, error)
}
