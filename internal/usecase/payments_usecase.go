package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionID   = errors.New("invalid transaction id")
	ErrInvalidPayerID         = errors.New("invalid payer id")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrRepositoryNotConfigured = errors.New("transaction repository not configured")
)

// IPaymentsUseCase is the single entry point for payment processing.
//
// It owns the gateway bound at startup, runs the generic validation gate in
// front of every delegation and persists the transaction between flow steps
// so the redirect round trip can be completed later. It never suppresses a
// gateway error and never sets the Authorised flag itself.

type IPaymentsUseCase interface {
	SetupRedirect(ctx context.Context, trans entities.Transaction) (entities.Transaction, error)
	Authorise(ctx context.Context, trans entities.Transaction) (entities.Transaction, error)
	AuthoriseByID(ctx context.Context, id, payerID string) (entities.Transaction, error)
	RefreshDetails(ctx context.Context, id string) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
}

type PaymentsUseCase struct {
	repo    interfaces.ITransactionRepository
	gateway interfaces.IPaymentGateway
	testing bool
}

var _ IPaymentsUseCase = (*PaymentsUseCase)(nil)

func NewPaymentsUseCase(repo interfaces.ITransactionRepository, gateway interfaces.IPaymentGateway, testing bool) *PaymentsUseCase {
	return &PaymentsUseCase{repo: repo, gateway: gateway, testing: testing}
}

// SetupRedirect validates the transaction and asks the bound gateway to begin
// the redirect flow. The returned transaction carries the gateway token and
// the URL the payer must be sent to; it is persisted so the authorise leg can
// find it after the browser round trip.
func (u *PaymentsUseCase) SetupRedirect(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	log.Printf("[payment][usecase] setup-redirect start type=%s amount=%.2f", trans.Type, trans.Amount)
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.Transaction{}, ErrGatewayNotConfigured
	}
	if u.repo == nil {
		log.Printf("[payment][usecase] repository not configured")
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}

	if err := trans.Validate(); err != nil {
		log.Printf("[payment][usecase] setup-redirect rejected err=%v", err)
		return entities.Transaction{}, err
	}

	now := time.Now().UTC()
	if trans.ID == "" {
		trans.ID = uuid.NewString()
	}
	if trans.CreatedAt.IsZero() {
		trans.CreatedAt = now
	}
	trans.UpdatedAt = now

	out, err := u.gateway.SetupRedirect(ctx, trans)
	if err != nil {
		log.Printf("[payment][usecase] setup-redirect gateway failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, err
	}

	created, err := u.repo.Create(ctx, out)
	if err != nil {
		log.Printf("[payment][usecase] setup-redirect persist failed id=%s err=%v", out.ID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] setup-redirect success id=%s token=%s", created.ID, created.Token)
	return created, nil
}

// Authorise validates the transaction and delegates to the bound gateway.
// Gateway outcomes, success or failure, propagate unchanged; only the
// validation gate runs in front.
func (u *PaymentsUseCase) Authorise(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	log.Printf("[payment][usecase] authorise start id=%s type=%s", trans.ID, trans.Type)
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.Transaction{}, ErrGatewayNotConfigured
	}
	if u.repo == nil {
		log.Printf("[payment][usecase] repository not configured")
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}

	if err := trans.Validate(); err != nil {
		log.Printf("[payment][usecase] authorise rejected err=%v", err)
		return entities.Transaction{}, err
	}

	now := time.Now().UTC()
	persisted := trans.ID != ""
	if trans.ID == "" {
		trans.ID = uuid.NewString()
	}
	if trans.CreatedAt.IsZero() {
		trans.CreatedAt = now
	}
	trans.UpdatedAt = now

	out, err := u.gateway.Authorise(ctx, trans)
	if err != nil {
		log.Printf("[payment][usecase] authorise gateway failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, err
	}

	var stored entities.Transaction
	if persisted {
		stored, err = u.repo.Update(ctx, out)
	} else {
		stored, err = u.repo.Create(ctx, out)
	}
	if err != nil {
		log.Printf("[payment][usecase] authorise persist failed id=%s err=%v", out.ID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] authorise success id=%s provider_transaction_id=%s authorised=%t", stored.ID, stored.ProviderTransactionID, stored.Authorised)
	return stored, nil
}

// AuthoriseByID completes the redirect flow: loads the transaction persisted
// by SetupRedirect, attaches the payer identifier brought back from the
// processor and authorises it.
func (u *PaymentsUseCase) AuthoriseByID(ctx context.Context, id, payerID string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	payerID = strings.TrimSpace(payerID)
	if payerID == "" {
		return entities.Transaction{}, ErrInvalidPayerID
	}

	trans, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	trans.PayerID = payerID
	return u.Authorise(ctx, trans)
}

// RefreshDetails re-reads the transaction from the processor and persists the
// refreshed copy.
func (u *PaymentsUseCase) RefreshDetails(ctx context.Context, id string) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrGatewayNotConfigured
	}

	trans, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}

	out, err := u.gateway.TransactionDetails(ctx, trans)
	if err != nil {
		log.Printf("[payment][usecase] refresh-details gateway failed id=%s err=%v", id, err)
		return entities.Transaction{}, err
	}
	out.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, out)
}

func (u *PaymentsUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if u.repo == nil {
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}

	trans, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if trans.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return trans, nil
}
