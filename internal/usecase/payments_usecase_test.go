package usecase

import (
	"context"
	"errors"
	"testing"

	"payflow/internal/domain/entities"
	mock_interfaces "payflow/internal/usecase/interfaces/mocks"
	"payflow/pkg"

	"go.uber.org/mock/gomock"
)

func expressTransaction() entities.Transaction {
	return entities.Transaction{Type: entities.TransactionTypeExpress, Amount: 10.00}
}

func TestPaymentsUseCase_NotConfigured(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		uc := NewPaymentsUseCase(nil, nil, false)
		if _, err := uc.SetupRedirect(context.Background(), expressTransaction()); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
		if _, err := uc.Authorise(context.Background(), expressTransaction()); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("nil repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(nil, gateway, false)

		if _, err := uc.SetupRedirect(context.Background(), expressTransaction()); !errors.Is(err, ErrRepositoryNotConfigured) {
			t.Fatalf("expected ErrRepositoryNotConfigured, got %v", err)
		}
	})
}

func TestPaymentsUseCase_ValidationGateBlocksGateway(t *testing.T) {
	// The gateway mock records zero expected calls; any delegation before a
	// passing Validate fails the test through the controller.
	cases := []struct {
		name  string
		trans entities.Transaction
	}{
		{"unknown type", entities.Transaction{Type: "Unknown", Amount: 10.00}},
		{"missing type", entities.Transaction{Amount: 10.00}},
		{"non positive amount", entities.Transaction{Type: entities.TransactionTypeExpress}},
		{"direct without card", entities.Transaction{Type: entities.TransactionTypeDirect, Amount: 10.00}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITransactionRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentsUseCase(repo, gateway, false)

			var ve *pkg.ValidationError
			if _, err := uc.SetupRedirect(context.Background(), tc.trans); !errors.As(err, &ve) {
				t.Fatalf("setup-redirect: expected ValidationError, got %v", err)
			}
			if _, err := uc.Authorise(context.Background(), tc.trans); !errors.As(err, &ve) {
				t.Fatalf("authorise: expected ValidationError, got %v", err)
			}
		})
	}
}

func TestPaymentsUseCase_SetupRedirect(t *testing.T) {
	t.Run("assigns id, delegates and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, true)

		gateway.EXPECT().SetupRedirect(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, trans entities.Transaction) (entities.Transaction, error) {
				if trans.ID == "" {
					t.Fatalf("expected id assigned before delegation")
				}
				trans.Token = "EC-123"
				trans.RedirectURL = "https://processor.example/redirect?token=EC-123"
				return trans, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, trans entities.Transaction) (entities.Transaction, error) {
				return trans, nil
			})

		out, err := uc.SetupRedirect(context.Background(), expressTransaction())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token != "EC-123" || out.RedirectURL == "" {
			t.Fatalf("expected redirect fields, got %+v", out)
		}
		if out.Authorised {
			t.Fatalf("setup-redirect must not authorise")
		}
	})

	t.Run("gateway error propagates unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, false)

		gwErr := pkg.NewGatewayError("10001", "internal error", nil)
		gateway.EXPECT().SetupRedirect(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, gwErr)

		_, err := uc.SetupRedirect(context.Background(), expressTransaction())
		var ge *pkg.GatewayError
		if !errors.As(err, &ge) || ge != gwErr {
			t.Fatalf("expected the gateway error unchanged, got %v", err)
		}
	})
}

func TestPaymentsUseCase_Authorise(t *testing.T) {
	t.Run("existing transaction is updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, false)

		trans := expressTransaction()
		trans.ID = "tx-1"
		trans.Token = "EC-123"
		trans.PayerID = "PAYER1"

		gateway.EXPECT().Authorise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
				in.Authorised = true
				in.ProviderTransactionID = "9B123"
				return in, nil
			})
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
				return in, nil
			})

		out, err := uc.Authorise(context.Background(), trans)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Authorised || out.ProviderTransactionID != "9B123" {
			t.Fatalf("expected authorised outcome, got %+v", out)
		}
	})

	t.Run("fresh direct transaction is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, false)

		trans := entities.Transaction{
			Type:   entities.TransactionTypeDirect,
			Amount: 25.50,
			Card:   &entities.Card{Number: "4111111111111111", ExpireMonth: "12", ExpireYear: "2030", CVV: "123"},
		}

		gateway.EXPECT().Authorise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
				in.Authorised = true
				return in, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
				return in, nil
			})

		out, err := uc.Authorise(context.Background(), trans)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID == "" {
			t.Fatalf("expected id assigned")
		}
	})

	t.Run("decline propagates and nothing is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, false)

		gwErr := pkg.NewGatewayError("10486", "payment declined", []byte("ACK=Failure"))
		gateway.EXPECT().Authorise(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, gwErr)

		_, err := uc.Authorise(context.Background(), expressTransaction())
		var ge *pkg.GatewayError
		if !errors.As(err, &ge) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
	})
}

func TestPaymentsUseCase_AuthoriseByID(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewPaymentsUseCase(nil, nil, false)
		if _, err := uc.AuthoriseByID(context.Background(), " ", "PAYER1"); !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
		if _, err := uc.AuthoriseByID(context.Background(), "tx-1", " "); !errors.Is(err, ErrInvalidPayerID) {
			t.Fatalf("expected ErrInvalidPayerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, false)

		repo.EXPECT().GetByID(gomock.Any(), "tx-404").Return(entities.Transaction{}, nil)

		if _, err := uc.AuthoriseByID(context.Background(), "tx-404", "PAYER1"); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("completes the redirect round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentsUseCase(repo, gateway, false)

		stored := expressTransaction()
		stored.ID = "tx-1"
		stored.Token = "EC-123"

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(stored, nil)
		gateway.EXPECT().Authorise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
				if in.PayerID != "PAYER1" || in.Token != "EC-123" {
					t.Fatalf("expected payer id and token carried to the gateway, got %+v", in)
				}
				in.Authorised = true
				in.ProviderTransactionID = "9B123"
				return in, nil
			})
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
				return in, nil
			})

		out, err := uc.AuthoriseByID(context.Background(), "tx-1", "PAYER1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Authorised || out.ProviderTransactionID == "" {
			t.Fatalf("expected authorised transaction, got %+v", out)
		}
	})
}

func TestPaymentsUseCase_RefreshDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITransactionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentsUseCase(repo, gateway, false)

	stored := expressTransaction()
	stored.ID = "tx-1"
	stored.ProviderTransactionID = "9B123"

	repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(stored, nil)
	gateway.EXPECT().TransactionDetails(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
			in.ProviderStatus = "Completed"
			return in, nil
		})
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in entities.Transaction) (entities.Transaction, error) {
			return in, nil
		})

	out, err := uc.RefreshDetails(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ProviderStatus != "Completed" {
		t.Fatalf("expected refreshed provider status, got %+v", out)
	}
}
