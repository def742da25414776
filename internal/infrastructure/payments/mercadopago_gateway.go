package payments

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
	"payflow/pkg"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoConfig holds the resolved Mercado Pago credentials.
type MercadoPagoConfig struct {
	AccessToken string
	Testing     bool
}

// MercadoPagoConfigFromEnv reads the MERCADOPAGO_* configuration surface.
// A TEST- access token implies sandbox behavior.
func MercadoPagoConfigFromEnv() MercadoPagoConfig {
	token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	return MercadoPagoConfig{
		AccessToken: token,
		Testing:     strings.HasPrefix(strings.TrimSpace(token), "TEST-"),
	}
}

// MercadoPagoGateway is the Mercado Pago variant behind the facade: the
// redirect flow runs over checkout preferences (the preference id is the
// token, the init point is the approval URL) and the direct flow over the
// payments API.
type MercadoPagoGateway struct {
	payments    payment.Client
	preferences preference.Client
	testing     bool
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(mpCfg MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mercadopago mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(mpCfg.AccessToken) == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, pkg.NewConfigurationError("MERCADOPAGO_ACCESS_TOKEN", "missing required value")
	}

	cfg, err := config.New(mpCfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, pkg.NewConfigurationError("MERCADOPAGO_ACCESS_TOKEN", err.Error())
	}
	log.Printf("[payment][gateway] mercado pago client initialized testing=%t", mpCfg.Testing)

	return &MercadoPagoGateway{
		payments:    payment.NewClient(cfg),
		preferences: preference.NewClient(cfg),
		testing:     mpCfg.Testing,
	}, nil
}

// SetupRedirect creates a checkout preference for an Express transaction and
// hands back its init point as the redirect URL.
func (g *MercadoPagoGateway) SetupRedirect(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	if trans.Type != entities.TransactionTypeExpress {
		return entities.Transaction{}, pkg.NewValidationError("type " + string(trans.Type) + " does not use a redirect flow")
	}

	if g.mockMode {
		trans.Token = "PREF-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		trans.RedirectURL = "https://sandbox.mercadopago.example/checkout?pref_id=" + trans.Token
		log.Printf("[payment][gateway] mock setup-redirect success id=%s token=%s", trans.ID, trans.Token)
		return trans, nil
	}

	title := trans.Description
	if title == "" {
		title = "Payment " + trans.ID
	}
	req := preference.Request{
		ExternalReference: trans.ID,
		Items: []preference.ItemRequest{
			{
				ID:        trans.ID,
				Title:     title,
				Quantity:  1,
				UnitPrice: trans.Amount,
			},
		},
	}

	log.Printf("[payment][gateway] preference create start id=%s amount=%.2f", trans.ID, trans.Amount)
	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, pkg.WrapGatewayError("preference create failed", err)
	}

	trans.Token = resp.ID
	trans.RedirectURL = resp.InitPoint
	if g.testing && resp.SandboxInitPoint != "" {
		trans.RedirectURL = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] preference create success id=%s token=%s", trans.ID, trans.Token)
	return trans, nil
}

// Authorise charges a Direct transaction through the payments API. Express
// payments approved through the init point are captured by Mercado Pago
// itself, so there is no server-side Express capture here; asking for one is
// an unsupported operation, never a silent success.
func (g *MercadoPagoGateway) Authorise(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	switch trans.Type {
	case entities.TransactionTypeDirect:
	case entities.TransactionTypeExpress:
		return entities.Transaction{}, pkg.NewValidationError("mercado pago express payments are captured on redirect approval, not by authorise")
	default:
		return entities.Transaction{}, pkg.NewValidationError("gateway cannot authorise type " + string(trans.Type))
	}

	if g.mockMode {
		trans.Authorised = true
		trans.ProviderTransactionID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		trans.ProviderStatus = "approved"
		trans.RawResponse = []byte(`{"status":"approved","status_detail":"accredited","mock":true}`)
		log.Printf("[payment][gateway] mock authorise success id=%s provider_transaction_id=%s", trans.ID, trans.ProviderTransactionID)
		return trans, nil
	}

	req := payment.Request{
		TransactionAmount: trans.Amount,
		Description:       trans.Description,
		ExternalReference: trans.ID,
		Token:             trans.Metadata["card_token"],
		PaymentMethodID:   trans.Metadata["payment_method_id"],
		Installments:      1,
	}
	if trans.PayerEmail != "" {
		req.Payer = &payment.PayerRequest{Email: trans.PayerEmail}
	}

	log.Printf("[payment][gateway] payment create start id=%s amount=%.2f", trans.ID, trans.Amount)
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] payment create failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, pkg.WrapGatewayError("payment create failed", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.Transaction{}, pkg.WrapGatewayError("payment response marshal failed", err)
	}

	if resp.Status != "approved" {
		log.Printf("[payment][gateway] payment not approved id=%s status=%s", trans.ID, resp.Status)
		return entities.Transaction{}, pkg.NewGatewayError(resp.StatusDetail, "payment "+resp.Status, raw)
	}

	trans.Authorised = true
	trans.ProviderTransactionID = strconv.Itoa(resp.ID)
	trans.ProviderStatus = resp.Status
	trans.RawResponse = raw
	log.Printf("[payment][gateway] payment create success id=%s provider_transaction_id=%s", trans.ID, trans.ProviderTransactionID)
	return trans, nil
}

// TransactionDetails fetches the processor's view of the payment.
func (g *MercadoPagoGateway) TransactionDetails(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	if strings.TrimSpace(trans.ProviderTransactionID) == "" {
		return entities.Transaction{}, pkg.NewValidationError("transaction has no provider transaction id to look up")
	}

	if g.mockMode {
		trans.ProviderStatus = "approved"
		return trans, nil
	}

	id, err := strconv.Atoi(trans.ProviderTransactionID)
	if err != nil {
		return entities.Transaction{}, pkg.NewValidationError("provider transaction id is not a mercado pago payment id")
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return entities.Transaction{}, pkg.WrapGatewayError("payment get failed", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.Transaction{}, pkg.WrapGatewayError("payment response marshal failed", err)
	}
	trans.ProviderStatus = resp.Status
	trans.RawResponse = raw
	return trans, nil
}
