package payments

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
	"payflow/pkg"
)

// Environment selects which PayPal endpoints the gateway talks to.
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

const defaultCurrency = "USD"

// PayPalConfig holds the resolved Express Checkout credentials and endpoints.
// It is built from the application environment by the registry, validated at
// construction and owned by the gateway; never exposed outside it.
type PayPalConfig struct {
	Environment Environment
	User        string
	Password    string
	Signature   string
	ReturnURL   string
	CancelURL   string
	Currency    string

	// Endpoint overrides the NVP endpoint derived from Environment.
	// Used by local stubs, same idea as DYNAMODB_ENDPOINT.
	Endpoint string
}

// PayPalConfigFromEnv reads the PAYPAL_* configuration surface.
func PayPalConfigFromEnv() PayPalConfig {
	return PayPalConfig{
		Environment: Environment(getenvDefault("PAYMENT_API_ENVIRONMENT", string(EnvironmentSandbox))),
		User:        os.Getenv("PAYPAL_API_USER"),
		Password:    os.Getenv("PAYPAL_API_PWD"),
		Signature:   os.Getenv("PAYPAL_API_SIGNATURE"),
		ReturnURL:   os.Getenv("PAYPAL_RETURN_URL"),
		CancelURL:   os.Getenv("PAYPAL_CANCEL_URL"),
		Currency:    getenvDefault("PAYMENT_CURRENCY", defaultCurrency),
		Endpoint:    os.Getenv("PAYPAL_NVP_ENDPOINT"),
	}
}

func (c PayPalConfig) validate() error {
	switch c.Environment {
	case EnvironmentSandbox, EnvironmentProduction:
	default:
		return pkg.NewConfigurationError("PAYMENT_API_ENVIRONMENT", "must be sandbox or production")
	}
	for key, v := range map[string]string{
		"PAYPAL_API_USER":      c.User,
		"PAYPAL_API_PWD":       c.Password,
		"PAYPAL_API_SIGNATURE": c.Signature,
		"PAYPAL_RETURN_URL":    c.ReturnURL,
		"PAYPAL_CANCEL_URL":    c.CancelURL,
	} {
		if strings.TrimSpace(v) == "" {
			return pkg.NewConfigurationError(key, "missing required value")
		}
	}
	return nil
}

// PayPalGateway implements the Express Checkout (redirect) and Direct Payment
// flows over the NVP API.
type PayPalGateway struct {
	client   *nvpClient
	cfg      PayPalConfig
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(cfg PayPalConfig) (*PayPalGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] paypal mock mode enabled")
		return &PayPalGateway{mockMode: true, cfg: cfg}, nil
	}

	if err := cfg.validate(); err != nil {
		log.Printf("[payment][gateway] paypal configuration invalid err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] paypal client initialized environment=%s", cfg.Environment)

	return &PayPalGateway{client: newNVPClient(cfg), cfg: cfg}, nil
}

// SetupRedirect begins the Express Checkout flow: SetExpressCheckout attaches
// the processor token and the URL the payer must approve the payment at.
// Only the Express type goes through a redirect; anything else is rejected.
func (g *PayPalGateway) SetupRedirect(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	if trans.Type != entities.TransactionTypeExpress {
		log.Printf("[payment][gateway] setup-redirect unsupported type=%s id=%s", trans.Type, trans.ID)
		return entities.Transaction{}, pkg.NewValidationError("type " + string(trans.Type) + " does not use a redirect flow")
	}

	if g.mockMode {
		trans.Token = mockExpressToken()
		trans.RedirectURL = redirectURL(EnvironmentSandbox, trans.Token)
		log.Printf("[payment][gateway] mock setup-redirect success id=%s token=%s", trans.ID, trans.Token)
		return trans, nil
	}

	log.Printf("[payment][gateway] setup-redirect start id=%s amount=%.2f", trans.ID, trans.Amount)
	resp, err := g.client.call(ctx, "SetExpressCheckout", g.expressCheckoutParams(trans))
	if err != nil {
		log.Printf("[payment][gateway] setup-redirect failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, err
	}

	trans.Token = resp.Get("TOKEN")
	trans.RedirectURL = redirectURL(g.cfg.Environment, trans.Token)
	log.Printf("[payment][gateway] setup-redirect success id=%s token=%s", trans.ID, trans.Token)
	return trans, nil
}

// Authorise finalizes the payment: Express transactions complete the checkout
// set up via the redirect, Direct transactions charge the card in one call.
func (g *PayPalGateway) Authorise(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	switch trans.Type {
	case entities.TransactionTypeExpress:
		return g.authoriseExpress(ctx, trans)
	case entities.TransactionTypeDirect:
		return g.authoriseDirect(ctx, trans)
	default:
		log.Printf("[payment][gateway] authorise unsupported type=%s id=%s", trans.Type, trans.ID)
		return entities.Transaction{}, pkg.NewValidationError("gateway cannot authorise type " + string(trans.Type))
	}
}

func (g *PayPalGateway) authoriseExpress(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	if strings.TrimSpace(trans.Token) == "" {
		return entities.Transaction{}, pkg.NewValidationError("express authorise requires the token from setup-redirect")
	}
	if strings.TrimSpace(trans.PayerID) == "" {
		return entities.Transaction{}, pkg.NewValidationError("express authorise requires the payer id from the redirect return")
	}

	if g.mockMode {
		return g.mockAuthorised(trans), nil
	}

	log.Printf("[payment][gateway] authorise-express start id=%s token=%s", trans.ID, trans.Token)
	resp, err := g.client.call(ctx, "DoExpressCheckoutPayment", map[string]string{
		"TOKEN":         trans.Token,
		"PAYERID":       trans.PayerID,
		"PAYMENTACTION": "Sale",
		"AMT":           formatAmount(trans.Amount),
		"CURRENCYCODE":  g.currency(trans),
	})
	if err != nil {
		log.Printf("[payment][gateway] authorise-express failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, err
	}

	trans.Authorised = true
	trans.ProviderTransactionID = resp.Get("TRANSACTIONID")
	trans.ProviderStatus = resp.Get("PAYMENTSTATUS")
	trans.RawResponse = []byte(resp.Encode())
	log.Printf("[payment][gateway] authorise-express success id=%s provider_transaction_id=%s", trans.ID, trans.ProviderTransactionID)
	return trans, nil
}

func (g *PayPalGateway) authoriseDirect(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	if g.mockMode {
		return g.mockAuthorised(trans), nil
	}

	log.Printf("[payment][gateway] authorise-direct start id=%s", trans.ID)
	resp, err := g.client.call(ctx, "DoDirectPayment", g.directPaymentParams(trans))
	if err != nil {
		log.Printf("[payment][gateway] authorise-direct failed id=%s err=%v", trans.ID, err)
		return entities.Transaction{}, err
	}

	trans.Authorised = true
	trans.ProviderTransactionID = resp.Get("TRANSACTIONID")
	trans.ProviderStatus = resp.Get("AVSCODE")
	trans.RawResponse = []byte(resp.Encode())
	log.Printf("[payment][gateway] authorise-direct success id=%s provider_transaction_id=%s", trans.ID, trans.ProviderTransactionID)
	return trans, nil
}

// TransactionDetails fetches the processor's view of an authorised payment.
func (g *PayPalGateway) TransactionDetails(ctx context.Context, trans entities.Transaction) (entities.Transaction, error) {
	if strings.TrimSpace(trans.ProviderTransactionID) == "" {
		return entities.Transaction{}, pkg.NewValidationError("transaction has no provider transaction id to look up")
	}

	if g.mockMode {
		trans.ProviderStatus = "Completed"
		return trans, nil
	}

	resp, err := g.client.call(ctx, "GetTransactionDetails", map[string]string{
		"TRANSACTIONID": trans.ProviderTransactionID,
	})
	if err != nil {
		return entities.Transaction{}, err
	}

	trans.ProviderStatus = resp.Get("PAYMENTSTATUS")
	trans.RawResponse = []byte(resp.Encode())
	return trans, nil
}

// expressCheckoutParams is the explicit field-name translation from the
// transaction to PayPal's flat upper-case NVP parameters. Metadata entries
// ride along with the underscore-stripped upper-case naming the NVP API uses.
func (g *PayPalGateway) expressCheckoutParams(trans entities.Transaction) map[string]string {
	params := map[string]string{
		"AMT":           formatAmount(trans.Amount),
		"CURRENCYCODE":  g.currency(trans),
		"PAYMENTACTION": "Sale",
		"RETURNURL":     g.cfg.ReturnURL,
		"CANCELURL":     g.cfg.CancelURL,
	}
	if trans.Description != "" {
		params["DESC"] = trans.Description
	}
	if trans.PayerEmail != "" {
		params["EMAIL"] = trans.PayerEmail
	}
	for k, v := range trans.Metadata {
		params[nvpParamName(k)] = v
	}
	return params
}

func (g *PayPalGateway) directPaymentParams(trans entities.Transaction) map[string]string {
	params := map[string]string{
		"AMT":            formatAmount(trans.Amount),
		"CURRENCYCODE":   g.currency(trans),
		"PAYMENTACTION":  "Sale",
		"ACCT":           trans.Card.Number,
		"EXPDATE":        trans.Card.ExpireMonth + trans.Card.ExpireYear,
		"CVV2":           trans.Card.CVV,
		"CREDITCARDTYPE": cardType(trans.Card.Number),
	}
	if trans.Card.HolderName != "" {
		params["FIRSTNAME"] = trans.Card.HolderName
	}
	if trans.PayerEmail != "" {
		params["EMAIL"] = trans.PayerEmail
	}
	return params
}

func (g *PayPalGateway) currency(trans entities.Transaction) string {
	if trans.Currency != "" {
		return trans.Currency
	}
	if g.cfg.Currency != "" {
		return g.cfg.Currency
	}
	return defaultCurrency
}

func (g *PayPalGateway) mockAuthorised(trans entities.Transaction) entities.Transaction {
	trans.Authorised = true
	trans.ProviderTransactionID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	trans.ProviderStatus = "Completed"
	trans.RawResponse = []byte("ACK=Success&MOCK=true")
	log.Printf("[payment][gateway] mock authorise success id=%s provider_transaction_id=%s", trans.ID, trans.ProviderTransactionID)
	return trans
}

func mockExpressToken() string {
	return "EC-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}

// nvpParamName converts a mixed-case underscore-separated field name into the
// NVP parameter style: underscores stripped, upper-cased.
func nvpParamName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", ""))
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func cardType(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "Visa"
	case strings.HasPrefix(number, "5"):
		return "MasterCard"
	case strings.HasPrefix(number, "3"):
		return "Amex"
	default:
		return "Visa"
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
