package payments

import (
	"log"
	"os"
	"sort"

	"payflow/internal/usecase/interfaces"
	"payflow/pkg"
)

// GatewayConstructor builds a configured gateway from the application
// environment, failing with a ConfigurationError when its own configuration
// is incomplete.
type GatewayConstructor func() (interfaces.IPaymentGateway, error)

// gateways maps the PAYMENT_API discriminator to a concrete constructor.
var gateways = map[string]GatewayConstructor{
	"PayPal": func() (interfaces.IPaymentGateway, error) {
		return NewPayPalGateway(PayPalConfigFromEnv())
	},
	"MercadoPago": func() (interfaces.IPaymentGateway, error) {
		return NewMercadoPagoGateway(MercadoPagoConfigFromEnv())
	},
}

// NewGateway resolves the configured gateway key. An unknown key or an
// incompletely configured gateway is a ConfigurationError: a misconfigured
// deployment must refuse to start, not run with no gateway.
func NewGateway(apiKey string) (interfaces.IPaymentGateway, error) {
	constructor, ok := gateways[apiKey]
	if !ok {
		log.Printf("[payment][registry] unknown gateway key=%q known=%v", apiKey, Registered())
		return nil, pkg.NewConfigurationError("PAYMENT_API", "unknown gateway key "+apiKey)
	}
	return constructor()
}

// NewGatewayFromEnv resolves PAYMENT_API once at startup.
func NewGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	return NewGateway(os.Getenv("PAYMENT_API"))
}

// Registered lists the configured gateway keys, sorted for stable logs.
func Registered() []string {
	keys := make([]string, 0, len(gateways))
	for k := range gateways {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
