package payments

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"payflow/pkg"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const (
	nvpVersion             = "124.0"
	nvpSandboxEndpoint     = "https://api-3t.sandbox.paypal.com/nvp"
	nvpProductionEndpoint  = "https://api-3t.paypal.com/nvp"
	redirectSandboxBase    = "https://www.sandbox.paypal.com/cgi-bin/webscr"
	redirectProductionBase = "https://www.paypal.com/cgi-bin/webscr"
)

// nvpClient is the transport capability the PayPal gateway owns: it speaks
// the NVP protocol (form-encoded request, URL-encoded key=value response)
// against a single endpoint. Timeouts live on the resty client and a circuit
// breaker sits in front of the processor; no automatic retries.
type nvpClient struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	endpoint string

	// credential params merged into every call
	user      string
	password  string
	signature string
}

func newNVPClient(cfg PayPalConfig) *nvpClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = nvpSandboxEndpoint
		if cfg.Environment == EnvironmentProduction {
			endpoint = nvpProductionEndpoint
		}
	}

	return &nvpClient{
		http: resty.New().
			SetTimeout(30 * time.Second).
			SetRetryCount(0), // failures surface as GatewayError, never retried here
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "paypal-nvp",
			MaxRequests: 3,
			Interval:    15 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
		}),
		endpoint:  endpoint,
		user:      cfg.User,
		password:  cfg.Password,
		signature: cfg.Signature,
	}
}

// call runs one NVP method. A transport failure, a non-parseable body or a
// non-success ACK all come back as *pkg.GatewayError carrying the raw
// response for diagnosis.
func (c *nvpClient) call(ctx context.Context, method string, params map[string]string) (url.Values, error) {
	form := url.Values{}
	form.Set("METHOD", method)
	form.Set("VERSION", nvpVersion)
	form.Set("USER", c.user)
	form.Set("PWD", c.password)
	form.Set("SIGNATURE", c.signature)
	for k, v := range params {
		form.Set(k, v)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(form.Encode()).
			Post(c.endpoint)
		if err != nil {
			return nil, err
		}
		return resp.Body(), nil
	})
	if err != nil {
		return nil, pkg.WrapGatewayError("nvp call "+method+" failed", err)
	}

	raw := body.([]byte)
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, &pkg.GatewayError{Message: "malformed nvp response for " + method, Raw: json.RawMessage(raw), Err: err}
	}

	switch values.Get("ACK") {
	case "Success", "SuccessWithWarning":
		return values, nil
	default:
		return nil, &pkg.GatewayError{
			Code:    values.Get("L_ERRORCODE0"),
			Message: nvpFailureMessage(values, method),
			Raw:     json.RawMessage(raw),
		}
	}
}

func nvpFailureMessage(values url.Values, method string) string {
	if msg := values.Get("L_LONGMESSAGE0"); msg != "" {
		return msg
	}
	if msg := values.Get("L_SHORTMESSAGE0"); msg != "" {
		return msg
	}
	return "nvp " + method + " reported " + values.Get("ACK")
}

// redirectURL builds the off-site approval URL for an express checkout token.
func redirectURL(environment Environment, token string) string {
	base := redirectSandboxBase
	if environment == EnvironmentProduction {
		base = redirectProductionBase
	}
	q := url.Values{}
	q.Set("cmd", "_express-checkout")
	q.Set("token", token)
	return base + "?" + q.Encode()
}
