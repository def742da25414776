package pkg

import (
	"encoding/json"
	"fmt"
)

// AppError is the HTTP-facing error envelope returned by handlers.

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError is the JSON body written to the client.
func (e *AppError) ToHTTPError() map[string]string {
	return map[string]string{
		"code":    e.Code,
		"message": e.Message,
	}
}

// ConfigurationError reports a misconfigured deployment: an unknown gateway
// key or a gateway-specific field missing/invalid. It is raised only during
// initialization and is fatal to startup, never raised mid-transaction.

type ConfigurationError struct {
	Key    string
	Reason string
}

func NewConfigurationError(key, reason string) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("payments configuration error: %s: %s", e.Key, e.Reason)
}

// ValidationError reports a transaction that failed generic validation, or a
// gateway asked to run an operation on a transaction type it does not support.
// Recoverable by the caller; never wraps a processor failure.

type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payment validation error: %s", e.Reason)
}

// GatewayError reports a failure from the underlying processor: a declined
// payment, a malformed processor response, or a transport failure. Raw keeps
// the processor response for diagnosis. Not retried.

type GatewayError struct {
	Code    string
	Message string
	Raw     json.RawMessage
	Err     error
}

func NewGatewayError(code, message string, raw json.RawMessage) *GatewayError {
	return &GatewayError{Code: code, Message: message, Raw: raw}
}

func WrapGatewayError(message string, err error) *GatewayError {
	return &GatewayError{Message: message, Err: err}
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway error: %s: %v", e.Message, e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("payment gateway error: %s (code %s)", e.Message, e.Code)
	}
	return fmt.Sprintf("payment gateway error: %s", e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }
