package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payflow/internal/adapter/http/dto/request"
	response "payflow/internal/adapter/http/dto/response"
	"payflow/internal/usecase"
	"payflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentsHandler handles HTTP requests for payment transactions. It is the
// "caller" side of the facade: it builds transactions from request payloads,
// persists them across the redirect round trip via the use case and maps the
// error taxonomy onto HTTP statuses.

type PaymentsHandler struct {
	usecase usecase.IPaymentsUseCase
}

func NewPaymentsHandler(uc usecase.IPaymentsUseCase) *PaymentsHandler {
	return &PaymentsHandler{usecase: uc}
}

// SetupRedirect begins a redirect-flow payment. The response carries the
// gateway token and the URL to send the payer to.
func (h *PaymentsHandler) SetupRedirect(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	trans, err := h.usecase.SetupRedirect(c.Request.Context(), payload.ToTransaction())
	if err != nil {
		log.Printf("[payment][handler] setup-redirect failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] setup-redirect success id=%s token=%s", trans.ID, trans.Token)

	c.JSON(http.StatusCreated, response.FromTransaction(trans))
}

// CreatePayment authorises a non-redirect (direct) payment in one step.
func (h *PaymentsHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	trans, err := h.usecase.Authorise(c.Request.Context(), payload.ToTransaction())
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success id=%s authorised=%t", trans.ID, trans.Authorised)

	c.JSON(http.StatusCreated, response.FromTransaction(trans))
}

// Authorise completes the redirect flow for a stored transaction using the
// payer identifier brought back from the processor.
func (h *PaymentsHandler) Authorise(c *gin.Context) {
	id := c.Param("id")

	var payload request.AuthoriseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	trans, err := h.usecase.AuthoriseByID(c.Request.Context(), id, payload.ResolvePayerID())
	if err != nil {
		log.Printf("[payment][handler] authorise failed id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] authorise success id=%s provider_transaction_id=%s", trans.ID, trans.ProviderTransactionID)

	c.JSON(http.StatusOK, response.FromTransaction(trans))
}

// GetPayment returns the stored transaction.
func (h *PaymentsHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	trans, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(trans))
}

// GetPaymentDetails re-reads the transaction from the processor before
// returning it.
func (h *PaymentsHandler) GetPaymentDetails(c *gin.Context) {
	id := c.Param("id")

	trans, err := h.usecase.RefreshDetails(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] details failed id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(trans))
}

func mapPaymentError(err error) *pkg.AppError {
	var ve *pkg.ValidationError
	var ge *pkg.GatewayError

	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("PAYMENT_VALIDATION_FAILED", ve.Reason, err, http.StatusUnprocessableEntity)
	case errors.As(err, &ge):
		return pkg.NewDomainError("PAYMENT_GATEWAY_FAILED", "The payment processor rejected or failed the transaction", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidPayerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
