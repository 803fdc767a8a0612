package handlers

import (
	"errors"
	"net/http"

	request "leaseflow/internal/adapter/http/dto/request"
	"leaseflow/internal/domain/entities"
	"leaseflow/internal/usecase"
	"leaseflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for a contract's rent payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if payments == nil {
		payments = []entities.ContractPayment{}
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment godoc
//
//	@Summary	Record a rent installment
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Contract ID"
//	@Param		payment	body		request.RecordPaymentRequest	true	"Payment"
//	@Success	201		{object}	entities.ContractPayment
//	@Router		/v1/contracts/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Record(c.Request.Context(), c.Param("id"), usecase.RecordPaymentInput{
		Amount:         payload.Amount,
		DueDate:        payload.DueDate,
		Method:         payload.Method,
		Reference:      payload.Reference,
		GatewayPayload: payload.GatewayPayload,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in := usecase.UpdatePaymentInput{
		PaidDate:  payload.PaidDate,
		Reference: payload.Reference,
	}
	if payload.Status != nil {
		status := entities.PaymentStatus(*payload.Status)
		in.Status = &status
	}

	payment, err := h.usecase.Update(c.Request.Context(), c.Param("id"), c.Param("paymentId"), in)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, payment)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotActive):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_ACTIVE", "Payments can only be recorded on an active contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadySettled):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_SETTLED", "A settled payment cannot change status", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentDueDate),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidGatewayPayload),
		errors.Is(err, usecase.ErrPaymentOutsideAgreement):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
