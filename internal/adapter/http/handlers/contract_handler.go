package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "leaseflow/internal/adapter/http/dto/request"
	response "leaseflow/internal/adapter/http/dto/response"
	"leaseflow/internal/domain/entities"
	"leaseflow/internal/domain/lifecycle"
	"leaseflow/internal/infrastructure/validation"
	"leaseflow/internal/usecase"
	"leaseflow/internal/usecase/interfaces"
	"leaseflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler handles HTTP requests for the contract aggregate and its
// lifecycle actions.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract godoc
//
//	@Summary	Create a draft contract
//	@Tags		contracts
//	@Accept		json
//	@Produce	json
//	@Param		contract	body		request.CreateContractRequest	true	"Contract"
//	@Success	201			{object}	response.ContractResponse
//	@Router		/v1/contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateContractInput{
		PropertyID:   payload.PropertyID,
		TemplateID:   payload.TemplateID,
		Tenant:       payload.Tenant.ToEntity(),
		Hoster:       payload.Hoster.ToEntity(),
		Guarantors:   request.ToEntityGuarantors(payload.Guarantors),
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Terms:        payload.Terms.ToEntity(),
		Clauses:      payload.Clauses,
		CustomFields: payload.CustomFields,
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(created, time.Now().UTC()))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract, time.Now().UTC()))
}

func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var payload request.UpdateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	in := usecase.UpdateContractInput{
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Terms:        payload.Terms.ToEntity(),
		Clauses:      payload.Clauses,
		CustomFields: payload.CustomFields,
	}
	if payload.Guarantors != nil {
		gs := request.ToEntityGuarantors(*payload.Guarantors)
		in.Guarantors = &gs
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(updated, time.Now().UTC()))
}

func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchContracts godoc
//
//	@Summary	Paginated contract search
//	@Tags		contracts
//	@Produce	json
//	@Param		page		query		int		false	"Page (1-based)"
//	@Param		limit		query		int		false	"Page size"
//	@Param		sortBy		query		string	false	"createdAt|startDate|endDate|rentAmount"
//	@Param		sortOrder	query		string	false	"asc|desc"
//	@Param		status		query		string	false	"Status filter"
//	@Param		propertyId	query		string	false	"Property filter"
//	@Param		tenantId	query		string	false	"Tenant filter"
//	@Success	200			{object}	response.SearchContractsResponse
//	@Router		/v1/contracts [get]
func (h *ContractHandler) SearchContracts(c *gin.Context) {
	q := interfaces.ContractQuery{
		Status:     entities.ContractStatus(c.Query("status")),
		PropertyID: c.Query("propertyId"),
		TenantID:   c.Query("tenantId"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.usecase.Search(c.Request.Context(), q)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SearchContractsResponse{
		Contracts: response.FromContracts(result.Contracts, time.Now().UTC()),
		Total:     result.Total,
		Page:      result.Page,
		Limit:     result.Limit,
	})
}

func (h *ContractHandler) SendForSignatures(c *gin.Context) {
	h.applyLifecycleAction(c, func() (entities.Contract, error) {
		return h.usecase.SendForSignatures(c.Request.Context(), c.Param("id"))
	})
}

func (h *ContractHandler) SignContract(c *gin.Context) {
	var payload request.SignContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	h.applyLifecycleAction(c, func() (entities.Contract, error) {
		return h.usecase.Sign(c.Request.Context(), c.Param("id"),
			lifecycle.SignatureType(payload.SignatureType), payload.GuarantorID, payload.Signature)
	})
}

func (h *ContractHandler) ActivateContract(c *gin.Context) {
	h.applyLifecycleAction(c, func() (entities.Contract, error) {
		return h.usecase.Activate(c.Request.Context(), c.Param("id"))
	})
}

func (h *ContractHandler) TerminateContract(c *gin.Context) {
	var payload request.TerminateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	h.applyLifecycleAction(c, func() (entities.Contract, error) {
		return h.usecase.Terminate(c.Request.Context(), c.Param("id"), payload.Reason)
	})
}

func (h *ContractHandler) RenewContract(c *gin.Context) {
	var payload request.RenewContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	h.applyLifecycleAction(c, func() (entities.Contract, error) {
		return h.usecase.Renew(c.Request.Context(), c.Param("id"), payload.NewEndDate, payload.NewTerms.ToEntity())
	})
}

func (h *ContractHandler) CancelContract(c *gin.Context) {
	h.applyLifecycleAction(c, func() (entities.Contract, error) {
		return h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	})
}

func (h *ContractHandler) applyLifecycleAction(c *gin.Context, apply func() (entities.Contract, error)) {
	contract, err := apply()
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract, time.Now().UTC()))
}

func (h *ContractHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ContractHandler) ListTemplates(c *gin.Context) {
	templates, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *ContractHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.usecase.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// ValidateContract checks a raw create payload against the JSON schema and
// always answers 200 with {valid, errors[]}; only a malformed body is a 400.
func (h *ContractHandler) ValidateContract(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	result, err := validation.ValidateCreateContract(raw)
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, lifecycle.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "This party has already signed", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrUnknownGuarantor),
		errors.Is(err, lifecycle.ErrUnknownSignatureType),
		errors.Is(err, lifecycle.ErrTerminationReasonRequired),
		errors.Is(err, lifecycle.ErrRenewalEndDateNotExtending):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidRentAmount),
		errors.Is(err, usecase.ErrInvalidDepositAmount),
		errors.Is(err, usecase.ErrInvalidPaymentFrequency),
		errors.Is(err, usecase.ErrInvalidPaymentDueDay),
		errors.Is(err, usecase.ErrInvalidMaintenance),
		errors.Is(err, usecase.ErrMissingParty),
		errors.Is(err, usecase.ErrMissingGuarantorID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotEditable),
		errors.Is(err, usecase.ErrContractNotDeletable):
		return pkg.NewDomainError("CONTRACT_STATE_CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
