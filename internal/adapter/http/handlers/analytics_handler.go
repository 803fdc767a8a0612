package handlers

import (
	"net/http"
	"time"

	"leaseflow/internal/usecase"
	"leaseflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAnalyticsRange = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "dateFrom/dateTo must be RFC 3339 timestamps", http.StatusBadRequest)
)

// AnalyticsHandler serves the portfolio dashboard numbers.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// PortfolioAnalytics godoc
//
//	@Summary	Portfolio aggregates
//	@Tags		analytics
//	@Produce	json
//	@Param		dateFrom	query		string	false	"Only contracts created at/after (RFC 3339)"
//	@Param		dateTo		query		string	false	"Only contracts created at/before (RFC 3339)"
//	@Success	200			{object}	entities.PortfolioAnalytics
//	@Router		/v1/contracts/analytics [get]
func (h *AnalyticsHandler) PortfolioAnalytics(c *gin.Context) {
	dateFrom, ok := parseOptionalTime(c.Query("dateFrom"))
	if !ok {
		c.JSON(errInvalidAnalyticsRange.HTTPStatus, errInvalidAnalyticsRange.ToHTTPError())
		return
	}
	dateTo, ok := parseOptionalTime(c.Query("dateTo"))
	if !ok {
		c.JSON(errInvalidAnalyticsRange.HTTPStatus, errInvalidAnalyticsRange.ToHTTPError())
		return
	}

	analytics, err := h.usecase.Portfolio(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func parseOptionalTime(v string) (*time.Time, bool) {
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil, false
	}
	return &t, true
}
