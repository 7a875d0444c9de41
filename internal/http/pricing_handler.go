package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/guttosm/tour-service/internal/metrics"
	"github.com/guttosm/tour-service/internal/middleware"
	"github.com/guttosm/tour-service/internal/service"
)

// PricingHandler serves the price calculator.
type PricingHandler struct {
	calculator service.PricingCalculator
	defaults   service.PricingDefaults
	audit      middleware.LogSink
}

// NewPricingHandler creates a PricingHandler. audit may be nil.
func NewPricingHandler(calculator service.PricingCalculator, defaults service.PricingDefaults, audit middleware.LogSink) *PricingHandler {
	return &PricingHandler{calculator: calculator, defaults: defaults, audit: audit}
}

// Quote handles POST /api/v1/pricing/quote.
//
// @Summary      Price a tour quote
// @Description  Prices a package for a group size and margin. The sell price per person is rounded to the nearest 10, halves away from zero. Omitted group_size and margin_percent take the configured defaults; both must be JSON integers when present.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Quote inputs"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Priced quote"
// @Failure      400 {object} dto.ErrorResponse "Unparsable body or non-integer values"
// @Failure      404 {object} dto.ErrorResponse "Package not in catalog (invalid_package)"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)
	start := time.Now()

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		metrics.RecordQuote("", metrics.QuoteStatusInvalidRequest, time.Since(start))
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	groupSize, marginPercent := req.Resolve(h.defaults.GroupSize, h.defaults.MarginPercent)
	fields := map[string]interface{}{
		"package":        req.Package,
		"group_size":     groupSize,
		"margin_percent": marginPercent,
	}

	result, err := h.calculator.Calculate(req.Package, groupSize, marginPercent)
	switch {
	case errors.Is(err, catalog.ErrInvalidPackageSelection):
		metrics.RecordQuote(req.Package, metrics.QuoteStatusInvalidPackage, time.Since(start))
		middleware.AuditLogError(h.audit, c, middleware.ActionQuote, "Quote rejected", err, fields)
		builder.Error(http.StatusNotFound, dto.ErrCodeInvalidPackage, err.Error(), err)
		return
	case err != nil:
		builder.ErrorFromStatus(http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	metrics.RecordQuote(result.PackageName, metrics.QuoteStatusSuccess, time.Since(start))
	metrics.ObserveMargin(marginPercent)
	middleware.AuditLog(h.audit, c, middleware.ActionQuote, "Quote computed", fields)

	builder.SuccessOK(dto.NewQuoteResponse(result))
}

// Defaults handles GET /api/v1/pricing/defaults.
//
// @Summary      Calculator defaults
// @Description  Initial group size and margin, plus the ranges the calculator UI offers. The pricing endpoint does not enforce the ranges.
// @Tags         Pricing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=service.PricingDefaults}
// @Router       /api/v1/pricing/defaults [get]
func (h *PricingHandler) Defaults(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.defaults)
}
