package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/guttosm/tour-service/internal/middleware"
	"github.com/guttosm/tour-service/internal/service"
)

// CatalogHandler serves the read-only tour content.
type CatalogHandler struct {
	catalog       *catalog.Catalog
	comparison    service.ComparisonService
	itinerary     []model.ItineraryDay
	defaultMargin int
	audit         middleware.LogSink
}

// NewCatalogHandler creates a CatalogHandler. audit may be nil.
func NewCatalogHandler(c *catalog.Catalog, comparison service.ComparisonService, itinerary []model.ItineraryDay, defaultMargin int, audit middleware.LogSink) *CatalogHandler {
	return &CatalogHandler{
		catalog:       c,
		comparison:    comparison,
		itinerary:     itinerary,
		defaultMargin: defaultMargin,
		audit:         audit,
	}
}

// ListPackages handles GET /api/v1/packages.
//
// @Summary      List tour packages
// @Tags         Packages
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.PackageResponse}
// @Router       /api/v1/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewPackageResponses(h.catalog.Packages()))
}

// GetPackage handles GET /api/v1/packages/:name.
//
// @Summary      Get a tour package
// @Description  Looks a package up by exact, case-sensitive name.
// @Tags         Packages
// @Produce      json
// @Param        name path string true "Package name" example(Budget)
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageResponse}
// @Failure      404 {object} dto.ErrorResponse "Package not in catalog (invalid_package)"
// @Router       /api/v1/packages/{name} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	pkg, err := h.catalog.Lookup(c.Param("name"))
	if err != nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeInvalidPackage, err.Error(), nil)
		return
	}
	builder.SuccessOK(dto.NewPackageResponse(pkg))
}

// Compare handles GET /api/v1/packages/compare.
//
// @Summary      Compare packages
// @Description  Prices every package for its base group size at the given margin.
// @Tags         Packages
// @Produce      json
// @Param        margin query int false "Margin percent (defaults to the configured margin)"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ComparisonRowResponse}
// @Failure      400 {object} dto.ErrorResponse "margin is not an integer"
// @Router       /api/v1/packages/compare [get]
func (h *CatalogHandler) Compare(c *gin.Context) {
	builder := NewResponseBuilder(c)

	margin := h.defaultMargin
	if raw, ok := c.GetQuery("margin"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, "margin: must be an integer", err)
			return
		}
		margin = parsed
	}

	middleware.AuditLog(h.audit, c, middleware.ActionCompare, "Comparison requested", map[string]interface{}{
		"margin_percent": margin,
	})
	builder.SuccessOK(dto.NewComparisonResponse(h.comparison.Compare(margin)))
}

// Itinerary handles GET /api/v1/itinerary.
//
// @Summary      Tour itinerary
// @Tags         Itinerary
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.ItineraryDay}
// @Router       /api/v1/itinerary [get]
func (h *CatalogHandler) Itinerary(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.itinerary)
}
