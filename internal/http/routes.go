package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup registers a set of routes under the API group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// PricingRoutes mounts the calculator under /pricing.
type PricingRoutes struct {
	handler *PricingHandler
}

// NewPricingRoutes wraps h.
func NewPricingRoutes(h *PricingHandler) *PricingRoutes {
	return &PricingRoutes{handler: h}
}

func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	pricing := rg.Group("/pricing")
	pricing.POST("/quote", r.handler.Quote)
	pricing.GET("/defaults", r.handler.Defaults)
}

// CatalogRoutes mounts packages and the itinerary.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes wraps h.
func NewCatalogRoutes(h *CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: h}
}

func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	packages := rg.Group("/packages")
	packages.GET("", r.handler.ListPackages)
	packages.GET("/compare", r.handler.Compare)
	packages.GET("/:name", r.handler.GetPackage)

	rg.GET("/itinerary", r.handler.Itinerary)
}
