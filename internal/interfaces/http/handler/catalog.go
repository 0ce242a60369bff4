package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/phetoho/backend/internal/application/inventory"
)

// CatalogHandler serves the customer-facing product catalog
type CatalogHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(inventoryService *inventoryapp.InventoryService) *CatalogHandler {
	return &CatalogHandler{inventoryService: inventoryService}
}

// RegisterRoutes mounts catalog routes on the given group
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
}

// ListProducts godoc
// @Summary      List catalog products
// @Description  Returns all active products with availability
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]inventoryapp.CatalogProductResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.inventoryService.ListCatalog(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}
