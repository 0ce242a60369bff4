package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	inventoryapp "github.com/phetoho/backend/internal/application/inventory"
)

// InventoryHandler handles admin inventory endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// UpdateStockRequest represents a request to set a product's stock level
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// RegisterRoutes mounts admin inventory routes on the given group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inv := rg.Group("/admin/inventory")
	{
		inv.GET("", h.List)
		inv.PUT("/:id/stock", h.UpdateStock)
		inv.GET("/alerts", h.Alerts)
		inv.GET("/statistics", h.Statistics)
	}
}

// List godoc
// @Summary      List inventory
// @Description  Returns all products with stock status
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=[]inventoryapp.InventoryItemResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// UpdateStock godoc
// @Summary      Update product stock
// @Description  Sets the stock level for a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Product ID"
// @Param        request body UpdateStockRequest true "New stock level"
// @Success      200 {object} dto.Response{data=inventoryapp.InventoryItemResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/inventory/{id}/stock [put]
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventoryService.UpdateStock(c.Request.Context(), uint(productID), *req.Stock)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Alerts godoc
// @Summary      Low stock alerts
// @Description  Returns products at or below their minimum stock level
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=[]inventoryapp.LowStockAlertResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *gin.Context) {
	alerts, err := h.inventoryService.LowStockAlerts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, alerts)
}

// Statistics godoc
// @Summary      Inventory statistics
// @Description  Aggregate stock counts and valuation
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=inventoryapp.StatisticsResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/inventory/statistics [get]
func (h *InventoryHandler) Statistics(c *gin.Context) {
	stats, err := h.inventoryService.Statistics(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
