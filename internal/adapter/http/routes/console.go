package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanhub/vendor-node/internal/adapter/http/handlers"
)

const (
	PathOrders    = "/orders"
	PathInventory = "/inventory"
)

func addConsoleRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, inventoryHandler *handlers.InventoryHandler, consoleHandler *handlers.ConsoleHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListActiveOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/stats", orderHandler.GetStats)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.PATCH("/:id/rider-message", orderHandler.UpdateRiderMessage)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.GET("", inventoryHandler.ListInventory)
		inventory.GET("/:id", inventoryHandler.GetProduct)
		inventory.PATCH("/:id/stock", inventoryHandler.UpdateStockStatus)
		inventory.GET("/:id/availability", inventoryHandler.GetAvailability)
	}

	rg.PUT("/view", consoleHandler.SetView)
	rg.GET("/insights", consoleHandler.GetInsights)
	rg.GET("/notifications/active", consoleHandler.GetActiveNotification)
}

func addPingRoutes(rg *gin.RouterGroup, storeName string) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "store": storeName})
	})
}
