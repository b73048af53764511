package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	request "github.com/vanhub/vendor-node/internal/adapter/http/dto/request"
	response "github.com/vanhub/vendor-node/internal/adapter/http/dto/response"
	"github.com/vanhub/vendor-node/internal/usecase"
	"github.com/vanhub/vendor-node/pkg"
)

var (
	errInvalidStockPayload = pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock payload", http.StatusBadRequest)
)

// InventoryHandler handles HTTP requests for the product catalog.

type InventoryHandler struct {
	catalog usecase.ICatalogUseCase
}

func NewInventoryHandler(catalog usecase.ICatalogUseCase) *InventoryHandler {
	return &InventoryHandler{catalog: catalog}
}

// ListInventory returns the catalog in load order.
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	products := h.catalog.List(c.Request.Context())
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *InventoryHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// UpdateStockStatus applies the operator's stock-signaling action.
func (h *InventoryHandler) UpdateStockStatus(c *gin.Context) {
	var payload request.StockStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	productID := c.Param("id")
	updated, err := h.catalog.SetStockStatus(c.Request.Context(), productID, payload.ResolveStatus())
	if err != nil {
		log.WithFields(log.Fields{"product_id": productID, "status": payload.Status, "err": err}).
			Warn("[inventory][handler] stock change failed")
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(updated))
}

// GetAvailability is the gating-rule readout used by intake paths.
func (h *InventoryHandler) GetAvailability(c *gin.Context) {
	productID := c.Param("id")
	c.JSON(http.StatusOK, response.AvailabilityResponse{
		ProductID: productID,
		CanOrder:  usecase.CanOrder(c.Request.Context(), productID, h.catalog),
	})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidStockStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductAlreadyExists):
		return pkg.NewDomainErrorSimple("PRODUCT_ALREADY_EXISTS", "Product already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
