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
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order lifecycle.
//
// Intake (POST) consults the gating rule per item before handing the order to
// the ledger; every other endpoint is a thin pass-through.

type OrderHandler struct {
	ledger  usecase.IOrderLedgerUseCase
	catalog usecase.ICatalogUseCase

	completedBaseline int
	avgPrepMinutes    int
}

func NewOrderHandler(ledger usecase.IOrderLedgerUseCase, catalog usecase.ICatalogUseCase, completedBaseline, avgPrepMinutes int) *OrderHandler {
	return &OrderHandler{
		ledger:            ledger,
		catalog:           catalog,
		completedBaseline: completedBaseline,
		avgPrepMinutes:    avgPrepMinutes,
	}
}

// ListActiveOrders returns non-terminal orders in intake order.
func (h *OrderHandler) ListActiveOrders(c *gin.Context) {
	orders := h.ledger.ListActive(c.Request.Context())
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CreateOrder ingests a feed order. Lines referencing a blocked or unknown
// product make the whole order inadmissible (422), before shape validation
// ever runs in the ledger.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order := payload.ToEntity()
	for _, item := range order.Items {
		if !usecase.CanOrder(c.Request.Context(), item.ProductID, h.catalog) {
			log.WithFields(log.Fields{"order_id": order.ID, "product_id": item.ProductID}).
				Info("[orders][handler] intake rejected by gating")
			appErr := pkg.NewDomainErrorSimple("ITEM_BLOCKED", "Item is blocked for new orders", http.StatusUnprocessableEntity)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.ledger.CreateOrder(c.Request.Context(), order)
	if err != nil {
		log.WithFields(log.Fields{"order_id": order.ID, "err": err}).
			Warn("[orders][handler] create failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// UpdateOrderStatus applies a status-transition action.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orderID := c.Param("id")
	updated, err := h.ledger.SetStatus(c.Request.Context(), orderID, payload.ResolveStatus())
	if err != nil {
		log.WithFields(log.Fields{"order_id": orderID, "status": payload.Status, "err": err}).
			Warn("[orders][handler] status change failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// UpdateRiderMessage sets (or clears, with an empty message) the rider note.
func (h *OrderHandler) UpdateRiderMessage(c *gin.Context) {
	var payload request.RiderMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orderID := c.Param("id")
	updated, err := h.ledger.SetRiderMessage(c.Request.Context(), orderID, payload.Message)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// GetStats returns the stats-panel numbers. The configured baseline covers
// orders completed before this session began.
func (h *OrderHandler) GetStats(c *gin.Context) {
	completed := h.ledger.CountCompleted(c.Request.Context())
	c.JSON(http.StatusOK, response.OrderStatsResponse{
		CompletedOrders: completed + h.completedBaseline,
		AvgPrepMinutes:  h.avgPrepMinutes,
	})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrEmptyOrderItems),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrTotalMismatch),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not permitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
