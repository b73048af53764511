package request

import (
	"strings"

	"github.com/vanhub/vendor-node/internal/domain/entities"
)

// OrderStatusRequest carries the operator's status-change action.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// RiderMessageRequest carries the free-text note to the rider. An empty
// message clears the note, so no required binding here.
type RiderMessageRequest struct {
	Message string `json:"message"`
}

// StockStatusRequest carries the operator's stock-signaling action.
type StockStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StockStatusRequest) ResolveStatus() entities.StockStatus {
	return entities.StockStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// ViewRequest tells the engine which console surface is active.
type ViewRequest struct {
	Tab string `json:"tab" binding:"required"`
}

func (r ViewRequest) ResolveTab() entities.Tab {
	return entities.Tab(strings.ToUpper(strings.TrimSpace(r.Tab)))
}
