package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the fulfillment lifecycle of an order.
//
// Domain notes:
//   - The vendor node is the source of truth for order state.
//   - PENDING orders arrive from the ONDC intake feed; the operator drives
//     them forward through the console.
//   - COMPLETED and CANCELLED are terminal: no edge leaves them.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// validNext encodes the legal status edges. Progression is strictly
// sequential, cancellation is reachable from every non-terminal state, and a
// self-transition is not a legal edge.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusPreparing: true, OrderStatusCancelled: true},
	OrderStatusPreparing: {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal status edge.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsValid reports whether s is one of the known lifecycle statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// RiderStatus describes where the assigned rider currently is.
type RiderStatus string

const (
	RiderStatusAssigned RiderStatus = "ASSIGNED"
	RiderStatusArrived  RiderStatus = "ARRIVED"
	RiderStatusWaiting  RiderStatus = "WAITING"
)

// OrderItem is a line of an order. Price and quantity are snapshotted at
// order time; they are historical facts, not live references to the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// RiderInfo is descriptive delivery metadata attached to an order. The
// lifecycle engine never mutates it.
type RiderInfo struct {
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	ArrivalTime int         `json:"arrival_time"` // minutes
	Status      RiderStatus `json:"status"`
}

// Order is the fulfillment record owned by the order ledger. Items reference
// products by id only; a product later going missing from the catalog must
// not invalidate the historical lines.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Rider        *RiderInfo  `json:"rider,omitempty"`
	RiderMessage string      `json:"rider_message,omitempty"` // e.g. "5 min delay"
}

// ShortRef derives the human-readable reference used in operator
// notifications: the second '-'-separated segment of the id, or the id
// itself when it has no '-'.
func (o Order) ShortRef() string {
	parts := strings.Split(o.ID, "-")
	if len(parts) < 2 {
		return o.ID
	}
	return parts[1]
}
