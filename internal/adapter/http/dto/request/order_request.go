package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vanhub/vendor-node/internal/domain/entities"
)

type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type RiderInfoRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	ArrivalTime int    `json:"arrival_time"`
	Status      string `json:"status"`
}

// CreateOrderRequest is the intake payload delivered by the order feed. The
// id is optional; a fresh one is minted when the feed did not assign any.
type CreateOrderRequest struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customer_name" binding:"required"`
	Items        []OrderItemRequest `json:"items"`
	TotalAmount  float64            `json:"total_amount"`
	Rider        *RiderInfoRequest  `json:"rider"`
}

func (r CreateOrderRequest) ResolveID() string {
	if v := strings.TrimSpace(r.ID); v != "" {
		return v
	}
	return "ord-" + uuid.NewString()[:8]
}

func (r CreateOrderRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order := entities.Order{
		ID:           r.ResolveID(),
		CustomerName: r.CustomerName,
		Items:        items,
		TotalAmount:  r.TotalAmount,
		CreatedAt:    time.Now().UTC(),
	}
	if r.Rider != nil {
		order.Rider = &entities.RiderInfo{
			Name:        r.Rider.Name,
			Phone:       r.Rider.Phone,
			ArrivalTime: r.Rider.ArrivalTime,
			Status:      entities.RiderStatus(r.Rider.Status),
		}
	}
	return order
}
