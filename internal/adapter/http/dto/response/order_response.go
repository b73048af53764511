package response

import (
	"time"

	"github.com/vanhub/vendor-node/internal/domain/entities"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type RiderInfoResponse struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ArrivalTime int    `json:"arrival_time"`
	Status      string `json:"status"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  float64             `json:"total_amount"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	Rider        *RiderInfoResponse  `json:"rider,omitempty"`
	RiderMessage string              `json:"rider_message,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	resp := OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Items:        items,
		TotalAmount:  o.TotalAmount,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		RiderMessage: o.RiderMessage,
	}
	if o.Rider != nil {
		resp.Rider = &RiderInfoResponse{
			Name:        o.Rider.Name,
			Phone:       o.Rider.Phone,
			ArrivalTime: o.Rider.ArrivalTime,
			Status:      string(o.Rider.Status),
		}
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderStatsResponse struct {
	CompletedOrders int `json:"completed_orders"`
	AvgPrepMinutes  int `json:"avg_prep_minutes"`
}
