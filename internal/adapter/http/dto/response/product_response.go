package response

import "github.com/vanhub/vendor-node/internal/domain/entities"

type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Image    string  `json:"image,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Status:   string(p.Status),
		Image:    p.Image,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// AvailabilityResponse is the gating-rule readout for one product.
type AvailabilityResponse struct {
	ProductID string `json:"product_id"`
	CanOrder  bool   `json:"can_order"`
}
