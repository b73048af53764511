package entities

// StockStatus represents the operator-controlled availability of a product.
//
// OUT_OF_STOCK gates order intake network-wide for the product; LOW_STOCK is
// advisory only and admits new orders exactly like IN_STOCK.

type StockStatus string

const (
	StockStatusInStock    StockStatus = "IN_STOCK"
	StockStatusLowStock   StockStatus = "LOW_STOCK"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// IsValid reports whether s is one of the known stock statuses.
func (s StockStatus) IsValid() bool {
	switch s {
	case StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock:
		return true
	}
	return false
}

// Product is a catalog entry owned by the catalog store. Products are created
// at catalog load and never deleted in-session; only Status changes
// afterwards, through the stock-update operation.
type Product struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Price    float64     `json:"price"`
	Status   StockStatus `json:"status"`
	Image    string      `json:"image,omitempty"`
}
