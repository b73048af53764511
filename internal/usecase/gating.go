package usecase

import (
	"context"

	"github.com/vanhub/vendor-node/internal/domain/entities"
)

// CanOrder decides whether a new order line referencing productID is
// admissible given the current catalog: false iff the product is unknown or
// OUT_OF_STOCK. LOW_STOCK is advisory and admits lines like IN_STOCK.
//
// Every order-intake path must consult this before CreateOrder. CreateOrder
// itself validates order shape only and never re-checks gating; the two rules
// are deliberately independent.
func CanOrder(ctx context.Context, productID string, catalog ICatalogUseCase) bool {
	product, err := catalog.Get(ctx, productID)
	if err != nil {
		return false
	}
	return product.Status != entities.StockStatusOutOfStock
}
