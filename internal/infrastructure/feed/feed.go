// Package feed plays the order-intake collaborator for demo sessions: it
// loads the starter catalog and a handful of pending orders into the engine
// at startup, the same shape of data a live ONDC feed would deliver.
package feed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vanhub/vendor-node/internal/domain/entities"
	"github.com/vanhub/vendor-node/internal/usecase"
)

var starterCatalog = []entities.Product{
	{Name: "Organic Tomatoes", Category: "Vegetables", Price: 40, Status: entities.StockStatusInStock},
	{Name: "Basmati Rice 1kg", Category: "Staples", Price: 120, Status: entities.StockStatusInStock},
	{Name: "Toned Milk 500ml", Category: "Dairy", Price: 27, Status: entities.StockStatusLowStock},
	{Name: "Paneer 200g", Category: "Dairy", Price: 90, Status: entities.StockStatusInStock},
	{Name: "Alphonso Mangoes", Category: "Fruits", Price: 250, Status: entities.StockStatusOutOfStock},
	{Name: "Whole Wheat Atta 5kg", Category: "Staples", Price: 240, Status: entities.StockStatusInStock},
}

// Seed loads the starter catalog and orders. Intake honors the gating rule
// per line: an order touching a blocked product is skipped, exactly as the
// network would refuse it.
func Seed(ctx context.Context, ledger usecase.IOrderLedgerUseCase, catalog usecase.ICatalogUseCase) error {
	products := make([]entities.Product, 0, len(starterCatalog))
	for _, p := range starterCatalog {
		p.ID = "prod-" + uuid.NewString()[:8]
		created, err := catalog.AddProduct(ctx, p)
		if err != nil {
			return errors.Wrapf(err, "seeding product %q", p.Name)
		}
		products = append(products, created)
	}

	orders := starterOrders(products)
	seeded := 0
	for _, o := range orders {
		admissible := true
		for _, item := range o.Items {
			if !usecase.CanOrder(ctx, item.ProductID, catalog) {
				admissible = false
				break
			}
		}
		if !admissible {
			log.WithField("order_id", o.ID).Info("[feed] order skipped by gating")
			continue
		}
		if _, err := ledger.CreateOrder(ctx, o); err != nil {
			return errors.Wrapf(err, "seeding order %s", o.ID)
		}
		seeded++
	}

	log.WithFields(log.Fields{"products": len(products), "orders": seeded}).
		Info("[feed] demo data loaded")
	return nil
}

func starterOrders(products []entities.Product) []entities.Order {
	if len(products) < 4 {
		return nil
	}

	now := time.Now()
	newID := func() string { return "ord-" + uuid.NewString()[:8] }

	tomatoes, rice, milk, paneer := products[0], products[1], products[2], products[3]

	return []entities.Order{
		{
			ID:           newID(),
			CustomerName: "Asha Nair",
			Items: []entities.OrderItem{
				{ProductID: tomatoes.ID, Name: tomatoes.Name, Quantity: 2, Price: tomatoes.Price},
				{ProductID: rice.ID, Name: rice.Name, Quantity: 1, Price: rice.Price},
			},
			TotalAmount: tomatoes.Price*2 + rice.Price,
			CreatedAt:   now.Add(-12 * time.Minute),
			Rider: &entities.RiderInfo{
				Name:        "Suresh K",
				Phone:       "+91 98450 11223",
				ArrivalTime: 6,
				Status:      entities.RiderStatusAssigned,
			},
		},
		{
			ID:           newID(),
			CustomerName: "Ravi Menon",
			Items: []entities.OrderItem{
				{ProductID: milk.ID, Name: milk.Name, Quantity: 4, Price: milk.Price},
			},
			TotalAmount: milk.Price * 4,
			CreatedAt:   now.Add(-7 * time.Minute),
		},
		{
			ID:           newID(),
			CustomerName: "Divya Pillai",
			Items: []entities.OrderItem{
				{ProductID: paneer.ID, Name: paneer.Name, Quantity: 1, Price: paneer.Price},
				{ProductID: milk.ID, Name: milk.Name, Quantity: 2, Price: milk.Price},
			},
			TotalAmount: paneer.Price + milk.Price*2,
			CreatedAt:   now.Add(-2 * time.Minute),
			Rider: &entities.RiderInfo{
				Name:        "Imran S",
				Phone:       "+91 99001 44556",
				ArrivalTime: 11,
				Status:      entities.RiderStatusWaiting,
			},
		},
	}
}
