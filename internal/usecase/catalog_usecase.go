package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vanhub/vendor-node/internal/domain/entities"
	"github.com/vanhub/vendor-node/internal/usecase/interfaces"
	"github.com/vanhub/vendor-node/pkg/metrics"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidStockStatus   = errors.New("unknown stock status")
)

// ICatalogUseCase exposes the product catalog operations.
//
// The catalog store is the only writer of product stock status. Any stock
// status is reachable from any other; marking OUT_OF_STOCK additionally
// emits the stock-blocked notification.

type ICatalogUseCase interface {
	AddProduct(ctx context.Context, product entities.Product) (entities.Product, error)
	SetStockStatus(ctx context.Context, productID string, newStatus entities.StockStatus) (entities.Product, error)
	Get(ctx context.Context, productID string) (entities.Product, error)
	List(ctx context.Context) []entities.Product
}

type CatalogUseCase struct {
	mu       sync.Mutex
	products map[string]*entities.Product
	sequence []string // catalog load order

	notifier interfaces.INotifier
	observer interfaces.ICommitObserver
	metrics  *metrics.ConsoleMetrics
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(notifier interfaces.INotifier, m *metrics.ConsoleMetrics) *CatalogUseCase {
	return &CatalogUseCase{
		products: make(map[string]*entities.Product),
		notifier: notifier,
		metrics:  m,
	}
}

// RegisterObserver attaches the commit observer. Wired once at startup.
func (c *CatalogUseCase) RegisterObserver(o interfaces.ICommitObserver) {
	c.observer = o
}

// AddProduct inserts a product at catalog load. Products are never deleted
// in-session.
func (c *CatalogUseCase) AddProduct(ctx context.Context, product entities.Product) (entities.Product, error) {
	product.ID = strings.TrimSpace(product.ID)
	if product.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if !product.Status.IsValid() {
		return entities.Product{}, ErrInvalidStockStatus
	}

	c.mu.Lock()
	if _, ok := c.products[product.ID]; ok {
		c.mu.Unlock()
		return entities.Product{}, ErrProductAlreadyExists
	}
	stored := product
	c.products[product.ID] = &stored
	c.sequence = append(c.sequence, product.ID)
	c.mu.Unlock()

	return product, nil
}

func (c *CatalogUseCase) SetStockStatus(ctx context.Context, productID string, newStatus entities.StockStatus) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if !newStatus.IsValid() {
		return entities.Product{}, ErrInvalidStockStatus
	}

	c.mu.Lock()
	product, ok := c.products[productID]
	if !ok {
		c.mu.Unlock()
		return entities.Product{}, ErrProductNotFound
	}
	product.Status = newStatus
	updated := *product
	c.mu.Unlock()

	log.WithFields(log.Fields{"product_id": productID, "status": newStatus}).
		Info("[catalog] stock status changed")

	if newStatus == entities.StockStatusOutOfStock {
		if c.metrics != nil {
			c.metrics.StockBlocked.Inc()
		}
		if c.notifier != nil {
			c.notifier.Show("Item blocked for new orders.")
		}
	}

	if c.observer != nil {
		c.observer.DataChanged(ctx)
	}
	return updated, nil
}

func (c *CatalogUseCase) Get(ctx context.Context, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.products[productID]
	if !ok {
		return entities.Product{}, ErrProductNotFound
	}
	return *product, nil
}

func (c *CatalogUseCase) List(ctx context.Context) []entities.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]entities.Product, 0, len(c.sequence))
	for _, id := range c.sequence {
		out = append(out, *c.products[id])
	}
	return out
}
