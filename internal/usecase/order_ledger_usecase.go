package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vanhub/vendor-node/internal/domain/entities"
	"github.com/vanhub/vendor-node/internal/usecase/interfaces"
	"github.com/vanhub/vendor-node/pkg/metrics"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrEmptyOrderItems    = errors.New("order has no items")
	ErrInvalidQuantity    = errors.New("order item quantity must be positive")
	ErrInvalidPrice       = errors.New("order item price must be non-negative")
	ErrTotalMismatch      = errors.New("total amount does not match item subtotals")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrIllegalTransition  = errors.New("illegal status transition")
)

// totalEpsilon is the tolerance for comparing TotalAmount against the sum of
// item subtotals.
const totalEpsilon = 1e-6

// IOrderLedgerUseCase exposes the order lifecycle operations.
//
// The ledger is the only writer of order status. Orders are never removed;
// terminal orders stay for history and stats.

type IOrderLedgerUseCase interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	SetStatus(ctx context.Context, orderID string, newStatus entities.OrderStatus) (entities.Order, error)
	SetRiderMessage(ctx context.Context, orderID, message string) (entities.Order, error)
	List(ctx context.Context) []entities.Order
	ListActive(ctx context.Context) []entities.Order
	CountCompleted(ctx context.Context) int
}

type OrderLedgerUseCase struct {
	mu       sync.Mutex
	orders   map[string]*entities.Order
	sequence []string // insertion order

	notifier interfaces.INotifier
	observer interfaces.ICommitObserver
	metrics  *metrics.ConsoleMetrics
}

var _ IOrderLedgerUseCase = (*OrderLedgerUseCase)(nil)

func NewOrderLedgerUseCase(notifier interfaces.INotifier, m *metrics.ConsoleMetrics) *OrderLedgerUseCase {
	return &OrderLedgerUseCase{
		orders:   make(map[string]*entities.Order),
		notifier: notifier,
		metrics:  m,
	}
}

// RegisterObserver attaches the commit observer. Wired once at startup,
// before the ledger receives traffic.
func (l *OrderLedgerUseCase) RegisterObserver(o interfaces.ICommitObserver) {
	l.observer = o
}

func (l *OrderLedgerUseCase) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	order.ID = strings.TrimSpace(order.ID)
	if order.ID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if len(order.Items) == 0 {
		return entities.Order{}, ErrEmptyOrderItems
	}

	subtotal := 0.0
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return entities.Order{}, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return entities.Order{}, ErrInvalidPrice
		}
		subtotal += item.Price * float64(item.Quantity)
	}
	if math.Abs(order.TotalAmount-subtotal) > totalEpsilon {
		return entities.Order{}, ErrTotalMismatch
	}

	order.Status = entities.OrderStatusPending

	l.mu.Lock()
	if _, ok := l.orders[order.ID]; ok {
		l.mu.Unlock()
		return entities.Order{}, ErrOrderAlreadyExists
	}
	stored := order
	l.orders[order.ID] = &stored
	l.sequence = append(l.sequence, order.ID)
	l.mu.Unlock()

	log.WithFields(log.Fields{"order_id": order.ID, "items": len(order.Items)}).
		Info("[ledger] order created")

	l.commit(ctx)
	return order, nil
}

func (l *OrderLedgerUseCase) SetStatus(ctx context.Context, orderID string, newStatus entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !newStatus.IsValid() {
		return entities.Order{}, ErrInvalidStatus
	}

	l.mu.Lock()
	order, ok := l.orders[orderID]
	if !ok {
		l.mu.Unlock()
		return entities.Order{}, ErrOrderNotFound
	}
	if !entities.CanTransition(order.Status, newStatus) {
		from := order.Status
		l.mu.Unlock()
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, newStatus)
	}
	order.Status = newStatus
	updated := *order
	l.mu.Unlock()

	log.WithFields(log.Fields{"order_id": orderID, "status": newStatus}).
		Info("[ledger] status changed")

	switch newStatus {
	case entities.OrderStatusCompleted:
		if l.metrics != nil {
			l.metrics.OrdersCompleted.Inc()
		}
		l.notify(fmt.Sprintf("Order #%s Completed!", updated.ShortRef()))
	case entities.OrderStatusCancelled:
		if l.metrics != nil {
			l.metrics.OrdersCancelled.Inc()
		}
	}

	l.commit(ctx)
	return updated, nil
}

func (l *OrderLedgerUseCase) SetRiderMessage(ctx context.Context, orderID, message string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	l.mu.Lock()
	order, ok := l.orders[orderID]
	if !ok {
		l.mu.Unlock()
		return entities.Order{}, ErrOrderNotFound
	}
	// Empty message clears the note.
	order.RiderMessage = message
	updated := *order
	l.mu.Unlock()

	l.notify(fmt.Sprintf("Signal sent to Rider: %q", message))

	l.commit(ctx)
	return updated, nil
}

func (l *OrderLedgerUseCase) List(ctx context.Context) []entities.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entities.Order, 0, len(l.sequence))
	for _, id := range l.sequence {
		out = append(out, *l.orders[id])
	}
	return out
}

func (l *OrderLedgerUseCase) ListActive(ctx context.Context) []entities.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entities.Order, 0, len(l.sequence))
	for _, id := range l.sequence {
		o := l.orders[id]
		if o.Status.IsTerminal() {
			continue
		}
		out = append(out, *o)
	}
	return out
}

func (l *OrderLedgerUseCase) CountCompleted(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, o := range l.orders {
		if o.Status == entities.OrderStatusCompleted {
			count++
		}
	}
	return count
}

func (l *OrderLedgerUseCase) notify(message string) {
	if l.notifier == nil {
		return
	}
	l.notifier.Show(message)
}

func (l *OrderLedgerUseCase) commit(ctx context.Context) {
	if l.observer == nil {
		return
	}
	l.observer.DataChanged(ctx)
}
