package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vanhub/vendor-node/internal/domain/entities"
	mock_interfaces "github.com/vanhub/vendor-node/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrder(id string) entities.Order {
	return entities.Order{
		ID:           id,
		CustomerName: "Asha",
		Items: []entities.OrderItem{
			{ProductID: "p-1", Name: "Organic Tomatoes", Quantity: 2, Price: 40},
			{ProductID: "p-2", Name: "Basmati Rice 1kg", Quantity: 1, Price: 120},
		},
		TotalAmount: 200,
		CreatedAt:   time.Now(),
	}
}

func TestOrderLedgerUseCase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		o := validOrder("   ")
		if _, err := ledger.CreateOrder(ctx, o); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		o := validOrder("ord-1")
		o.Items = nil
		if _, err := ledger.CreateOrder(ctx, o); !errors.Is(err, ErrEmptyOrderItems) {
			t.Fatalf("expected ErrEmptyOrderItems, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		o := validOrder("ord-1")
		o.Items[0].Quantity = 0
		if _, err := ledger.CreateOrder(ctx, o); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		o := validOrder("ord-1")
		o.Items[1].Price = -1
		if _, err := ledger.CreateOrder(ctx, o); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("total mismatch leaves ledger unchanged", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		o := validOrder("ord-1")
		o.TotalAmount = 199
		if _, err := ledger.CreateOrder(ctx, o); !errors.Is(err, ErrTotalMismatch) {
			t.Fatalf("expected ErrTotalMismatch, got %v", err)
		}
		if got := len(ledger.List(ctx)); got != 0 {
			t.Fatalf("expected empty ledger, got %d orders", got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); !errors.Is(err, ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("success inserts as pending", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		o := validOrder("ord-1")
		o.Status = entities.OrderStatusReady // intake must not pick the status

		created, err := ledger.CreateOrder(ctx, o)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.Status != entities.OrderStatusPending {
			t.Fatalf("expected PENDING, got %s", created.Status)
		}
	})

	t.Run("create notifies commit observer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		observer := mock_interfaces.NewMockICommitObserver(ctrl)
		observer.EXPECT().DataChanged(gomock.Any())

		ledger := NewOrderLedgerUseCase(nil, nil)
		ledger.RegisterObserver(observer)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	})
}

func TestOrderLedgerUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown order", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.SetStatus(ctx, "missing", entities.OrderStatusPreparing); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.SetStatus(ctx, "ord-1", entities.OrderStatus("SHIPPED")); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("sequential progression", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		for _, next := range []entities.OrderStatus{
			entities.OrderStatusPreparing,
			entities.OrderStatusReady,
		} {
			updated, err := ledger.SetStatus(ctx, "ord-1", next)
			if err != nil {
				t.Fatalf("transition to %s failed: %v", next, err)
			}
			if updated.Status != next {
				t.Fatalf("expected %s, got %s", next, updated.Status)
			}
		}
	})

	t.Run("skipping a step is illegal and leaves status unchanged", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if _, err := ledger.SetStatus(ctx, "ord-1", entities.OrderStatusReady); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
		if got := ledger.ListActive(ctx)[0].Status; got != entities.OrderStatusPending {
			t.Fatalf("status changed on failed transition: %s", got)
		}
	})

	t.Run("self transition is illegal", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := ledger.SetStatus(ctx, "ord-1", entities.OrderStatusPending); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("cancel from any non-terminal state", func(t *testing.T) {
		steps := map[string][]entities.OrderStatus{
			"ord-a": {},
			"ord-b": {entities.OrderStatusPreparing},
			"ord-c": {entities.OrderStatusPreparing, entities.OrderStatusReady},
		}
		ledger := NewOrderLedgerUseCase(nil, nil)
		for id, path := range steps {
			if _, err := ledger.CreateOrder(ctx, validOrder(id)); err != nil {
				t.Fatalf("create %s failed: %v", id, err)
			}
			for _, st := range path {
				if _, err := ledger.SetStatus(ctx, id, st); err != nil {
					t.Fatalf("advance %s to %s failed: %v", id, st, err)
				}
			}
			if _, err := ledger.SetStatus(ctx, id, entities.OrderStatusCancelled); err != nil {
				t.Fatalf("cancel %s failed: %v", id, err)
			}
		}
	})

	t.Run("terminal states admit no edges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Show(gomock.Any())

		ledger := NewOrderLedgerUseCase(notifier, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		for _, st := range []entities.OrderStatus{
			entities.OrderStatusPreparing,
			entities.OrderStatusReady,
			entities.OrderStatusCompleted,
		} {
			if _, err := ledger.SetStatus(ctx, "ord-1", st); err != nil {
				t.Fatalf("advance to %s failed: %v", st, err)
			}
		}

		for _, st := range []entities.OrderStatus{
			entities.OrderStatusPending,
			entities.OrderStatusPreparing,
			entities.OrderStatusReady,
			entities.OrderStatusCancelled,
		} {
			if _, err := ledger.SetStatus(ctx, "ord-1", st); !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected ErrIllegalTransition to %s, got %v", st, err)
			}
		}
		if got := ledger.CountCompleted(ctx); got != 1 {
			t.Fatalf("expected 1 completed, got %d", got)
		}
	})

	t.Run("completion emits notification with short ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Show("Order #1042 Completed!")

		ledger := NewOrderLedgerUseCase(notifier, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1042")); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		before := ledger.CountCompleted(ctx)
		for _, st := range []entities.OrderStatus{
			entities.OrderStatusPreparing,
			entities.OrderStatusReady,
			entities.OrderStatusCompleted,
		} {
			if _, err := ledger.SetStatus(ctx, "ord-1042", st); err != nil {
				t.Fatalf("advance to %s failed: %v", st, err)
			}
		}
		if got := ledger.CountCompleted(ctx); got != before+1 {
			t.Fatalf("expected completed count %d, got %d", before+1, got)
		}
	})
}

func TestOrderLedgerUseCase_SetRiderMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown order", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		if _, err := ledger.SetRiderMessage(ctx, "missing", "5 min delay"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("sets and clears the note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Show(`Signal sent to Rider: "5 min delay"`)
		notifier.EXPECT().Show(`Signal sent to Rider: ""`)

		ledger := NewOrderLedgerUseCase(notifier, nil)
		if _, err := ledger.CreateOrder(ctx, validOrder("ord-1")); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		updated, err := ledger.SetRiderMessage(ctx, "ord-1", "5 min delay")
		if err != nil {
			t.Fatalf("set message failed: %v", err)
		}
		if updated.RiderMessage != "5 min delay" {
			t.Fatalf("expected message set, got %q", updated.RiderMessage)
		}

		updated, err = ledger.SetRiderMessage(ctx, "ord-1", "")
		if err != nil {
			t.Fatalf("clear message failed: %v", err)
		}
		if updated.RiderMessage != "" {
			t.Fatalf("expected cleared message, got %q", updated.RiderMessage)
		}
	})
}

func TestOrderLedgerUseCase_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes terminal orders and keeps insertion order", func(t *testing.T) {
		ledger := NewOrderLedgerUseCase(nil, nil)
		for _, id := range []string{"ord-1", "ord-2", "ord-3"} {
			if _, err := ledger.CreateOrder(ctx, validOrder(id)); err != nil {
				t.Fatalf("create %s failed: %v", id, err)
			}
		}
		if _, err := ledger.SetStatus(ctx, "ord-2", entities.OrderStatusCancelled); err != nil {
			t.Fatalf("cancel failed: %v", err)
		}
		// Mutating an unrelated order must not reorder the listing.
		if _, err := ledger.SetStatus(ctx, "ord-3", entities.OrderStatusPreparing); err != nil {
			t.Fatalf("advance failed: %v", err)
		}

		active := ledger.ListActive(ctx)
		if len(active) != 2 {
			t.Fatalf("expected 2 active orders, got %d", len(active))
		}
		if active[0].ID != "ord-1" || active[1].ID != "ord-3" {
			t.Fatalf("unexpected order: %s, %s", active[0].ID, active[1].ID)
		}
		for _, o := range active {
			if o.Status.IsTerminal() {
				t.Fatalf("terminal order %s in active list", o.ID)
			}
		}
	})
}
