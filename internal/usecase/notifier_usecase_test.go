package usecase

import (
	"testing"
	"time"
)

func TestNotifierUseCase_Show(t *testing.T) {
	t.Run("message displays and expires", func(t *testing.T) {
		n := NewNotifierUseCase(30 * time.Millisecond)
		n.Show("Order #1042 Completed!")

		msg, ok := n.Active()
		if !ok || msg != "Order #1042 Completed!" {
			t.Fatalf("expected active message, got %q (%v)", msg, ok)
		}

		time.Sleep(80 * time.Millisecond)
		if msg, ok := n.Active(); ok {
			t.Fatalf("expected expired message, still showing %q", msg)
		}
	})

	t.Run("newer message replaces older", func(t *testing.T) {
		n := NewNotifierUseCase(50 * time.Millisecond)
		n.Show("A")
		n.Show("B")

		msg, ok := n.Active()
		if !ok || msg != "B" {
			t.Fatalf("expected B active, got %q (%v)", msg, ok)
		}
	})

	t.Run("superseded timer cannot clear the newer message", func(t *testing.T) {
		n := NewNotifierUseCase(60 * time.Millisecond)
		n.Show("A")
		time.Sleep(40 * time.Millisecond)
		n.Show("B")

		// Past A's original expiry, inside B's window: B must survive.
		time.Sleep(40 * time.Millisecond)
		msg, ok := n.Active()
		if !ok || msg != "B" {
			t.Fatalf("expected B still active, got %q (%v)", msg, ok)
		}

		// B expires on its own clock.
		time.Sleep(60 * time.Millisecond)
		if msg, ok := n.Active(); ok {
			t.Fatalf("expected B expired, still showing %q", msg)
		}
	})
}
