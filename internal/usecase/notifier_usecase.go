package usecase

import (
	"sync"
	"time"

	"github.com/vanhub/vendor-node/internal/usecase/interfaces"
)

// DefaultNotificationTTL matches the console toast lifetime.
const DefaultNotificationTTL = 3 * time.Second

// INotifierUseCase exposes the single-slot operator notification.
//
// This is a display debounce, not a log: at most one active message, newest
// replaces older, and each message auto-expires after the TTL unless
// superseded first.

type INotifierUseCase interface {
	Show(message string)
	Active() (string, bool)
}

type NotifierUseCase struct {
	mu      sync.Mutex
	message string
	active  bool
	seq     uint64 // identifies the Show call owning the pending expiry
	timer   *time.Timer
	ttl     time.Duration
}

var (
	_ INotifierUseCase     = (*NotifierUseCase)(nil)
	_ interfaces.INotifier = (*NotifierUseCase)(nil)
)

func NewNotifierUseCase(ttl time.Duration) *NotifierUseCase {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &NotifierUseCase{ttl: ttl}
}

// Show replaces the active message and restarts the expiry clock. A timer
// scheduled by an earlier Show is cancelled so it can never clear a newer
// message early.
func (n *NotifierUseCase) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.seq++
	n.message = message
	n.active = true

	seq := n.seq
	n.timer = time.AfterFunc(n.ttl, func() {
		n.expire(seq)
	})
}

func (n *NotifierUseCase) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// A Stop that races the firing AfterFunc can let a stale expiry through;
	// the sequence check makes it a no-op.
	if n.seq != seq {
		return
	}
	n.message = ""
	n.active = false
	n.timer = nil
}

// Active returns the currently displayed message, if any.
func (n *NotifierUseCase) Active() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.active
}
