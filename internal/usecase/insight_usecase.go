package usecase

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vanhub/vendor-node/internal/domain/entities"
	"github.com/vanhub/vendor-node/internal/usecase/interfaces"
	"github.com/vanhub/vendor-node/pkg/metrics"
)

// InsightUnavailableText is shown when the text-generation collaborator
// fails. The failure is non-fatal and is never retried automatically; the
// next view activation or data change starts a fresh request.
const InsightUnavailableText = "Insights are temporarily unavailable. Check back in a moment."

// IInsightUseCase exposes the insight trigger to the presentation layer.
//
// The trigger watches committed ledger/catalog state and refreshes the
// derived text only while the insights surface is active. Completions racing
// each other are resolved last-request-wins via a generation counter.

type IInsightUseCase interface {
	SetView(ctx context.Context, tab entities.Tab)
	DataChanged(ctx context.Context)
	Snapshot() (text string, refreshing bool)
}

type InsightUseCase struct {
	mu         sync.Mutex
	view       entities.Tab
	text       string
	refreshing bool
	generation uint64

	ledger    IOrderLedgerUseCase
	catalog   ICatalogUseCase
	generator interfaces.IInsightGenerator
	metrics   *metrics.ConsoleMetrics
}

var (
	_ IInsightUseCase            = (*InsightUseCase)(nil)
	_ interfaces.ICommitObserver = (*InsightUseCase)(nil)
)

func NewInsightUseCase(ledger IOrderLedgerUseCase, catalog ICatalogUseCase, generator interfaces.IInsightGenerator, m *metrics.ConsoleMetrics) *InsightUseCase {
	return &InsightUseCase{
		view:      entities.TabOrders,
		ledger:    ledger,
		catalog:   catalog,
		generator: generator,
		metrics:   m,
	}
}

// SetView records the surface the operator is looking at. Entering the
// insights surface starts a refresh; every other surface deactivates the
// trigger (in-flight results for the old generation are still applied, since
// the cached text is reused on the next visit).
func (u *InsightUseCase) SetView(ctx context.Context, tab entities.Tab) {
	u.mu.Lock()
	u.view = tab
	u.mu.Unlock()

	if tab == entities.TabInsights {
		u.refresh(ctx)
	}
}

// DataChanged implements interfaces.ICommitObserver. It is invoked by the
// ledger and catalog after every committed mutation.
func (u *InsightUseCase) DataChanged(ctx context.Context) {
	u.mu.Lock()
	active := u.view == entities.TabInsights
	u.mu.Unlock()

	if active {
		u.refresh(ctx)
	}
}

// Snapshot returns the latest derived text and whether a refresh is in
// flight.
func (u *InsightUseCase) Snapshot() (string, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.text, u.refreshing
}

// refresh snapshots orders and inventory atomically with the generation
// bump and invokes the collaborator without blocking the caller. A
// completion whose generation no longer matches is discarded, so a stale
// result from a superseded request can never overwrite a newer one.
func (u *InsightUseCase) refresh(ctx context.Context) {
	if u.generator == nil {
		return
	}

	// The collaborator call outlives the triggering request; detach from
	// the caller's cancellation.
	ctx = context.WithoutCancel(ctx)

	u.mu.Lock()
	u.generation++
	gen := u.generation
	u.refreshing = true
	orders := u.ledger.List(ctx)
	inventory := u.catalog.List(ctx)
	u.mu.Unlock()

	go func() {
		text, err := u.generator.GenerateInsights(ctx, orders, inventory)

		u.mu.Lock()
		defer u.mu.Unlock()
		if gen != u.generation {
			log.WithFields(log.Fields{"generation": gen}).
				Debug("[insights] discarding superseded result")
			if u.metrics != nil {
				u.metrics.InsightRefreshes.WithLabelValues("superseded").Inc()
			}
			return
		}

		if err != nil {
			log.WithFields(log.Fields{"generation": gen, "err": err}).
				Warn("[insights] collaborator failed")
			u.text = InsightUnavailableText
			u.refreshing = false
			if u.metrics != nil {
				u.metrics.InsightRefreshes.WithLabelValues("error").Inc()
			}
			return
		}

		u.text = text
		u.refreshing = false
		if u.metrics != nil {
			u.metrics.InsightRefreshes.WithLabelValues("ok").Inc()
		}
	}()
}
