package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ConsoleMetrics aggregates the counters the vendor node exposes on /metrics.
type ConsoleMetrics struct {
	OrdersCompleted  prometheus.Counter
	OrdersCancelled  prometheus.Counter
	StockBlocked     prometheus.Counter
	InsightRefreshes *prometheus.CounterVec
}

func NewConsoleMetrics(node string) *ConsoleMetrics {
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vanhub",
		Subsystem: node,
		Name:      "orders_completed_total",
		Help:      "Total number of orders moved to COMPLETED this session.",
	})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vanhub",
		Subsystem: node,
		Name:      "orders_cancelled_total",
		Help:      "Total number of orders moved to CANCELLED this session.",
	})
	blocked := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vanhub",
		Subsystem: node,
		Name:      "stock_blocked_total",
		Help:      "Total number of products marked OUT_OF_STOCK.",
	})
	refreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vanhub",
		Subsystem: node,
		Name:      "insight_refreshes_total",
		Help:      "Insight text refreshes by outcome.",
	}, []string{"outcome"})

	prometheus.MustRegister(completed, cancelled, blocked, refreshes)
	return &ConsoleMetrics{
		OrdersCompleted:  completed,
		OrdersCancelled:  cancelled,
		StockBlocked:     blocked,
		InsightRefreshes: refreshes,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
