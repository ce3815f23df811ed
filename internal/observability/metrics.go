// Package observability provides Prometheus metrics for pool queries.
package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rayScope/internal/chain"
	"rayScope/internal/model"
)

const defaultNamespace = "rayscope"

// Metrics holds the collectors of one process. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal   *prometheus.CounterVec
	QueryDuration  *prometheus.HistogramVec
	WarningsTotal  *prometheus.CounterVec
	RPCCallLatency *prometheus.HistogramVec
	RPCErrorsTotal *prometheus.CounterVec
	PoolPrice      *prometheus.GaugeVec
	SnapshotsSaved prometheus.Counter
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "queries_total",
			Help:      "Pool queries by kind and outcome",
		}, []string{"kind", "status"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "query_duration_seconds",
			Help:      "Time to fetch, decode and price a pool",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		WarningsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "warnings_total",
			Help:      "Soft inconsistencies attached to derived metrics",
		}, []string{"kind"}),
		RPCCallLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "call_duration_seconds",
			Help:      "Chain lookup latency by method",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method"}),
		RPCErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "errors_total",
			Help:      "Chain lookup failures by method and reason",
		}, []string{"method", "reason"}),
		PoolPrice: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "price",
			Help:      "Last derived price, quote per base",
		}, []string{"address", "kind"}),
		SnapshotsSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "saved_total",
			Help:      "Pool snapshots written to storage",
		}),
	}
}

// Registry exposes the registry for tests and custom handlers.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordQuery records the outcome of one pool query.
func (m *Metrics) RecordQuery(kind model.Kind, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.QueriesTotal.WithLabelValues(string(kind), status).Inc()
	m.QueryDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

// RecordWarning counts a soft inconsistency.
func (m *Metrics) RecordWarning(kind model.Kind) {
	if m == nil {
		return
	}
	m.WarningsTotal.WithLabelValues(string(kind)).Inc()
}

// SetPrice publishes the last price of a pool.
func (m *Metrics) SetPrice(address string, kind model.Kind, price float64) {
	if m == nil {
		return
	}
	m.PoolPrice.WithLabelValues(address, string(kind)).Set(price)
}

// RecordSnapshots counts stored snapshots.
func (m *Metrics) RecordSnapshots(n int) {
	if m == nil {
		return
	}
	m.SnapshotsSaved.Add(float64(n))
}

// RecordRPC records latency and failure reason of one chain lookup.
func (m *Metrics) RecordRPC(method string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.RPCCallLatency.WithLabelValues(method).Observe(elapsed.Seconds())
	if err != nil {
		m.RPCErrorsTotal.WithLabelValues(method, errorReason(err)).Inc()
	}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, chain.ErrAddressNotFound):
		return "not_found"
	case errors.Is(err, chain.ErrNetwork):
		return "network"
	default:
		return "other"
	}
}

// InstrumentClient wraps a chain client so every lookup is recorded.
func InstrumentClient(client chain.Client, m *Metrics) chain.Client {
	if m == nil {
		return client
	}
	return &instrumentedClient{next: client, metrics: m}
}

type instrumentedClient struct {
	next    chain.Client
	metrics *Metrics
}

func (c *instrumentedClient) AccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	start := time.Now()
	data, err := c.next.AccountData(ctx, address)
	c.metrics.RecordRPC("account_data", time.Since(start), err)
	return data, err
}

func (c *instrumentedClient) TokenBalance(ctx context.Context, account solana.PublicKey) (model.TokenAmount, error) {
	start := time.Now()
	amount, err := c.next.TokenBalance(ctx, account)
	c.metrics.RecordRPC("token_balance", time.Since(start), err)
	return amount, err
}
