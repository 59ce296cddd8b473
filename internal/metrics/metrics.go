// Package metrics exposes Prometheus collectors for RPC traffic and the
// balance engine. All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moneymanager"

// Metrics owns a private registry so tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	reportCache   *prometheus.CounterVec
	settlements   prometheus.Histogram
	ledgerEntries *prometheus.CounterVec
	rollovers     prometheus.Counter
}

// New creates the collectors and registers them, plus the Go runtime and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		reportCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_report_cache_total",
			Help:      "Balance report cache lookups by result.",
		}, []string{"result"}),
		settlements: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_transfers",
			Help:      "Number of transfers in each computed settlement plan.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}),
		ledgerEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_entries_recorded_total",
			Help:      "Ledger entries recorded by kind.",
		}, []string{"kind"}),
		rollovers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "month_rollovers_total",
			Help:      "Users whose personal transactions were rolled over.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.reportCache,
		m.settlements,
		m.ledgerEntries,
		m.rollovers,
	)
	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// ReportCacheLookup records a balance report cache hit or miss.
func (m *Metrics) ReportCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.reportCache.WithLabelValues(result).Inc()
}

// ObserveSettlement records the size of a freshly computed settlement plan.
func (m *Metrics) ObserveSettlement(transfers int) {
	if m == nil {
		return
	}
	m.settlements.Observe(float64(transfers))
}

// EntryRecorded counts a new ledger entry of the given kind.
func (m *Metrics) EntryRecorded(kind string) {
	if m == nil {
		return
	}
	m.ledgerEntries.WithLabelValues(kind).Inc()
}

// RolledOver counts users processed by a month-end rollover.
func (m *Metrics) RolledOver(users int) {
	if m == nil {
		return
	}
	m.rollovers.Add(float64(users))
}
