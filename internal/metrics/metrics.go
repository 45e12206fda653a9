// Package metrics holds the Prometheus collectors of the block explorer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "block_explorer"

// Metrics groups every collector the explorer exports.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RPCCallsTotal       *prometheus.CounterVec
	RPCCallDuration     *prometheus.HistogramVec
	TransactionFetches  *prometheus.CounterVec
	CurrentBlockNumber  prometheus.Gauge
	CurrentTransactions prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"code", "method", "path"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distributions.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1.0, 2.0},
		}, []string{"method", "path"}),
		RPCCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_calls_total",
			Help:      "Total number of JSON-RPC calls to the Ethereum node.",
		}, []string{"method", "result"}),
		RPCCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_call_duration_seconds",
			Help:      "JSON-RPC call latency distributions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		TransactionFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_fetches_total",
			Help:      "Transaction list fetches by outcome.",
		}, []string{"outcome"}),
		CurrentBlockNumber: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_block_number",
			Help:      "Block number currently displayed.",
		}),
		CurrentTransactions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_transactions",
			Help:      "Number of transactions in the displayed list.",
		}),
	}
}

// ObserveTransactionFetch counts one transaction list fetch.
func (m *Metrics) ObserveTransactionFetch(outcome string) {
	m.TransactionFetches.WithLabelValues(outcome).Inc()
}

// ObserveBlockState records the block and list size that were just applied.
func (m *Metrics) ObserveBlockState(blockNumber int64, txCount int) {
	m.CurrentBlockNumber.Set(float64(blockNumber))
	m.CurrentTransactions.Set(float64(txCount))
}

// ObserveRPCCall records one JSON-RPC round trip.
func (m *Metrics) ObserveRPCCall(method string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RPCCallsTotal.WithLabelValues(method, result).Inc()
	m.RPCCallDuration.WithLabelValues(method).Observe(d.Seconds())
}

// InstrumentHandler wraps next so every request is counted and timed under pattern.
func (m *Metrics) InstrumentHandler(pattern string, next http.Handler) http.Handler {
	path := prometheus.Labels{"path": pattern}
	return promhttp.InstrumentHandlerDuration(
		m.HTTPRequestDuration.MustCurryWith(path),
		promhttp.InstrumentHandlerCounter(m.HTTPRequestsTotal.MustCurryWith(path), next),
	)
}
