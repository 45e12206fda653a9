package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"block_explorer/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveTransactionFetch(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveTransactionFetch("applied")
	m.ObserveTransactionFetch("applied")
	m.ObserveTransactionFetch("stale")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransactionFetches.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransactionFetches.WithLabelValues("stale")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TransactionFetches.WithLabelValues("failed")))
}

func TestMetrics_ObserveBlockState(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveBlockState(18000000, 2)

	assert.Equal(t, 18000000.0, testutil.ToFloat64(m.CurrentBlockNumber))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CurrentTransactions))
}

func TestMetrics_ObserveRPCCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRPCCall("eth_blockNumber", 10*time.Millisecond, nil)
	m.ObserveRPCCall("eth_blockNumber", 10*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCCallsTotal.WithLabelValues("eth_blockNumber", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCCallsTotal.WithLabelValues("eth_blockNumber", "error")))

	count, err := testutil.GatherAndCount(reg, "block_explorer_rpc_call_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_InstrumentHandler(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	handler := m.InstrumentHandler("POST /block/next", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}))

	req := httptest.NewRequest(http.MethodPost, "/block/next", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("303", "post", "POST /block/next")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("200", "post", "POST /block/next")))
}
