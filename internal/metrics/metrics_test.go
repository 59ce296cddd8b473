package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRPC(t *testing.T) {
	m := New()
	m.ObserveRPC("/moneymanager.v1.LedgerService/GetBalances", "ok", 10*time.Millisecond)
	m.ObserveRPC("/moneymanager.v1.LedgerService/GetBalances", "ok", 20*time.Millisecond)
	m.ObserveRPC("/moneymanager.v1.LedgerService/GetBalances", "not_found", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/moneymanager.v1.LedgerService/GetBalances", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/moneymanager.v1.LedgerService/GetBalances", "not_found")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration))
}

func TestReportCacheLookup(t *testing.T) {
	m := New()
	m.ReportCacheLookup(true)
	m.ReportCacheLookup(false)
	m.ReportCacheLookup(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportCache.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reportCache.WithLabelValues("miss")))
}

func TestCounters(t *testing.T) {
	m := New()
	m.EntryRecorded("Expense")
	m.EntryRecorded("Payment")
	m.EntryRecorded("Expense")
	m.RolledOver(3)
	m.ObserveSettlement(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ledgerEntries.WithLabelValues("Expense")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerEntries.WithLabelValues("Payment")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rollovers))
	assert.Equal(t, 1, testutil.CollectAndCount(m.settlements))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRPC("p", "ok", time.Second)
		m.ReportCacheLookup(true)
		m.ObserveSettlement(1)
		m.EntryRecorded("Expense")
		m.RolledOver(1)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.EntryRecorded("Expense")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `moneymanager_ledger_entries_recorded_total{kind="Expense"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
