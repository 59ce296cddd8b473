package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/moneymanager/internal/cache"
	"github.com/mmynk/moneymanager/internal/calculator"
	"github.com/mmynk/moneymanager/internal/config"
	"github.com/mmynk/moneymanager/internal/events"
)

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	h := corsMiddleware("https://app.example.com", next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/moneymanager.v1.LedgerService/GetBalances", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.False(t, called, "preflight must not reach the handler")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/moneymanager.v1.LedgerService/GetBalances", nil))
	assert.True(t, called)
}

func TestNewReportCache_DefaultsToLRU(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{CacheSize: 8, CacheTTL: time.Minute}

	reports, lru, err := newReportCache(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, lru)
	_, isLRU := reports.(*cache.LRUCache[calculator.Report])
	assert.True(t, isLRU)
}

func TestNewPublisher_DisabledWithoutURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p, err := newPublisher(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, events.NopPublisher{}, p)
}
