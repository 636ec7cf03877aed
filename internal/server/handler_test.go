package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"marketdeck/internal/market"
	"marketdeck/internal/sentiment"
	"marketdeck/internal/snapshot"
	"marketdeck/internal/store"
	"marketdeck/internal/types"
)

// mockProvider is a hand mock of the SnapshotProvider interface.
type mockProvider struct {
	SnapshotFunc func(ctx context.Context, symbol string, opts snapshot.Options) snapshot.Snapshot
	SymbolsFunc  func() []types.SymbolMeta
}

func (m *mockProvider) Snapshot(ctx context.Context, symbol string, opts snapshot.Options) snapshot.Snapshot {
	return m.SnapshotFunc(ctx, symbol, opts)
}

func (m *mockProvider) Symbols() []types.SymbolMeta {
	return m.SymbolsFunc()
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", Health)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListSymbols(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &mockProvider{
		SymbolsFunc: func() []types.SymbolMeta {
			return []types.SymbolMeta{
				{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"},
				{Symbol: "XOM", Name: "Exxon Mobil Corporation", Sector: "Energy"},
			}
		},
	}
	r := gin.New()
	r.GET("/api/symbols", NewHandler(mock).ListSymbols)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/symbols", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"symbol":"AAPL","name":"Apple Inc.","sector":"Technology"},
		{"symbol":"XOM","name":"Exxon Mobil Corporation","sector":"Energy"}
	]`, w.Body.String())
}

func TestGetSnapshotQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		url          string
		wantSymbol   string
		wantLookback int
		wantCapital  float64
	}{
		{
			name:         "all params set",
			url:          "/api/snapshot/AAPL?lookback=90&capital=5000",
			wantSymbol:   "AAPL",
			wantLookback: 90,
			wantCapital:  5000,
		},
		{
			name:         "params omitted pass zero for downstream defaults",
			url:          "/api/snapshot/TSLA",
			wantSymbol:   "TSLA",
			wantLookback: 0,
			wantCapital:  0,
		},
		{
			name:         "malformed params fall back to zero",
			url:          "/api/snapshot/TSLA?lookback=abc&capital=xyz",
			wantSymbol:   "TSLA",
			wantLookback: 0,
			wantCapital:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockProvider{
				SnapshotFunc: func(ctx context.Context, symbol string, opts snapshot.Options) snapshot.Snapshot {
					assert.Equal(t, tt.wantSymbol, symbol)
					assert.Equal(t, tt.wantLookback, opts.LookbackDays)
					assert.Equal(t, tt.wantCapital, opts.Capital)
					return snapshot.Snapshot{Symbol: types.SymbolMeta{Symbol: symbol}}
				},
			}
			r := gin.New()
			r.GET("/api/snapshot/:symbol", NewHandler(mock).GetSnapshot)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRequestIDEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

// TestRouterEndToEnd drives the real assembler through the wired router.
func TestRouterEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := store.Default()
	ref := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	asm := snapshot.New(cfg, market.NewCatalogAt(cfg, ref), sentiment.NewFeed(ref))
	r := NewRouter(asm, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/snapshot/NVDA?lookback=120", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var snap snapshot.Snapshot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "NVDA", snap.Symbol.Symbol)
	assert.Equal(t, 120, snap.LookbackDays)
	assert.Len(t, snap.Strategies, 3)
	assert.NotEmpty(t, snap.Recommendations)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/symbols", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var symbols []types.SymbolMeta
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &symbols))
	assert.Len(t, symbols, len(cfg.Universe))
}
