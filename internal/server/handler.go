package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketdeck/internal/snapshot"
	"marketdeck/internal/types"
)

// SnapshotProvider is the in-process query surface the handlers expose over
// HTTP.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, symbol string, opts snapshot.Options) snapshot.Snapshot
	Symbols() []types.SymbolMeta
}

type Handler struct {
	provider SnapshotProvider
}

func NewHandler(provider SnapshotProvider) *Handler {
	return &Handler{provider: provider}
}

func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListSymbols serves the configured universe.
func (h *Handler) ListSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, h.provider.Symbols())
}

// GetSnapshot serves one symbol snapshot. Malformed or missing numeric
// params parse to zero and take the configured defaults downstream, so the
// endpoint has no error responses.
func (h *Handler) GetSnapshot(c *gin.Context) {
	symbol := c.Param("symbol")
	lookback, _ := strconv.Atoi(c.DefaultQuery("lookback", "0"))
	capital, _ := strconv.ParseFloat(c.DefaultQuery("capital", "0"), 64)

	snap := h.provider.Snapshot(c.Request.Context(), symbol, snapshot.Options{
		LookbackDays: lookback,
		Capital:      capital,
	})
	c.JSON(http.StatusOK, snap)
}
